package position

// Snapshot records where the caret sat inside its paragraph before a
// structural mutation: the rune offset and the literal text preceding it.
// The text is what makes restoration verifiable after the tree has changed.
type Snapshot struct {
	Offset int
	Prefix string
}

// restoreTolerance is how far (in runes) a restored caret may drift from
// the recorded offset while still matching the recorded preceding text.
const restoreTolerance = 2

// TakeSnapshot captures the caret state for the given paragraph text and
// rune offset.
func TakeSnapshot(text string, offset int) Snapshot {
	runes := []rune(text)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}
	return Snapshot{Offset: offset, Prefix: string(runes[:offset])}
}

// RestoreOffset walks the new paragraph text by insertion-position steps
// until the recorded offset is reached, then verifies the reconstructed
// preceding text against the snapshot, allowing the offset to drift by up
// to restoreTolerance runes. The second return reports whether a verified
// match was found; otherwise the result is a best-effort clamped offset.
func RestoreOffset(text string, snap Snapshot) (int, bool) {
	runes := []rune(text)
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > len(runes) {
			return len(runes)
		}
		return v
	}

	want := clamp(snap.Offset)
	prefix := []rune(snap.Prefix)

	// Step outward from the recorded offset: exact first, then ±1, ±2.
	for delta := 0; delta <= restoreTolerance; delta++ {
		for _, candidate := range []int{want + delta, want - delta} {
			if candidate < 0 || candidate > len(runes) {
				continue
			}
			if prefixMatches(runes[:candidate], prefix) {
				return candidate, true
			}
			if delta == 0 {
				break // +0 and -0 are the same candidate
			}
		}
	}
	return want, false
}

// prefixMatches compares the tail of the reconstructed preceding text with
// the tail of the recorded prefix. Comparing tails keeps verification
// meaningful when the paragraph gained or lost text far before the caret.
func prefixMatches(got, want []rune) bool {
	n := len(got)
	if len(want) < n {
		n = len(want)
	}
	if n == 0 {
		return len(got) == len(want)
	}
	g := got[len(got)-n:]
	w := want[len(want)-n:]
	for i := range g {
		if g[i] != w[i] {
			return false
		}
	}
	return true
}
