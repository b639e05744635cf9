package document

import "strings"

// Inline is a span of text with optional character-level formatting:
// Text, Bold, Italic or Link. Bold and italic never overlap arbitrarily;
// nesting is Bold > Italic > Text.
type Inline interface {
	inline()
}

// Text is a literal run of characters.
type Text struct {
	Content string
}

// Bold wraps child inlines in strong emphasis.
type Bold struct {
	Children []Inline
}

// Italic wraps child inlines in emphasis.
type Italic struct {
	Children []Inline
}

// Link is a hyperlink. For autolinks the child text equals the URL.
type Link struct {
	URL      string
	Children []Inline
}

func (t *Text) inline()   {}
func (b *Bold) inline()   {}
func (i *Italic) inline() {}
func (l *Link) inline()   {}

// InlineText returns the concatenated literal text of the spans.
func InlineText(inlines []Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		switch v := in.(type) {
		case *Text:
			sb.WriteString(v.Content)
		case *Bold:
			sb.WriteString(InlineText(v.Children))
		case *Italic:
			sb.WriteString(InlineText(v.Children))
		case *Link:
			sb.WriteString(InlineText(v.Children))
		}
	}
	return sb.String()
}

// InlineLen returns the rune length of the concatenated text.
func InlineLen(inlines []Inline) int {
	n := 0
	for _, in := range inlines {
		switch v := in.(type) {
		case *Text:
			n += len([]rune(v.Content))
		case *Bold:
			n += InlineLen(v.Children)
		case *Italic:
			n += InlineLen(v.Children)
		case *Link:
			n += InlineLen(v.Children)
		}
	}
	return n
}

// CloneInlines deep-copies a span sequence.
func CloneInlines(inlines []Inline) []Inline {
	if len(inlines) == 0 {
		return nil
	}
	out := make([]Inline, 0, len(inlines))
	for _, in := range inlines {
		switch v := in.(type) {
		case *Text:
			out = append(out, &Text{Content: v.Content})
		case *Bold:
			out = append(out, &Bold{Children: CloneInlines(v.Children)})
		case *Italic:
			out = append(out, &Italic{Children: CloneInlines(v.Children)})
		case *Link:
			out = append(out, &Link{URL: v.URL, Children: CloneInlines(v.Children)})
		}
	}
	return out
}

// SplitInlines splits a span sequence at the given rune offset, preserving
// formatting on both sides. Offsets outside the text are clamped.
func SplitInlines(inlines []Inline, offset int) (left, right []Inline) {
	if offset <= 0 {
		return nil, CloneInlines(inlines)
	}
	remaining := offset
	for _, in := range inlines {
		n := InlineLen([]Inline{in})
		if remaining >= n {
			left = append(left, cloneInline(in))
			remaining -= n
			continue
		}
		if remaining > 0 {
			l, r := splitInline(in, remaining)
			if l != nil {
				left = append(left, l)
			}
			if r != nil {
				right = append(right, r)
			}
			remaining = 0
			continue
		}
		right = append(right, cloneInline(in))
	}
	return left, right
}

func cloneInline(in Inline) Inline {
	return CloneInlines([]Inline{in})[0]
}

func splitInline(in Inline, offset int) (Inline, Inline) {
	switch v := in.(type) {
	case *Text:
		runes := []rune(v.Content)
		return &Text{Content: string(runes[:offset])}, &Text{Content: string(runes[offset:])}
	case *Bold:
		l, r := SplitInlines(v.Children, offset)
		return nonEmpty(&Bold{Children: l}, l), nonEmpty(&Bold{Children: r}, r)
	case *Italic:
		l, r := SplitInlines(v.Children, offset)
		return nonEmpty(&Italic{Children: l}, l), nonEmpty(&Italic{Children: r}, r)
	case *Link:
		l, r := SplitInlines(v.Children, offset)
		return nonEmpty(&Link{URL: v.URL, Children: l}, l), nonEmpty(&Link{URL: v.URL, Children: r}, r)
	}
	return nil, nil
}

func nonEmpty(in Inline, children []Inline) Inline {
	if len(children) == 0 {
		return nil
	}
	return in
}

// MergeInlines concatenates two span sequences, joining adjacent plain text
// spans at the seam so repeated merges do not accumulate fragments.
func MergeInlines(a, b []Inline) []Inline {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	if ta, ok := a[len(a)-1].(*Text); ok {
		if tb, ok := b[0].(*Text); ok {
			merged := append([]Inline{}, a[:len(a)-1]...)
			merged = append(merged, &Text{Content: ta.Content + tb.Content})
			return append(merged, b[1:]...)
		}
	}
	return append(append([]Inline{}, a...), b...)
}
