package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gerunddev/notedown/internal/document"
)

// indentWidth is the number of spaces per list nesting level.
const indentWidth = 2

// EffectiveKind maps a list's stored marker kind and nesting level (1 =
// outermost) to the kind actually rendered. Decimal and bullet lists change
// style as they nest; every other kind renders itself at any depth.
func EffectiveKind(kind document.MarkerKind, level int) document.MarkerKind {
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	switch kind {
	case document.Decimal:
		return [5]document.MarkerKind{0, document.Decimal, document.LowerLatin, document.LowerRoman, document.Bullet}[level]
	case document.Bullet:
		return [5]document.MarkerKind{0, document.Bullet, document.Circle, document.Square, document.Bullet}[level]
	}
	return kind
}

// storedKind inverts EffectiveKind for the importer: given the kind a
// marker renders as and the nesting level it was found at, pick the kind to
// store. Bullet-row matches win over decimal-row matches, so a level-4
// bullet stays a bullet.
func storedKind(effective document.MarkerKind, level int) document.MarkerKind {
	if EffectiveKind(document.Bullet, level) == effective {
		return document.Bullet
	}
	if EffectiveKind(document.Decimal, level) == effective {
		return document.Decimal
	}
	return effective
}

// markerText renders the marker for the n-th item (1-based) of a list
// rendering as the given effective kind.
func markerText(effective document.MarkerKind, n int) string {
	switch effective {
	case document.Decimal:
		return strconv.Itoa(n) + "."
	case document.LowerLatin:
		return toLatin(n) + "."
	case document.UpperLatin:
		return strings.ToUpper(toLatin(n)) + "."
	case document.LowerRoman:
		return toRoman(n) + "."
	case document.UpperRoman:
		return strings.ToUpper(toRoman(n)) + "."
	case document.Circle:
		return "o"
	case document.Square:
		return "+"
	}
	return "-"
}

// markerLine matches a list item line: indentation, a marker token, one
// space, then the item text (possibly empty).
var markerLine = regexp.MustCompile(`^( *)(-|o|\+|[0-9]+\.|[A-Za-z]+\.) (.*)$`)

// marker is a parsed list item marker.
type marker struct {
	indent  int
	token   string
	content string
}

// parseMarkerLine splits a line into marker parts. The second return is
// false for ordinary text lines.
func parseMarkerLine(line string) (marker, bool) {
	m := markerLine.FindStringSubmatch(line)
	if m == nil {
		return marker{}, false
	}
	return marker{indent: len(m[1]), token: m[2], content: m[3]}, true
}

// effectiveKindOf guesses the rendered kind from the first marker token of
// a list. Single letters prefer latin, except "i"/"I" which open roman
// numbering; multi-letter tokens must be roman numerals to count as roman.
func effectiveKindOf(token string) document.MarkerKind {
	switch token {
	case "-":
		return document.Bullet
	case "o":
		return document.Circle
	case "+":
		return document.Square
	}
	body := strings.TrimSuffix(token, ".")
	if body == "" {
		return document.Bullet
	}
	if body[0] >= '0' && body[0] <= '9' {
		return document.Decimal
	}
	lower := strings.ToLower(body)
	upper := lower != body
	if _, ok := fromRoman(lower); ok && (len(body) > 1 || lower == "i") {
		if upper {
			return document.UpperRoman
		}
		return document.LowerRoman
	}
	if upper {
		return document.UpperLatin
	}
	return document.LowerLatin
}
