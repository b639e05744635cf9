package markdown

import "strings"

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

// toRoman renders n as a lowercase roman numeral. Non-positive numbers
// render as "i".
func toRoman(n int) string {
	if n < 1 {
		n = 1
	}
	var sb strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			sb.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return sb.String()
}

// fromRoman parses a lowercase roman numeral. The second return is false
// for strings that are not canonical roman numerals.
func fromRoman(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	rest := s
	for _, rv := range romanValues {
		for strings.HasPrefix(rest, rv.symbol) {
			n += rv.value
			rest = rest[len(rv.symbol):]
		}
	}
	if rest != "" {
		return 0, false
	}
	// Round-trip to reject non-canonical forms like "iiii".
	if toRoman(n) != s {
		return 0, false
	}
	return n, true
}

// toLatin renders n as a latin letter marker: 1 -> a, 2 -> b, ...
// Wrapping past 26 is out of scope; letters simply cycle.
func toLatin(n int) string {
	if n < 1 {
		n = 1
	}
	return string(rune('a' + (n-1)%26))
}
