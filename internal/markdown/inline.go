package markdown

import (
	"regexp"
	"strings"

	"github.com/gerunddev/notedown/internal/document"
)

// renderInlines serializes inline spans with emphasis markers. Bold
// wrapping a single italic collapses to the combined *** delimiter so the
// importer reads it back as the same nesting.
func renderInlines(inlines []document.Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		switch v := in.(type) {
		case *document.Text:
			sb.WriteString(v.Content)
		case *document.Bold:
			if len(v.Children) == 1 {
				if it, ok := v.Children[0].(*document.Italic); ok {
					sb.WriteString("***")
					sb.WriteString(renderInlines(it.Children))
					sb.WriteString("***")
					continue
				}
			}
			sb.WriteString("**")
			sb.WriteString(renderInlines(v.Children))
			sb.WriteString("**")
		case *document.Italic:
			sb.WriteString("*")
			sb.WriteString(renderInlines(v.Children))
			sb.WriteString("*")
		case *document.Link:
			text := document.InlineText(v.Children)
			if text == v.URL {
				sb.WriteString(v.URL)
				continue
			}
			sb.WriteString("[")
			sb.WriteString(renderInlines(v.Children))
			sb.WriteString("](")
			sb.WriteString(v.URL)
			sb.WriteString(")")
		}
	}
	return sb.String()
}

var linkPattern = regexp.MustCompile(`^\[([^\]]*)\]\(([^)]*)\)`)

// parseInlines scans text for emphasis delimiters, links and autolinks.
// Unmatched delimiters stay literal text.
func parseInlines(s string) []document.Inline {
	var out []document.Inline
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			out = append(out, &document.Text{Content: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(s) {
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, "***"):
			if end := strings.Index(rest[3:], "***"); end >= 0 {
				flush()
				inner := rest[3 : 3+end]
				out = append(out, &document.Bold{Children: []document.Inline{
					&document.Italic{Children: parseInlines(inner)},
				}})
				i += end + 6
				continue
			}
			plain.WriteByte(s[i])
			i++
		case strings.HasPrefix(rest, "**"):
			if end := strings.Index(rest[2:], "**"); end >= 0 {
				flush()
				out = append(out, &document.Bold{Children: parseInlines(rest[2 : 2+end])})
				i += end + 4
				continue
			}
			plain.WriteByte(s[i])
			i++
		case s[i] == '*':
			if end := strings.IndexByte(rest[1:], '*'); end >= 0 {
				flush()
				out = append(out, &document.Italic{Children: parseInlines(rest[1 : 1+end])})
				i += end + 2
				continue
			}
			plain.WriteByte(s[i])
			i++
		case s[i] == '[':
			if m := linkPattern.FindStringSubmatch(rest); m != nil {
				flush()
				out = append(out, &document.Link{URL: m[2], Children: parseInlines(m[1])})
				i += len(m[0])
				continue
			}
			plain.WriteByte(s[i])
			i++
		case strings.HasPrefix(rest, "http://") || strings.HasPrefix(rest, "https://"):
			end := strings.IndexAny(rest, " \t\n")
			if end < 0 {
				end = len(rest)
			}
			url := rest[:end]
			flush()
			out = append(out, &document.Link{URL: url, Children: []document.Inline{&document.Text{Content: url}}})
			i += end
		default:
			plain.WriteByte(s[i])
			i++
		}
	}
	flush()
	return out
}
