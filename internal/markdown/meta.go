package markdown

import (
	"strconv"
	"strings"

	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/logger"
)

// Metadata comments carry layout hints that plain markdown loses. They are
// single-line comments of the form
//
//	<!-- nm:space-before:20 space-after:8 hanging -->
//
// placed immediately before the block they annotate. Unknown keys and flags
// are preserved as opaque fields so newer writers stay readable.
const (
	metaOpen     = "<!--"
	metaClose    = "-->"
	metaSentinel = "nm:"
)

// blockMeta is the decoded content of one metadata comment.
type blockMeta struct {
	spaceBefore float64
	spaceAfter  float64
	indent      float64
	listTop     float64
	listBottom  float64
	listIndent  float64
	hanging     bool
	extra       []document.MetaField
}

func (m blockMeta) isZero() bool {
	return m.spaceBefore == 0 && m.spaceAfter == 0 && m.indent == 0 &&
		m.listTop == 0 && m.listBottom == 0 && m.listIndent == 0 &&
		!m.hanging && len(m.extra) == 0
}

// isMetaComment reports whether a trimmed line is a metadata comment.
func isMetaComment(line string) bool {
	if !strings.HasPrefix(line, metaOpen) || !strings.HasSuffix(line, metaClose) {
		return false
	}
	inner := strings.TrimSpace(line[len(metaOpen) : len(line)-len(metaClose)])
	return strings.HasPrefix(inner, metaSentinel)
}

// parseMeta decodes a metadata comment. Entries that fail to parse are
// skipped one at a time; the rest of the comment still applies.
func parseMeta(line string, lineNo int, log *logger.Logger) blockMeta {
	var m blockMeta
	inner := strings.TrimSpace(line)
	inner = strings.TrimPrefix(inner, metaOpen)
	inner = strings.TrimSuffix(inner, metaClose)
	inner = strings.TrimPrefix(strings.TrimSpace(inner), metaSentinel)
	for _, token := range strings.Fields(inner) {
		key, value, hasValue := strings.Cut(token, ":")
		switch {
		case key == "hanging" && !hasValue:
			m.hanging = true
		case key == "space-before" && hasValue:
			if !parseFloatInto(&m.spaceBefore, value) {
				log.MetadataSkipped(lineNo, token)
			}
		case key == "space-after" && hasValue:
			if !parseFloatInto(&m.spaceAfter, value) {
				log.MetadataSkipped(lineNo, token)
			}
		case key == "indent" && hasValue:
			if !parseFloatInto(&m.indent, value) {
				log.MetadataSkipped(lineNo, token)
			}
		case key == "list-indent" && hasValue:
			if !parseFloatInto(&m.listIndent, value) {
				log.MetadataSkipped(lineNo, token)
			}
		case key == "list-spacing" && hasValue:
			top, bottom, ok := strings.Cut(value, ",")
			if !ok || !parseFloatInto(&m.listTop, top) || !parseFloatInto(&m.listBottom, bottom) {
				log.MetadataSkipped(lineNo, token)
			}
		default:
			// Unknown keys and flags travel through untouched.
			m.extra = append(m.extra, document.MetaField{Key: key, Value: value})
		}
	}
	return m
}

func parseFloatInto(dst *float64, s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	*dst = v
	return true
}

// apply copies decoded metadata onto the block it annotates. Paragraphs and
// headings take the paragraph keys, lists take the list keys; unknown
// fields land on whichever block they preceded.
func (m blockMeta) apply(b document.Block) {
	switch v := b.(type) {
	case *document.Paragraph:
		v.Spacing.Before = m.spaceBefore
		v.Spacing.After = m.spaceAfter
		v.Spacing.Indent = m.indent
		v.Spacing.Extra = m.extra
	case *document.Heading:
		v.Spacing.Before = m.spaceBefore
		v.Spacing.After = m.spaceAfter
		v.Spacing.Indent = m.indent
		v.Spacing.Extra = m.extra
	case *document.List:
		v.Spacing.Top = m.listTop
		v.Spacing.Bottom = m.listBottom
		v.Spacing.Indent = m.listIndent
		v.Spacing.Hanging = m.hanging
		v.Spacing.Extra = m.extra
	}
}

// metaFor builds the metadata comment for a block, or "" when every hint is
// at its default and nothing needs persisting.
func metaFor(b document.Block) string {
	var m blockMeta
	switch v := b.(type) {
	case *document.Paragraph:
		m.spaceBefore = v.Spacing.Before
		m.spaceAfter = v.Spacing.After
		m.indent = v.Spacing.Indent
		m.extra = v.Spacing.Extra
	case *document.Heading:
		m.spaceBefore = v.Spacing.Before
		m.spaceAfter = v.Spacing.After
		m.indent = v.Spacing.Indent
		m.extra = v.Spacing.Extra
	case *document.List:
		m.listTop = v.Spacing.Top
		m.listBottom = v.Spacing.Bottom
		m.listIndent = v.Spacing.Indent
		m.hanging = v.Spacing.Hanging
		m.extra = v.Spacing.Extra
	}
	if m.isZero() {
		return ""
	}

	var fields []string
	add := func(key string, v float64) {
		if v != 0 {
			fields = append(fields, key+":"+formatFloat(v))
		}
	}
	add("space-before", m.spaceBefore)
	add("space-after", m.spaceAfter)
	add("indent", m.indent)
	if m.listTop != 0 || m.listBottom != 0 {
		fields = append(fields, "list-spacing:"+formatFloat(m.listTop)+","+formatFloat(m.listBottom))
	}
	add("list-indent", m.listIndent)
	if m.hanging {
		fields = append(fields, "hanging")
	}
	for _, f := range m.extra {
		if f.Value == "" {
			fields = append(fields, f.Key)
		} else {
			fields = append(fields, f.Key+":"+f.Value)
		}
	}
	return metaOpen + " " + metaSentinel + strings.Join(fields, " ") + " " + metaClose
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
