package markdown

import (
	"strings"

	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/logger"
)

// Exporter serializes a document tree to markdown. Export is total: a block
// that fails to render falls back to its plain text instead of aborting the
// document.
type Exporter struct {
	log *logger.Logger
}

// NewExporter creates an exporter. A nil logger discards diagnostics.
func NewExporter(log *logger.Logger) *Exporter {
	if log == nil {
		log = logger.Discard()
	}
	return &Exporter{log: log}
}

// Export renders all blocks in order, separated by one blank line. An empty
// paragraph renders no line of its own, which leaves one extra blank line
// in the gap; the importer reads that back as the explicit empty paragraph.
// Output ends with a single file-final newline.
func (e *Exporter) Export(d *document.Document) string {
	var lines []string
	content := false
	for i, b := range d.Blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		body := e.renderBlock(b)
		if len(body) > 0 {
			content = true
		}
		lines = append(lines, body...)
	}
	// A document of only empty paragraphs emits no content line for the
	// file-final newline to close; it gets a blank of its own so every
	// empty paragraph survives reimport.
	if !content {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderBlock renders one top-level block, preceded by its metadata comment
// when any layout hint is set. Internal faults degrade to plain text.
func (e *Exporter) renderBlock(b document.Block) (out []string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.ExportFallback(b.ID(), r)
			out = strings.Split(document.BlockText(b), "\n")
		}
	}()

	var body []string
	switch v := b.(type) {
	case *document.Paragraph:
		text := renderInlines(v.Inlines)
		if text != "" {
			body = strings.Split(text, "\n")
		}
	case *document.Heading:
		body = []string{strings.Repeat("#", v.Level) + " " + renderInlines(v.Inlines)}
	case *document.List:
		body = e.renderList(v, 1)
	}

	if mc := metaFor(b); mc != "" {
		out = append(out, mc)
	}
	return append(out, body...)
}

// renderList renders a list at the given nesting level: two spaces of
// indentation per level, markers chosen through the effective-kind table,
// continuation lines aligned under the marker, nested lists one level
// deeper.
func (e *Exporter) renderList(l *document.List, level int) []string {
	eff := EffectiveKind(l.Kind, level)
	indent := strings.Repeat(" ", (level-1)*indentWidth)
	var out []string

	for n, item := range l.Items {
		mk := markerText(eff, n+1)
		align := indent + strings.Repeat(" ", len(mk)+1)
		needMarker := true

		for _, b := range item.Blocks {
			switch v := b.(type) {
			case *document.Paragraph:
				for _, pl := range strings.Split(renderInlines(v.Inlines), "\n") {
					if needMarker {
						out = append(out, indent+mk+" "+pl)
						needMarker = false
					} else {
						out = append(out, align+pl)
					}
				}
			case *document.List:
				if needMarker {
					out = append(out, indent+mk+" ")
					needMarker = false
				}
				out = append(out, e.renderList(v, level+1)...)
			case *document.Heading:
				// Headings never live inside items; keep the text anyway.
				if needMarker {
					out = append(out, indent+mk+" "+renderInlines(v.Inlines))
					needMarker = false
				} else {
					out = append(out, align+renderInlines(v.Inlines))
				}
			}
		}
		if needMarker {
			out = append(out, indent+mk+" ")
		}
	}
	return out
}
