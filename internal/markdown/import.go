// Package markdown converts between the in-memory document tree and its
// markdown text form. Layout hints that plain markdown cannot carry travel
// in metadata comments, so import(export(doc)) reconstructs the tree.
package markdown

import (
	"strings"

	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/logger"
)

// Importer parses markdown text into a document tree. Import never fails:
// malformed input degrades to plain paragraphs and an empty input yields a
// single empty paragraph.
type Importer struct {
	log *logger.Logger
}

// NewImporter creates an importer. A nil logger discards diagnostics.
func NewImporter(log *logger.Logger) *Importer {
	if log == nil {
		log = logger.Discard()
	}
	return &Importer{log: log}
}

// Import runs the two passes: metadata comment extraction, then the
// structural parse of the cleaned lines.
func (imp *Importer) Import(src string) *document.Document {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	// A single file-final newline is convention, not an empty paragraph.
	src = strings.TrimSuffix(src, "\n")

	lines := strings.Split(src, "\n")
	clean, meta := imp.extractMetadata(lines)
	doc := imp.parseBlocks(clean, meta)
	doc.Normalize()
	return doc
}

// extractMetadata removes metadata comment lines and returns the decoded
// comments keyed by the 1-based ordinal of the next non-blank content line.
func (imp *Importer) extractMetadata(lines []string) ([]string, map[int]blockMeta) {
	clean := make([]string, 0, len(lines))
	meta := make(map[int]blockMeta)
	var pending []blockMeta
	ordinal := 0

	for lineNo, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isMetaComment(trimmed) {
			pending = append(pending, parseMeta(trimmed, lineNo+1, imp.log))
			continue
		}
		clean = append(clean, line)
		if trimmed == "" {
			continue
		}
		ordinal++
		if len(pending) > 0 {
			meta[ordinal] = mergeMeta(pending)
			pending = nil
		}
	}
	return clean, meta
}

// mergeMeta folds several comments preceding the same block: later non-zero
// fields win, unknown fields accumulate.
func mergeMeta(ms []blockMeta) blockMeta {
	out := ms[0]
	for _, m := range ms[1:] {
		if m.spaceBefore != 0 {
			out.spaceBefore = m.spaceBefore
		}
		if m.spaceAfter != 0 {
			out.spaceAfter = m.spaceAfter
		}
		if m.indent != 0 {
			out.indent = m.indent
		}
		if m.listTop != 0 {
			out.listTop = m.listTop
		}
		if m.listBottom != 0 {
			out.listBottom = m.listBottom
		}
		if m.listIndent != 0 {
			out.listIndent = m.listIndent
		}
		if m.hanging {
			out.hanging = true
		}
		out.extra = append(out.extra, m.extra...)
	}
	return out
}

// parseHeading matches "# " through "#### " at the line start.
func parseHeading(line string) (level int, text string, ok bool) {
	hashes := 0
	for hashes < len(line) && line[hashes] == '#' {
		hashes++
	}
	if hashes < 1 || hashes > 4 || hashes >= len(line) || line[hashes] != ' ' {
		return 0, "", false
	}
	return hashes, line[hashes+1:], true
}

func (imp *Importer) parseBlocks(lines []string, meta map[int]blockMeta) *document.Document {
	doc := &document.Document{}
	n := len(lines)
	i := 0
	ordinal := 0
	seenContent := false

	for i < n {
		if strings.TrimSpace(lines[i]) == "" {
			run := 0
			for i < n && strings.TrimSpace(lines[i]) == "" {
				run++
				i++
			}
			// One blank line between content blocks is the separator; every
			// further blank (and every blank at the edges) is an explicit
			// empty paragraph.
			empties := run
			if seenContent && i < n {
				empties = run - 1
			}
			for k := 0; k < empties; k++ {
				doc.Blocks = append(doc.Blocks, document.NewParagraph())
			}
			continue
		}
		seenContent = true
		line := lines[i]

		if level, text, ok := parseHeading(line); ok {
			ordinal++
			h := document.NewHeading(level, parseInlines(text)...)
			if m, ok := meta[ordinal]; ok {
				m.apply(h)
			}
			doc.Blocks = append(doc.Blocks, h)
			i++
			continue
		}

		if _, ok := parseMarkerLine(line); ok {
			var l *document.List
			l, i, ordinal = imp.parseList(lines, i, ordinal, meta)
			if l != nil {
				doc.Blocks = append(doc.Blocks, l)
			}
			continue
		}

		var texts []string
		firstOrdinal := 0
		for i < n {
			line := lines[i]
			if strings.TrimSpace(line) == "" {
				break
			}
			if _, _, ok := parseHeading(line); ok {
				break
			}
			if _, ok := parseMarkerLine(line); ok {
				break
			}
			ordinal++
			if firstOrdinal == 0 {
				firstOrdinal = ordinal
			}
			texts = append(texts, line)
			i++
		}
		p := document.NewParagraph(parseInlines(strings.Join(texts, "\n"))...)
		if m, ok := meta[firstOrdinal]; ok {
			m.apply(p)
		}
		doc.Blocks = append(doc.Blocks, p)
	}

	if len(doc.Blocks) == 0 {
		doc.Blocks = []document.Block{document.NewParagraph()}
	}
	return doc
}

// openList tracks one level of the list stack during parsing.
type openList struct {
	list  *document.List
	level int
}

// parseList consumes a run of marker and continuation lines starting at i
// and builds the (possibly nested) list. It returns the list, the index of
// the first unconsumed line, and the updated non-blank line ordinal.
func (imp *Importer) parseList(lines []string, i, ordinal int, meta map[int]blockMeta) (*document.List, int, int) {
	var root *document.List
	var stack []openList
	firstOrdinal := 0
	n := len(lines)

	for i < n {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			break
		}
		if _, _, ok := parseHeading(line); ok {
			break
		}

		mk, isMarker := parseMarkerLine(line)
		if !isMarker {
			if len(stack) == 0 {
				break
			}
			top := stack[len(stack)-1]
			// Continuation lines are aligned past the marker column; a
			// flush-left line starts a new paragraph instead.
			if leadingSpaces(line) < (top.level-1)*indentWidth+2 {
				break
			}
			ordinal++
			item := top.list.Items[len(top.list.Items)-1]
			appendContinuation(item, strings.TrimLeft(line, " "))
			i++
			continue
		}

		level := mk.indent/indentWidth + 1
		for len(stack) > 0 && stack[len(stack)-1].level > level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 && root != nil {
			// Outdented past the root: a separate list follows.
			break
		}
		if len(stack) == 0 || stack[len(stack)-1].level < level {
			kind := storedKind(effectiveKindOf(mk.token), level)
			l := document.NewList(kind)
			if len(stack) == 0 {
				root = l
			} else {
				parent := stack[len(stack)-1].list
				if len(parent.Items) == 0 {
					parent.Items = append(parent.Items, document.NewListItem(document.NewParagraph()))
				}
				host := parent.Items[len(parent.Items)-1]
				host.Blocks = append(host.Blocks, l)
			}
			stack = append(stack, openList{list: l, level: level})
		}

		ordinal++
		if firstOrdinal == 0 {
			firstOrdinal = ordinal
		}
		top := stack[len(stack)-1]
		item := document.NewListItem(document.NewParagraph(parseInlines(mk.content)...))
		top.list.Items = append(top.list.Items, item)
		i++
	}

	if root != nil {
		if m, ok := meta[firstOrdinal]; ok {
			m.apply(root)
		}
	}
	return root, i, ordinal
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// appendContinuation joins a wrapped line onto the item's first paragraph.
func appendContinuation(item *document.ListItem, text string) {
	p := item.FirstParagraph()
	if p == nil {
		p = document.NewParagraph()
		item.Blocks = append([]document.Block{p}, item.Blocks...)
	}
	joined := document.MergeInlines([]document.Inline{&document.Text{Content: "\n"}}, parseInlines(text))
	p.Inlines = document.MergeInlines(p.Inlines, joined)
}
