package engine

import (
	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/position"
)

// toggleList applies list formatting over the selected paragraph range.
// The mixed-selection heuristic counts how many selected paragraphs are
// already in a target-kind list (target), in a different list (other), or
// in none (none): when target outweighs the rest the action is to strip
// list formatting; otherwise every selected paragraph ends up in a list of
// the target kind. Ties convert to the target kind.
func (e *Engine) toggleList(doc *document.Document, kind document.MarkerKind, sel position.Range) Result {
	selected := e.selectedParagraphs(doc, sel)
	if len(selected) == 0 {
		return Result{Handled: false, Selection: sel}
	}

	target, other, none := 0, 0, 0
	for _, p := range selected {
		l, ok := listOfParagraph(doc, p)
		switch {
		case !ok:
			none++
		case l.Kind == kind:
			target++
		default:
			other++
		}
	}

	startPara, startOff := endpointParagraph(doc, sel.Start, selected, false)
	endPara, endOff := endpointParagraph(doc, sel.End, selected, true)

	if target > other+none {
		e.stripList(doc, selected)
	} else {
		e.listify(doc, kind, selected)
	}

	res := position.Range{
		Start: position.At(doc, startPara, startOff),
		End:   position.At(doc, endPara, endOff),
	}
	return Result{Handled: true, Selection: res}
}

// selectedParagraphs collects the paragraphs covered by the selection in
// document order. A collapsed selection covers the caret's paragraph.
func (e *Engine) selectedParagraphs(doc *document.Document, sel position.Range) []*document.Paragraph {
	startBlock, ok := position.Resolve(doc, sel.Start.Path)
	if !ok {
		return nil
	}
	endBlock, ok := position.Resolve(doc, sel.End.Path)
	if !ok {
		return nil
	}

	leaves := position.Leaves(doc)
	first, last := -1, -1
	for i, leaf := range leaves {
		if leaf == startBlock || leaf == endBlock {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return nil
	}

	var out []*document.Paragraph
	for _, leaf := range leaves[first : last+1] {
		if p, ok := leaf.(*document.Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// endpointParagraph picks the paragraph a selection endpoint should map to
// after the toggle, falling back to the nearest selected paragraph when
// the endpoint was a heading.
func endpointParagraph(doc *document.Document, pos position.Position, selected []*document.Paragraph, last bool) (*document.Paragraph, int) {
	if p, ok := position.ParagraphAt(doc, pos); ok {
		return p, pos.Offset
	}
	if last {
		return selected[len(selected)-1], pos.Offset
	}
	return selected[0], pos.Offset
}

func listOfParagraph(doc *document.Document, p *document.Paragraph) (*document.List, bool) {
	parent, ok := doc.ParentOf(p)
	if !ok || parent.Item == nil {
		return nil, false
	}
	return doc.ListOf(parent.Item)
}

// stripList removes list formatting from every selected paragraph that has
// any: the paragraph's item leaves its list as standalone blocks, lifted
// out of any enclosing items until it stands at the document's top level.
func (e *Engine) stripList(doc *document.Document, selected []*document.Paragraph) {
	for _, p := range selected {
		parent, ok := doc.ParentOf(p)
		if !ok || parent.Item == nil {
			continue
		}
		item := parent.Item
		list, ok := doc.ListOf(item)
		if !ok {
			continue
		}
		run := append([]document.Block{}, item.Blocks...)
		splitOut(doc, list, item, run)
		for {
			parent, ok := doc.ParentOf(run[0])
			if !ok || parent.Item == nil {
				break
			}
			host := parent.Item
			hostList, ok := doc.ListOf(host)
			if !ok {
				break
			}
			splitOut(doc, hostList, host, run)
		}
	}
	doc.Normalize()
}

// splitOut detaches a contiguous run of an item's blocks and plants it
// after the item's list; whatever follows the run continues in a new list
// of the same kind so document order is preserved.
func splitOut(doc *document.Document, list *document.List, item *document.ListItem, run []document.Block) {
	start := blockIndex(item.Blocks, run[0])
	idx := list.Index(item)
	if start < 0 || idx < 0 {
		return
	}
	rest := append([]document.Block{}, item.Blocks[start+len(run):]...)
	item.Blocks = item.Blocks[:start]

	after := append([]*document.ListItem{}, list.Items[idx+1:]...)
	list.Items = list.Items[:idx+1]

	anchor := document.Block(list)
	for _, b := range run {
		doc.InsertAfter(anchor, b)
		anchor = b
	}

	var tailItems []*document.ListItem
	if len(rest) > 0 {
		tailItems = append(tailItems, document.NewListItem(rest...))
	}
	tailItems = append(tailItems, after...)
	if len(tailItems) > 0 {
		tail := document.NewList(list.Kind, tailItems...)
		tail.Spacing = list.Spacing
		doc.InsertAfter(anchor, tail)
	}

	if len(item.Blocks) == 0 {
		list.RemoveItem(item)
	}
	if len(list.Items) == 0 {
		doc.Remove(list)
	}
}

func blockIndex(blocks []document.Block, b document.Block) int {
	for i, x := range blocks {
		if x == b {
			return i
		}
	}
	return -1
}

// listify groups the selected paragraphs into maximal runs of structurally
// adjacent top-level blocks and turns each run into one list of the target
// kind. A list already containing a selected paragraph is dissolved into
// the new list, items and nested structure preserved.
func (e *Engine) listify(doc *document.Document, kind document.MarkerKind, selected []*document.Paragraph) {
	sel := make(map[*document.Paragraph]bool, len(selected))
	for _, p := range selected {
		sel[p] = true
	}

	inRun := func(b document.Block) bool {
		switch v := b.(type) {
		case *document.Paragraph:
			return sel[v]
		case *document.List:
			return listContainsSelected(v, sel)
		}
		return false
	}

	var out []document.Block
	i := 0
	for i < len(doc.Blocks) {
		b := doc.Blocks[i]
		if !inRun(b) {
			out = append(out, b)
			i++
			continue
		}
		run := document.NewList(kind)
		for i < len(doc.Blocks) && inRun(doc.Blocks[i]) {
			switch v := doc.Blocks[i].(type) {
			case *document.Paragraph:
				run.Items = append(run.Items, document.NewListItem(v))
			case *document.List:
				run.Items = append(run.Items, v.Items...)
			}
			i++
		}
		out = append(out, run)
	}
	doc.Blocks = out
	doc.Normalize()
}

func listContainsSelected(l *document.List, sel map[*document.Paragraph]bool) bool {
	for _, item := range l.Items {
		for _, b := range item.Blocks {
			switch v := b.(type) {
			case *document.Paragraph:
				if sel[v] {
					return true
				}
			case *document.List:
				if listContainsSelected(v, sel) {
					return true
				}
			}
		}
	}
	return false
}
