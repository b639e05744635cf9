package engine

import (
	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/position"
)

// enter routes the Enter key inside a list: an empty item exits the list,
// any other item splits at the caret. Outside lists the command is not
// handled and the host's default newline behavior applies.
func (e *Engine) enter(doc *document.Document, pos position.Position) Result {
	ctx, ok := e.resolveCaret(doc, pos)
	if !ok || ctx.item == nil || ctx.list == nil {
		return Result{Handled: false, Selection: position.Caret(pos)}
	}
	if ctx.text == "" {
		return e.exitList(doc, ctx)
	}
	return e.continueList(doc, ctx)
}

// continueList splits the caret paragraph, keeping the leading content in
// the current item and moving the trailing content (formatting intact)
// into a new sibling item inserted right after it. The new item inherits
// the list's marker and indent by construction.
func (e *Engine) continueList(doc *document.Document, ctx caretCtx) Result {
	left, right := document.SplitInlines(ctx.para.Inlines, ctx.offset)
	ctx.para.Inlines = left

	newPara := document.NewParagraph(right...)
	newItem := document.NewListItem(newPara)
	ctx.list.InsertItem(ctx.list.Index(ctx.item)+1, newItem)

	return caretResult(e.placeCaret(doc, newPara, 0, ""))
}

// exitList converts the current empty item's paragraph into a standalone
// paragraph after the list. When the item is the list's first and a
// non-empty paragraph immediately precedes the list, the empty item merges
// into that paragraph instead. A list emptied by the exit is removed and
// replaced by the standalone paragraph.
func (e *Engine) exitList(doc *document.Document, ctx caretCtx) Result {
	idx := ctx.list.Index(ctx.item)
	ctx.list.RemoveItem(ctx.item)

	// Blocks other than the caret paragraph (a nested list, typically)
	// follow the paragraph out of the item.
	var extras []document.Block
	for _, b := range ctx.item.Blocks {
		if b != ctx.para {
			extras = append(extras, b)
		}
	}

	if idx == 0 {
		if prev, ok := precedingParagraph(doc, ctx.list); ok && document.InlineText(prev.Inlines) != "" {
			if len(ctx.list.Items) == 0 {
				doc.Remove(ctx.list)
			}
			anchor := document.Block(prev)
			for _, b := range extras {
				doc.InsertAfter(anchor, b)
				anchor = b
			}
			end := document.InlineLen(prev.Inlines)
			return caretResult(e.placeCaret(doc, prev, end, document.InlineText(prev.Inlines)))
		}
	}

	standalone := ctx.para
	if len(ctx.list.Items) == 0 {
		doc.Replace(ctx.list, standalone)
	} else {
		doc.InsertAfter(ctx.list, standalone)
	}
	anchor := document.Block(standalone)
	for _, b := range extras {
		doc.InsertAfter(anchor, b)
		anchor = b
	}
	return caretResult(e.placeCaret(doc, standalone, 0, ""))
}

// precedingParagraph finds the paragraph immediately before a block in its
// sibling collection.
func precedingParagraph(doc *document.Document, b document.Block) (*document.Paragraph, bool) {
	parent, ok := doc.ParentOf(b)
	if !ok {
		return nil, false
	}
	blocks := parent.Blocks()
	for i, bb := range blocks {
		if bb == b {
			if i == 0 {
				return nil, false
			}
			p, ok := blocks[i-1].(*document.Paragraph)
			return p, ok
		}
	}
	return nil, false
}
