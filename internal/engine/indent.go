package engine

import (
	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/position"
)

// indent moves the caret's item into a list nested inside its previous
// sibling item, creating that nested list if absent. Indenting the first
// item first inserts a synthetic container item at index 0 to host the
// nesting.
func (e *Engine) indent(doc *document.Document, pos position.Position) Result {
	ctx, ok := e.resolveCaret(doc, pos)
	if !ok || ctx.item == nil || ctx.list == nil {
		return Result{Handled: false, Selection: position.Caret(pos)}
	}

	idx := ctx.list.Index(ctx.item)
	if idx < 0 {
		return Result{Handled: false, Selection: position.Caret(pos)}
	}
	if idx == 0 {
		ctx.list.InsertItem(0, document.NewListItem(document.NewParagraph()))
		idx = 1
	}
	prev := ctx.list.Items[idx-1]

	nested := prev.NestedList()
	if nested == nil {
		nested = document.NewList(nestedKindFor(ctx.list.Kind))
		prev.Blocks = append(prev.Blocks, nested)
	}

	// Remove before re-adding so the item is never owned twice, even if a
	// later step fails.
	ctx.list.RemoveItem(ctx.item)
	nested.Items = append(nested.Items, ctx.item)

	return caretResult(e.placeCaret(doc, ctx.para, ctx.offset, caretPrefix(ctx)))
}

// nestedKindFor picks the marker kind for a freshly created nested list.
// Decimal parents nest as plain bullets; every other kind carries through
// and takes its rendered style from the nesting level.
func nestedKindFor(parent document.MarkerKind) document.MarkerKind {
	if parent == document.Decimal {
		return document.Bullet
	}
	return parent
}

// outdent moves the caret's item out of its nested list to become the
// sibling immediately after its grandparent item. Containers emptied by
// the move are cleaned up.
func (e *Engine) outdent(doc *document.Document, pos position.Position) Result {
	ctx, ok := e.resolveCaret(doc, pos)
	if !ok || ctx.item == nil || ctx.list == nil {
		return Result{Handled: false, Selection: position.Caret(pos)}
	}

	grandItem, ok := doc.ContainerItemOf(ctx.list)
	if !ok || grandItem == nil {
		// Already at the outermost level.
		return Result{Handled: false, Selection: position.Caret(pos)}
	}
	grandList, ok := doc.ListOf(grandItem)
	if !ok {
		return Result{Handled: false, Selection: position.Caret(pos)}
	}
	grandIdx := grandList.Index(grandItem)

	ctx.list.RemoveItem(ctx.item)
	if len(ctx.list.Items) == 0 {
		grandItem.RemoveBlock(ctx.list)
	}
	insertAt := grandIdx + 1
	if len(grandItem.Blocks) == 0 {
		grandList.RemoveItem(grandItem)
		insertAt = grandIdx
	}
	grandList.InsertItem(insertAt, ctx.item)

	return caretResult(e.placeCaret(doc, ctx.para, ctx.offset, caretPrefix(ctx)))
}

// caretPrefix is the text preceding the caret in its paragraph before the
// mutation, used to verify restoration afterwards.
func caretPrefix(ctx caretCtx) string {
	runes := []rune(ctx.text)
	if ctx.offset > len(runes) {
		return ctx.text
	}
	return string(runes[:ctx.offset])
}
