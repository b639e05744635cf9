package engine

import (
	"unicode"
	"unicode/utf8"

	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/position"
)

// mergeBackward handles Backspace at the start of a non-first item: the
// previous item's first-paragraph content is absorbed into the caret's
// paragraph, any additional blocks of the absorbed item are reparented onto
// the surviving item, and the absorbed item is removed.
func (e *Engine) mergeBackward(doc *document.Document, pos position.Position) Result {
	ctx, ok := e.resolveCaret(doc, pos)
	if !ok || ctx.item == nil || ctx.list == nil || ctx.offset != 0 {
		return Result{Handled: false, Selection: position.Caret(pos)}
	}
	idx := ctx.list.Index(ctx.item)
	if idx <= 0 {
		return Result{Handled: false, Selection: position.Caret(pos)}
	}
	absorbed := ctx.list.Items[idx-1]

	_, caretOffset := e.absorb(ctx, absorbed, true)
	return caretResult(e.placeCaret(doc, ctx.para, caretOffset, prefixRunes(ctx.para, caretOffset)))
}

// mergeForward handles Delete at the end of an item: the next item's
// first-paragraph content is absorbed into the caret's paragraph.
func (e *Engine) mergeForward(doc *document.Document, pos position.Position) Result {
	ctx, ok := e.resolveCaret(doc, pos)
	if !ok || ctx.item == nil || ctx.list == nil {
		return Result{Handled: false, Selection: position.Caret(pos)}
	}
	if ctx.offset != len([]rune(ctx.text)) {
		return Result{Handled: false, Selection: position.Caret(pos)}
	}
	idx := ctx.list.Index(ctx.item)
	if idx < 0 || idx+1 >= len(ctx.list.Items) {
		return Result{Handled: false, Selection: position.Caret(pos)}
	}
	absorbed := ctx.list.Items[idx+1]

	_, caretOffset := e.absorb(ctx, absorbed, false)
	return caretResult(e.placeCaret(doc, ctx.para, caretOffset, prefixRunes(ctx.para, caretOffset)))
}

// absorb merges the absorbed item's first-paragraph content into the
// caret's paragraph (before it for backward merges, after it for forward
// ones), inserts a single space separator when neither side of the seam
// touches whitespace, reparents the absorbed item's remaining blocks onto
// the surviving item, and removes the absorbed item. It returns the
// separator-adjusted text of the absorbed side and the caret offset at the
// seam.
func (e *Engine) absorb(ctx caretCtx, absorbed *document.ListItem, backward bool) (string, int) {
	var absorbedInlines []document.Inline
	if p := absorbed.FirstParagraph(); p != nil {
		absorbedInlines = p.Inlines
	}
	absorbedText := document.InlineText(absorbedInlines)

	var left, right []document.Inline
	var leftText, rightText string
	if backward {
		left, right = absorbedInlines, ctx.para.Inlines
		leftText, rightText = absorbedText, ctx.text
	} else {
		left, right = ctx.para.Inlines, absorbedInlines
		leftText, rightText = ctx.text, absorbedText
	}

	sep := ""
	if needsSeparator(leftText, rightText) {
		sep = " "
	}
	merged := left
	if sep != "" {
		merged = document.MergeInlines(merged, []document.Inline{&document.Text{Content: sep}})
	}
	merged = document.MergeInlines(merged, right)
	ctx.para.Inlines = merged

	// Reparent everything but the absorbed first paragraph. An item holds
	// at most one nested list, so an absorbed nested list merges its items
	// into the survivor's; a backward merge absorbs the previous item,
	// whose entries precede the survivor's in document order.
	firstPara := absorbed.FirstParagraph()
	for _, b := range absorbed.Blocks {
		if b == firstPara {
			continue
		}
		if nl, ok := b.(*document.List); ok {
			if host := ctx.item.NestedList(); host != nil {
				if backward {
					host.Items = append(append([]*document.ListItem{}, nl.Items...), host.Items...)
				} else {
					host.Items = append(host.Items, nl.Items...)
				}
				continue
			}
		}
		ctx.item.Blocks = append(ctx.item.Blocks, b)
	}
	ctx.list.RemoveItem(absorbed)

	caretOffset := len([]rune(leftText))
	if backward {
		caretOffset += len(sep)
	}
	return leftText + sep, caretOffset
}

// needsSeparator reports whether merging the two texts needs a space at
// the seam. Empty sides and seams already touching whitespace, including a
// continuation-line newline, never need one.
func needsSeparator(left, right string) bool {
	if left == "" || right == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(left)
	first, _ := utf8.DecodeRuneInString(right)
	return !unicode.IsSpace(last) && !unicode.IsSpace(first)
}

// prefixRunes returns the text preceding the given offset in a paragraph.
func prefixRunes(p *document.Paragraph, offset int) string {
	runes := []rune(document.InlineText(p.Inlines))
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}
	return string(runes[:offset])
}
