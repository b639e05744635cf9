// Package engine performs list-aware structural edits on the document tree
// in response to logical cursor commands. Every command is total: internal
// faults are caught at the command boundary and reported as "not handled"
// with the tree restored to a valid state.
package engine

import (
	"time"

	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/logger"
	"github.com/gerunddev/notedown/internal/position"
)

// Kind is the logical command captured by the host surface.
type Kind int

const (
	// Enter continues a list item, or exits the list when the item is empty.
	Enter Kind = iota
	// Indent nests the current item under its previous sibling.
	Indent
	// Outdent moves the current item out next to its grandparent item.
	Outdent
	// Backspace at the start of a non-first item merges it with the
	// previous item.
	Backspace
	// Delete at the end of an item merges the next item into it.
	Delete
	// ToggleList adds, removes or converts list formatting over the
	// selected paragraph range.
	ToggleList
	// ToggleEmphasis wraps or unwraps an inline style over the selection.
	ToggleEmphasis
)

// String returns the command name used in logs.
func (k Kind) String() string {
	switch k {
	case Enter:
		return "enter"
	case Indent:
		return "indent"
	case Outdent:
		return "outdent"
	case Backspace:
		return "backspace"
	case Delete:
		return "delete"
	case ToggleList:
		return "toggle-list"
	case ToggleEmphasis:
		return "toggle-emphasis"
	}
	return "unknown"
}

// Emphasis selects the inline style ToggleEmphasis operates on.
type Emphasis int

const (
	EmphasisBold Emphasis = iota
	EmphasisItalic
)

// Command is one logical editing command.
type Command struct {
	Kind     Kind
	Marker   document.MarkerKind // ToggleList only
	Emphasis Emphasis            // ToggleEmphasis only
}

// Result reports whether the engine handled the command and where the
// selection sits afterwards. An unhandled command leaves the tree untouched
// and the caller's default input behavior proceeds.
type Result struct {
	Handled   bool
	Selection position.Range
}

// Engine applies commands to a document tree.
type Engine struct {
	log *logger.Logger
}

// New creates an engine. A nil logger discards diagnostics.
func New(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Discard()
	}
	return &Engine{log: log}
}

// Apply runs one command against the document. The selection's start acts
// as the caret for caret-relative commands.
func (e *Engine) Apply(doc *document.Document, cmd Command, sel position.Range) (res Result) {
	started := time.Now()
	res = Result{Handled: false, Selection: sel}

	defer func() {
		if r := recover(); r != nil {
			e.log.CommandRecovered(cmd.Kind.String(), r)
			// Partial mutations keep single ownership, so normalizing is
			// enough to restore the structural invariants.
			doc.Normalize()
			res = Result{Handled: false, Selection: sel}
		}
	}()

	switch cmd.Kind {
	case Enter:
		res = e.enter(doc, sel.Start)
	case Indent:
		res = e.indent(doc, sel.Start)
	case Outdent:
		res = e.outdent(doc, sel.Start)
	case Backspace:
		res = e.mergeBackward(doc, sel.Start)
	case Delete:
		res = e.mergeForward(doc, sel.Start)
	case ToggleList:
		res = e.toggleList(doc, cmd.Marker, sel)
	case ToggleEmphasis:
		res = e.toggleEmphasis(doc, cmd.Emphasis, sel)
	}

	if res.Handled {
		doc.Normalize()
		e.log.CommandApplied(cmd.Kind.String(), time.Since(started))
	} else {
		e.log.CommandNotHandled(cmd.Kind.String(), "no structural edit at position")
	}
	return res
}

// caretCtx resolves everything around the caret: its paragraph, and when
// the paragraph lives in a list, the owning item and list.
type caretCtx struct {
	para   *document.Paragraph
	item   *document.ListItem
	list   *document.List
	offset int
	text   string
}

func (e *Engine) resolveCaret(doc *document.Document, pos position.Position) (caretCtx, bool) {
	para, ok := position.ParagraphAt(doc, pos)
	if !ok {
		return caretCtx{}, false
	}
	ctx := caretCtx{para: para, text: document.InlineText(para.Inlines)}
	ctx.offset = pos.Offset
	if n := len([]rune(ctx.text)); ctx.offset > n {
		ctx.offset = n
	}
	if ctx.offset < 0 {
		ctx.offset = 0
	}
	p, ok := doc.ParentOf(para)
	if ok && p.Item != nil {
		ctx.item = p.Item
		if l, ok := doc.ListOf(p.Item); ok {
			ctx.list = l
		}
	}
	return ctx, true
}

// placeCaret restores the caret into a paragraph after a mutation: the
// expected offset and preceding text are verified against the paragraph's
// new content, falling back to a clamped offset when verification fails.
func (e *Engine) placeCaret(doc *document.Document, para *document.Paragraph, offset int, prefix string) position.Position {
	text := document.InlineText(para.Inlines)
	placed, exact := position.RestoreOffset(text, position.Snapshot{Offset: offset, Prefix: prefix})
	if !exact {
		e.log.CaretFallback(para.ID(), offset, placed)
	}
	return position.At(doc, para, placed)
}

func caretResult(pos position.Position) Result {
	return Result{Handled: true, Selection: position.Caret(pos)}
}
