// Package editor is the facade the host surface talks to: it owns the
// document tree, routes editing commands to the engine, serializes on
// demand, and caches rendered previews.
//
// Load and Save are total. Malformed input degrades to a single empty
// paragraph; a serialization fault returns the last good output.
package editor

import (
	"sync"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/gerunddev/notedown/internal/config"
	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/engine"
	"github.com/gerunddev/notedown/internal/logger"
	"github.com/gerunddev/notedown/internal/markdown"
	"github.com/gerunddev/notedown/internal/position"
)

// Editor binds a document to the import/export pipeline and the editing
// engine. Not safe for concurrent use; the host serializes access.
type Editor struct {
	cfg *config.Config
	log *logger.Logger

	importer *markdown.Importer
	exporter *markdown.Exporter
	engine   *engine.Engine

	doc *document.Document
	sel position.Range

	lastSaved string

	preview     string
	previewAt   time.Time
	previewOK   bool
	previewDone func(string) (string, error)

	mu       sync.Mutex
	onChange []func()
	notifier *Notifier
}

// New creates an editor over an empty document. A nil config gets the
// defaults; a nil logger discards diagnostics.
func New(cfg *config.Config, log *logger.Logger) *Editor {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.Discard()
	}
	e := &Editor{
		cfg:      cfg,
		log:      log,
		importer: markdown.NewImporter(log),
		exporter: markdown.NewExporter(log),
		engine:   engine.New(log),
		doc:      document.New(),
	}
	e.sel = position.Caret(position.PositionAt(e.doc, 0))
	if cfg.NotifyWindow > 0 {
		e.notifier = NewNotifier(cfg.NotifyWindow)
	}
	return e
}

// Load replaces the document with the parse of the given markdown. Any
// fault during parsing leaves the editor on a single empty paragraph
// rather than failing.
func (e *Editor) Load(text string) {
	func() {
		defer func() {
			if r := recover(); r != nil {
				e.log.AnchorFallback("load", "document start")
				e.doc = document.New()
			}
		}()
		e.doc = e.importer.Import(text)
	}()
	e.lastSaved = ""
	e.sel = position.Caret(position.PositionAt(e.doc, 0))
	e.invalidate()
}

// Save serializes the current document. A serialization fault returns the
// most recent successful output, or the empty document rendition when
// nothing was saved yet.
func (e *Editor) Save() string {
	out, ok := e.trySave()
	if !ok {
		if e.lastSaved != "" {
			return e.lastSaved
		}
		return "\n"
	}
	e.lastSaved = out
	return out
}

func (e *Editor) trySave() (out string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.log.ExportFallback("document", r)
			out, ok = "", false
		}
	}()
	return e.exporter.Export(e.doc), true
}

// Apply runs one editing command at the current selection. Handled
// commands move the selection, invalidate the preview cache, and fire the
// change signal.
func (e *Editor) Apply(cmd engine.Command) engine.Result {
	res := e.engine.Apply(e.doc, cmd, e.sel)
	if res.Handled {
		e.sel = res.Selection
		e.invalidate()
	}
	return res
}

// Document exposes the tree for read-only inspection.
func (e *Editor) Document() *document.Document { return e.doc }

// Selection returns the current selection.
func (e *Editor) Selection() position.Range { return e.sel }

// Styling reports the configured text styling hints. The core never
// applies them; the host surface renders with whatever toolkit it uses.
func (e *Editor) Styling() (fontFamily string, fontSize float64) {
	return e.cfg.FontFamily, e.cfg.FontSize
}

// SetSelection moves the selection, clamping both endpoints into the
// document.
func (e *Editor) SetSelection(r position.Range) {
	r.Start = clamp(e.doc, r.Start)
	r.End = clamp(e.doc, r.End)
	e.sel = r
}

func clamp(doc *document.Document, pos position.Position) position.Position {
	if _, ok := position.Resolve(doc, pos.Path); ok {
		return pos
	}
	return position.PositionAt(doc, position.CharacterIndex(doc, pos))
}

// CharacterIndex converts a tree position to a flat character index over
// the document's text.
func (e *Editor) CharacterIndex(pos position.Position) int {
	return position.CharacterIndex(e.doc, pos)
}

// PositionAt converts a flat character index back to a tree position.
func (e *Editor) PositionAt(index int) position.Position {
	return position.PositionAt(e.doc, index)
}

// Preview returns the terminal-rendered markdown of the current document.
// Results are cached until the next mutation or until the configured TTL
// elapses.
func (e *Editor) Preview() (string, error) {
	if e.previewOK && time.Since(e.previewAt) < e.cfg.PreviewTTL {
		return e.preview, nil
	}
	render := e.previewDone
	if render == nil {
		render = renderMarkdown
	}
	out, err := render(e.Save())
	if err != nil {
		return "", err
	}
	e.preview = out
	e.previewAt = time.Now()
	e.previewOK = true
	return out, nil
}

func renderMarkdown(text string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}

// OnChange registers a callback fired synchronously after every handled
// command and load. When a notify window is configured, a coalesced
// notification follows asynchronously via the Notifier.
func (e *Editor) OnChange(fn func()) {
	e.mu.Lock()
	e.onChange = append(e.onChange, fn)
	e.mu.Unlock()
}

// ChangeNotifier exposes the coalescing notifier, or nil when coalescing
// is disabled.
func (e *Editor) ChangeNotifier() *Notifier { return e.notifier }

// Close releases the notifier's timer.
func (e *Editor) Close() {
	if e.notifier != nil {
		e.notifier.Stop()
	}
}

func (e *Editor) invalidate() {
	e.previewOK = false
	e.mu.Lock()
	callbacks := append([]func(){}, e.onChange...)
	e.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
	if e.notifier != nil {
		e.notifier.Signal()
	}
}
