package engine

import (
	"testing"

	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/position"
)

func emphasisDoc(inlines ...document.Inline) (*document.Document, *document.Paragraph) {
	p := document.NewParagraph(inlines...)
	return &document.Document{Blocks: []document.Block{p}}, p
}

func applyEmphasis(t *testing.T, d *document.Document, p *document.Paragraph, style Emphasis, from, to int) Result {
	t.Helper()
	e := New(nil)
	sel := position.Range{Start: position.At(d, p, from), End: position.At(d, p, to)}
	return e.Apply(d, Command{Kind: ToggleEmphasis, Emphasis: style}, sel)
}

func TestToggleEmphasisAppliesBold(t *testing.T) {
	d, p := emphasisDoc(&document.Text{Content: "hello world"})

	res := applyEmphasis(t, d, p, EmphasisBold, 0, 5)
	if !res.Handled {
		t.Fatal("ToggleEmphasis not handled")
	}
	if len(p.Inlines) != 2 {
		t.Fatalf("got %d spans: %#v", len(p.Inlines), p.Inlines)
	}
	b, ok := p.Inlines[0].(*document.Bold)
	if !ok || document.InlineText(b.Children) != "hello" {
		t.Errorf("first span = %#v, want bold %q", p.Inlines[0], "hello")
	}
	if txt, ok := p.Inlines[1].(*document.Text); !ok || txt.Content != " world" {
		t.Errorf("second span = %#v", p.Inlines[1])
	}
	if document.InlineText(p.Inlines) != "hello world" {
		t.Errorf("text changed: %q", document.InlineText(p.Inlines))
	}
}

func TestToggleEmphasisRemovesWhenFullyStyled(t *testing.T) {
	d, p := emphasisDoc(
		&document.Bold{Children: []document.Inline{&document.Text{Content: "hello"}}},
		&document.Text{Content: " world"},
	)

	if res := applyEmphasis(t, d, p, EmphasisBold, 0, 5); !res.Handled {
		t.Fatal("ToggleEmphasis not handled")
	}
	if len(p.Inlines) != 1 {
		t.Fatalf("got %d spans: %#v", len(p.Inlines), p.Inlines)
	}
	if txt, ok := p.Inlines[0].(*document.Text); !ok || txt.Content != "hello world" {
		t.Errorf("span = %#v, want plain %q", p.Inlines[0], "hello world")
	}
}

func TestToggleEmphasisExtendsPartialStyle(t *testing.T) {
	// "hello" bold, selection covers "hello wo": mixed, so the whole range
	// becomes bold.
	d, p := emphasisDoc(
		&document.Bold{Children: []document.Inline{&document.Text{Content: "hello"}}},
		&document.Text{Content: " world"},
	)

	if res := applyEmphasis(t, d, p, EmphasisBold, 0, 8); !res.Handled {
		t.Fatal("ToggleEmphasis not handled")
	}
	b, ok := p.Inlines[0].(*document.Bold)
	if !ok || document.InlineText(b.Children) != "hello wo" {
		t.Fatalf("first span = %#v, want bold %q", p.Inlines[0], "hello wo")
	}
	if document.InlineText(p.Inlines) != "hello world" {
		t.Errorf("text changed: %q", document.InlineText(p.Inlines))
	}
}

func TestToggleEmphasisItalicInsideBold(t *testing.T) {
	d, p := emphasisDoc(&document.Bold{Children: []document.Inline{&document.Text{Content: "abcd"}}})

	if res := applyEmphasis(t, d, p, EmphasisItalic, 1, 3); !res.Handled {
		t.Fatal("ToggleEmphasis not handled")
	}
	// Nesting stays Bold > Italic.
	if len(p.Inlines) != 1 {
		t.Fatalf("got %d top spans: %#v", len(p.Inlines), p.Inlines)
	}
	b, ok := p.Inlines[0].(*document.Bold)
	if !ok || len(b.Children) != 3 {
		t.Fatalf("bold children = %#v", p.Inlines[0])
	}
	it, ok := b.Children[1].(*document.Italic)
	if !ok || document.InlineText(it.Children) != "bc" {
		t.Errorf("middle child = %#v, want italic %q", b.Children[1], "bc")
	}
}

func TestToggleEmphasisPreservesLink(t *testing.T) {
	d, p := emphasisDoc(
		&document.Text{Content: "see "},
		&document.Link{URL: "https://x.test", Children: []document.Inline{&document.Text{Content: "docs"}}},
	)

	if res := applyEmphasis(t, d, p, EmphasisBold, 0, 8); !res.Handled {
		t.Fatal("ToggleEmphasis not handled")
	}
	b, ok := p.Inlines[0].(*document.Bold)
	if !ok {
		t.Fatalf("span = %#v, want bold wrapper", p.Inlines[0])
	}
	var link *document.Link
	for _, c := range b.Children {
		if l, ok := c.(*document.Link); ok {
			link = l
		}
	}
	if link == nil || link.URL != "https://x.test" || document.InlineText(link.Children) != "docs" {
		t.Errorf("link lost inside bold: %#v", b.Children)
	}
}

func TestToggleEmphasisCollapsedSelectionNotHandled(t *testing.T) {
	d, p := emphasisDoc(&document.Text{Content: "text"})
	if res := applyEmphasis(t, d, p, EmphasisBold, 2, 2); res.Handled {
		t.Error("collapsed selection was handled")
	}
}

func TestToggleEmphasisCrossBlockNotHandled(t *testing.T) {
	p1 := document.NewTextParagraph("one")
	p2 := document.NewTextParagraph("two")
	d := &document.Document{Blocks: []document.Block{p1, p2}}
	e := New(nil)

	sel := position.Range{Start: position.At(d, p1, 0), End: position.At(d, p2, 3)}
	if res := e.Apply(d, Command{Kind: ToggleEmphasis, Emphasis: EmphasisBold}, sel); res.Handled {
		t.Error("cross-block emphasis was handled")
	}
}

func TestToggleEmphasisReversedSelection(t *testing.T) {
	d, p := emphasisDoc(&document.Text{Content: "hello"})
	if res := applyEmphasis(t, d, p, EmphasisBold, 5, 0); !res.Handled {
		t.Fatal("reversed selection not handled")
	}
	if _, ok := p.Inlines[0].(*document.Bold); !ok {
		t.Errorf("span = %#v, want bold", p.Inlines[0])
	}
}
