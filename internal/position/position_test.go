package position

import (
	"testing"

	"github.com/gerunddev/notedown/internal/document"
)

// buildDoc returns a document with a heading, a paragraph and a two-level
// list, plus handles to its leaves.
func buildDoc() (*document.Document, []*document.Paragraph) {
	p1 := document.NewTextParagraph("intro text")
	inner := document.NewTextParagraph("nested")
	item2 := document.NewListItem(document.NewTextParagraph("second"),
		document.NewList(document.Bullet, document.NewListItem(inner)))
	list := document.NewList(document.Bullet,
		document.NewListItem(document.NewTextParagraph("first")),
		item2,
	)
	d := &document.Document{Blocks: []document.Block{
		document.NewHeading(1, &document.Text{Content: "Title"}),
		p1,
		list,
	}}
	first := list.Items[0].FirstParagraph()
	second := item2.FirstParagraph()
	return d, []*document.Paragraph{p1, first, second, inner}
}

func TestPathOfAndResolve(t *testing.T) {
	d, paras := buildDoc()
	tests := []struct {
		name  string
		block document.Block
		want  Path
	}{
		{"top-level paragraph", paras[0], Path{1}},
		{"first item paragraph", paras[1], Path{2, 0, 0}},
		{"second item paragraph", paras[2], Path{2, 1, 0}},
		{"nested item paragraph", paras[3], Path{2, 1, 1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := PathOf(d, tt.block)
			if !ok {
				t.Fatal("PathOf did not find the block")
			}
			if !pathEqual(p, tt.want) {
				t.Fatalf("PathOf = %v, want %v", p, tt.want)
			}
			back, ok := Resolve(d, p)
			if !ok || back != tt.block {
				t.Error("Resolve did not return the original block")
			}
		})
	}
}

func TestResolveStaleRange(t *testing.T) {
	d, _ := buildDoc()
	if _, ok := Resolve(d, Path{9}); ok {
		t.Error("Resolve accepted an out-of-range top index")
	}
	if _, ok := Resolve(d, Path{1, 0, 0}); ok {
		t.Error("Resolve descended into a paragraph")
	}
	if _, ok := Resolve(d, Path{2, 5, 0}); ok {
		t.Error("Resolve accepted an out-of-range item index")
	}
}

func TestLeavesOrder(t *testing.T) {
	d, paras := buildDoc()
	leaves := Leaves(d)
	if len(leaves) != 5 {
		t.Fatalf("Leaves returned %d blocks, want 5", len(leaves))
	}
	want := []document.Block{d.Blocks[0], paras[0], paras[1], paras[2], paras[3]}
	for i := range want {
		if leaves[i] != want[i] {
			t.Errorf("leaf %d out of order", i)
		}
	}
}

func TestCharacterIndexPositionAtInverse(t *testing.T) {
	d, paras := buildDoc()
	for _, tt := range []struct {
		name   string
		block  document.Block
		offset int
	}{
		{"heading start", d.Blocks[0], 0},
		{"paragraph middle", paras[0], 5},
		{"list item", paras[1], 3},
		{"nested item end", paras[3], 6},
	} {
		t.Run(tt.name, func(t *testing.T) {
			pos := At(d, tt.block, tt.offset)
			idx := CharacterIndex(d, pos)
			back := PositionAt(d, idx)
			if got, _ := Resolve(d, back.Path); got != tt.block {
				t.Errorf("round-trip landed in a different block")
			}
			if back.Offset != tt.offset {
				t.Errorf("round-trip offset = %d, want %d", back.Offset, tt.offset)
			}
		})
	}
}

func TestCharacterIndexCountsSeparators(t *testing.T) {
	d, paras := buildDoc()
	// "Title" (5) + separator, then 3 runes into "intro text".
	pos := At(d, paras[0], 3)
	if got := CharacterIndex(d, pos); got != 9 {
		t.Errorf("CharacterIndex = %d, want 9", got)
	}
}

func TestPositionAtClamps(t *testing.T) {
	d, paras := buildDoc()
	pos := PositionAt(d, 100000)
	b, ok := Resolve(d, pos.Path)
	if !ok || b != paras[3] {
		t.Fatal("clamped position is not the last leaf")
	}
	if pos.Offset != 6 {
		t.Errorf("clamped offset = %d, want 6", pos.Offset)
	}

	pos = PositionAt(d, -5)
	if b, _ := Resolve(d, pos.Path); b != d.Blocks[0] || pos.Offset != 0 {
		t.Error("negative index did not clamp to document start")
	}
}

func TestCaretRange(t *testing.T) {
	p := Position{Path: Path{0}, Offset: 2}
	r := Caret(p)
	if !r.IsCaret() {
		t.Error("Caret range is not collapsed")
	}
	r.End.Offset = 3
	if r.IsCaret() {
		t.Error("widened range still reports collapsed")
	}
}
