package markdown

import (
	"testing"

	"github.com/gerunddev/notedown/internal/document"
)

func importText(t *testing.T, src string) *document.Document {
	t.Helper()
	return NewImporter(nil).Import(src)
}

func TestImportEmptyInput(t *testing.T) {
	doc := importText(t, "")
	if len(doc.Blocks) != 1 {
		t.Fatalf("empty input produced %d blocks, want 1", len(doc.Blocks))
	}
	p, ok := doc.Blocks[0].(*document.Paragraph)
	if !ok || document.InlineText(p.Inlines) != "" {
		t.Errorf("empty input block = %#v, want empty paragraph", doc.Blocks[0])
	}
}

func TestImportHeadings(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		level int
	}{
		{"level 1", "# Top", 1},
		{"level 4", "#### Deep", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := importText(t, tt.line+"\n")
			h, ok := doc.Blocks[0].(*document.Heading)
			if !ok {
				t.Fatalf("block = %#v, want heading", doc.Blocks[0])
			}
			if h.Level != tt.level {
				t.Errorf("level = %d, want %d", h.Level, tt.level)
			}
		})
	}

	t.Run("five hashes is a paragraph", func(t *testing.T) {
		doc := importText(t, "##### Too deep\n")
		if _, ok := doc.Blocks[0].(*document.Paragraph); !ok {
			t.Errorf("block = %#v, want paragraph", doc.Blocks[0])
		}
	})

	t.Run("hash without space is a paragraph", func(t *testing.T) {
		doc := importText(t, "#tag\n")
		if _, ok := doc.Blocks[0].(*document.Paragraph); !ok {
			t.Errorf("block = %#v, want paragraph", doc.Blocks[0])
		}
	})
}

func TestImportMultiLineParagraph(t *testing.T) {
	doc := importText(t, "first line\nsecond line\n")
	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(doc.Blocks))
	}
	p := doc.Blocks[0].(*document.Paragraph)
	if got := document.InlineText(p.Inlines); got != "first line\nsecond line" {
		t.Errorf("paragraph text = %q", got)
	}
}

func TestImportBlankLines(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantTexts []string
	}{
		{"single separator", "a\n\nb\n", []string{"a", "b"}},
		{"double gap keeps one empty", "a\n\n\nb\n", []string{"a", "", "b"}},
		{"leading blank", "\na\n", []string{"", "a"}},
		{"trailing blank", "a\n\n", []string{"a", ""}},
		{"only blanks", "\n\n", []string{"", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := importText(t, tt.src)
			if len(doc.Blocks) != len(tt.wantTexts) {
				t.Fatalf("got %d blocks, want %d", len(doc.Blocks), len(tt.wantTexts))
			}
			for i, want := range tt.wantTexts {
				p, ok := doc.Blocks[i].(*document.Paragraph)
				if !ok {
					t.Fatalf("block %d = %#v, want paragraph", i, doc.Blocks[i])
				}
				if got := document.InlineText(p.Inlines); got != want {
					t.Errorf("block %d text = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestImportFlatList(t *testing.T) {
	doc := importText(t, "- one\n- two\n- three\n")
	l, ok := doc.Blocks[0].(*document.List)
	if !ok {
		t.Fatalf("block = %#v, want list", doc.Blocks[0])
	}
	if l.Kind != document.Bullet {
		t.Errorf("kind = %v, want bullet", l.Kind)
	}
	if len(l.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(l.Items))
	}
	if got := document.InlineText(l.Items[1].FirstParagraph().Inlines); got != "two" {
		t.Errorf("second item text = %q", got)
	}
}

func TestImportOrderedKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want document.MarkerKind
	}{
		{"decimal", "1. a\n2. b\n", document.Decimal},
		{"upper latin", "A. a\nB. b\n", document.UpperLatin},
		{"lower roman", "i. a\nii. b\n", document.LowerRoman},
		{"upper roman", "I. a\nII. b\n", document.UpperRoman},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := importText(t, tt.src)
			l, ok := doc.Blocks[0].(*document.List)
			if !ok {
				t.Fatalf("block = %#v, want list", doc.Blocks[0])
			}
			if l.Kind != tt.want {
				t.Errorf("kind = %v, want %v", l.Kind, tt.want)
			}
		})
	}
}

func TestImportNestedList(t *testing.T) {
	doc := importText(t, "- top\n  o sub one\n  o sub two\n- next\n")
	l := doc.Blocks[0].(*document.List)
	if len(l.Items) != 2 {
		t.Fatalf("got %d outer items, want 2", len(l.Items))
	}
	nested := l.Items[0].NestedList()
	if nested == nil {
		t.Fatal("first item has no nested list")
	}
	if nested.Kind != document.Bullet {
		t.Errorf("nested kind = %v, want bullet (circle is its level-2 style)", nested.Kind)
	}
	if len(nested.Items) != 2 {
		t.Errorf("nested has %d items, want 2", len(nested.Items))
	}
}

func TestImportContinuationLine(t *testing.T) {
	doc := importText(t, "- first\n  wrapped tail\n- second\n")
	l := doc.Blocks[0].(*document.List)
	if got := document.InlineText(l.Items[0].FirstParagraph().Inlines); got != "first\nwrapped tail" {
		t.Errorf("item text = %q", got)
	}
	if len(l.Items) != 2 {
		t.Errorf("got %d items, want 2", len(l.Items))
	}
}

func TestImportFlushLeftLineEndsList(t *testing.T) {
	doc := importText(t, "- item\nplain paragraph\n")
	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Blocks))
	}
	if _, ok := doc.Blocks[0].(*document.List); !ok {
		t.Errorf("first block = %#v, want list", doc.Blocks[0])
	}
	if _, ok := doc.Blocks[1].(*document.Paragraph); !ok {
		t.Errorf("second block = %#v, want paragraph", doc.Blocks[1])
	}
}

func TestImportMetadataAppliesToNextBlock(t *testing.T) {
	doc := importText(t, "<!-- nm:space-before:20 -->\ntarget\n")
	p := doc.Blocks[0].(*document.Paragraph)
	if p.Spacing.Before != 20 {
		t.Errorf("space before = %v, want 20", p.Spacing.Before)
	}
}

func TestImportMetadataSkipsBlankGap(t *testing.T) {
	doc := importText(t, "<!-- nm:indent:12 -->\n\ntarget\n")
	var para *document.Paragraph
	for _, b := range doc.Blocks {
		if p, ok := b.(*document.Paragraph); ok && document.InlineText(p.Inlines) == "target" {
			para = p
		}
	}
	if para == nil {
		t.Fatal("target paragraph not found")
	}
	if para.Spacing.Indent != 12 {
		t.Errorf("indent = %v, want 12", para.Spacing.Indent)
	}
}

func TestImportMetadataOnList(t *testing.T) {
	doc := importText(t, "<!-- nm:list-spacing:4,6 hanging -->\n- a\n- b\n")
	l := doc.Blocks[0].(*document.List)
	if l.Spacing.Top != 4 || l.Spacing.Bottom != 6 || !l.Spacing.Hanging {
		t.Errorf("list spacing = %+v", l.Spacing)
	}
}

func TestImportPlainCommentIsText(t *testing.T) {
	doc := importText(t, "<!-- ordinary comment -->\n")
	p, ok := doc.Blocks[0].(*document.Paragraph)
	if !ok {
		t.Fatalf("block = %#v, want paragraph", doc.Blocks[0])
	}
	if got := document.InlineText(p.Inlines); got != "<!-- ordinary comment -->" {
		t.Errorf("text = %q", got)
	}
}

func TestImportNormalizesCRLF(t *testing.T) {
	doc := importText(t, "a\r\nb\r\n")
	p := doc.Blocks[0].(*document.Paragraph)
	if got := document.InlineText(p.Inlines); got != "a\nb" {
		t.Errorf("text = %q", got)
	}
}
