package markdown

import (
	"fmt"
	"os"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/gerunddev/notedown/internal/document"
)

// TestRoundtripFixture checks that the canonical fixture survives
// import -> export byte for byte.
func TestRoundtripFixture(t *testing.T) {
	src, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	doc := NewImporter(nil).Import(string(src))
	out := NewExporter(nil).Export(doc)

	if out != string(src) {
		t.Error("fixture changed across import/export")
		showDiff(t, string(src), out)
	}
}

// TestRoundtripIdempotence checks that a second import/export pass is a
// fixed point even for non-canonical input.
func TestRoundtripIdempotence(t *testing.T) {
	inputs := []string{
		"messy\n\n\n\ntext\n\n- a\n-  b\n",
		"# H\nno gap paragraph\n",
		"1. one\n  a. two\n1. renumbered\n",
	}
	imp := NewImporter(nil)
	exp := NewExporter(nil)
	for i, src := range inputs {
		first := exp.Export(imp.Import(src))
		second := exp.Export(imp.Import(first))
		if first != second {
			t.Errorf("input %d not idempotent", i)
			showDiff(t, first, second)
		}
	}
}

// TestRoundtripTreeEquality checks import(export(T)) == T for constructed
// trees, including shapes the editing engine produces.
func TestRoundtripTreeEquality(t *testing.T) {
	spacedPara := document.NewTextParagraph("spaced")
	spacedPara.Spacing = document.Spacing{Before: 20, After: 8}

	metaList := document.NewList(document.Decimal,
		document.NewListItem(document.NewTextParagraph("one")),
		document.NewListItem(document.NewTextParagraph("two")))
	metaList.Spacing = document.ListSpacing{Top: 4, Bottom: 6, Hanging: true}

	nested := document.NewList(document.Bullet,
		document.NewListItem(document.NewTextParagraph("top"),
			document.NewList(document.Bullet,
				document.NewListItem(document.NewTextParagraph("sub")))),
		document.NewListItem(document.NewTextParagraph("tail")))

	styled := document.NewParagraph(
		&document.Text{Content: "mix "},
		&document.Bold{Children: []document.Inline{&document.Text{Content: "b"}}},
		&document.Text{Content: " "},
		&document.Italic{Children: []document.Inline{&document.Text{Content: "i"}}},
		&document.Text{Content: " "},
		&document.Link{URL: "https://x.test", Children: []document.Inline{&document.Text{Content: "https://x.test"}}},
	)

	tests := []struct {
		name string
		doc  *document.Document
	}{
		{"adjacent paragraphs with explicit blank", &document.Document{Blocks: []document.Block{
			document.NewTextParagraph("a"),
			document.NewParagraph(),
			document.NewTextParagraph("b"),
		}}},
		{"only empty paragraphs", &document.Document{Blocks: []document.Block{
			document.NewParagraph(),
			document.NewParagraph(),
		}}},
		{"spacing metadata", &document.Document{Blocks: []document.Block{
			document.NewTextParagraph("a"),
			spacedPara,
		}}},
		{"list metadata", &document.Document{Blocks: []document.Block{metaList}}},
		{"nested bullets", &document.Document{Blocks: []document.Block{nested}}},
		{"inline formatting", &document.Document{Blocks: []document.Block{styled}}},
		{"heading levels", &document.Document{Blocks: []document.Block{
			document.NewHeading(1, &document.Text{Content: "One"}),
			document.NewHeading(4, &document.Text{Content: "Four"}),
		}}},
		{"multi-line item", &document.Document{Blocks: []document.Block{
			document.NewList(document.Bullet,
				document.NewListItem(document.NewTextParagraph("first\nwrapped")),
				document.NewListItem(document.NewTextParagraph("second"))),
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewExporter(nil).Export(tt.doc)
			back := NewImporter(nil).Import(out)
			if !document.Equal(tt.doc, back) {
				t.Errorf("tree changed across export/import.\nSerialized form:\n%s", out)
			}
		})
	}
}

// TestRoundtripBlankDocument checks that files holding nothing but blank
// lines keep their exact length: every blank line is an empty paragraph.
func TestRoundtripBlankDocument(t *testing.T) {
	imp := NewImporter(nil)
	exp := NewExporter(nil)
	for _, src := range []string{"\n", "\n\n", "\n\n\n"} {
		if out := exp.Export(imp.Import(src)); out != src {
			t.Errorf("blank file %q reserialized as %q", src, out)
		}
	}
}

// TestRoundtripMarkerRestyling records the known restyling at reimport: a
// lowerLatin list stored at level 1 keeps its kind, but markers that land
// on a decimal or bullet nesting row reimport as that row's stored kind.
func TestRoundtripMarkerRestyling(t *testing.T) {
	l := document.NewList(document.LowerLatin,
		document.NewListItem(document.NewTextParagraph("a")))
	d := &document.Document{Blocks: []document.Block{l}}
	out := NewExporter(nil).Export(d)
	back := NewImporter(nil).Import(out)
	if back.Blocks[0].(*document.List).Kind != document.LowerLatin {
		t.Errorf("level-1 lowerLatin reimported as %v", back.Blocks[0].(*document.List).Kind)
	}
}

func showDiff(t *testing.T, expected, actual string) {
	t.Helper()
	edits := myers.ComputeEdits(span.URIFromPath("expected"), expected, actual)
	t.Log("\n" + fmt.Sprint(gotextdiff.ToUnified("expected", "actual", expected, edits)))
}
