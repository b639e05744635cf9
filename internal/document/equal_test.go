package document

import "testing"

func sampleDoc() *Document {
	p := NewTextParagraph("intro")
	p.Spacing.Before = 12
	return &Document{Blocks: []Block{
		NewHeading(2, &Text{Content: "Title"}),
		p,
		NewList(Decimal,
			NewListItem(NewTextParagraph("first")),
			NewListItem(NewTextParagraph("second"),
				NewList(Bullet, NewListItem(NewTextParagraph("nested")))),
		),
	}}
}

func TestEqualIgnoresIDs(t *testing.T) {
	if !Equal(sampleDoc(), sampleDoc()) {
		t.Error("structurally identical documents compare unequal")
	}
}

func TestEqualDetectsDifferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Document)
	}{
		{"text change", func(d *Document) {
			d.Blocks[1].(*Paragraph).Inlines = []Inline{&Text{Content: "other"}}
		}},
		{"heading level", func(d *Document) {
			d.Blocks[0].(*Heading).Level = 3
		}},
		{"spacing hint", func(d *Document) {
			d.Blocks[1].(*Paragraph).Spacing.Before = 0
		}},
		{"marker kind", func(d *Document) {
			d.Blocks[2].(*List).Kind = Bullet
		}},
		{"nested item text", func(d *Document) {
			nested := d.Blocks[2].(*List).Items[1].NestedList()
			nested.Items[0].FirstParagraph().Inlines = []Inline{&Text{Content: "changed"}}
		}},
		{"extra block", func(d *Document) {
			d.Blocks = append(d.Blocks, NewParagraph())
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutated := sampleDoc()
			tt.mutate(mutated)
			if Equal(sampleDoc(), mutated) {
				t.Error("mutated document compares equal to the original")
			}
		})
	}
}

func TestEqualComparesUnknownMetaFields(t *testing.T) {
	a, b := sampleDoc(), sampleDoc()
	b.Blocks[1].(*Paragraph).Spacing.Extra = []MetaField{{Key: "custom", Value: "1"}}
	if Equal(a, b) {
		t.Error("documents with differing extra fields compare equal")
	}
}
