package document

// BlockText returns the literal text of a block. Lists flatten their items
// in order, joined by newlines.
func BlockText(b Block) string {
	switch v := b.(type) {
	case *Paragraph:
		return InlineText(v.Inlines)
	case *Heading:
		return InlineText(v.Inlines)
	case *List:
		out := ""
		for i, item := range v.Items {
			if i > 0 {
				out += "\n"
			}
			for j, bb := range item.Blocks {
				if j > 0 {
					out += "\n"
				}
				out += BlockText(bb)
			}
		}
		return out
	}
	return ""
}

// FlattenText returns the text of every paragraph and heading in document
// order, descending into lists. Used by tests to check that structural
// commands never lose content.
func FlattenText(d *Document) []string {
	var out []string
	var walkBlock func(b Block)
	walkBlock = func(b Block) {
		switch v := b.(type) {
		case *Paragraph:
			out = append(out, InlineText(v.Inlines))
		case *Heading:
			out = append(out, InlineText(v.Inlines))
		case *List:
			for _, item := range v.Items {
				for _, bb := range item.Blocks {
					walkBlock(bb)
				}
			}
		}
	}
	for _, b := range d.Blocks {
		walkBlock(b)
	}
	return out
}

// Paragraphs returns every paragraph in document order, descending into
// lists.
func Paragraphs(d *Document) []*Paragraph {
	var out []*Paragraph
	var walkBlock func(b Block)
	walkBlock = func(b Block) {
		switch v := b.(type) {
		case *Paragraph:
			out = append(out, v)
		case *List:
			for _, item := range v.Items {
				for _, bb := range item.Blocks {
					walkBlock(bb)
				}
			}
		}
	}
	for _, b := range d.Blocks {
		walkBlock(b)
	}
	return out
}
