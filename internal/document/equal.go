package document

// Equal reports structural equality: block kinds, heading levels, list
// marker kinds, nesting, spacing hints, and inline text with formatting.
// Node identifiers are ignored.
func Equal(a, b *Document) bool {
	if len(a.Blocks) != len(b.Blocks) {
		return false
	}
	for i := range a.Blocks {
		if !blockEqual(a.Blocks[i], b.Blocks[i]) {
			return false
		}
	}
	return true
}

func blockEqual(a, b Block) bool {
	switch av := a.(type) {
	case *Paragraph:
		bv, ok := b.(*Paragraph)
		return ok && spacingEqual(av.Spacing, bv.Spacing) && inlinesEqual(av.Inlines, bv.Inlines)
	case *Heading:
		bv, ok := b.(*Heading)
		return ok && av.Level == bv.Level && spacingEqual(av.Spacing, bv.Spacing) && inlinesEqual(av.Inlines, bv.Inlines)
	case *List:
		bv, ok := b.(*List)
		if !ok || av.Kind != bv.Kind || len(av.Items) != len(bv.Items) {
			return false
		}
		if !listSpacingEqual(av.Spacing, bv.Spacing) {
			return false
		}
		for i := range av.Items {
			if !itemEqual(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func spacingEqual(a, b Spacing) bool {
	return a.Before == b.Before && a.After == b.After && a.Indent == b.Indent && metaEqual(a.Extra, b.Extra)
}

func listSpacingEqual(a, b ListSpacing) bool {
	return a.Top == b.Top && a.Bottom == b.Bottom && a.Indent == b.Indent &&
		a.Hanging == b.Hanging && metaEqual(a.Extra, b.Extra)
}

func metaEqual(a, b []MetaField) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func itemEqual(a, b *ListItem) bool {
	if len(a.Blocks) != len(b.Blocks) {
		return false
	}
	for i := range a.Blocks {
		if !blockEqual(a.Blocks[i], b.Blocks[i]) {
			return false
		}
	}
	return true
}

func inlinesEqual(a, b []Inline) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !inlineEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func inlineEqual(a, b Inline) bool {
	switch av := a.(type) {
	case *Text:
		bv, ok := b.(*Text)
		return ok && av.Content == bv.Content
	case *Bold:
		bv, ok := b.(*Bold)
		return ok && inlinesEqual(av.Children, bv.Children)
	case *Italic:
		bv, ok := b.(*Italic)
		return ok && inlinesEqual(av.Children, bv.Children)
	case *Link:
		bv, ok := b.(*Link)
		return ok && av.URL == bv.URL && inlinesEqual(av.Children, bv.Children)
	}
	return false
}
