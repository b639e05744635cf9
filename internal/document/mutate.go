package document

// Parent identifies the owner of a block's sibling collection: either the
// document root or a list item. Exactly one of Doc/Item is set.
type Parent struct {
	Doc  *Document
	Item *ListItem
}

// Blocks returns the owner's ordered block sequence.
func (p Parent) Blocks() []Block {
	if p.Item != nil {
		return p.Item.Blocks
	}
	if p.Doc != nil {
		return p.Doc.Blocks
	}
	return nil
}

func (p Parent) setBlocks(blocks []Block) {
	if p.Item != nil {
		p.Item.Blocks = blocks
		return
	}
	if p.Doc != nil {
		p.Doc.Blocks = blocks
	}
}

// ParentOf resolves the owner of b by walking from the root. Positions are
// always recomputed from current tree state, never aliased.
func (d *Document) ParentOf(b Block) (Parent, bool) {
	for _, top := range d.Blocks {
		if top == b {
			return Parent{Doc: d}, true
		}
		if l, ok := top.(*List); ok {
			if p, found := parentInList(l, b); found {
				return p, true
			}
		}
	}
	return Parent{}, false
}

func parentInList(l *List, b Block) (Parent, bool) {
	for _, item := range l.Items {
		for _, bb := range item.Blocks {
			if bb == b {
				return Parent{Item: item}, true
			}
			if nested, ok := bb.(*List); ok {
				if p, found := parentInList(nested, b); found {
					return p, true
				}
			}
		}
	}
	return Parent{}, false
}

// ListOf resolves the list owning the given item.
func (d *Document) ListOf(item *ListItem) (*List, bool) {
	var found *List
	d.walkLists(func(l *List) {
		if found != nil {
			return
		}
		if l.Index(item) >= 0 {
			found = l
		}
	})
	return found, found != nil
}

// ContainerItemOf resolves the list item holding the given nested list, or
// nil if the list sits at the top level.
func (d *Document) ContainerItemOf(l *List) (*ListItem, bool) {
	p, ok := d.ParentOf(l)
	if !ok {
		return nil, false
	}
	return p.Item, p.Item != nil
}

// NestingLevel computes the depth of a list by walking ancestor
// List -> ListItem chains. The outermost level is 1; an unresolvable list
// also reports 1.
func (d *Document) NestingLevel(l *List) int {
	level := 1
	cur := l
	for {
		item, ok := d.ContainerItemOf(cur)
		if !ok || item == nil {
			return level
		}
		owner, ok := d.ListOf(item)
		if !ok {
			return level
		}
		level++
		cur = owner
	}
}

// InsertBefore inserts b immediately before anchor. When the anchor has no
// resolvable parent the block is appended at the document end instead; the
// return value reports whether the anchor resolved.
func (d *Document) InsertBefore(anchor, b Block) bool {
	return d.insertAt(anchor, b, 0)
}

// InsertAfter inserts b immediately after anchor, with the same fallback as
// InsertBefore.
func (d *Document) InsertAfter(anchor, b Block) bool {
	return d.insertAt(anchor, b, 1)
}

func (d *Document) insertAt(anchor, b Block, delta int) bool {
	p, ok := d.ParentOf(anchor)
	if !ok {
		d.Blocks = append(d.Blocks, b)
		return false
	}
	blocks := p.Blocks()
	for i, bb := range blocks {
		if bb == anchor {
			at := i + delta
			blocks = append(blocks, nil)
			copy(blocks[at+1:], blocks[at:])
			blocks[at] = b
			p.setBlocks(blocks)
			return true
		}
	}
	d.Blocks = append(d.Blocks, b)
	return false
}

// Remove detaches b from its parent. Unresolvable blocks are ignored.
func (d *Document) Remove(b Block) bool {
	p, ok := d.ParentOf(b)
	if !ok {
		return false
	}
	blocks := p.Blocks()
	for i, bb := range blocks {
		if bb == b {
			p.setBlocks(append(blocks[:i], blocks[i+1:]...))
			return true
		}
	}
	return false
}

// Replace swaps old for new in place. When old has no resolvable parent,
// new is appended at the document end.
func (d *Document) Replace(old, new Block) bool {
	p, ok := d.ParentOf(old)
	if !ok {
		d.Blocks = append(d.Blocks, new)
		return false
	}
	blocks := p.Blocks()
	for i, bb := range blocks {
		if bb == old {
			blocks[i] = new
			return true
		}
	}
	d.Blocks = append(d.Blocks, new)
	return false
}

func (d *Document) walkLists(fn func(*List)) {
	var walk func(l *List)
	walk = func(l *List) {
		fn(l)
		for _, item := range l.Items {
			for _, b := range item.Blocks {
				if nested, ok := b.(*List); ok {
					walk(nested)
				}
			}
		}
	}
	for _, b := range d.Blocks {
		if l, ok := b.(*List); ok {
			walk(l)
		}
	}
}

// Normalize restores the structural invariants: every list has at least one
// item, every item has at least one block, empty lists collapse to an empty
// paragraph, and an empty document gains one empty paragraph.
func (d *Document) Normalize() {
	out := d.Blocks[:0]
	for _, b := range d.Blocks {
		if l, ok := b.(*List); ok {
			normalizeList(l)
			if len(l.Items) == 0 {
				out = append(out, NewParagraph())
				continue
			}
		}
		out = append(out, b)
	}
	d.Blocks = out
	if len(d.Blocks) == 0 {
		d.Blocks = []Block{NewParagraph()}
	}
}

func normalizeList(l *List) {
	items := l.Items[:0]
	for _, item := range l.Items {
		blocks := item.Blocks[:0]
		for _, b := range item.Blocks {
			if nested, ok := b.(*List); ok {
				normalizeList(nested)
				if len(nested.Items) == 0 {
					// Empty nested lists are dropped, not backfilled.
					continue
				}
			}
			blocks = append(blocks, b)
		}
		item.Blocks = blocks
		if len(item.Blocks) == 0 {
			continue
		}
		items = append(items, item)
	}
	l.Items = items
}
