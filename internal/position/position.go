// Package position models cursor locations as (path, offset) pairs that are
// recomputed from the current tree state rather than aliased to nodes, so a
// position survives structural mutation.
package position

import (
	"github.com/gerunddev/notedown/internal/document"
)

// Path addresses a paragraph or heading from the document root. The first
// element indexes the top-level blocks; inside a list the path alternates
// item index and block-within-item index until it reaches a leaf block.
type Path []int

// Position is an abstract caret location: a path to a paragraph or heading
// plus a rune offset within its text.
type Position struct {
	Path   Path
	Offset int
}

// Range is a selection between two positions in document order. A caret is
// a range whose ends coincide.
type Range struct {
	Start Position
	End   Position
}

// Caret builds a collapsed range at p.
func Caret(p Position) Range {
	return Range{Start: p, End: p}
}

// IsCaret reports whether the range is collapsed.
func (r Range) IsCaret() bool {
	return pathEqual(r.Start.Path, r.End.Path) && r.Start.Offset == r.End.Offset
}

func pathEqual(a, b Path) bool {
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

// PathOf computes the path of a block from the root. The second return is
// false when the block is not reachable from the document.
func PathOf(d *document.Document, target document.Block) (Path, bool) {
	for i, b := range d.Blocks {
		if b == target {
			return Path{i}, true
		}
		if l, ok := b.(*document.List); ok {
			if sub, found := pathInList(l, target); found {
				return append(Path{i}, sub...), true
			}
		}
	}
	return nil, false
}

func pathInList(l *document.List, target document.Block) (Path, bool) {
	for i, item := range l.Items {
		for j, b := range item.Blocks {
			if b == target {
				return Path{i, j}, true
			}
			if nested, ok := b.(*document.List); ok {
				if sub, found := pathInList(nested, target); found {
					return append(Path{i, j}, sub...), true
				}
			}
		}
	}
	return nil, false
}

// Resolve walks a path back to its block. It returns false when the path no
// longer matches the tree shape.
func Resolve(d *document.Document, p Path) (document.Block, bool) {
	if len(p) == 0 || p[0] < 0 || p[0] >= len(d.Blocks) {
		return nil, false
	}
	cur := d.Blocks[p[0]]
	rest := p[1:]
	for len(rest) > 0 {
		l, ok := cur.(*document.List)
		if !ok || len(rest) < 2 {
			return nil, false
		}
		item := rest[0]
		if item < 0 || item >= len(l.Items) {
			return nil, false
		}
		bi := rest[1]
		if bi < 0 || bi >= len(l.Items[item].Blocks) {
			return nil, false
		}
		cur = l.Items[item].Blocks[bi]
		rest = rest[2:]
	}
	return cur, true
}

// At builds a position for a block already in the tree. Blocks outside the
// tree yield the document start.
func At(d *document.Document, b document.Block, offset int) Position {
	p, ok := PathOf(d, b)
	if !ok {
		return Position{Path: Path{0}, Offset: 0}
	}
	if offset < 0 {
		offset = 0
	}
	return Position{Path: p, Offset: offset}
}

// ParagraphAt resolves the paragraph a position points into.
func ParagraphAt(d *document.Document, pos Position) (*document.Paragraph, bool) {
	b, ok := Resolve(d, pos.Path)
	if !ok {
		return nil, false
	}
	p, ok := b.(*document.Paragraph)
	return p, ok
}

// Leaves returns every paragraph and heading in traversal order.
func Leaves(d *document.Document) []document.Block {
	var out []document.Block
	var walk func(b document.Block)
	walk = func(b document.Block) {
		switch v := b.(type) {
		case *document.Paragraph, *document.Heading:
			out = append(out, b)
		case *document.List:
			for _, item := range v.Items {
				for _, bb := range item.Blocks {
					walk(bb)
				}
			}
		}
	}
	for _, b := range d.Blocks {
		walk(b)
	}
	return out
}

func leafLen(b document.Block) int {
	switch v := b.(type) {
	case *document.Paragraph:
		return document.InlineLen(v.Inlines)
	case *document.Heading:
		return document.InlineLen(v.Inlines)
	}
	return 0
}

// CharacterIndex converts a position to an absolute rune offset from the
// document start. Each leaf block counts its text plus one separator. Used
// by save-time caching to carry the caret across a full reload.
func CharacterIndex(d *document.Document, pos Position) int {
	target, ok := Resolve(d, pos.Path)
	if !ok {
		return 0
	}
	index := 0
	for _, leaf := range Leaves(d) {
		if leaf == target {
			off := pos.Offset
			if n := leafLen(leaf); off > n {
				off = n
			}
			return index + off
		}
		index += leafLen(leaf) + 1
	}
	return index
}

// PositionAt is the inverse of CharacterIndex: it maps an absolute rune
// offset back to a position, clamping past-the-end indexes to the final
// leaf's end.
func PositionAt(d *document.Document, index int) Position {
	if index < 0 {
		index = 0
	}
	ls := Leaves(d)
	if len(ls) == 0 {
		return Position{Path: Path{0}, Offset: 0}
	}
	for _, leaf := range ls {
		n := leafLen(leaf)
		if index <= n {
			return At(d, leaf, index)
		}
		index -= n + 1
	}
	last := ls[len(ls)-1]
	return At(d, last, leafLen(last))
}
