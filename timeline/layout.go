package timeline

import "math"

// DefaultMinThumbnailSize is the smallest thumbnail edge, in pixels, that the
// layout produces while the height budget allows it.
const DefaultMinThumbnailSize = 8

// A thumbnail cell is split between the board image and the gap after it.
const (
	thumbnailFill = 0.96
	thumbnailGap  = 0.04
)

// Area is the drawing region the layout fills.
type Area struct {
	X, Y          float64
	Width, Height float64
}

// Stacking selects how branches forked from the same node are placed
// vertically.
type Stacking int

const (
	// StackSiblings puts child i one thumbnail row below child i-1.
	StackSiblings Stacking = iota
	// StackBranches puts child i below every leaf row used by the earlier
	// children, so deeper forks never overlap a later sibling's subtree.
	StackBranches
)

func (s Stacking) String() string {
	if s == StackBranches {
		return "branches"
	}
	return "siblings"
}

// ParseStacking converts a configuration value to a Stacking mode. Unknown
// values select StackSiblings.
func ParseStacking(s string) Stacking {
	if s == "branches" {
		return StackBranches
	}
	return StackSiblings
}

// LayoutOptions tunes Layout.
type LayoutOptions struct {
	MinThumbnailSize float64
	Stacking         Stacking
}

// Thumbnail is one sampled snapshot drawn inside a view node.
type Thumbnail struct {
	Index int
	X, Y  float64
	Size  float64
}

// ViewNode is the screen rectangle of one timeline node.
type ViewNode struct {
	X, Y          float64
	Width, Height float64
	Node          *Node
	Children      []*ViewNode
	Thumbnails    []Thumbnail
}

type layouter struct {
	area          Area
	opts          LayoutOptions
	totalLength   float64
	heightPerLine float64
}

// Layout maps the tree onto area like a horizontal flame graph: a node's
// width is proportional to its snapshot count relative to the longest path,
// branches continue to the right of the node they forked from and stack
// downwards. It returns nil when the tree has no snapshots or the area is
// empty. Layout does not modify the tree, so calling it repeatedly without
// mutations yields equal results.
func Layout(t *Tree, area Area, opts LayoutOptions) *ViewNode {
	totalLength := t.MaxDepth()
	if totalLength == 0 || area.Width <= 0 || area.Height <= 0 {
		return nil
	}

	l := &layouter{
		area:          area,
		opts:          opts,
		totalLength:   float64(totalLength),
		heightPerLine: (area.Height / 2) / float64(t.TotalBranches()),
	}
	return l.layout(t.root, area.X, area.Y)
}

func (l *layouter) layout(n *Node, offsetX, offsetY float64) *ViewNode {
	count := float64(n.Len())
	viewWidth := count / l.totalLength * l.area.Width
	thumbSize := math.Min(l.heightPerLine, math.Max(l.opts.MinThumbnailSize, viewWidth/count))

	vn := &ViewNode{
		X:      offsetX,
		Y:      offsetY,
		Width:  viewWidth,
		Height: thumbSize,
		Node:   n,
	}
	vn.Thumbnails = sampleThumbnails(n, offsetX, offsetY, viewWidth, thumbSize)

	rows := 0
	for i, child := range n.children {
		slot := i
		if l.opts.Stacking == StackBranches {
			slot = rows
		}
		vn.Children = append(vn.Children, l.layout(child, offsetX+viewWidth, offsetY+float64(slot)*thumbSize))
		rows += child.leaves()
	}
	return vn
}

// sampleThumbnails picks evenly strided snapshots so long branches do not
// draw every board.
func sampleThumbnails(n *Node, x, y, viewWidth, thumbSize float64) []Thumbnail {
	count := n.Len()
	if count == 0 || thumbSize <= 0 {
		return nil
	}

	step := thumbSize*thumbnailFill + thumbSize*thumbnailGap
	num := int(math.Ceil(viewWidth / step))
	num = min(max(num, 1), count)

	thumbs := make([]Thumbnail, num)
	for i := range thumbs {
		thumbs[i] = Thumbnail{
			Index: i * count / num,
			X:     x + float64(i)*step,
			Y:     y,
			Size:  thumbSize * thumbnailFill,
		}
	}
	return thumbs
}

// Walk visits vn and its descendants in preorder. Returning false from fn
// skips the subtree.
func (vn *ViewNode) Walk(fn func(*ViewNode) bool) {
	if vn == nil || !fn(vn) {
		return
	}
	for _, child := range vn.Children {
		child.Walk(fn)
	}
}

// HitTest maps a point to the snapshot drawn under it. Branches are checked
// before the node they fork from, latest first, matching draw order. Inside a
// node, a point on a thumbnail selects that thumbnail's snapshot; elsewhere
// the snapshot is picked proportionally to the position along the node.
func (vn *ViewNode) HitTest(x, y float64) (Cursor, bool) {
	if vn == nil {
		return Cursor{}, false
	}
	for i := len(vn.Children) - 1; i >= 0; i-- {
		if c, ok := vn.Children[i].HitTest(x, y); ok {
			return c, true
		}
	}

	if x < vn.X || x >= vn.X+vn.Width || y < vn.Y || y >= vn.Y+vn.Height {
		return Cursor{}, false
	}
	for _, th := range vn.Thumbnails {
		if x >= th.X && x < th.X+th.Size && y >= th.Y && y < th.Y+th.Size {
			return Cursor{Node: vn.Node, Index: th.Index}, true
		}
	}
	count := vn.Node.Len()
	if count == 0 {
		return Cursor{}, false
	}
	idx := int((x - vn.X) / vn.Width * float64(count))
	return Cursor{Node: vn.Node, Index: min(idx, count-1)}, true
}
