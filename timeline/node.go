// Package timeline records board snapshots as a tree of branching histories.
//
// A Node holds a run of consecutive snapshots. Making a move after rewinding
// splits the current node: the abandoned continuation and the new move become
// two children of the truncated node. The Tree owns every node and tracks the
// Cursor, the snapshot currently on display.
package timeline

import "github.com/plus3/chronochess/board"

// Node is one branch segment of the timeline.
type Node struct {
	id        int
	snapshots []board.Board
	children  []*Node
	parent    *Node
}

// ID returns the node's creation-order identifier. The root is 0.
func (n *Node) ID() int {
	return n.id
}

// Len returns the number of snapshots in the node.
func (n *Node) Len() int {
	return len(n.snapshots)
}

// Snapshot returns the snapshot at index i.
func (n *Node) Snapshot(i int) (board.Board, bool) {
	if i < 0 || i >= len(n.snapshots) {
		return board.Board{}, false
	}
	return n.snapshots[i], true
}

// Children returns the node's branches in fork order. The returned slice
// must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node this one was forked from, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Offset returns the timestamp of the node's first snapshot: the number of
// snapshots on the path from the root up to, but excluding, n.
func (n *Node) Offset() int {
	offset := 0
	for p := n.parent; p != nil; p = p.parent {
		offset += p.Len()
	}
	return offset
}

// maxDepth is the snapshot count of the longest path from n to a leaf.
func (n *Node) maxDepth() int {
	deepest := 0
	for _, child := range n.children {
		deepest = max(deepest, child.maxDepth())
	}
	return n.Len() + deepest
}

// leaves counts the leaf nodes reachable from n, n included.
func (n *Node) leaves() int {
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, child := range n.children {
		total += child.leaves()
	}
	return total
}

func (n *Node) childIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}
