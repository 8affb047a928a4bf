package timeline

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/plus3/chronochess/board"
)

// Outcome tells how recording a snapshot changed the tree: extending the
// current branch, splitting it, or opening another branch beside existing ones.
type Outcome int

const (
	Appended Outcome = iota
	Forked
	Branched
)

func (o Outcome) String() string {
	switch o {
	case Forked:
		return "forked"
	case Branched:
		return "branched"
	}
	return "appended"
}

// Cursor identifies a snapshot: a node and an index into its sequence.
type Cursor struct {
	Node  *Node
	Index int
}

// Valid reports whether the cursor addresses an existing snapshot.
func (c Cursor) Valid() bool {
	return c.Node != nil && c.Index >= 0 && c.Index < c.Node.Len()
}

// Snapshot returns the board the cursor points at.
func (c Cursor) Snapshot() (board.Board, bool) {
	if c.Node == nil {
		return board.Board{}, false
	}
	return c.Node.Snapshot(c.Index)
}

// Tree owns the timeline nodes and the cursor.
type Tree struct {
	root   *Node
	cursor Cursor
	nodes  *intmap.Map[int, *Node]
	nextID int
}

// New creates a tree whose root has no snapshots yet. The first Record
// appends to the root.
func New() *Tree {
	t := &Tree{
		nodes: intmap.New[int, *Node](64),
	}
	t.root = t.newNode(nil, nil)
	t.cursor = Cursor{Node: t.root}
	return t
}

// NewFrom creates a tree whose root holds initial as its first snapshot.
func NewFrom(initial board.Board) *Tree {
	t := New()
	t.root.snapshots = append(t.root.snapshots, initial)
	return t
}

func (t *Tree) newNode(parent *Node, snapshots []board.Board) *Node {
	n := &Node{
		id:        t.nextID,
		snapshots: snapshots,
		parent:    parent,
	}
	t.nextID++
	t.nodes.Put(n.id, n)
	return n
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Cursor returns the current cursor.
func (t *Tree) Cursor() Cursor {
	return t.cursor
}

// Current returns the snapshot under the cursor.
func (t *Tree) Current() (board.Board, bool) {
	return t.cursor.Snapshot()
}

// Node looks up a node by ID.
func (t *Tree) Node(id int) (*Node, bool) {
	return t.nodes.Get(id)
}

// NodeCount returns the number of nodes ever created.
func (t *Tree) NodeCount() int {
	return t.nodes.Len()
}

// AtTip reports whether the cursor is on the last snapshot of its node. A
// node without snapshots counts as being at its tip.
func (t *Tree) AtTip() bool {
	n := t.cursor.Node
	return n.Len() == 0 || t.cursor.Index == n.Len()-1
}

// Record stores b after the cursor, appending when the cursor is at the tip
// of its branch and forking otherwise.
func (t *Tree) Record(b board.Board) Outcome {
	if t.AtTip() {
		return t.Append(b)
	}
	return t.Fork(b)
}

// Append pushes b onto the cursor's node and moves the cursor onto it. Off
// the tip there is history after the cursor to preserve, so Append forks
// instead. A node that already has branches only grows sideways: b becomes
// the first snapshot of a new last child.
func (t *Tree) Append(b board.Board) Outcome {
	if !t.AtTip() {
		return t.Fork(b)
	}
	n := t.cursor.Node
	if len(n.children) > 0 {
		return t.branch(n, b)
	}
	n.snapshots = append(n.snapshots, b)
	t.cursor.Index = n.Len() - 1
	return Appended
}

func (t *Tree) branch(n *Node, b board.Board) Outcome {
	child := t.newNode(n, []board.Board{b})
	n.children = append(n.children, child)
	t.cursor = Cursor{Node: child}
	return Branched
}

// Fork splits the cursor's node after the cursor. The snapshots that followed
// the cursor move into a first child, which also inherits the node's previous
// branches, and b becomes the only snapshot of a second child. The node is
// truncated to end at the cursor, and the cursor moves to the new branch.
// At the tip there is nothing to split, so Fork appends instead.
func (t *Tree) Fork(b board.Board) Outcome {
	if t.AtTip() {
		return t.Append(b)
	}

	n := t.cursor.Node
	cut := t.cursor.Index + 1

	continuation := t.newNode(n, slices.Clone(n.snapshots[cut:]))
	continuation.children = n.children
	for _, child := range continuation.children {
		child.parent = continuation
	}

	branch := t.newNode(n, []board.Board{b})

	n.snapshots = slices.Clip(n.snapshots[:cut])
	n.children = []*Node{continuation, branch}

	t.cursor = Cursor{Node: branch}
	return Forked
}

// MaxDepth returns the snapshot count of the longest root-to-leaf path.
func (t *Tree) MaxDepth() int {
	return t.root.maxDepth()
}

// TotalBranches returns the number of leaf nodes, i.e. the number of rows
// the tree needs when every branch is drawn on its own line.
func (t *Tree) TotalBranches() int {
	return t.root.leaves()
}

// Prev moves the cursor one snapshot back, crossing into the parent's last
// snapshot at the start of a branch. It reports false at the very start.
func (t *Tree) Prev() bool {
	c := t.cursor
	switch {
	case c.Index > 0:
		t.cursor.Index--
	case c.Node.parent != nil:
		t.cursor = Cursor{Node: c.Node.parent, Index: c.Node.parent.Len() - 1}
	default:
		return false
	}
	return true
}

// Next moves the cursor one snapshot forward, entering the first branch at
// the end of a node. It reports false when there is nothing after the cursor.
func (t *Tree) Next() bool {
	c := t.cursor
	switch {
	case c.Index < c.Node.Len()-1:
		t.cursor.Index++
	case c.Index == c.Node.Len()-1 && len(c.Node.children) > 0:
		t.cursor = Cursor{Node: c.Node.children[0]}
	default:
		return false
	}
	return true
}

// SiblingCycle moves the cursor to the start of the next sibling branch,
// wrapping around. The root has no siblings.
func (t *Tree) SiblingCycle() bool {
	n := t.cursor.Node
	if n.parent == nil {
		return false
	}
	siblings := n.parent.children
	next := siblings[(n.parent.childIndex(n)+1)%len(siblings)]
	moved := next != n || t.cursor.Index != 0
	t.cursor = Cursor{Node: next}
	return moved
}

// SetCursor moves the cursor to c. Cursors that are out of range or point
// into another tree are rejected.
func (t *Tree) SetCursor(c Cursor) bool {
	if !c.Valid() {
		return false
	}
	if n, ok := t.Node(c.Node.id); !ok || n != c.Node {
		return false
	}
	t.cursor = c
	return true
}

// Timestamp returns the absolute position of c: the snapshot count of the
// nodes before c's node on the path from the root, plus c's index.
func (t *Tree) Timestamp(c Cursor) int {
	if c.Node == nil {
		return 0
	}
	return c.Node.Offset() + c.Index
}

// ActivePath returns the nodes from the root to the cursor's node, followed
// by the first-branch descendants of the cursor's node.
func (t *Tree) ActivePath() []*Node {
	var path []*Node
	for n := t.cursor.Node; n != nil; n = n.parent {
		path = append(path, n)
	}
	slices.Reverse(path)
	for n := t.cursor.Node; len(n.children) > 0; {
		n = n.children[0]
		path = append(path, n)
	}
	return path
}

// ActiveLength returns the snapshot count along ActivePath.
func (t *Tree) ActiveLength() int {
	total := 0
	for _, n := range t.ActivePath() {
		total += n.Len()
	}
	return total
}

// CursorAt maps a timestamp onto the active path. Timestamps before the start
// clamp to the first snapshot, timestamps past the end to the last one.
func (t *Tree) CursorAt(timestamp int) Cursor {
	path := t.ActivePath()
	if timestamp < 0 {
		timestamp = 0
	}
	for _, n := range path {
		if timestamp < n.Len() {
			return Cursor{Node: n, Index: timestamp}
		}
		timestamp -= n.Len()
	}

	last := path[len(path)-1]
	return Cursor{Node: last, Index: max(last.Len()-1, 0)}
}

// Walk visits every node in preorder with its depth in the tree. Returning
// false from fn skips the node's subtree.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if !fn(n, depth) {
			return
		}
		for _, child := range n.children {
			walk(child, depth+1)
		}
	}
	walk(t.root, 0)
}
