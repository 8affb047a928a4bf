package timeline_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/chronochess/board"
	"github.com/plus3/chronochess/timeline"
)

// snapshot returns a board identified by a single white pawn on cell n.
func snapshot(n int) board.Board {
	var b board.Board
	b.Set(n%board.Size, board.NewPiece(board.Pawn, board.White))
	return b
}

// linearTree builds a single-node tree holding snapshots 0..length-1.
func linearTree(length int) *timeline.Tree {
	tree := timeline.NewFrom(snapshot(0))
	for i := 1; i < length; i++ {
		tree.Record(snapshot(i))
	}
	return tree
}

func rewind(t *testing.T, tree *timeline.Tree, steps int) {
	t.Helper()
	for range steps {
		require.True(t, tree.Prev())
	}
}

func TestAppendAtTip(t *testing.T) {
	for _, appends := range []int{0, 1, 5, 40} {
		t.Run(fmt.Sprintf("appends=%d", appends), func(t *testing.T) {
			tree := timeline.NewFrom(board.Standard())
			for i := range appends {
				assert.Equal(t, timeline.Appended, tree.Record(snapshot(i)))
			}

			assert.Equal(t, 1, tree.NodeCount())
			assert.True(t, tree.Root().IsLeaf())
			assert.Equal(t, appends+1, tree.MaxDepth())
			assert.Equal(t, 1, tree.TotalBranches())
			assert.Equal(t, timeline.Cursor{Node: tree.Root(), Index: appends}, tree.Cursor())
			assert.True(t, tree.AtTip())
		})
	}
}

func TestEmptyRoot(t *testing.T) {
	tree := timeline.New()

	assert.True(t, tree.AtTip())
	assert.Equal(t, 0, tree.MaxDepth())
	_, ok := tree.Current()
	assert.False(t, ok)
	assert.False(t, tree.Prev())
	assert.False(t, tree.Next())

	assert.Equal(t, timeline.Appended, tree.Record(board.Standard()))
	current, ok := tree.Current()
	require.True(t, ok)
	assert.Equal(t, board.Standard(), current)
	assert.Equal(t, 0, tree.Cursor().Index)
}

func TestForkSizes(t *testing.T) {
	for length := 2; length <= 6; length++ {
		for idx := 0; idx < length-1; idx++ {
			t.Run(fmt.Sprintf("len=%d,cursor=%d", length, idx), func(t *testing.T) {
				tree := linearTree(length)
				rewind(t, tree, length-1-idx)
				require.Equal(t, idx, tree.Cursor().Index)

				assert.Equal(t, timeline.Forked, tree.Record(snapshot(50)))

				root := tree.Root()
				children := root.Children()
				require.Len(t, children, 2)
				assert.Equal(t, idx+1, root.Len())
				assert.Equal(t, (length-1-idx)+1, children[0].Len()+children[1].Len())
				assert.Equal(t, length-1-idx, children[0].Len())
				assert.Equal(t, 1, children[1].Len())

				for _, child := range children {
					assert.Same(t, root, child.Parent())
				}
				assert.Equal(t, timeline.Cursor{Node: children[1]}, tree.Cursor())
				current, _ := tree.Current()
				assert.Equal(t, snapshot(50), current)
			})
		}
	}
}

func TestForkKeepsContinuationFirst(t *testing.T) {
	tree := linearTree(4)
	rewind(t, tree, 2)
	tree.Record(snapshot(60))

	continuation := tree.Root().Children()[0]
	for i := range continuation.Len() {
		b, ok := continuation.Snapshot(i)
		require.True(t, ok)
		assert.Equal(t, snapshot(i+2), b)
	}
}

func TestForkMovesExistingBranches(t *testing.T) {
	tree := linearTree(3)
	rewind(t, tree, 1)
	tree.Record(snapshot(30))

	root := tree.Root()
	oldBranches := root.Children()

	// Rewind to the first snapshot of the root and fork again.
	tree.SetCursor(timeline.Cursor{Node: root, Index: 0})
	assert.Equal(t, timeline.Forked, tree.Record(snapshot(31)))

	require.Len(t, root.Children(), 2)
	continuation := root.Children()[0]
	assert.Equal(t, 1, root.Len())
	assert.Equal(t, 1, continuation.Len())
	require.Len(t, continuation.Children(), 2)
	for i, child := range continuation.Children() {
		assert.Same(t, oldBranches[i], child)
		assert.Same(t, continuation, child.Parent())
	}
	assert.Equal(t, 3, tree.TotalBranches())
	assert.Equal(t, 3, tree.MaxDepth())
	assert.Equal(t, 5, tree.NodeCount())
}

func TestAppendAndForkAreTotal(t *testing.T) {
	t.Run("fork at tip appends", func(t *testing.T) {
		tree := linearTree(2)
		assert.Equal(t, timeline.Appended, tree.Fork(snapshot(9)))
		assert.Equal(t, 3, tree.Root().Len())
	})

	t.Run("append off tip forks", func(t *testing.T) {
		tree := linearTree(3)
		rewind(t, tree, 1)
		assert.Equal(t, timeline.Forked, tree.Append(snapshot(9)))
		assert.Len(t, tree.Root().Children(), 2)
	})
}

func TestScenarioRewindAndFork(t *testing.T) {
	s0 := board.Standard()
	s1 := s0
	require.True(t, s1.Move(52, 36))
	tree := timeline.NewFrom(s0)

	assert.Equal(t, timeline.Appended, tree.Record(s1))
	assert.Equal(t, 2, tree.Root().Len())
	assert.Equal(t, timeline.Cursor{Node: tree.Root(), Index: 1}, tree.Cursor())

	require.True(t, tree.Prev())
	assert.Equal(t, timeline.Cursor{Node: tree.Root(), Index: 0}, tree.Cursor())

	s2 := s0
	require.True(t, s2.Move(51, 35))
	assert.Equal(t, timeline.Forked, tree.Record(s2))

	root := tree.Root()
	assert.Equal(t, 1, root.Len())
	require.Len(t, root.Children(), 2)
	a, _ := root.Children()[0].Snapshot(0)
	b, _ := root.Children()[1].Snapshot(0)
	assert.Equal(t, s1, a)
	assert.Equal(t, s2, b)
	assert.Equal(t, timeline.Cursor{Node: root.Children()[1]}, tree.Cursor())
}

// forkedTree returns root(3) -> [A(1) -> [C(1), D(1)], B(2)] with the
// cursor on D.
func forkedTree(t *testing.T) *timeline.Tree {
	tree := linearTree(5)
	rewind(t, tree, 2)
	tree.Record(snapshot(20))
	tree.Record(snapshot(21))

	a := tree.Root().Children()[0]
	require.True(t, tree.SetCursor(timeline.Cursor{Node: a, Index: 0}))
	tree.Record(snapshot(22))
	return tree
}

func TestPrevNextRoundTrip(t *testing.T) {
	tree := forkedTree(t)

	var cursors []timeline.Cursor
	tree.Walk(func(n *timeline.Node, depth int) bool {
		for i := range n.Len() {
			cursors = append(cursors, timeline.Cursor{Node: n, Index: i})
		}
		return true
	})
	require.Len(t, cursors, 3+1+1+1+2)

	for _, c := range cursors {
		require.True(t, tree.SetCursor(c))
		if !tree.Prev() {
			continue
		}
		prev := tree.Cursor()
		// Stepping forward out of a node always enters its first branch.
		if prev.Node != c.Node && c.Node.Parent().Children()[0] != c.Node {
			continue
		}
		require.True(t, tree.Next())
		assert.Equal(t, c, tree.Cursor(), "cursor #%d:%d", c.Node.ID(), c.Index)
	}
}

func TestNavigationBoundaries(t *testing.T) {
	tree := forkedTree(t)
	root := tree.Root()

	require.True(t, tree.SetCursor(timeline.Cursor{Node: root, Index: 0}))
	assert.False(t, tree.Prev())
	assert.False(t, tree.SiblingCycle())
	assert.Equal(t, timeline.Cursor{Node: root, Index: 0}, tree.Cursor())

	b := root.Children()[1]
	require.True(t, tree.SetCursor(timeline.Cursor{Node: b, Index: 1}))
	assert.False(t, tree.Next())

	assert.True(t, tree.Prev())
	assert.True(t, tree.Prev())
	assert.Equal(t, timeline.Cursor{Node: root, Index: 2}, tree.Cursor())

	assert.True(t, tree.Next())
	assert.Equal(t, timeline.Cursor{Node: root.Children()[0]}, tree.Cursor())
}

func TestSiblingCycle(t *testing.T) {
	tree := forkedTree(t)
	root := tree.Root()
	a, b := root.Children()[0], root.Children()[1]

	require.True(t, tree.SetCursor(timeline.Cursor{Node: b, Index: 1}))
	assert.True(t, tree.SiblingCycle())
	assert.Equal(t, timeline.Cursor{Node: a}, tree.Cursor())

	assert.True(t, tree.SiblingCycle())
	assert.Equal(t, timeline.Cursor{Node: b}, tree.Cursor())
}

func TestSetCursor(t *testing.T) {
	tree := forkedTree(t)
	other := linearTree(3)

	assert.False(t, tree.SetCursor(timeline.Cursor{}))
	assert.False(t, tree.SetCursor(timeline.Cursor{Node: tree.Root(), Index: 3}))
	assert.False(t, tree.SetCursor(timeline.Cursor{Node: tree.Root(), Index: -1}))
	assert.False(t, tree.SetCursor(timeline.Cursor{Node: other.Root(), Index: 0}))
	assert.True(t, tree.SetCursor(timeline.Cursor{Node: tree.Root(), Index: 2}))
}

func TestTimestamps(t *testing.T) {
	tree := forkedTree(t)
	root := tree.Root()
	a := root.Children()[0]
	d := a.Children()[1]

	assert.Equal(t, 0, tree.Timestamp(timeline.Cursor{Node: root}))
	assert.Equal(t, 3, tree.Timestamp(timeline.Cursor{Node: a}))
	assert.Equal(t, 4, tree.Timestamp(timeline.Cursor{Node: d}))

	// Cursor sits on D after the second fork.
	require.Equal(t, d, tree.Cursor().Node)
	path := tree.ActivePath()
	require.Len(t, path, 3)
	assert.Equal(t, []*timeline.Node{root, a, d}, path)
	assert.Equal(t, 5, tree.ActiveLength())

	for ts := range tree.ActiveLength() {
		c := tree.CursorAt(ts)
		assert.True(t, c.Valid())
		assert.Equal(t, ts, tree.Timestamp(c))
	}

	assert.Equal(t, timeline.Cursor{Node: root}, tree.CursorAt(-4))
	assert.Equal(t, timeline.Cursor{Node: d}, tree.CursorAt(100))
}

func TestActivePathFollowsFirstBranch(t *testing.T) {
	tree := forkedTree(t)
	root := tree.Root()
	a := root.Children()[0]

	require.True(t, tree.SetCursor(timeline.Cursor{Node: root, Index: 1}))
	assert.Equal(t, []*timeline.Node{root, a, a.Children()[0]}, tree.ActivePath())
}

func TestDump(t *testing.T) {
	tree := forkedTree(t)

	expected := "#0 len=3\n" +
		"  #1 len=1\n" +
		"    #3 len=1\n" +
		"    #4 len=1 cursor=0\n" +
		"  #2 len=2\n"
	assert.Equal(t, expected, tree.Dump())

	n, ok := tree.Node(4)
	require.True(t, ok)
	assert.Same(t, tree.Cursor().Node, n)
}

func TestRecordAtTipOfBranchedNode(t *testing.T) {
	tree := linearTree(2)
	rewind(t, tree, 1)
	require.Equal(t, timeline.Forked, tree.Record(snapshot(10)))
	require.True(t, tree.Prev())

	root := tree.Root()
	require.Equal(t, timeline.Cursor{Node: root}, tree.Cursor())
	require.True(t, tree.AtTip())

	assert.Equal(t, timeline.Branched, tree.Record(snapshot(20)))
	assert.Equal(t, "branched", timeline.Branched.String())
	assert.Equal(t, 1, root.Len(), "a node with branches never grows")
	require.Len(t, root.Children(), 3)

	first, _ := root.Children()[0].Snapshot(0)
	second, _ := root.Children()[1].Snapshot(0)
	third, _ := root.Children()[2].Snapshot(0)
	assert.Equal(t, snapshot(1), first)
	assert.Equal(t, snapshot(10), second)
	assert.Equal(t, snapshot(20), third)
	assert.Equal(t, timeline.Cursor{Node: root.Children()[2]}, tree.Cursor())
	assert.Same(t, root, root.Children()[2].Parent())
	assert.Equal(t, 3, tree.TotalBranches())
	assert.Equal(t, 2, tree.MaxDepth())

	assert.Equal(t, timeline.Appended, tree.Record(snapshot(21)), "the new branch is a leaf")
	assert.Equal(t, 2, root.Children()[2].Len())
}

func TestSetCursorRejectsForeignNodes(t *testing.T) {
	tree := linearTree(3)
	other := linearTree(3)

	assert.False(t, tree.SetCursor(timeline.Cursor{Node: other.Root(), Index: 1}))
	assert.False(t, tree.SetCursor(timeline.Cursor{Node: tree.Root(), Index: 3}))
	assert.Equal(t, timeline.Cursor{Node: tree.Root(), Index: 2}, tree.Cursor())

	n, ok := tree.Node(tree.Root().ID())
	require.True(t, ok)
	assert.Same(t, tree.Root(), n)
	_, ok = tree.Node(99)
	assert.False(t, ok)
}
