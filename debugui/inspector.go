package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/chronochess/app"
	"github.com/plus3/chronochess/board"
	"github.com/plus3/chronochess/timeline"
)

// NodeLabel is the tree-view label of n. The ID suffix keeps labels unique
// for ImGui.
func NodeLabel(n *timeline.Node, cursor timeline.Cursor) string {
	label := fmt.Sprintf("node %d (%d snapshots)", n.ID(), n.Len())
	if cursor.Node == n {
		label += fmt.Sprintf(" <- cursor %d", cursor.Index)
	}
	return label + fmt.Sprintf("##node%d", n.ID())
}

// TimelineInspector shows the cursor, the tree shape and navigation
// controls for state. Clicking a node in the tree jumps to its first
// snapshot.
func TimelineInspector(state *app.State) ImguiItem {
	jump := int32(0)
	return ImguiItem{
		Name: "Timeline",
		Render: func() {
			tree := state.Tree()
			cursor := tree.Cursor()
			data := state.Render()

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(320, 360), imgui.CondOnce)
			if !imgui.BeginV("Timeline", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			imgui.Text(fmt.Sprintf("Session: %s", state.Session()))
			imgui.Text(fmt.Sprintf("Timestamp: %d / %d", data.Timestamp, max(data.Length-1, 0)))
			imgui.Text(fmt.Sprintf("Nodes: %d  Branches: %d", tree.NodeCount(), tree.TotalBranches()))
			stats := state.CommitStats()
			imgui.Text(fmt.Sprintf("Appends: %d  Forks: %d  Branches: %d  Rejected: %d", stats.Appends, stats.Forks, stats.Branches, stats.Rejected))
			imgui.Text("Position: " + data.Board.FEN())
			if data.Drag.Active {
				imgui.Text(fmt.Sprintf("Dragging %s from %s", data.Drag.Piece, board.CellName(data.Drag.From)))
			}
			imgui.Separator()

			if imgui.Button("Prev") {
				state.Prev()
			}
			imgui.SameLine()
			if imgui.Button("Next") {
				state.Next()
			}
			imgui.SameLine()
			if imgui.Button("Sibling") {
				state.Sibling()
			}

			animate := state.Scrubber().Animate()
			if imgui.Checkbox("Animate jumps", &animate) {
				state.SetAnimate(animate)
			}
			imgui.InputInt("##jump", &jump)
			imgui.SameLine()
			if imgui.Button("Jump") {
				state.JumpToTimestamp(int(max(jump, 0)))
			}
			if anim, ok := state.Scrubber().Animation(); ok {
				imgui.Text(fmt.Sprintf("Animating %d/%d ticks", anim.Elapsed, anim.Total))
			}
			imgui.Separator()

			renderNode(state, tree.Root(), cursor)
			imgui.End()
		},
	}
}

// JumpTarget is the cursor a click on n's row jumps to: the first snapshot
// of the node.
func JumpTarget(n *timeline.Node) (timeline.Cursor, bool) {
	c := timeline.Cursor{Node: n}
	return c, c.Valid()
}

func renderNode(state *app.State, n *timeline.Node, cursor timeline.Cursor) {
	label := NodeLabel(n, cursor)
	jump := func() {
		if target, ok := JumpTarget(n); ok {
			state.JumpTo(target)
		}
	}

	if n.IsLeaf() {
		if imgui.SelectableBoolV(label, cursor.Node == n, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
			jump()
		}
		return
	}
	open := imgui.TreeNodeStr(label)
	if imgui.IsItemClicked() {
		jump()
	}
	if open {
		for _, child := range n.Children() {
			renderNode(state, child, cursor)
		}
		imgui.TreePop()
	}
}
