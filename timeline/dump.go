package timeline

import (
	"fmt"
	"strings"
)

// Dump renders the tree as indented text, one node per line, marking the
// cursor position:
//
//	#0 len=1
//	  #1 len=1
//	  #2 len=1 cursor=0
func (t *Tree) Dump() string {
	var sb strings.Builder
	t.Walk(func(n *Node, depth int) bool {
		fmt.Fprintf(&sb, "%s#%d len=%d", strings.Repeat("  ", depth), n.id, n.Len())
		if t.cursor.Node == n {
			fmt.Fprintf(&sb, " cursor=%d", t.cursor.Index)
		}
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}
