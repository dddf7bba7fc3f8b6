package prune

import (
	"strings"

	"github.com/agentweb/core/snapshot"
)

// wrapperCollapse is stage 3: post-order, any unnamed structural node
// (generic/group/list/table/row/row-group/cell/presentation/none/
// separator, plus layout-table variants) with exactly one child is
// replaced by that child; with more than one child it is kept but
// marked with the transparent role snapshot.PromoteRole; with zero
// children it is dropped.
func wrapperCollapse(root *snapshot.Node) *snapshot.Node {
	return collapse(root)
}

func collapse(n *snapshot.Node) *snapshot.Node {
	if n == nil {
		return nil
	}
	var children []*snapshot.Node
	for _, c := range n.Children {
		if cc := collapse(c); cc != nil {
			children = append(children, cc)
		}
	}
	role := strings.ToLower(n.Role)
	if wrapperRoles[role] && n.Name == "" {
		switch len(children) {
		case 0:
			return nil
		case 1:
			return children[0]
		default:
			return &snapshot.Node{
				ID: n.ID, Role: snapshot.PromoteRole, Children: children,
			}
		}
	}
	out := &snapshot.Node{
		ID: n.ID, Role: n.Role, Name: n.Name, Description: n.Description,
		Value: n.Value, Ignored: n.Ignored, BackendNode: n.BackendNode,
		Properties: n.Properties, Children: children,
	}
	return out
}
