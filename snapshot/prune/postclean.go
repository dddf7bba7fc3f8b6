package prune

import (
	"strings"

	"github.com/agentweb/core/snapshot"
)

// postClean is stage 4: trim combobox/listbox nodes down to their name
// plus the selected option's accessible name (dropping option children),
// then recursively drop orphaned sub-headings in act mode.
func postClean(root *snapshot.Node, opts Options) *snapshot.Node {
	tree := trimSelectLike(root)
	if opts.Mode == snapshot.ModeAct {
		tree = dropOrphanedSubheadings(tree)
	}
	return tree
}

func trimSelectLike(n *snapshot.Node) *snapshot.Node {
	if n == nil {
		return nil
	}
	role := strings.ToLower(n.Role)
	if role == "combobox" || role == "listbox" {
		selected := selectedOptionName(n)
		out := &snapshot.Node{
			ID: n.ID, Role: n.Role, Name: n.Name, BackendNode: n.BackendNode,
			Properties: n.Properties,
		}
		if selected != "" {
			out.Name = selected
		}
		return out
	}
	var children []*snapshot.Node
	for _, c := range n.Children {
		children = append(children, trimSelectLike(c))
	}
	return &snapshot.Node{
		ID: n.ID, Role: n.Role, Name: n.Name, Description: n.Description,
		Value: n.Value, Ignored: n.Ignored, BackendNode: n.BackendNode,
		Properties: n.Properties, Children: children,
	}
}

func selectedOptionName(n *snapshot.Node) string {
	for _, c := range n.Children {
		if strings.ToLower(c.Role) != "option" {
			continue
		}
		if v, ok := c.Properties["selected"]; ok && v == "true" {
			return c.Name
		}
	}
	return ""
}

// dropOrphanedSubheadings removes a non-h1 heading that is immediately
// followed by no interactive nodes before the next heading.
func dropOrphanedSubheadings(n *snapshot.Node) *snapshot.Node {
	if n == nil {
		return nil
	}
	children := make([]*snapshot.Node, 0, len(n.Children))
	for i, c := range n.Children {
		if isOrphanedSubheading(c, n.Children[i+1:]) {
			continue
		}
		children = append(children, dropOrphanedSubheadings(c))
	}
	return &snapshot.Node{
		ID: n.ID, Role: n.Role, Name: n.Name, Description: n.Description,
		Value: n.Value, Ignored: n.Ignored, BackendNode: n.BackendNode,
		Properties: n.Properties, Children: children,
	}
}

func isOrphanedSubheading(n *snapshot.Node, following []*snapshot.Node) bool {
	if strings.ToLower(n.Role) != "heading" {
		return false
	}
	if n.Properties["level"] == "1" || n.Properties["level"] == "" {
		return false
	}
	for _, sib := range following {
		if strings.ToLower(sib.Role) == "heading" {
			return true // hit the next heading before any interactive node
		}
		if hasInteractiveDescendant(sib) {
			return false
		}
	}
	return true
}
