package prune

import (
	"strings"

	"github.com/agentweb/core/snapshot"
)

// regionExtraction is stage 1. It unwraps the root web-area (by simply
// never treating a "WebArea"/"RootWebArea" role as a landmark while
// searching), then keeps only the landmarks the mode allows, downgrading
// ones whose name matches the auxiliary vocabulary. If the tree has no
// landmarks at all, the root's children that are or contain a heading or
// an interactive node are kept; if none of those exist either the tree
// passes through unchanged.
func regionExtraction(root *snapshot.Node, opts Options) *snapshot.Node {
	if root == nil {
		return nil
	}
	if opts.Mode == snapshot.ModeFull {
		return root
	}

	landmarks := findLandmarks(root)
	if len(landmarks) == 0 {
		if hasHeadingOrInteractive(root) {
			kept := make([]*snapshot.Node, 0, len(root.Children))
			for _, c := range root.Children {
				if hasHeadingOrInteractive(c) {
					kept = append(kept, c)
				}
			}
			return &snapshot.Node{Role: root.Role, Name: root.Name, ID: root.ID, Children: kept}
		}
		return root
	}

	allowed := allowedLandmarks[string(opts.Mode)]
	kept := make([]*snapshot.Node, 0, len(landmarks))
	for _, lm := range landmarks {
		if isAuxiliary(lm.Name) {
			continue
		}
		if allowed[strings.ToLower(lm.Role)] {
			kept = append(kept, lm)
		}
	}
	if len(kept) == 0 {
		return root
	}
	return &snapshot.Node{Role: root.Role, Name: root.Name, ID: root.ID, Children: kept}
}

func findLandmarks(n *snapshot.Node) []*snapshot.Node {
	var out []*snapshot.Node
	var walk func(n *snapshot.Node)
	walk = func(n *snapshot.Node) {
		if n == nil {
			return
		}
		if landmarkRoles[strings.ToLower(n.Role)] {
			out = append(out, n)
			return // landmarks are not nested; stop descending here
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, c := range n.Children {
		walk(c)
	}
	return out
}

func isAuxiliary(name string) bool {
	return containsAny(name, auxVocab)
}

func hasHeadingOrInteractive(n *snapshot.Node) bool {
	if n == nil {
		return false
	}
	role := strings.ToLower(n.Role)
	if role == "heading" || interactiveRoles[role] {
		return true
	}
	for _, c := range n.Children {
		if hasHeadingOrInteractive(c) {
			return true
		}
	}
	return false
}
