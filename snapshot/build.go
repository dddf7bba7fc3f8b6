package snapshot

import (
	"errors"

	"github.com/agentweb/core/cdp/accessibility"
)

// allowedProperties is the fixed set of accessibility properties the
// formatter ever displays.
var allowedProperties = map[accessibility.PropertyName]string{
	"checked":  "checked",
	"disabled": "disabled",
	"expanded": "expanded",
	"level":    "level",
	"selected": "selected",
	"required": "required",
}

// Build reconstructs a tree from the browser's flat accessibility node
// list using parent pointers only (raw.ParentID), never the ChildIDs
// lists some browser versions duplicate or cycle. It returns the root
// node and the reference map accumulated while walking the list.
func Build(raw []accessibility.Node) (*Node, RefMap, error) {
	byID := make(map[accessibility.NodeID]*Node, len(raw))
	parentOf := make(map[accessibility.NodeID]accessibility.NodeID, len(raw))
	hasParent := make(map[accessibility.NodeID]bool, len(raw))

	for _, r := range raw {
		n := &Node{
			ID:          string(r.NodeID),
			Role:        r.RoleString(),
			Name:        r.NameString(),
			Description: r.StringValue(r.Description),
			Value:       r.StringValue(r.Value),
			Ignored:     r.Ignored,
			BackendNode: r.BackendDOMID,
		}
		for name, label := range allowedProperties {
			if v, ok := r.Property(name); ok {
				n.setProperty(label, v)
			}
		}
		byID[r.NodeID] = n
		if r.ParentID != nil {
			parentOf[r.NodeID] = *r.ParentID
			hasParent[r.NodeID] = true
		}
	}

	var root *Node
	refMap := make(RefMap)
	for _, r := range raw {
		n := byID[r.NodeID]
		if n.BackendNode != nil {
			refMap[n.ID] = *n.BackendNode
		}
		if !hasParent[r.NodeID] {
			if root != nil {
				// More than one parentless node: keep the first one
				// encountered as root and attach the rest under it, so
				// reconstruction always yields exactly one root.
				root.Children = append(root.Children, n)
				continue
			}
			root = n
			continue
		}
		parent, ok := byID[parentOf[r.NodeID]]
		if !ok {
			// Dangling parent reference: treat as a root-level child
			// rather than dropping the node.
			if root == nil {
				root = n
				continue
			}
			root.Children = append(root.Children, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	if root == nil {
		return nil, nil, errors.New("snapshot: accessibility tree had no parentless node")
	}
	return root, refMap, nil
}

func (n *Node) setProperty(label string, v accessibility.Value) {
	if n.Properties == nil {
		n.Properties = make(map[string]string)
	}
	switch val := v.Value.(type) {
	case string:
		n.Properties[label] = val
	case bool:
		if val {
			n.Properties[label] = "true"
		} else {
			n.Properties[label] = "false"
		}
	case float64:
		n.Properties[label] = formatFloat(val)
	default:
		return
	}
}
