// Package snapshot reconstructs an agent-facing accessibility tree from
// the browser's flat accessibility node list, prunes it down to what an
// agent needs for the requested mode, and formats it as text with an
// opaque per-node reference token in a `- role "name" [prop=value, ...] [ref=N]`
// grammar, built from a depth-first accessibility-tree walk.
package snapshot

import "github.com/agentweb/core/cdp/accessibility"

// Mode selects which pruning rules apply.
type Mode string

// The four pruning modes.
const (
	ModeAct      Mode = "act"
	ModeBrowse   Mode = "browse"
	ModeNavigate Mode = "navigate"
	ModeFull     Mode = "full"
)

// PromoteRole marks a wrapper node whose children survived collapse but
// whose own (unnamed, structural) role should not render a line of its
// own; the formatter treats it as transparent.
const PromoteRole = "_promote"

// Node is one node of the reconstructed accessibility tree. It is the
// unit the pruning pipeline operates on and the formatter renders.
type Node struct {
	ID          string // the accessibility node ID, reused verbatim as this node's [ref=] token
	Role        string
	Name        string
	Description string
	Value       string
	Ignored     bool
	BackendNode *accessibility.BackendNodeID
	Properties  map[string]string
	Children    []*Node
}

// Clone returns a deep copy of the subtree rooted at n, so pruning
// stages never mutate the tree they were handed.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{
		ID: n.ID, Role: n.Role, Name: n.Name, Description: n.Description,
		Value: n.Value, Ignored: n.Ignored, BackendNode: n.BackendNode,
	}
	if n.Properties != nil {
		cp.Properties = make(map[string]string, len(n.Properties))
		for k, v := range n.Properties {
			cp.Properties[k] = v
		}
	}
	for _, c := range n.Children {
		cp.Children = append(cp.Children, c.Clone())
	}
	return cp
}

// RefMap pairs a snapshot node's reference token with the DOM
// back-identifier it was built from. Replaced wholesale by every new
// Snapshot call; never valid across snapshots.
type RefMap map[string]accessibility.BackendNodeID

// Snapshot is the output of Build plus the pruning pipeline and
// formatter: the text document and the reference map it is paired with.
type Snapshot struct {
	Mode    Mode
	Text    string
	RefMap  RefMap
	RawLen  int
	PrunedLen int
}
