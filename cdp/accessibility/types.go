package accessibility

// NodeID is the CDP "AXNodeID": a unique ID, per target, for an
// accessibility node. Not stable across navigations or reloads.
type NodeID string

// BackendNodeID is the CDP "DOM.BackendNodeId" that an accessibility
// node is backed by, used to resolve box models and remote objects for
// the node the input dispatcher needs to interact with.
type BackendNodeID int64

// ValueType is the CDP "AXValueType" enum - the type carried by an
// AXValue (role, string, tristate, idrefList, ...).
type ValueType string

// Value is the CDP "AXValue": a typed value, used for both the node's
// role and its computed name/description/properties.
type Value struct {
	Type  ValueType   `json:"type"`
	Value interface{} `json:"value,omitempty"`
}

// PropertyName is the CDP "AXPropertyName" enum identifying a specific
// accessibility property (busy, disabled, expanded, checked, ...).
type PropertyName string

// Property is the CDP "AXProperty": a named, typed accessibility
// property attached to a node.
type Property struct {
	Name  PropertyName `json:"name"`
	Value Value        `json:"value"`
}

// Node is the CDP "AXNode": one record of the flat accessibility tree
// returned by Accessibility.getFullAXTree. Every node points at its
// ParentID only; ChildIDs is read but never trusted for structure (see
// the snapshot package), because some browser versions emit duplicated
// or cyclic child lists.
type Node struct {
	NodeID       NodeID         `json:"nodeId"`
	Ignored      bool           `json:"ignored"`
	Role         *Value         `json:"role,omitempty"`
	Name         *Value         `json:"name,omitempty"`
	Description  *Value         `json:"description,omitempty"`
	Value        *Value         `json:"value,omitempty"`
	Properties   []Property     `json:"properties,omitempty"`
	ParentID     *NodeID        `json:"parentId,omitempty"`
	ChildIDs     []NodeID       `json:"childIds,omitempty"`
	BackendDOMID *BackendNodeID `json:"backendDOMNodeId,omitempty"`
}

// StringValue returns the node's Value.Value as a string, the common
// case for Role and Name, or "" if absent or not a string.
func (n *Node) StringValue(v *Value) string {
	if v == nil {
		return ""
	}
	s, _ := v.Value.(string)
	return s
}

// RoleString returns the node's role name, or "" if the node carries no role.
func (n *Node) RoleString() string { return n.StringValue(n.Role) }

// NameString returns the node's computed accessible name, or "" if absent.
func (n *Node) NameString() string { return n.StringValue(n.Name) }

// Property looks up a named property's value, reporting whether it was present.
func (n *Node) Property(name PropertyName) (Value, bool) {
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return Value{}, false
}
