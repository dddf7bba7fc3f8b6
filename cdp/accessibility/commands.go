// Package accessibility implements the subset of the CDP Accessibility
// domain this module needs to fetch the page's full accessibility tree
// for the snapshot engine. See
// https://chromedevtools.github.io/devtools-protocol/tot/Accessibility/.
package accessibility

import (
	"context"
	"encoding/json"

	"github.com/agentweb/core/cdp"
)

// Enable contains the (empty) parameters of "Accessibility.enable".
type Enable struct{}

// NewEnable constructs Enable.
func NewEnable() *Enable { return &Enable{} }

// Do sends the command.
func (cmd *Enable) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Accessibility.enable", cmd)
	return err
}

// GetFullAXTree contains the parameters of
// "Accessibility.getFullAXTree".
type GetFullAXTree struct {
	Depth int64 `json:"depth,omitempty"`
}

// NewGetFullAXTree constructs GetFullAXTree with no depth limit.
func NewGetFullAXTree() *GetFullAXTree { return &GetFullAXTree{Depth: -1} }

// GetFullAXTreeResult contains the result of
// "Accessibility.getFullAXTree": a flat list of nodes, each carrying its
// parent ID and a child-ID list; this module's snapshot engine
// reconstructs the tree from the parent IDs only.
type GetFullAXTreeResult struct {
	Nodes []Node `json:"nodes"`
}

// Do sends the command.
func (cmd *GetFullAXTree) Do(ctx context.Context, s cdp.SessionView) (*GetFullAXTreeResult, error) {
	raw, err := s.Send(ctx, "Accessibility.getFullAXTree", cmd)
	if err != nil {
		return nil, err
	}
	result := &GetFullAXTreeResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}
