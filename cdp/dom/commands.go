// Package dom implements the subset of the CDP DOM domain this module
// needs to resolve an accessibility node's backend node ID into
// coordinates and a Runtime remote object, for the input dispatcher and
// the consent dismisser. See
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/.
package dom

import (
	"context"
	"encoding/json"

	"github.com/agentweb/core/cdp"
)

// ScrollIntoViewIfNeeded contains the parameters of
// "DOM.scrollIntoViewIfNeeded".
type ScrollIntoViewIfNeeded struct {
	BackendNodeID int64 `json:"backendNodeId"`
}

// NewScrollIntoViewIfNeeded constructs the command.
func NewScrollIntoViewIfNeeded(backendNodeID int64) *ScrollIntoViewIfNeeded {
	return &ScrollIntoViewIfNeeded{BackendNodeID: backendNodeID}
}

// Do sends the command.
func (cmd *ScrollIntoViewIfNeeded) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "DOM.scrollIntoViewIfNeeded", cmd)
	return err
}

// Quad is four (x, y) pairs describing a quadrilateral, as returned in
// BoxModel.
type Quad []float64

// BoxModel is the result shape of "DOM.getBoxModel".
type BoxModel struct {
	Content Quad `json:"content"`
	Padding Quad `json:"padding"`
	Border  Quad `json:"border"`
	Margin  Quad `json:"margin"`
	Width   int64 `json:"width"`
	Height  int64 `json:"height"`
}

// Center returns the midpoint of the content quad, the point this
// module clicks, hovers over, or drags from.
func (b *BoxModel) Center() (x, y float64) {
	var sumX, sumY float64
	for i := 0; i < len(b.Content); i += 2 {
		sumX += b.Content[i]
		sumY += b.Content[i+1]
	}
	n := float64(len(b.Content) / 2)
	if n == 0 {
		return 0, 0
	}
	return sumX / n, sumY / n
}

// GetBoxModel contains the parameters of "DOM.getBoxModel".
type GetBoxModel struct {
	BackendNodeID int64 `json:"backendNodeId"`
}

// NewGetBoxModel constructs GetBoxModel.
func NewGetBoxModel(backendNodeID int64) *GetBoxModel {
	return &GetBoxModel{BackendNodeID: backendNodeID}
}

// GetBoxModelResult contains the result of "DOM.getBoxModel".
type GetBoxModelResult struct {
	Model BoxModel `json:"model"`
}

// Do sends the command.
func (cmd *GetBoxModel) Do(ctx context.Context, s cdp.SessionView) (*GetBoxModelResult, error) {
	raw, err := s.Send(ctx, "DOM.getBoxModel", cmd)
	if err != nil {
		return nil, err
	}
	result := &GetBoxModelResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ResolveNode contains the parameters of "DOM.resolveNode", used to get
// a Runtime remote-object ID for a backend node so Input.* events or
// Runtime.callFunctionOn can target it directly.
type ResolveNode struct {
	BackendNodeID int64 `json:"backendNodeId"`
}

// NewResolveNode constructs ResolveNode.
func NewResolveNode(backendNodeID int64) *ResolveNode {
	return &ResolveNode{BackendNodeID: backendNodeID}
}

// RemoteObject is a partial copy of CDP's Runtime.RemoteObject.
type RemoteObject struct {
	ObjectID string `json:"objectId"`
}

// ResolveNodeResult contains the result of "DOM.resolveNode".
type ResolveNodeResult struct {
	Object RemoteObject `json:"object"`
}

// Do sends the command.
func (cmd *ResolveNode) Do(ctx context.Context, s cdp.SessionView) (*ResolveNodeResult, error) {
	raw, err := s.Send(ctx, "DOM.resolveNode", cmd)
	if err != nil {
		return nil, err
	}
	result := &ResolveNodeResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// SetFileInputFiles contains the parameters of
// "DOM.setFileInputFiles", used by Upload to attach local files to a
// file input without a native file-picker dialog.
type SetFileInputFiles struct {
	Files         []string `json:"files"`
	BackendNodeID int64    `json:"backendNodeId"`
}

// NewSetFileInputFiles constructs SetFileInputFiles.
func NewSetFileInputFiles(backendNodeID int64, files []string) *SetFileInputFiles {
	return &SetFileInputFiles{BackendNodeID: backendNodeID, Files: files}
}

// Do sends the command.
func (cmd *SetFileInputFiles) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "DOM.setFileInputFiles", cmd)
	return err
}

// Focus contains the parameters of "DOM.focus", used before dispatching
// key events so typed text lands in the right input.
type Focus struct {
	BackendNodeID int64 `json:"backendNodeId"`
}

// NewFocus constructs Focus.
func NewFocus(backendNodeID int64) *Focus { return &Focus{BackendNodeID: backendNodeID} }

// Do sends the command.
func (cmd *Focus) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "DOM.focus", cmd)
	return err
}
