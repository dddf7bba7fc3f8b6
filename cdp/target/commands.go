// Package target implements the subset of the CDP Target domain this
// module needs to create and attach to page targets: see
// https://chromedevtools.github.io/devtools-protocol/tot/Target/.
package target

import (
	"context"
	"encoding/json"

	"github.com/agentweb/core/cdp"
)

// CreateTarget contains the parameters of the "Target.createTarget" command.
type CreateTarget struct {
	URL string `json:"url"`
}

// NewCreateTarget constructs CreateTarget with the required parameter.
func NewCreateTarget(url string) *CreateTarget {
	return &CreateTarget{URL: url}
}

// CreateTargetResult contains the result of the "Target.createTarget" command.
type CreateTargetResult struct {
	TargetID string `json:"targetId"`
}

// Do sends the command and returns the new target's ID.
func (cmd *CreateTarget) Do(ctx context.Context, s cdp.SessionView) (*CreateTargetResult, error) {
	raw, err := s.Send(ctx, "Target.createTarget", cmd)
	if err != nil {
		return nil, err
	}
	result := &CreateTargetResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AttachToTarget contains the parameters of the "Target.attachToTarget" command.
type AttachToTarget struct {
	TargetID string `json:"targetId"`
	Flatten  bool   `json:"flatten"`
}

// NewAttachToTarget constructs AttachToTarget, always requesting the
// flattened-session protocol mode this module relies on.
func NewAttachToTarget(targetID string) *AttachToTarget {
	return &AttachToTarget{TargetID: targetID, Flatten: true}
}

// AttachToTargetResult contains the result of "Target.attachToTarget".
type AttachToTargetResult struct {
	SessionID string `json:"sessionId"`
}

// Do sends the command and returns the resulting flattened session ID.
func (cmd *AttachToTarget) Do(ctx context.Context, s cdp.SessionView) (*AttachToTargetResult, error) {
	raw, err := s.Send(ctx, "Target.attachToTarget", cmd)
	if err != nil {
		return nil, err
	}
	result := &AttachToTargetResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// CloseTarget contains the parameters of the "Target.closeTarget" command.
type CloseTarget struct {
	TargetID string `json:"targetId"`
}

// NewCloseTarget constructs CloseTarget.
func NewCloseTarget(targetID string) *CloseTarget {
	return &CloseTarget{TargetID: targetID}
}

// Do sends the command.
func (cmd *CloseTarget) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Target.closeTarget", cmd)
	return err
}

// Info is a partial copy of CDP's TargetInfo, enough to pick out page
// targets when listing.
type Info struct {
	TargetID string `json:"targetId"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Attached bool   `json:"attached"`
}

// GetTargets contains the (empty) parameters of "Target.getTargets".
type GetTargets struct{}

// NewGetTargets constructs GetTargets.
func NewGetTargets() *GetTargets { return &GetTargets{} }

// GetTargetsResult contains the result of "Target.getTargets".
type GetTargetsResult struct {
	TargetInfos []Info `json:"targetInfos"`
}

// Do sends the command.
func (cmd *GetTargets) Do(ctx context.Context, s cdp.SessionView) (*GetTargetsResult, error) {
	raw, err := s.Send(ctx, "Target.getTargets", cmd)
	if err != nil {
		return nil, err
	}
	result := &GetTargetsResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ActivateTarget contains the parameters of "Target.activateTarget",
// used by SwitchTab to bring a background tab to the front.
type ActivateTarget struct {
	TargetID string `json:"targetId"`
}

// NewActivateTarget constructs ActivateTarget.
func NewActivateTarget(targetID string) *ActivateTarget {
	return &ActivateTarget{TargetID: targetID}
}

// Do sends the command.
func (cmd *ActivateTarget) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Target.activateTarget", cmd)
	return err
}
