// Package runtime implements the subset of the CDP Runtime domain this
// module needs to run a small JavaScript function against a resolved
// remote object, used by the consent dismisser to click through overlay
// occlusion. See
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/.
package runtime

import (
	"context"
	"encoding/json"

	"github.com/agentweb/core/cdp"
)

// Enable contains the (empty) parameters of "Runtime.enable", required
// to receive "Runtime.consoleAPICalled" events.
type Enable struct{}

// NewEnable constructs Enable.
func NewEnable() *Enable { return &Enable{} }

// Do sends the command.
func (cmd *Enable) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Runtime.enable", cmd)
	return err
}

// CallArgument is the CDP "Runtime.CallArgument".
type CallArgument struct {
	Value interface{} `json:"value,omitempty"`
}

// CallFunctionOn contains the parameters of "Runtime.callFunctionOn".
type CallFunctionOn struct {
	FunctionDeclaration string         `json:"functionDeclaration"`
	ObjectID            string         `json:"objectId"`
	Arguments           []CallArgument `json:"arguments,omitempty"`
}

// NewCallFunctionOn constructs CallFunctionOn.
func NewCallFunctionOn(objectID, functionDeclaration string) *CallFunctionOn {
	return &CallFunctionOn{ObjectID: objectID, FunctionDeclaration: functionDeclaration}
}

// RemoteObject is a partial copy of CDP's Runtime.RemoteObject.
type RemoteObject struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value,omitempty"`
}

// CallFunctionOnResult contains the result of "Runtime.callFunctionOn".
type CallFunctionOnResult struct {
	Result RemoteObject `json:"result"`
}

// Do sends the command.
func (cmd *CallFunctionOn) Do(ctx context.Context, s cdp.SessionView) (*CallFunctionOnResult, error) {
	raw, err := s.Send(ctx, "Runtime.callFunctionOn", cmd)
	if err != nil {
		return nil, err
	}
	result := &CallFunctionOnResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Evaluate contains the parameters of "Runtime.evaluate".
type Evaluate struct {
	Expression    string `json:"expression"`
	ReturnByValue bool   `json:"returnByValue,omitempty"`
}

// NewEvaluate constructs Evaluate with ReturnByValue set, so primitive
// and JSON-serializable results come back inline instead of as a remote
// object handle that would need a separate release.
func NewEvaluate(expression string) *Evaluate {
	return &Evaluate{Expression: expression, ReturnByValue: true}
}

// EvaluateResult contains the result of "Runtime.evaluate".
type EvaluateResult struct {
	Result RemoteObject `json:"result"`
}

// Do sends the command.
func (cmd *Evaluate) Do(ctx context.Context, s cdp.SessionView) (*EvaluateResult, error) {
	raw, err := s.Send(ctx, "Runtime.evaluate", cmd)
	if err != nil {
		return nil, err
	}
	result := &EvaluateResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}
