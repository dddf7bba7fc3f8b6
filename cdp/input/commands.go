package input

import (
	"context"

	"github.com/agentweb/core/cdp"
)

// DispatchMouseEvent contains the parameters of
// "Input.dispatchMouseEvent".
type DispatchMouseEvent struct {
	Type       string      `json:"type"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	Button     MouseButton `json:"button,omitempty"`
	ClickCount int64       `json:"clickCount,omitempty"`
}

// NewDispatchMouseEvent constructs DispatchMouseEvent. typ is one of
// "mouseMoved", "mousePressed", "mouseReleased", "mouseWheel".
func NewDispatchMouseEvent(typ string, x, y float64) *DispatchMouseEvent {
	return &DispatchMouseEvent{Type: typ, X: x, Y: y}
}

// WithButton sets the button and click count for a press/release event.
func (cmd *DispatchMouseEvent) WithButton(button MouseButton, clickCount int64) *DispatchMouseEvent {
	cmd.Button = button
	cmd.ClickCount = clickCount
	return cmd
}

// Do sends the command.
func (cmd *DispatchMouseEvent) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Input.dispatchMouseEvent", cmd)
	return err
}

// DispatchKeyEvent contains the parameters of "Input.dispatchKeyEvent".
type DispatchKeyEvent struct {
	Type                  string `json:"type"`
	Modifiers             int64  `json:"modifiers,omitempty"`
	Text                  string `json:"text,omitempty"`
	UnmodifiedText        string `json:"unmodifiedText,omitempty"`
	Key                   string `json:"key,omitempty"`
	Code                  string `json:"code,omitempty"`
	WindowsVirtualKeyCode int64  `json:"windowsVirtualKeyCode,omitempty"`
	NativeVirtualKeyCode  int64  `json:"nativeVirtualKeyCode,omitempty"`
}

// NewDispatchKeyEvent constructs DispatchKeyEvent. typ is one of
// "keyDown", "keyUp", "rawKeyDown", "char".
func NewDispatchKeyEvent(typ string) *DispatchKeyEvent {
	return &DispatchKeyEvent{Type: typ}
}

// Do sends the command.
func (cmd *DispatchKeyEvent) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Input.dispatchKeyEvent", cmd)
	return err
}

// InsertText contains the parameters of "Input.insertText", the
// fast path this module uses for Type (as opposed to dispatching one
// keyDown/keyUp pair per rune).
type InsertText struct {
	Text string `json:"text"`
}

// NewInsertText constructs InsertText.
func NewInsertText(text string) *InsertText { return &InsertText{Text: text} }

// Do sends the command.
func (cmd *InsertText) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Input.insertText", cmd)
	return err
}

// DispatchMouseWheelEvent is a specialization used for Scroll.
type DispatchMouseWheelEvent struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DeltaX float64 `json:"deltaX"`
	DeltaY float64 `json:"deltaY"`
}

// NewDispatchMouseWheelEvent constructs a mouseWheel event at (x, y)
// scrolling by (deltaX, deltaY) CSS pixels.
func NewDispatchMouseWheelEvent(x, y, deltaX, deltaY float64) *DispatchMouseWheelEvent {
	return &DispatchMouseWheelEvent{Type: "mouseWheel", X: x, Y: y, DeltaX: deltaX, DeltaY: deltaY}
}

// Do sends the command.
func (cmd *DispatchMouseWheelEvent) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Input.dispatchMouseEvent", cmd)
	return err
}
