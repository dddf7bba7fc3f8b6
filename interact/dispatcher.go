package interact

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agentweb/core/cdp"
	"github.com/agentweb/core/cdp/accessibility"
	"github.com/agentweb/core/cdp/dom"
	"github.com/agentweb/core/cdp/input"
	"github.com/agentweb/core/cdp/runtime"
	"github.com/agentweb/core/errs"
	"github.com/agentweb/core/snapshot"
)

// Dispatcher resolves reference tokens against the current snapshot's
// reference map and dispatches CDP Input/DOM/Runtime commands against
// the corresponding backend node.
type Dispatcher struct {
	Session cdp.SessionView
	Refs    snapshot.RefMap
}

// New constructs a Dispatcher bound to one session and reference map.
// The page handle replaces Refs wholesale whenever it takes a new
// snapshot (refs are never valid across snapshots).
func New(session cdp.SessionView, refs snapshot.RefMap) *Dispatcher {
	return &Dispatcher{Session: session, Refs: refs}
}

func (d *Dispatcher) resolve(ref string) (accessibility.BackendNodeID, error) {
	id, ok := d.Refs[ref]
	if !ok {
		return 0, errs.Newf(errs.ReferenceUnknown, "unknown reference %q", ref)
	}
	return id, nil
}

// midpoint scrolls the node into view and returns the midpoint of its
// content box, the coordinate every pointer operation acts on.
func (d *Dispatcher) midpoint(ctx context.Context, backendID accessibility.BackendNodeID) (x, y float64, err error) {
	if err := dom.NewScrollIntoViewIfNeeded(int64(backendID)).Do(ctx, d.Session); err != nil {
		return 0, 0, err
	}
	result, err := dom.NewGetBoxModel(int64(backendID)).Do(ctx, d.Session)
	if err != nil {
		return 0, 0, err
	}
	x, y = result.Model.Center()
	return x, y, nil
}

// Click scrolls the referenced node into view and dispatches a single
// left-button press/release at its content-box midpoint.
func (d *Dispatcher) Click(ctx context.Context, ref string) error {
	backendID, err := d.resolve(ref)
	if err != nil {
		return err
	}
	x, y, err := d.midpoint(ctx, backendID)
	if err != nil {
		return err
	}
	if err := input.NewDispatchMouseEvent("mousePressed", x, y).WithButton(input.MouseButtonLeft, 1).Do(ctx, d.Session); err != nil {
		return err
	}
	return input.NewDispatchMouseEvent("mouseReleased", x, y).WithButton(input.MouseButtonLeft, 1).Do(ctx, d.Session)
}

// Hover scrolls the referenced node into view and dispatches a
// mouseMoved event at its content-box midpoint.
func (d *Dispatcher) Hover(ctx context.Context, ref string) error {
	backendID, err := d.resolve(ref)
	if err != nil {
		return err
	}
	x, y, err := d.midpoint(ctx, backendID)
	if err != nil {
		return err
	}
	return input.NewDispatchMouseEvent("mouseMoved", x, y).Do(ctx, d.Session)
}

// TypeOptions configures Type.
type TypeOptions struct {
	Clear     bool
	KeyEvents bool
}

// Type focuses the referenced node, optionally clears its existing
// content with Ctrl+A then Backspace, and enters text either as a
// single fast-path insertText or as one keyDown/keyUp pair per
// character.
func (d *Dispatcher) Type(ctx context.Context, ref, text string, opts TypeOptions) error {
	backendID, err := d.resolve(ref)
	if err != nil {
		return err
	}
	if err := dom.NewFocus(int64(backendID)).Do(ctx, d.Session); err != nil {
		return err
	}
	if opts.Clear {
		if err := d.sendKeyDownUp(ctx, "a", "KeyA", 65, "", 2); err != nil {
			return err
		}
		if err := d.sendKeyDownUp(ctx, keyTable["Backspace"].Key, keyTable["Backspace"].Code, keyTable["Backspace"].VirtualKey, "", 0); err != nil {
			return err
		}
	}
	if opts.KeyEvents {
		for _, r := range text {
			if err := d.sendKeyDownUp(ctx, string(r), "", 0, string(r), 0); err != nil {
				return err
			}
		}
		return nil
	}
	return input.NewInsertText(text).Do(ctx, d.Session)
}

func (d *Dispatcher) sendKeyDownUp(ctx context.Context, key, code string, vk int64, text string, modifiers int64) error {
	down := input.NewDispatchKeyEvent("keyDown")
	down.Key, down.Code, down.WindowsVirtualKeyCode, down.Text, down.Modifiers = key, code, vk, text, modifiers
	if err := down.Do(ctx, d.Session); err != nil {
		return err
	}
	up := input.NewDispatchKeyEvent("keyUp")
	up.Key, up.Code, up.WindowsVirtualKeyCode, up.Modifiers = key, code, vk, modifiers
	return up.Do(ctx, d.Session)
}

// Press dispatches keyDown then keyUp for one of the fixed symbolic key
// names, failing with UnknownKey if name is not in the table.
func (d *Dispatcher) Press(ctx context.Context, name string) error {
	k, err := lookupKey(name)
	if err != nil {
		return err
	}
	down := input.NewDispatchKeyEvent("keyDown")
	down.Key, down.Code, down.WindowsVirtualKeyCode, down.Text = k.Key, k.Code, k.VirtualKey, k.Text
	if err := down.Do(ctx, d.Session); err != nil {
		return err
	}
	up := input.NewDispatchKeyEvent("keyUp")
	up.Key, up.Code, up.WindowsVirtualKeyCode = k.Key, k.Code, k.VirtualKey
	return up.Do(ctx, d.Session)
}

// Scroll dispatches a mouse-wheel event at (x, y), scrolling by deltaY
// CSS pixels. A nil x defaults to 400 and a nil y to 300.
func (d *Dispatcher) Scroll(ctx context.Context, deltaY float64, x, y *float64) error {
	px, py := 400.0, 300.0
	if x != nil {
		px = *x
	}
	if y != nil {
		py = *y
	}
	return input.NewDispatchMouseWheelEvent(px, py, 0, deltaY).Do(ctx, d.Session)
}

// Select sets a <select> element's value (by option value or visible
// text) and dispatches a bubbling "change" event. For a non-<select>
// custom dropdown, it clicks the element to open it, waits briefly for
// the option list to render, then clicks the rendered option whose
// trimmed text equals value.
func (d *Dispatcher) Select(ctx context.Context, ref, value string) error {
	backendID, err := d.resolve(ref)
	if err != nil {
		return err
	}
	resolved, err := dom.NewResolveNode(int64(backendID)).Do(ctx, d.Session)
	if err != nil {
		return err
	}
	objectID := resolved.Object.ObjectID

	script := fmt.Sprintf(`function(value) {
		if (this.tagName === 'SELECT') {
			for (const opt of this.options) {
				if (opt.value === value || opt.text.trim() === value) {
					this.value = opt.value;
					this.dispatchEvent(new Event('change', {bubbles: true}));
					return true;
				}
			}
			return false;
		}
		return null;
	}`)
	call := runtime.NewCallFunctionOn(objectID, script)
	call.Arguments = []runtime.CallArgument{{Value: value}}
	result, err := call.Do(ctx, d.Session)
	if err != nil {
		return err
	}
	if handled, ok := result.Result.Value.(bool); ok && handled {
		return nil
	}

	// Not a native <select>: open the dropdown, let it render, then
	// click the matching rendered option.
	if err := d.Click(ctx, ref); err != nil {
		return err
	}
	time.Sleep(300 * time.Millisecond)

	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	expr := fmt.Sprintf(`(function() {
		const value = %s;
		const candidates = document.querySelectorAll('[role="option"], [role="menuitem"]');
		for (const el of candidates) {
			if (el.textContent.trim() === value) {
				el.click();
				return true;
			}
		}
		return false;
	})()`, valueJSON)
	_, err = runtime.NewEvaluate(expr).Do(ctx, d.Session)
	return err
}

// Drag computes both reference nodes' midpoints and dispatches
// mousePressed at the source, mouseMoved through both midpoints, and
// mouseReleased at the target. Synthetic CDP mouse events do not
// populate native drag-and-drop data-transfer; this is a documented
// limitation, not a bug to work around.
func (d *Dispatcher) Drag(ctx context.Context, fromRef, toRef string) error {
	fromID, err := d.resolve(fromRef)
	if err != nil {
		return err
	}
	toID, err := d.resolve(toRef)
	if err != nil {
		return err
	}
	fx, fy, err := d.midpoint(ctx, fromID)
	if err != nil {
		return err
	}
	tx, ty, err := d.midpoint(ctx, toID)
	if err != nil {
		return err
	}
	if err := input.NewDispatchMouseEvent("mousePressed", fx, fy).WithButton(input.MouseButtonLeft, 1).Do(ctx, d.Session); err != nil {
		return err
	}
	if err := input.NewDispatchMouseEvent("mouseMoved", fx, fy).Do(ctx, d.Session); err != nil {
		return err
	}
	if err := input.NewDispatchMouseEvent("mouseMoved", tx, ty).Do(ctx, d.Session); err != nil {
		return err
	}
	return input.NewDispatchMouseEvent("mouseReleased", tx, ty).WithButton(input.MouseButtonLeft, 1).Do(ctx, d.Session)
}

// Upload calls DOM.setFileInputFiles with the given absolute file paths
// against the referenced node's backend node ID.
func (d *Dispatcher) Upload(ctx context.Context, ref string, files []string) error {
	backendID, err := d.resolve(ref)
	if err != nil {
		return err
	}
	return dom.NewSetFileInputFiles(int64(backendID), files).Do(ctx, d.Session)
}
