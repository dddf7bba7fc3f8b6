package page

import "encoding/json"

// LifecycleEvent is the payload of the "Page.lifecycleEvent" event
// ("load", "networkIdle", "networkAlmostIdle", "DOMContentLoaded").
// Network-idle detection in this module does not use it; it counts
// Network domain events instead.
type LifecycleEvent struct {
	FrameID string `json:"frameId"`
	Name    string `json:"name"`
}

// ParseLifecycleEvent parses a raw event payload into a LifecycleEvent.
func ParseLifecycleEvent(raw json.RawMessage) (*LifecycleEvent, error) {
	e := &LifecycleEvent{}
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	return e, nil
}

// JavascriptDialogOpening is the payload of
// "Page.javascriptDialogOpening". Every opening must be acknowledged to
// avoid blocking further script execution; the page handle accepts all
// of them except beforeunload, which it declines so navigation proceeds.
type JavascriptDialogOpening struct {
	URL     string `json:"url"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ParseJavascriptDialogOpening parses a raw event payload.
func ParseJavascriptDialogOpening(raw json.RawMessage) (*JavascriptDialogOpening, error) {
	e := &JavascriptDialogOpening{}
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	return e, nil
}

// FrameNavigated is the payload of "Page.frameNavigated".
type FrameNavigated struct {
	Frame struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"frame"`
}

// ParseFrameNavigated parses a raw event payload.
func ParseFrameNavigated(raw json.RawMessage) (*FrameNavigated, error) {
	e := &FrameNavigated{}
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	return e, nil
}
