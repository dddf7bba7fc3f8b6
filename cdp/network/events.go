package network

import "encoding/json"

// RequestWillBeSent is the payload of "Network.requestWillBeSent", one
// of the three event streams (with loadingFinished and loadingFailed)
// counted to track the in-flight requests WaitForNetworkIdle polls.
type RequestWillBeSent struct {
	RequestID string `json:"requestId"`
}

// ParseRequestWillBeSent parses a raw event payload.
func ParseRequestWillBeSent(raw json.RawMessage) (*RequestWillBeSent, error) {
	e := &RequestWillBeSent{}
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	return e, nil
}

// LoadingFinished is the payload of "Network.loadingFinished".
type LoadingFinished struct {
	RequestID string `json:"requestId"`
}

// ParseLoadingFinished parses a raw event payload.
func ParseLoadingFinished(raw json.RawMessage) (*LoadingFinished, error) {
	e := &LoadingFinished{}
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	return e, nil
}

// LoadingFailed is the payload of "Network.loadingFailed".
type LoadingFailed struct {
	RequestID string `json:"requestId"`
}

// ParseLoadingFailed parses a raw event payload.
func ParseLoadingFailed(raw json.RawMessage) (*LoadingFailed, error) {
	e := &LoadingFailed{}
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	return e, nil
}
