package runtime

import "encoding/json"

// RemoteObjectPreview is a trimmed copy of one console.log argument,
// rendered down to its type and (when available) a string description.
type RemoteObjectPreview struct {
	Type        string `json:"type"`
	Subtype     string `json:"subtype,omitempty"`
	Description string `json:"description,omitempty"`
	Value       interface{} `json:"value,omitempty"`
}

// ConsoleAPICalled is the payload of "Runtime.consoleAPICalled", fired
// for every console.log/warn/error/... call a page script makes.
type ConsoleAPICalled struct {
	Type string                 `json:"type"` // "log", "warning", "error", ...
	Args []RemoteObjectPreview  `json:"args"`
}

// ParseConsoleAPICalled parses a raw event payload.
func ParseConsoleAPICalled(raw json.RawMessage) (*ConsoleAPICalled, error) {
	e := &ConsoleAPICalled{}
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	return e, nil
}
