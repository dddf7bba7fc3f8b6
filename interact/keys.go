// Package interact implements the input dispatcher: reference
// resolution against a snapshot's reference map, followed by the
// scroll-into-view + box-model coordinate resolution and CDP Input/DOM
// command sequencing for click, hover, type, press, scroll, select,
// drag and upload.
package interact

import "github.com/agentweb/core/errs"

// Key describes one entry of the fixed symbolic key table Press
// dispatches through.
type Key struct {
	Key           string
	Code          string
	VirtualKey    int64
	Text          string
}

// keyTable maps the symbolic names Press accepts to their CDP key
// event fields.
var keyTable = map[string]Key{
	"Enter":     {Key: "Enter", Code: "Enter", VirtualKey: 13, Text: "\r"},
	"Tab":       {Key: "Tab", Code: "Tab", VirtualKey: 9, Text: "\t"},
	"Escape":    {Key: "Escape", Code: "Escape", VirtualKey: 27},
	"Backspace": {Key: "Backspace", Code: "Backspace", VirtualKey: 8},
	"Delete":    {Key: "Delete", Code: "Delete", VirtualKey: 46},
	"ArrowUp":   {Key: "ArrowUp", Code: "ArrowUp", VirtualKey: 38},
	"ArrowDown": {Key: "ArrowDown", Code: "ArrowDown", VirtualKey: 40},
	"ArrowLeft": {Key: "ArrowLeft", Code: "ArrowLeft", VirtualKey: 37},
	"ArrowRight": {Key: "ArrowRight", Code: "ArrowRight", VirtualKey: 39},
	"Home":      {Key: "Home", Code: "Home", VirtualKey: 36},
	"End":       {Key: "End", Code: "End", VirtualKey: 35},
	"PageUp":    {Key: "PageUp", Code: "PageUp", VirtualKey: 33},
	"PageDown":  {Key: "PageDown", Code: "PageDown", VirtualKey: 34},
	"Space":     {Key: " ", Code: "Space", VirtualKey: 32, Text: " "},
}

// lookupKey resolves a symbolic key name, failing with UnknownKey and
// the list of valid names if it is not in the fixed table.
func lookupKey(name string) (Key, error) {
	k, ok := keyTable[name]
	if !ok {
		names := make([]string, 0, len(keyTable))
		for n := range keyTable {
			names = append(names, n)
		}
		return Key{}, errs.Newf(errs.UnknownKey, "unknown key %q, valid keys: %v", name, names)
	}
	return k, nil
}
