package page

import (
	"strings"
	"sync"
	"testing"

	"github.com/agentweb/core/cdp/accessibility"
	"github.com/agentweb/core/snapshot"
)

func TestLooksChallengedMatchesVocab(t *testing.T) {
	tests := map[string]bool{
		"Please wait. Just a moment...":       true,
		"Checking your browser before access": true,
		"Attention Required! | Cloudflare":    true,
		"Welcome to the homepage":             false,
		"":                                    false,
	}
	for text, want := range tests {
		if got := looksChallenged(text); got != want {
			t.Errorf("looksChallenged(%q) = %v, want %v", text, got, want)
		}
	}
}

func backendID(n int64) *accessibility.BackendNodeID {
	id := accessibility.BackendNodeID(n)
	return &id
}

func TestCollectRefsWalksTreeAndFiltersUnreferenced(t *testing.T) {
	root := &snapshot.Node{
		ID: "1", Role: "RootWebArea",
		Children: []*snapshot.Node{
			{ID: "2", Role: "button", Name: "Submit", BackendNode: backendID(10)},
			{ID: "3", Role: "generic"},
			{ID: "4", Role: "link", Name: "Home", BackendNode: backendID(20), Children: []*snapshot.Node{
				{ID: "5", Role: "StaticText"},
			}},
		},
	}
	refs := snapshot.RefMap{}
	collectRefs(root, refs)

	if len(refs) != 2 {
		t.Fatalf("len(refs) = %d, want 2, got %v", len(refs), refs)
	}
	if refs["2"] != 10 || refs["4"] != 20 {
		t.Errorf("refs = %v, want {2:10, 4:20}", refs)
	}
}

func TestWaitForExpressionBuildsTextCheck(t *testing.T) {
	expr := waitForExpression(WaitForOptions{Text: "Order confirmed"})
	if !strings.Contains(expr, `"Order confirmed"`) {
		t.Errorf("waitForExpression() = %q, want the JSON-escaped text literal", expr)
	}
	if !strings.Contains(expr, "document.body.innerText.includes") {
		t.Error("waitForExpression() missing the innerText check")
	}
}

func TestWaitForExpressionEscapesSelector(t *testing.T) {
	expr := waitForExpression(WaitForOptions{Selector: `div[data-test="a\"b"]`})
	if !strings.Contains(expr, "document.querySelector") {
		t.Error("waitForExpression() missing the querySelector check")
	}
	// A literal quote inside the selector must not break out of the
	// generated JS string literal.
	if strings.Count(expr, "querySelector(selector)") != 1 {
		t.Errorf("waitForExpression() = %q, malformed selector check", expr)
	}
}

func TestDecrementInflightClampsAtZero(t *testing.T) {
	p := &Page{}
	p.netCond = sync.NewCond(&p.mu)

	p.decrementInflight()
	if p.inFlightCount() != 0 {
		t.Fatalf("inFlightCount() = %d, want 0 after decrementing from 0", p.inFlightCount())
	}

	p.inflight = 2
	p.decrementInflight()
	if p.inFlightCount() != 1 {
		t.Errorf("inFlightCount() = %d, want 1", p.inFlightCount())
	}
	p.decrementInflight()
	if p.inFlightCount() != 0 {
		t.Errorf("inFlightCount() = %d, want 0", p.inFlightCount())
	}
}
