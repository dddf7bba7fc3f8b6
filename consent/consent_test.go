package consent

import (
	"testing"

	"github.com/agentweb/core/snapshot"
)

func TestFindAcceptControlMatchesVocab(t *testing.T) {
	root := &snapshot.Node{
		ID: "1", Role: "RootWebArea",
		Children: []*snapshot.Node{
			{ID: "2", Role: "dialog", Children: []*snapshot.Node{
				{ID: "3", Role: "button", Name: "Reject all"},
				{ID: "4", Role: "button", Name: "Accept all"},
			}},
		},
	}
	found := findAcceptControl(root)
	if found == nil || found.ID != "4" {
		t.Errorf("findAcceptControl() = %v, want node 4 (Accept all)", found)
	}
}

func TestFindAcceptControlCaseAndWhitespaceInsensitive(t *testing.T) {
	root := &snapshot.Node{
		ID: "1", Role: "RootWebArea",
		Children: []*snapshot.Node{
			{ID: "2", Role: "link", Name: "  I AGREE  "},
		},
	}
	found := findAcceptControl(root)
	if found == nil || found.ID != "2" {
		t.Error("findAcceptControl() did not match vocab despite case/whitespace difference")
	}
}

func TestFindAcceptControlNoMatch(t *testing.T) {
	root := &snapshot.Node{
		ID: "1", Role: "RootWebArea",
		Children: []*snapshot.Node{
			{ID: "2", Role: "button", Name: "Learn more"},
		},
	}
	if found := findAcceptControl(root); found != nil {
		t.Errorf("findAcceptControl() = %v, want nil", found)
	}
}

func TestFindAcceptControlIgnoresNonButtonRoles(t *testing.T) {
	root := &snapshot.Node{
		ID: "1", Role: "RootWebArea",
		Children: []*snapshot.Node{
			{ID: "2", Role: "heading", Name: "Accept"},
		},
	}
	if found := findAcceptControl(root); found != nil {
		t.Errorf("findAcceptControl() matched a heading, want nil")
	}
}

func TestMatchesAcceptVocabMultilingual(t *testing.T) {
	for _, name := range []string{"Accept", "accept all", "Akzeptieren", "Tout accepter", "Aceptar todo"} {
		if !matchesAcceptVocab(name) {
			t.Errorf("matchesAcceptVocab(%q) = false, want true", name)
		}
	}
	if matchesAcceptVocab("Subscribe") {
		t.Error("matchesAcceptVocab(\"Subscribe\") = true, want false")
	}
}
