// Package consent implements the best-effort consent-banner dismisser:
// a multilingual accept-vocabulary search over the unpruned
// accessibility tree, clicking through a JavaScript path that bypasses
// overlay occlusion (Runtime.callFunctionOn against the resolved
// backend node, rather than a synthetic coordinate click that an
// overlay could intercept).
package consent

import (
	"context"
	"strings"

	"github.com/agentweb/core/cdp"
	"github.com/agentweb/core/cdp/dom"
	"github.com/agentweb/core/cdp/runtime"
	"github.com/agentweb/core/snapshot"
)

// acceptVocab is the fixed, module-level multilingual vocabulary of
// accept-button labels this dismisser looks for.
var acceptVocab = []string{
	"accept", "accept all", "i agree", "agree", "ok", "got it", "allow all",
	"akzeptieren", "alle akzeptieren", "accepter", "tout accepter",
	"aceptar", "aceptar todo", "accetta", "accetta tutto",
	"aceitar", "aceitar tudo", "alles accepteren", "accepteren",
}

// Dismiss walks the tree for a button/link whose accessible name
// matches the accept vocabulary and clicks it via Runtime.callFunctionOn.
// Any failure (no match found, resolve failure, click failure) is
// swallowed: dismissal is always best-effort.
func Dismiss(ctx context.Context, session cdp.SessionView, root *snapshot.Node) {
	target := findAcceptControl(root)
	if target == nil || target.BackendNode == nil {
		return
	}
	resolved, err := dom.NewResolveNode(int64(*target.BackendNode)).Do(ctx, session)
	if err != nil || resolved.Object.ObjectID == "" {
		return
	}
	runtime.NewCallFunctionOn(resolved.Object.ObjectID, `function() { this.click(); }`).Do(ctx, session)
}

func findAcceptControl(n *snapshot.Node) *snapshot.Node {
	if n == nil {
		return nil
	}
	role := strings.ToLower(n.Role)
	if (role == "button" || role == "link") && matchesAcceptVocab(n.Name) {
		return n
	}
	for _, c := range n.Children {
		if found := findAcceptControl(c); found != nil {
			return found
		}
	}
	return nil
}

func matchesAcceptVocab(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, v := range acceptVocab {
		if lower == v {
			return true
		}
	}
	return false
}
