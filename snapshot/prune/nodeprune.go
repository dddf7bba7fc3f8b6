package prune

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentweb/core/snapshot"
)

var priceRe = regexp.MustCompile(`(\$[\d,.]+|€[\d,]+)`)

// nodeContext carries the bits stage 2 needs while walking top-down:
// the pipeline mode, the (lowercased) role of the immediate parent, and
// the free-text context keywords used to judge commerce card relevance.
type nodeContext struct {
	mode       snapshot.Mode
	parentRole string
	keywords   string
	insideMain bool
}

// nodeLevelPrune is stage 2: a top-down traversal applying the ordered
// rule set below. It returns nil when a node (and its subtree) should
// be dropped.
func nodeLevelPrune(root *snapshot.Node, opts Options) *snapshot.Node {
	ctx := nodeContext{mode: opts.Mode, keywords: opts.Context}
	return pruneNode(root, ctx)
}

func pruneNode(n *snapshot.Node, ctx nodeContext) *snapshot.Node {
	if n == nil {
		return nil
	}
	role := strings.ToLower(n.Role)
	mode := ctx.mode

	switch {
	case mode == snapshot.ModeAct && role == "link" && ctx.parentRole == "paragraph":
		return nil

	case role == "paragraph":
		if mode == snapshot.ModeAct {
			return nil
		}
		// browse/navigate/full: keep and recurse normally below.

	case mode == snapshot.ModeBrowse && role == "navigation" && ctx.insideMain:
		return nil

	case role == "figure" && mode == snapshot.ModeBrowse:
		if n.Name == "" {
			return nil
		}
		return &snapshot.Node{Role: "text", Name: fmt.Sprintf("[Figure: %s]", n.Name)}

	case role == "heading":
		return pruneHeading(n, mode)

	case role == "group" && containsAny(n.Name, colorVocab):
		return collapseColorGroup(n)

	case role == "statictext" || role == "text":
		return pruneStaticText(n, mode)

	case role == "image":
		if mode == snapshot.ModeAct {
			return nil
		}
		if n.Name == "" {
			return nil
		}
		return n

	case role == "separator":
		return nil

	case mode == snapshot.ModeAct && landmarkRoles[role] && isAuxiliary(n.Name):
		return nil

	case mode == snapshot.ModeAct && role == "complementary":
		return nil
	}

	// Interactive roles are never dropped by the rules above; they still
	// recurse below to prune descendants (e.g. option lists).

	if mode == snapshot.ModeAct && ctx.keywords != "" && role == "listitem" && hasInteractiveDescendant(n) {
		text := concatText(n)
		if !containsKeyword(text, ctx.keywords) {
			return condenseCard(n)
		}
	}

	childCtx := ctx
	childCtx.parentRole = role
	if role == "main" {
		childCtx.insideMain = true
	}

	var children []*snapshot.Node
	for _, c := range n.Children {
		if pc := pruneNode(c, childCtx); pc != nil {
			children = append(children, pc)
		}
	}

	if mode == snapshot.ModeAct {
		if role == "list" && !hasInteractiveDescendantAmong(children) {
			return nil
		}
		if role == "listitem" && !hasInteractiveDescendantAmong(children) {
			return nil
		}
	}

	out := &snapshot.Node{
		ID: n.ID, Role: n.Role, Name: n.Name, Description: n.Description,
		Value: n.Value, Ignored: n.Ignored, BackendNode: n.BackendNode,
		Properties: n.Properties, Children: children,
	}
	return out
}

func pruneHeading(n *snapshot.Node, mode snapshot.Mode) *snapshot.Node {
	level := n.Properties["level"]
	out := &snapshot.Node{
		ID: n.ID, Role: n.Role, Name: n.Name, Properties: n.Properties, BackendNode: n.BackendNode,
	}
	if level == "1" || level == "" {
		return out
	}
	if mode == snapshot.ModeAct && containsAny(n.Name, descriptionVocab) {
		return nil
	}
	return out
}

func collapseColorGroup(n *snapshot.Node) *snapshot.Node {
	names := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	return &snapshot.Node{
		Role: "text",
		Name: fmt.Sprintf("colors(%d): %s", len(names), strings.Join(names, ", ")),
	}
}

func pruneStaticText(n *snapshot.Node, mode snapshot.Mode) *snapshot.Node {
	text := strings.TrimSpace(n.Name)
	if mode == snapshot.ModeBrowse {
		if isLoneSeparatorChar(text) {
			return nil
		}
		return n
	}
	if mode != snapshot.ModeAct {
		return n
	}
	if len(text) <= 30 {
		return n
	}
	if strings.HasSuffix(text, ":") && len(text) <= 40 {
		return n
	}
	if priceRe.MatchString(text) {
		return n
	}
	if containsAny(text, stockShippingPhrases) {
		return n
	}
	return nil
}

func isLoneSeparatorChar(s string) bool {
	if len([]rune(s)) != 1 {
		return false
	}
	return strings.ContainsAny(s, "-—–|•·.")
}

func hasInteractiveDescendant(n *snapshot.Node) bool {
	if n == nil {
		return false
	}
	if interactiveRoles[strings.ToLower(n.Role)] {
		return true
	}
	for _, c := range n.Children {
		if hasInteractiveDescendant(c) {
			return true
		}
	}
	return false
}

func hasInteractiveDescendantAmong(nodes []*snapshot.Node) bool {
	for _, n := range nodes {
		if hasInteractiveDescendant(n) {
			return true
		}
	}
	return false
}

func concatText(n *snapshot.Node) string {
	var b strings.Builder
	var walk func(n *snapshot.Node)
	walk = func(n *snapshot.Node) {
		if n == nil {
			return
		}
		if n.Name != "" {
			b.WriteString(n.Name)
			b.WriteString(" ")
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// condenseCard keeps a list-item's first interactive descendant as a
// single surviving leaf link, dropping the rest of the card's content,
// when the card's text does not match the requested context keywords.
func condenseCard(n *snapshot.Node) *snapshot.Node {
	var find func(n *snapshot.Node) *snapshot.Node
	find = func(n *snapshot.Node) *snapshot.Node {
		if n == nil {
			return nil
		}
		if interactiveRoles[strings.ToLower(n.Role)] {
			return n
		}
		for _, c := range n.Children {
			if f := find(c); f != nil {
				return f
			}
		}
		return nil
	}
	link := find(n)
	if link == nil {
		return nil
	}
	return &snapshot.Node{
		ID: link.ID, Role: link.Role, Name: link.Name, BackendNode: link.BackendNode,
	}
}
