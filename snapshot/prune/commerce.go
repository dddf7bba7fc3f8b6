package prune

import (
	"strings"

	"github.com/agentweb/core/snapshot"
)

var noiseButtonVocab = []string{
	"energy class", "sponsored", "ad feedback", "product information sheet", "rating",
}

var noiseLinkVocab = []string{"view options", "terms of use", "privacy policy", "footer"}

var truncateAfterVocab = []string{"back to top", "related searches", "need help"}

var filterControlVocab = []string{"filter by", "refine", "narrow your search"}

// commerceNoise is stage 5, act mode only: global and per-list-item
// link deduplication, noise-vocabulary drops, and truncation after a
// trailing navigation/related-content block.
func commerceNoise(root *snapshot.Node) *snapshot.Node {
	seen := make(map[string]bool)
	tree := dedupeAndFilter(root, seen, true)
	return truncateTrailing(tree)
}

func dedupeAndFilter(n *snapshot.Node, globalSeen map[string]bool, top bool) *snapshot.Node {
	if n == nil {
		return nil
	}
	role := strings.ToLower(n.Role)

	localSeen := map[string]bool{}
	if role == "listitem" {
		localSeen = map[string]bool{}
	}

	var children []*snapshot.Node
	for _, c := range n.Children {
		cr := strings.ToLower(c.Role)
		if cr == "link" {
			key := strings.ToLower(c.Name)
			if role == "listitem" {
				if localSeen[key] {
					continue
				}
				localSeen[key] = true
			} else {
				if globalSeen[key] {
					continue
				}
				globalSeen[key] = true
			}
			if containsAny(c.Name, noiseLinkVocab) {
				continue
			}
		}
		if cr == "button" && containsAny(c.Name, noiseButtonVocab) {
			continue
		}
		if cr == "group" && containsAny(concatText(c), filterControlVocab) {
			continue
		}
		if pc := dedupeAndFilter(c, globalSeen, false); pc != nil {
			children = append(children, pc)
		}
	}
	return &snapshot.Node{
		ID: n.ID, Role: n.Role, Name: n.Name, Description: n.Description,
		Value: n.Value, Ignored: n.Ignored, BackendNode: n.BackendNode,
		Properties: n.Properties, Children: children,
	}
}

// truncateTrailing drops every sibling after a "back to top" button, an
// h6 heading, or a "related searches"/"need help" heading, at every
// level of the tree.
func truncateTrailing(n *snapshot.Node) *snapshot.Node {
	if n == nil {
		return nil
	}
	var children []*snapshot.Node
	for _, c := range n.Children {
		if isTruncationMarker(c) {
			break
		}
		children = append(children, truncateTrailing(c))
	}
	return &snapshot.Node{
		ID: n.ID, Role: n.Role, Name: n.Name, Description: n.Description,
		Value: n.Value, Ignored: n.Ignored, BackendNode: n.BackendNode,
		Properties: n.Properties, Children: children,
	}
}

func isTruncationMarker(n *snapshot.Node) bool {
	role := strings.ToLower(n.Role)
	if role == "button" && containsAny(n.Name, []string{"back to top"}) {
		return true
	}
	if role == "heading" {
		if n.Properties["level"] == "6" {
			return true
		}
		if containsAny(n.Name, truncateAfterVocab) {
			return true
		}
	}
	return false
}
