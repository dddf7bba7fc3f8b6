// Package prune implements the snapshot engine's five-stage pruning
// pipeline: region extraction, node-level pruning, wrapper collapse,
// post-clean, and (act mode only) commerce-noise passes. Every stage is
// a pure function over a cloned tree; the pipeline never mutates the
// tree it is handed, and running it twice on the same input yields the
// same output (idempotence).
package prune

import "github.com/agentweb/core/snapshot"

// Options carries the pipeline's mode and optional free-text context
// keywords (space-separated), both of which the node-level pruning
// stage consults.
type Options struct {
	Mode    snapshot.Mode
	Context string
}

// Run applies all five stages in order to a clone of root and returns
// the resulting tree. root is never mutated.
func Run(root *snapshot.Node, opts Options) *snapshot.Node {
	tree := root.Clone()
	tree = regionExtraction(tree, opts)
	tree = nodeLevelPrune(tree, opts)
	tree = wrapperCollapse(tree)
	tree = postClean(tree, opts)
	if opts.Mode == snapshot.ModeAct {
		tree = commerceNoise(tree)
	}
	return tree
}
