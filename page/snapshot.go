package page

import (
	"context"
	"encoding/json"

	"github.com/agentweb/core/cdp/accessibility"
	"github.com/agentweb/core/snapshot"
	"github.com/agentweb/core/snapshot/prune"
)

// SnapshotOptions configures one Snapshot call.
type SnapshotOptions struct {
	Mode    snapshot.Mode
	Context string
}

// rawTree fetches and reconstructs the current, unpruned accessibility
// tree, without touching the page's reference map.
func (p *Page) rawTree(ctx context.Context) (*snapshot.Node, int, error) {
	result, err := accessibility.NewGetFullAXTree().Do(ctx, p.session)
	if err != nil {
		return nil, 0, err
	}
	root, _, err := snapshot.Build(result.Nodes)
	if err != nil {
		return nil, 0, err
	}
	rawLen := 0
	if b, err := json.Marshal(result.Nodes); err == nil {
		rawLen = len(b)
	}
	return root, rawLen, nil
}

// Snapshot runs the full snapshot pipeline (accessibility fetch, tree
// reconstruction, pruning, formatting), replaces the page's current
// reference map, and returns the rendered document. Mode defaults to
// ModeFull when opts.Mode is empty; in that mode region extraction keeps
// every landmark, but the mode-independent pruning rules (separator and
// unnamed-image drops, wrapper collapse, combobox trimming) still apply.
func (p *Page) Snapshot(ctx context.Context, opts SnapshotOptions) (string, error) {
	mode := opts.Mode
	if mode == "" {
		mode = snapshot.ModeFull
	}

	root, rawLen, err := p.rawTree(ctx)
	if err != nil {
		return "", err
	}

	pruned := prune.Run(root, prune.Options{Mode: mode, Context: opts.Context})

	refs := make(snapshot.RefMap)
	collectRefs(pruned, refs)

	p.mu.Lock()
	p.refs = refs
	p.mu.Unlock()

	return snapshot.Format(pruned, rawLen), nil
}

func collectRefs(n *snapshot.Node, out snapshot.RefMap) {
	if n == nil {
		return
	}
	if n.BackendNode != nil {
		out[n.ID] = *n.BackendNode
	}
	for _, c := range n.Children {
		collectRefs(c, out)
	}
}
