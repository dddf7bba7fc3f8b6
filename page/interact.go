package page

import (
	"context"

	"github.com/agentweb/core/interact"
)

// dispatcher builds a Dispatcher bound to the page's current reference
// map, taken under lock since Snapshot replaces it wholesale from a
// background-free caller goroutine.
func (p *Page) dispatcher() *interact.Dispatcher {
	p.mu.Lock()
	refs := p.refs
	p.mu.Unlock()
	return interact.New(p.session, refs)
}

// Click resolves ref against the current reference map and clicks it.
func (p *Page) Click(ctx context.Context, ref string) error {
	return p.dispatcher().Click(ctx, ref)
}

// Hover resolves ref against the current reference map and hovers it.
func (p *Page) Hover(ctx context.Context, ref string) error {
	return p.dispatcher().Hover(ctx, ref)
}

// Type resolves ref against the current reference map and types text
// into it.
func (p *Page) Type(ctx context.Context, ref, text string, opts interact.TypeOptions) error {
	return p.dispatcher().Type(ctx, ref, text, opts)
}

// Press dispatches one of the fixed symbolic key names.
func (p *Page) Press(ctx context.Context, key string) error {
	return p.dispatcher().Press(ctx, key)
}

// Scroll dispatches a mouse-wheel event at (x, y).
func (p *Page) Scroll(ctx context.Context, deltaY float64, x, y *float64) error {
	return p.dispatcher().Scroll(ctx, deltaY, x, y)
}

// Select sets a dropdown's value, native or custom.
func (p *Page) Select(ctx context.Context, ref, value string) error {
	return p.dispatcher().Select(ctx, ref, value)
}

// Drag drags from one referenced node to another.
func (p *Page) Drag(ctx context.Context, fromRef, toRef string) error {
	return p.dispatcher().Drag(ctx, fromRef, toRef)
}

// Upload attaches local files to the referenced file input.
func (p *Page) Upload(ctx context.Context, ref string, files []string) error {
	return p.dispatcher().Upload(ctx, ref, files)
}
