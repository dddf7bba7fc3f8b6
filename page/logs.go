package page

import (
	"strings"
	"time"

	"github.com/agentweb/core/cdp/network"
	"github.com/agentweb/core/cdp/runtime"
)

func (p *Page) watchConsole() {
	ch := p.session.On(p.eventCtx, "Runtime.consoleAPICalled")
	for m := range ch {
		evt, err := runtime.ParseConsoleAPICalled(m.Params)
		if err != nil {
			continue
		}
		parts := make([]string, 0, len(evt.Args))
		for _, a := range evt.Args {
			if a.Description != "" {
				parts = append(parts, a.Description)
			} else if a.Value != nil {
				if s, ok := a.Value.(string); ok {
					parts = append(parts, s)
				}
			}
		}
		p.mu.Lock()
		p.console = append(p.console, ConsoleEntry{
			Type: evt.Type, Text: strings.Join(parts, " "), Timestamp: time.Now(),
		})
		p.mu.Unlock()
	}
}

// ConsoleLog returns the append-only list of every console.* call
// observed so far.
func (p *Page) ConsoleLog() []ConsoleEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ConsoleEntry, len(p.console))
	copy(out, p.console)
	return out
}

// watchNetwork tracks the number of in-flight requests, the counter
// waitForNetworkIdle polls: requestWillBeSent increments it,
// loadingFinished/loadingFailed decrement it. The counter is clamped to
// zero on underflow, since a request started before Network.enable was
// processed can finish without a matching start event.
func (p *Page) watchNetwork() {
	started := p.session.On(p.eventCtx, "Network.requestWillBeSent")
	finished := p.session.On(p.eventCtx, "Network.loadingFinished")
	failed := p.session.On(p.eventCtx, "Network.loadingFailed")
	for {
		select {
		case m, ok := <-started:
			if !ok {
				return
			}
			if _, err := network.ParseRequestWillBeSent(m.Params); err == nil {
				p.mu.Lock()
				p.inflight++
				p.mu.Unlock()
			}
		case m, ok := <-finished:
			if !ok {
				return
			}
			if _, err := network.ParseLoadingFinished(m.Params); err == nil {
				p.decrementInflight()
			}
		case m, ok := <-failed:
			if !ok {
				return
			}
			if _, err := network.ParseLoadingFailed(m.Params); err == nil {
				p.decrementInflight()
			}
		case <-p.eventCtx.Done():
			return
		}
	}
}

func (p *Page) decrementInflight() {
	p.mu.Lock()
	if p.inflight > 0 {
		p.inflight--
	}
	if p.inflight == 0 {
		p.netCond.Broadcast()
	}
	p.mu.Unlock()
}

func (p *Page) inFlightCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inflight
}
