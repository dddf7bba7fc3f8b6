package page

import (
	"context"
	"fmt"

	"github.com/agentweb/core/cdp/target"
)

// Tab describes one page-type target.
type Tab struct {
	TargetID string
	Title    string
	URL      string
}

// Tabs lists every page-type browser target.
func (p *Page) Tabs(ctx context.Context) ([]Tab, error) {
	result, err := target.NewGetTargets().Do(ctx, p.transport.Browser())
	if err != nil {
		return nil, err
	}
	var tabs []Tab
	for _, info := range result.TargetInfos {
		if info.Type != "page" {
			continue
		}
		tabs = append(tabs, Tab{TargetID: info.TargetID, Title: info.Title, URL: info.URL})
	}
	return tabs, nil
}

// SwitchTab activates the page-type target at index, as returned by Tabs.
func (p *Page) SwitchTab(ctx context.Context, index int) error {
	tabs, err := p.Tabs(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(tabs) {
		return fmt.Errorf("page: tab index %d out of range (%d tabs)", index, len(tabs))
	}
	return target.NewActivateTarget(tabs[index].TargetID).Do(ctx, p.transport.Browser())
}
