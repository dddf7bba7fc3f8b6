// Package page implements the subset of the CDP Page domain this module
// needs: navigation, history, lifecycle observation, script injection,
// screenshots and PDF export. See
// https://chromedevtools.github.io/devtools-protocol/tot/Page/.
package page

import (
	"context"
	"encoding/json"

	"github.com/agentweb/core/cdp"
)

// Enable contains the (empty) parameters of "Page.enable".
type Enable struct{}

// NewEnable constructs Enable.
func NewEnable() *Enable { return &Enable{} }

// Do sends the command.
func (cmd *Enable) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Page.enable", cmd)
	return err
}

// SetLifecycleEventsEnabled contains the parameters of
// "Page.setLifecycleEventsEnabled".
type SetLifecycleEventsEnabled struct {
	Enabled bool `json:"enabled"`
}

// NewSetLifecycleEventsEnabled constructs SetLifecycleEventsEnabled.
func NewSetLifecycleEventsEnabled(enabled bool) *SetLifecycleEventsEnabled {
	return &SetLifecycleEventsEnabled{Enabled: enabled}
}

// Do sends the command.
func (cmd *SetLifecycleEventsEnabled) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Page.setLifecycleEventsEnabled", cmd)
	return err
}

// Navigate contains the parameters of "Page.navigate".
type Navigate struct {
	URL string `json:"url"`
}

// NewNavigate constructs Navigate.
func NewNavigate(url string) *Navigate { return &Navigate{URL: url} }

// NavigateResult contains the result of "Page.navigate".
type NavigateResult struct {
	FrameID   string `json:"frameId"`
	ErrorText string `json:"errorText"`
}

// Do sends the command.
func (cmd *Navigate) Do(ctx context.Context, s cdp.SessionView) (*NavigateResult, error) {
	raw, err := s.Send(ctx, "Page.navigate", cmd)
	if err != nil {
		return nil, err
	}
	result := &NavigateResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// NavigateToHistoryEntry contains the parameters of
// "Page.navigateToHistoryEntry".
type NavigateToHistoryEntry struct {
	EntryID int64 `json:"entryId"`
}

// Do sends the command.
func (cmd *NavigateToHistoryEntry) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Page.navigateToHistoryEntry", cmd)
	return err
}

// HistoryEntry is one entry of "Page.getNavigationHistory".
type HistoryEntry struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// GetNavigationHistory contains the (empty) parameters of
// "Page.getNavigationHistory".
type GetNavigationHistory struct{}

// NewGetNavigationHistory constructs GetNavigationHistory.
func NewGetNavigationHistory() *GetNavigationHistory { return &GetNavigationHistory{} }

// GetNavigationHistoryResult contains the result of
// "Page.getNavigationHistory".
type GetNavigationHistoryResult struct {
	CurrentIndex int64          `json:"currentIndex"`
	Entries      []HistoryEntry `json:"entries"`
}

// Do sends the command.
func (cmd *GetNavigationHistory) Do(ctx context.Context, s cdp.SessionView) (*GetNavigationHistoryResult, error) {
	raw, err := s.Send(ctx, "Page.getNavigationHistory", cmd)
	if err != nil {
		return nil, err
	}
	result := &GetNavigationHistoryResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AddScriptToEvaluateOnNewDocument contains the parameters of
// "Page.addScriptToEvaluateOnNewDocument", used to install the stealth
// script before any page script runs.
type AddScriptToEvaluateOnNewDocument struct {
	Source string `json:"source"`
}

// NewAddScriptToEvaluateOnNewDocument constructs the command.
func NewAddScriptToEvaluateOnNewDocument(source string) *AddScriptToEvaluateOnNewDocument {
	return &AddScriptToEvaluateOnNewDocument{Source: source}
}

// Do sends the command.
func (cmd *AddScriptToEvaluateOnNewDocument) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Page.addScriptToEvaluateOnNewDocument", cmd)
	return err
}

// CaptureScreenshot contains the parameters of "Page.captureScreenshot".
type CaptureScreenshot struct {
	Format  string `json:"format,omitempty"`
	Quality int64  `json:"quality,omitempty"`
}

// NewCaptureScreenshot constructs CaptureScreenshot with the default PNG format.
func NewCaptureScreenshot() *CaptureScreenshot {
	return &CaptureScreenshot{Format: "png"}
}

// CaptureScreenshotResult contains the result of "Page.captureScreenshot".
type CaptureScreenshotResult struct {
	Data string `json:"data"` // base64-encoded
}

// Do sends the command.
func (cmd *CaptureScreenshot) Do(ctx context.Context, s cdp.SessionView) (*CaptureScreenshotResult, error) {
	raw, err := s.Send(ctx, "Page.captureScreenshot", cmd)
	if err != nil {
		return nil, err
	}
	result := &CaptureScreenshotResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// PrintToPDF contains the parameters of "Page.printToPDF".
type PrintToPDF struct {
	PrintBackground bool `json:"printBackground"`
	Landscape       bool `json:"landscape,omitempty"`
}

// NewPrintToPDF constructs PrintToPDF.
func NewPrintToPDF() *PrintToPDF { return &PrintToPDF{PrintBackground: true} }

// PrintToPDFResult contains the result of "Page.printToPDF".
type PrintToPDFResult struct {
	Data string `json:"data"` // base64-encoded
}

// Do sends the command.
func (cmd *PrintToPDF) Do(ctx context.Context, s cdp.SessionView) (*PrintToPDFResult, error) {
	raw, err := s.Send(ctx, "Page.printToPDF", cmd)
	if err != nil {
		return nil, err
	}
	result := &PrintToPDFResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

// HandleJavaScriptDialog contains the parameters of
// "Page.handleJavaScriptDialog", used to respond to every dialog
// opening so script execution is never blocked waiting on one.
type HandleJavaScriptDialog struct {
	Accept bool `json:"accept"`
}

// NewHandleJavaScriptDialog constructs the command.
func NewHandleJavaScriptDialog(accept bool) *HandleJavaScriptDialog {
	return &HandleJavaScriptDialog{Accept: accept}
}

// Do sends the command.
func (cmd *HandleJavaScriptDialog) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Page.handleJavaScriptDialog", cmd)
	return err
}

// Close contains the (empty) parameters of "Page.close".
type Close struct{}

// NewClose constructs Close.
func NewClose() *Close { return &Close{} }

// Do sends the command.
func (cmd *Close) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Page.close", cmd)
	return err
}
