package page

import (
	"context"

	cdppage "github.com/agentweb/core/cdp/page"
)

// ScreenshotOptions controls Page.captureScreenshot's encoding. A zero
// value captures a PNG at the browser's default quality.
type ScreenshotOptions struct {
	// Format is "png" or "jpeg". Empty defaults to "png".
	Format string
	// Quality is the JPEG compression quality (0-100). Ignored for PNG.
	Quality int64
}

// Screenshot captures the current viewport as a base64-encoded image
// per opts.
func (p *Page) Screenshot(ctx context.Context, opts ScreenshotOptions) (string, error) {
	cmd := cdppage.NewCaptureScreenshot()
	if opts.Format != "" {
		cmd.Format = opts.Format
	}
	cmd.Quality = opts.Quality
	result, err := cmd.Do(ctx, p.session)
	if err != nil {
		return "", err
	}
	return result.Data, nil
}

// PDFOptions controls Page.printToPDF's page orientation.
type PDFOptions struct {
	// Landscape renders the PDF in landscape orientation instead of portrait.
	Landscape bool
}

// PDF renders the current page to a base64-encoded PDF with background
// printing enabled, per opts.
func (p *Page) PDF(ctx context.Context, opts PDFOptions) (string, error) {
	cmd := cdppage.NewPrintToPDF()
	cmd.Landscape = opts.Landscape
	result, err := cmd.Do(ctx, p.session)
	if err != nil {
		return "", err
	}
	return result.Data, nil
}
