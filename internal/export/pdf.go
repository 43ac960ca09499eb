// Package export renders resume HTML into PDFs and JPEG previews using a
// headless Chrome controlled through chromedp.
package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 portrait in inches with 10mm margins.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.3937

	// Pages render at double device scale so embedded raster content stays
	// sharp in print.
	renderScale = 2

	// JPEG quality for previews, out of 100.
	previewQuality = 98

	renderTimeout = 60 * time.Second
)

// ChromeRenderer renders HTML in a headless Chrome instance. A fresh browser
// is launched per call; rendering is rare enough that keeping one alive is
// not worth the lifecycle handling.
type ChromeRenderer struct{}

// NewChromeRenderer constructs a ChromeRenderer.
func NewChromeRenderer() *ChromeRenderer { return &ChromeRenderer{} }

// RenderPDF converts resume HTML into an A4 portrait PDF.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	var pdf []byte
	err := r.run(ctx, html, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		pdf, _, err = page.PrintToPDF().
			WithPrintBackground(true).
			WithLandscape(false).
			WithPaperWidth(paperWidthIn).
			WithPaperHeight(paperHeightIn).
			WithMarginTop(marginIn).
			WithMarginBottom(marginIn).
			WithMarginLeft(marginIn).
			WithMarginRight(marginIn).
			WithScale(1).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// RenderPreview captures the resume as a full-page JPEG screenshot.
func (r *ChromeRenderer) RenderPreview(ctx context.Context, html string) ([]byte, error) {
	var img []byte
	err := r.run(ctx, html,
		emulation.SetDeviceMetricsOverride(794, 1123, renderScale, false),
		chromedp.FullScreenshot(&img, previewQuality),
	)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (r *ChromeRenderer) run(ctx context.Context, html string, actions ...chromedp.Action) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, renderTimeout)
	defer cancelRun()

	// Chrome only prints file and http URLs faithfully, so the document goes
	// through a temp file rather than a data URI.
	tmpDir, err := os.MkdirTemp("", "jumysal-export-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return err
	}

	all := []chromedp.Action{
		chromedp.Navigate("file://" + htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	all = append(all, actions...)
	return chromedp.Run(runCtx, all...)
}
