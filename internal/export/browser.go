package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 at 96 DPI; matches the preview page box in the rendering CSS.
const (
	pageWidthPx  = 794
	pageHeightPx = 1123
	// A4 in inches for PrintToPDF.
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// ChromeRenderer implements BrowserRenderer with a headless Chrome instance.
// CHROME_PATH overrides the browser binary when set.
type ChromeRenderer struct {
	timeout time.Duration
}

// NewChromeRenderer returns a renderer with a 60s per-operation timeout.
func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{timeout: 60 * time.Second}
}

// RenderImage loads html in headless Chrome and captures a full-page
// screenshot at the preview's page size.
func (r *ChromeRenderer) RenderImage(ctx context.Context, html string) ([]byte, error) {
	var buf []byte
	err := r.run(ctx, html,
		chromedp.EmulateViewport(pageWidthPx, pageHeightPx),
		chromedp.FullScreenshot(&buf, 95),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ComposePDF prints an A4 PDF of a page containing only the raster image, so
// the PDF is a faithful container for the captured preview.
func (r *ChromeRenderer) ComposePDF(ctx context.Context, image []byte) ([]byte, error) {
	wrapper := fmt.Sprintf(
		`<!DOCTYPE html><html><head><style>*{margin:0}img{width:100%%;display:block}</style></head>`+
			`<body><img src="data:image/png;base64,%s"></body></html>`,
		base64.StdEncoding.EncodeToString(image))

	var buf []byte
	err := r.run(ctx, wrapper, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(paperWidthIn).
			WithPaperHeight(paperHeightIn).
			WithMarginTop(0).
			WithMarginBottom(0).
			WithMarginLeft(0).
			WithMarginRight(0).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// run writes html to a temporary file, opens it in a fresh headless browser
// context, waits for the body, and executes actions.
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

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	all := append([]chromedp.Action{
		chromedp.Navigate("file://" + htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}, actions...)

	return chromedp.Run(runCtx, all...)
}
