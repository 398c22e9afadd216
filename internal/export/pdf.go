package export

import (
	"context"
	"fmt"
)

// BrowserRenderer is the narrow capability the PDF exporter needs: rasterize
// rendered HTML into an image, and compose a raster image into a PDF page.
// The chromedp implementation lives in browser.go; tests substitute fakes.
type BrowserRenderer interface {
	RenderImage(ctx context.Context, html string) ([]byte, error)
	ComposePDF(ctx context.Context, image []byte) ([]byte, error)
}

// PDFExporter captures the rendered page as a raster image and embeds it in
// an A4 PDF, so the download matches the preview pixel for pixel.
type PDFExporter struct {
	browser BrowserRenderer
}

// NewPDFExporter creates a PDF exporter backed by the given renderer.
func NewPDFExporter(b BrowserRenderer) *PDFExporter {
	return &PDFExporter{browser: b}
}

// Export renders html to a raster image and wraps it in a PDF. The html is a
// frozen snapshot captured at invocation; later document edits cannot affect
// the artifact.
func (e *PDFExporter) Export(ctx context.Context, html string) ([]byte, error) {
	image, err := e.browser.RenderImage(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize resume: %w", err)
	}

	pdf, err := e.browser.ComposePDF(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("failed to compose PDF: %w", err)
	}
	return pdf, nil
}
