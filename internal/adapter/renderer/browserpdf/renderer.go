// Package browserpdf rasterizes HTML to PDF through a headless Chromium
// driven over the DevTools protocol. The browser is launched and torn down
// per call: no pooling, no leaked processes on any exit path.
package browserpdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

const (
	viewportWidth  = 1200
	viewportHeight = 800
	// content load (network idle) budget per render
	loadTimeout = 30 * time.Second
	// A4 in inches
	paperWidth  = 8.27
	paperHeight = 11.69
	// 2 cm margins
	marginInch = 2.0 / 2.54

	requestIdleWindow = 300 * time.Millisecond
)

type Renderer struct{}

func New() *Renderer { return &Renderer{} }

// RenderPDF loads html into a fresh headless browser page and prints it to
// outputPath with printed backgrounds, A4 paper and CSS page size preferred.
func (r *Renderer) RenderPDF(ctx context.Context, html string, outputPath string) error {
	l := launcher.New().Headless(true).NoSandbox(true)
	controlURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect browser: %w", err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return fmt.Errorf("set viewport: %w", err)
	}

	page = page.Timeout(loadTimeout)
	waitIdle := page.WaitRequestIdle(requestIdleWindow, nil, nil, nil)
	if err := page.SetDocumentContent(html); err != nil {
		return fmt.Errorf("set content: %w", err)
	}
	waitIdle()

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        gson.Num(paperWidth),
		PaperHeight:       gson.Num(paperHeight),
		MarginTop:         gson.Num(marginInch),
		MarginBottom:      gson.Num(marginInch),
		MarginLeft:        gson.Num(marginInch),
		MarginRight:       gson.Num(marginInch),
	})
	if err != nil {
		return fmt.Errorf("print to pdf: %w", err)
	}
	pdf, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read pdf stream: %w", err)
	}

	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
