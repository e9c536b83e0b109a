package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// RenderService rasterizes compiled markup with headless Chrome. The
// markup is self-contained (all assets embedded as data URIs by the
// compiler), so the browser needs no network or filesystem access.
type RenderService struct{}

// NewRenderService creates a new RenderService
func NewRenderService() *RenderService {
	return &RenderService{}
}

// Ensure RenderService implements RenderServiceInterface
var _ RenderServiceInterface = (*RenderService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	// Check environment variable first
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	// Common paths to check
	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// waitForAssetsJS blocks until fonts and every img element have finished
// loading, with a per-image timeout so a broken external logo URL cannot
// hang the capture.
const waitForAssetsJS = `
	(function() {
		return Promise.all([
			document.fonts.ready,
			Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
				return new Promise((resolve) => {
					if (img.complete && img.naturalWidth > 0 && img.naturalHeight > 0) {
						resolve();
						return;
					}
					const timeout = setTimeout(() => resolve(), 5000);
					img.onload = () => { clearTimeout(timeout); resolve(); };
					img.onerror = () => { clearTimeout(timeout); resolve(); };
				});
			}))
		]);
	})();
`

// RenderPNG rasterizes markup at the given pixel dimensions. The capture
// is retried once because browser startup and capture are transient
// territory; callers should not mix these failures up with compilation
// errors.
func (s *RenderService) RenderPNG(ctx context.Context, markup string, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid render dimensions %dx%d", width, height)
	}

	const maxAttempts = 2
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		png, err := s.capture(ctx, markup, width, height)
		if err == nil {
			return png, nil
		}
		lastErr = err
		log.Printf("⚠️ RenderPNG: attempt %d/%d failed: %v", attempt, maxAttempts, err)
		time.Sleep(400 * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to render PNG: %w", lastErr)
}

// capture runs one headless Chrome session over the markup via a data URL.
func (s *RenderService) capture(ctx context.Context, markup string, width, height int) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Detect Chrome/Chromium path and configure chromedp
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	// The markup is self-contained, so a data URL avoids serving it.
	pageURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(markup))

	var buf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(waitForAssetsJS, nil),
		chromedp.Sleep(500*time.Millisecond), // Final wait for layout
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("empty screenshot buffer")
	}

	return buf, nil
}
