package render

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ScreenshotOptions controls the headless browser viewport
type ScreenshotOptions struct {
	Width   int
	Height  int
	Timeout time.Duration
}

// Screenshot loads html into a headless Chrome tab and captures the full page as PNG
func Screenshot(ctx context.Context, html []byte, opts ScreenshotOptions) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.WindowSize(opts.Width, opts.Height),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	var png []byte
	if err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("getting frame tree: %w", err)
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		// quality 100 selects PNG encoding
		chromedp.FullScreenshot(&png, 100),
	); err != nil {
		return nil, fmt.Errorf("capturing screenshot: %w", err)
	}

	return png, nil
}
