package shop

import (
	"context"
	"fmt"
	"github.com/chromedp/chromedp"
	"time"
)

// RenderedFetcher drives a headless browser so that collection pages
// built client-side still come back as a full DOM.
type RenderedFetcher struct {
	Timeout   time.Duration
	UserAgent string
}

func (f *RenderedFetcher) Fetch(targetURL string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(f.UserAgent),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	ctx, cancel := context.WithTimeout(browserCtx, f.Timeout)
	defer cancel()

	var rendered string
	err := chromedp.Run(ctx,
		chromedp.Navigate(targetURL),
		chromedp.OuterHTML("html", &rendered),
	)
	if err != nil {
		return "", fmt.Errorf("rendered fetch of %s: %w", targetURL, err)
	}
	return rendered, nil
}
