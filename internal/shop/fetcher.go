package shop

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher retrieves the raw body of a page as text.
type Fetcher interface {
	Fetch(targetURL string) (string, error)
}

// PickFetcher selects the page fetching strategy once at startup: a
// headless browser when rendered is set, a plain HTTP GET otherwise.
func PickFetcher(rendered bool, timeout time.Duration, userAgent string) Fetcher {
	if rendered {
		return &RenderedFetcher{Timeout: timeout, UserAgent: userAgent}
	}
	return NewStaticFetcher(timeout, userAgent)
}

// StaticFetcher performs a plain HTTP GET. This is enough for Shopify
// storefronts that render the collection grid server-side; themes that
// build it client-side need RenderedFetcher instead.
type StaticFetcher struct {
	Client    *http.Client
	UserAgent string
}

func NewStaticFetcher(timeout time.Duration, userAgent string) *StaticFetcher {
	return &StaticFetcher{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

func (f *StaticFetcher) Fetch(targetURL string) (string, error) {
	req, err := http.NewRequest("GET", targetURL, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("GET %s: unexpected status %d", targetURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
