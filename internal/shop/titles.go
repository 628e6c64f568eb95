package shop

import (
	"encoding/json"
	"github.com/PuerkitoBio/goquery"
	"os"
	"strings"
)

// maxCachedTitles keeps the cache file small.
const maxCachedTitles = 50

// ProductTitles pulls product titles out of a collection listing.
// Shopify themes render them inside h2/h3 heading tags.
func ProductTitles(htmlText string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}

	var titles []string
	doc.Find("h2, h3").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			titles = append(titles, text)
		}
	})
	return titles, nil
}

// TitleCache remembers which product titles previous runs have seen.
// It belongs to the new-product watcher only; the variant monitor keeps
// no state between runs.
type TitleCache struct {
	Path string
}

// Load returns the cached titles, or nil if the file is missing or
// unreadable. A broken cache just means every current title looks new.
func (c TitleCache) Load() []string {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil
	}
	var titles []string
	if err := json.Unmarshal(data, &titles); err != nil {
		return nil
	}
	return titles
}

func (c TitleCache) Save(titles []string) error {
	if len(titles) > maxCachedTitles {
		titles = titles[:maxCachedTitles]
	}
	data, err := json.Marshal(titles)
	if err != nil {
		return err
	}
	return os.WriteFile(c.Path, data, 0644)
}

// NewTitles returns the entries of current that lastSeen does not
// contain, preserving order.
func NewTitles(current, lastSeen []string) []string {
	seen := make(map[string]bool, len(lastSeen))
	for _, t := range lastSeen {
		seen[t] = true
	}

	var fresh []string
	for _, t := range current {
		if !seen[t] {
			fresh = append(fresh, t)
		}
	}
	return fresh
}
