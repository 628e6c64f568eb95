package shop

import (
	"golang.org/x/net/html"
	"net/url"
	"store-monitor/pkg/models"
	"strings"
)

// FindProductLink scans collection HTML for the first anchor whose
// visible text or href contains keyword (case-insensitive). Relative
// hrefs are resolved against baseURL. First match wins; there is no
// ranking among multiple candidates.
func FindProductLink(htmlText, baseURL, keyword string) (models.ProductRef, bool, error) {
	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return models.ProductRef{}, false, err
	}

	needle := strings.ToLower(keyword)

	var found models.ProductRef
	var matched bool

	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if matched {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" {
			var href string
			for _, a := range n.Attr {
				if a.Key == "href" {
					href = a.Val
				}
			}
			text := anchorText(n)
			if href != "" &&
				(strings.Contains(strings.ToLower(text), needle) ||
					strings.Contains(strings.ToLower(href), needle)) {
				// Resolve relative URLs
				absoluteURL := resolveURL(baseURL, href)
				if absoluteURL != "" {
					found = models.ProductRef{URL: absoluteURL, Title: text}
					matched = true
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	return found, matched, nil
}

// anchorText collects the trimmed text beneath an anchor node.
func anchorText(n *html.Node) string {
	var textBuilder strings.Builder

	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if len(text) > 0 {
				if textBuilder.Len() > 0 {
					textBuilder.WriteString(" ")
				}
				textBuilder.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)

	return textBuilder.String()
}

// Utility to resolve relative URLs (e.g. "/products/x" -> "https://site.com/products/x")
func resolveURL(base, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(u).String()
}
