package shop

import (
	"github.com/temoto/robotstxt"
	"net/http"
	"net/url"
)

// RobotsAllowed returns true if userAgent is allowed to visit the path
// of targetURL according to the host's robots.txt.
func RobotsAllowed(client *http.Client, targetURL, userAgent string) bool {
	parsedURL, err := url.Parse(targetURL)
	if err != nil {
		return false
	}

	// Construct the root URL to find robots.txt (e.g., https://example.com/robots.txt)
	robotsURL := parsedURL.Scheme + "://" + parsedURL.Host + "/robots.txt"

	resp, err := client.Get(robotsURL)
	if err != nil {
		// If robots.txt can't be fetched, assume we are allowed.
		return true
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return true
	}

	// Keep the query string: rules like "Disallow: /*?sort_by=" match on it.
	path := parsedURL.Path
	if parsedURL.RawQuery != "" {
		path += "?" + parsedURL.RawQuery
	}
	return data.TestAgent(path, userAgent)
}
