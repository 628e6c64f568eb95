package shop

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"store-monitor/pkg/models"
	"testing"
	"time"
)

const productJSON = `{
	"product": {
		"title": "Indiana Tee",
		"handle": "indiana-tee",
		"variants": [
			{"id": 1, "title": "Small", "price": "34.00", "available": true},
			{"id": 2, "title": "Large", "price": "34.00", "available": false}
		]
	}
}`

func productServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/indiana-tee.json" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestProductJSONURL(t *testing.T) {
	got := ProductJSONURL("https://store.dead.net/products/indiana-tee/")
	expected := "https://store.dead.net/products/indiana-tee.json"
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestCheckVariantSoldOut(t *testing.T) {
	server := productServer(t, productJSON)
	fetcher := NewStaticFetcher(5*time.Second, "test-agent")
	product := models.ProductRef{URL: server.URL + "/products/indiana-tee", Title: "Indiana"}

	status, doc, err := CheckVariant(fetcher, product, "large")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if status != models.SoldOut {
		t.Errorf("Expected SoldOut, got %v", status)
	}
	if doc == nil || doc.Title != "Indiana Tee" {
		t.Errorf("Expected the decoded product document, got %+v", doc)
	}
}

func TestCheckVariantAvailable(t *testing.T) {
	server := productServer(t, productJSON)
	fetcher := NewStaticFetcher(5*time.Second, "test-agent")
	product := models.ProductRef{URL: server.URL + "/products/indiana-tee", Title: "Indiana"}

	status, _, err := CheckVariant(fetcher, product, "small")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if status != models.Available {
		t.Errorf("Expected Available, got %v", status)
	}
}

func TestCheckVariantIsCaseInsensitive(t *testing.T) {
	server := productServer(t, productJSON)
	fetcher := NewStaticFetcher(5*time.Second, "test-agent")
	product := models.ProductRef{URL: server.URL + "/products/indiana-tee", Title: "Indiana"}

	status, _, err := CheckVariant(fetcher, product, "LARGE")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if status != models.SoldOut {
		t.Errorf("Expected SoldOut for 'LARGE', got %v", status)
	}
}

func TestCheckVariantSizeNotFound(t *testing.T) {
	server := productServer(t, productJSON)
	fetcher := NewStaticFetcher(5*time.Second, "test-agent")
	product := models.ProductRef{URL: server.URL + "/products/indiana-tee", Title: "Indiana"}

	status, _, err := CheckVariant(fetcher, product, "xlarge")
	if err != nil {
		t.Fatalf("SizeNotFound is a classification, not an error; got %v", err)
	}
	if status != models.SizeNotFound {
		t.Errorf("Expected SizeNotFound, got %v", status)
	}
}

func TestCheckVariantMalformedJSON(t *testing.T) {
	server := productServer(t, `<html>not json</html>`)
	fetcher := NewStaticFetcher(5*time.Second, "test-agent")
	product := models.ProductRef{URL: server.URL + "/products/indiana-tee", Title: "Indiana"}

	_, _, err := CheckVariant(fetcher, product, "large")
	if err == nil {
		t.Fatal("Expected an error for a non-JSON body")
	}
}

func TestCheckVariantMissingProductObject(t *testing.T) {
	server := productServer(t, `{"errors": "Not Found"}`)
	fetcher := NewStaticFetcher(5*time.Second, "test-agent")
	product := models.ProductRef{URL: server.URL + "/products/indiana-tee", Title: "Indiana"}

	_, _, err := CheckVariant(fetcher, product, "large")
	if err == nil {
		t.Fatal("Expected an error when the product object is missing")
	}
}

func TestCheckVariantFetchFailure(t *testing.T) {
	server := productServer(t, productJSON)
	fetcher := NewStaticFetcher(5*time.Second, "test-agent")
	// Path the server does not serve -> 404 -> fetch error.
	product := models.ProductRef{URL: server.URL + "/products/missing-tee", Title: "Missing"}

	_, _, err := CheckVariant(fetcher, product, "large")
	if err == nil {
		t.Fatal("Expected an error when the JSON endpoint returns 404")
	}
}
