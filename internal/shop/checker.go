package shop

import (
	"encoding/json"
	"fmt"
	"store-monitor/pkg/models"
	"strings"
)

// ProductJSONURL derives the Shopify JSON endpoint for a product page.
func ProductJSONURL(productURL string) string {
	return strings.TrimRight(productURL, "/") + ".json"
}

// CheckVariant fetches the product's JSON document and reports the stock
// status of the first variant whose title contains sizeKeyword
// (case-insensitive). Availability comes from the variant's "available"
// flag, the one stock indicator the endpoint exposes. A missing variant
// is a SizeNotFound classification, not an error; a malformed document is.
func CheckVariant(fetcher Fetcher, product models.ProductRef, sizeKeyword string) (models.VariantStatus, *models.Product, error) {
	body, err := fetcher.Fetch(ProductJSONURL(product.URL))
	if err != nil {
		return models.SizeNotFound, nil, fmt.Errorf("fetch product JSON: %w", err)
	}

	var doc models.ProductDocument
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return models.SizeNotFound, nil, fmt.Errorf("decode product JSON: %w", err)
	}
	if doc.Product == nil {
		return models.SizeNotFound, nil, fmt.Errorf("product JSON from %s has no product object", product.URL)
	}

	needle := strings.ToLower(sizeKeyword)
	for _, variant := range doc.Product.Variants {
		if strings.Contains(strings.ToLower(variant.Title), needle) {
			if variant.Available {
				return models.Available, doc.Product, nil
			}
			return models.SoldOut, doc.Product, nil
		}
	}

	return models.SizeNotFound, doc.Product, nil
}
