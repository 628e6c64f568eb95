package monitor

import (
	"fmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"store-monitor/internal/shop"
	"store-monitor/pkg/models"
)

type Classification int

const (
	StateNotFound Classification = iota
	SizeNotFound
	SoldOut
	Available
)

func (c Classification) String() string {
	switch c {
	case SizeNotFound:
		return "SizeNotFound"
	case SoldOut:
		return "SoldOut"
	case Available:
		return "Available"
	default:
		return "StateNotFound"
	}
}

// Result is what one run of the pipeline produced.
type Result struct {
	Classification Classification
	Message        string
	Product        models.ProductRef
}

// Monitor wires the pipeline stages together: fetch the collection
// page, find the product link, check the variant, build the message.
// One run is one forward pass; there is no retry edge.
type Monitor struct {
	Fetcher       shop.Fetcher
	CollectionURL string
	StateKeyword  string
	SizeKeyword   string
}

var titleCaser = cases.Title(language.English)

func (m *Monitor) Run() (Result, error) {
	state := titleCaser.String(m.StateKeyword)
	size := titleCaser.String(m.SizeKeyword)

	// 1. Fetch the collection listing
	page, err := m.Fetcher.Fetch(m.CollectionURL)
	if err != nil {
		return Result{}, fmt.Errorf("fetch collection page: %w", err)
	}

	// 2. Find the product link for the state
	product, found, err := shop.FindProductLink(page, m.CollectionURL, m.StateKeyword)
	if err != nil {
		return Result{}, fmt.Errorf("scan collection page: %w", err)
	}
	if !found {
		return Result{
			Classification: StateNotFound,
			Message:        fmt.Sprintf("%s shirt page is not yet available.", state),
		}, nil
	}

	// 3. Check the variant's stock status
	status, _, err := shop.CheckVariant(m.Fetcher, product, m.SizeKeyword)
	if err != nil {
		return Result{}, err
	}

	result := Result{Product: product}
	switch status {
	case models.Available:
		result.Classification = Available
		result.Message = fmt.Sprintf("%s %s is available! %s", state, size, product.URL)
	case models.SoldOut:
		result.Classification = SoldOut
		result.Message = fmt.Sprintf("%s %s is currently sold out. %s", state, size, product.URL)
	default:
		result.Classification = SizeNotFound
		result.Message = fmt.Sprintf("%s product found, but the %s variant is missing.", state, size)
	}
	return result, nil
}
