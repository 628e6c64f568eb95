package models

// ProductRef points at a single product page found on the collection listing.
type ProductRef struct {
	URL   string
	Title string
}

// Variant mirrors one entry of the "variants" array in the Shopify
// product JSON endpoint (<product-url>.json).
type Variant struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
}

type Product struct {
	Title    string    `json:"title"`
	Handle   string    `json:"handle"`
	Variants []Variant `json:"variants"`
}

// ProductDocument is the top-level shape of the JSON endpoint.
type ProductDocument struct {
	Product *Product `json:"product"`
}
