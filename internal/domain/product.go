package domain

// Product represents a single catalog entry. Products are immutable once
// loaded: the catalog is only ever replaced wholesale, entries are never
// patched in place. A nil Price marks a priceless item, which is displayed
// but can never be purchased.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Price       *int   `json:"price"`
}

// Priceless reports whether the product has no price.
func (p Product) Priceless() bool {
	return p.Price == nil
}

// PriceValue returns the price, with priceless items counted as 0.
func (p Product) PriceValue() int {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}
