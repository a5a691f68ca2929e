package entity

// Product represents a catalog product.
//
// Stock is decremented by committed transaction line quantities. No floor is
// enforced; oversold products go negative and are surfaced by the low-stock
// report rather than rejected at commit time.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"` // free-text grouping, not a separate entity
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Unit        string  `json:"unit"` // display label, e.g. "lb"
	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
}
