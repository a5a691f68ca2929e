package entity

// Customer represents a customer of the store.
//
// TotalPurchases and TotalSpent are derived counters: they always equal the
// count and sum of the customer's committed transactions. They are maintained
// incrementally by the transaction commit path, never recomputed on read.
type Customer struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	JoinDate       string  `json:"joinDate"` // calendar date, YYYY-MM-DD
	TotalPurchases int     `json:"totalPurchases"`
	TotalSpent     float64 `json:"totalSpent"`
}
