package domain

// Order is the request payload sent to the backend when the user completes
// checkout. It is transient: built from the cart and buyer at submission
// time, never stored. The wire contract is flat: buyer fields sit at the
// top level next to the item ids and the client-computed total.
type Order struct {
	Payment Payment  `json:"payment"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Total   int      `json:"total"`
	Items   []string `json:"items"`
}

// NewOrder assembles an order payload from item ids, a buyer snapshot and
// the client-computed total.
func NewOrder(items []string, buyer Buyer, total int) Order {
	return Order{
		Payment: buyer.Payment,
		Email:   buyer.Email,
		Phone:   buyer.Phone,
		Address: buyer.Address,
		Total:   total,
		Items:   items,
	}
}

// OrderResult is the backend's confirmation of an accepted order. Total is
// the server-side recomputed amount and takes precedence over the client's.
type OrderResult struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
}
