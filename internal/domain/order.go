package domain

// GuestIdentity is recorded on orders placed without a signed-in account.
const GuestIdentity = "Guest"

// OrderDateLayout formats an order's human-readable creation date.
const OrderDateLayout = "Jan 2, 2006 3:04:05 PM"

// Order is a completed checkout. Orders are immutable once recorded:
// Items is a snapshot of the cart at checkout time, never a live view.
type Order struct {
	ID        int64      `json:"id"`
	UserEmail string     `json:"userEmail"`
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
	Date      string     `json:"date"`
}
