package domain

// Product represents a purchasable item in the catalog
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// LineItem is one product entry within a cart, with its quantity.
// A cart holds at most one line item per product id.
type LineItem struct {
	Product
	Qty int `json:"qty"`
}

// Subtotal returns the line's contribution to the cart total.
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Qty)
}

// SeedProducts returns the default catalog installed on first run
// or when the persisted catalog is unreadable.
func SeedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Blue Gem Bracelet", Price: 6, Image: "images/gem_blue.JPG"},
		{ID: 2, Name: "Purple Gem Bracelet", Price: 6, Image: "images/gem_purple.JPG"},
		{ID: 3, Name: "Dumbbell Necklace", Price: 10, Image: "images/dumbneck(small).jpg"},
		{ID: 4, Name: "Superman Ring", Price: 7, Image: "images/superman.jpg"},
		{ID: 5, Name: "Grey Gem Bracelet", Price: 6, Image: "images/gem_grey.JPG"},
		{ID: 6, Name: "Pink Gem Bracelet", Price: 6, Image: "images/gem_pink.JPG"},
	}
}
