package cart

// Item is one selected menu entry pending checkout. Uniqueness is by ID;
// insertion order is preserved for display only.
type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
}

// TotalItems sums the quantities of all entries.
func TotalItems(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price times quantity over all entries.
func TotalPrice(items []Item) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
