package response

import (
	"coffee-booking/internal/cart"
)

type CartResponse struct {
	Items      []cart.Item `json:"items"`
	TotalItems int         `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
	Open       bool        `json:"open"`
}

func CartToResponse(snapshot cart.Snapshot) CartResponse {
	items := snapshot.Items
	if items == nil {
		items = []cart.Item{}
	}

	return CartResponse{
		Items:      items,
		TotalItems: snapshot.TotalItems,
		TotalPrice: snapshot.TotalPrice,
		Open:       snapshot.Open,
	}
}
