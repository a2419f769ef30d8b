package response

import (
	"time"

	"coffee-booking/internal/data/entity"
)

type OrderItemResponse struct {
	ID        string  `json:"id"`
	ProductID *string `json:"product_id,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Total     float64             `json:"total"`
	Status    entity.OrderStatus  `json:"status"`
	Items     []OrderItemResponse `json:"items,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// CheckoutResponse carries the created order reference plus the computed
// amounts so the storefront can render the receipt.
type CheckoutResponse struct {
	OrderID  string  `json:"order_id"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func OrderItemToResponse(item *entity.OrderItem) OrderItemResponse {
	resp := OrderItemResponse{
		ID:        item.ID.String(),
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
	}

	if item.ProductID != nil {
		id := item.ProductID.String()
		resp.ProductID = &id
	}

	return resp
}

func OrderToResponse(order *entity.Order, items []*entity.OrderItem) OrderResponse {
	resp := OrderResponse{
		ID:        order.ID.String(),
		UserID:    order.UserID.String(),
		Total:     order.Total,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}

	for _, item := range items {
		resp.Items = append(resp.Items, OrderItemToResponse(item))
	}

	return resp
}
