package entity

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
)

type Order struct {
	Base
	UserID uuid.UUID   `db:"user_id"`
	Total  float64     `db:"total"`
	Status OrderStatus `db:"status"`
}

// OrderStats aggregates the order table for the admin overview.
type OrderStats struct {
	Total   int64
	Pending int64
	Revenue float64
}

// OrderItem rows are immutable after creation. ProductID is nil when the
// cart entry could not be resolved to a catalog product by name.
type OrderItem struct {
	BaseSimple
	OrderID   uuid.UUID  `db:"order_id"`
	ProductID *uuid.UUID `db:"product_id"`
	Quantity  int        `db:"quantity"`
	UnitPrice float64    `db:"unit_price"`
}
