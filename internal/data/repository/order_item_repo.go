package repository

import (
	"context"
	"fmt"

	"coffee-booking/internal/data/entity"
	"coffee-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderItemRepository interface {
	CreateBatch(ctx context.Context, items []*entity.OrderItem) error
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
}

type orderItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderItemRepository(db database.PgxIface, log *zap.Logger) OrderItemRepository {
	return &orderItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "order_item")),
	}
}

func (r *orderItemRepository) CreateBatch(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order items transaction", zap.Error(err))
		return fmt.Errorf("begin order items transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, item := range items {
		_, err := tx.Exec(ctx, query,
			item.ID,
			item.OrderID,
			item.ProductID,
			item.Quantity,
			item.UnitPrice,
			item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert order item",
				zap.Error(err),
				zap.String("order_id", item.OrderID.String()),
			)
			return fmt.Errorf("insert order item for order %s: %w", item.OrderID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit order items", zap.Error(err))
		return fmt.Errorf("commit order items: %w", err)
	}

	return nil
}

func (r *orderItemRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find order items",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find order items for order %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
