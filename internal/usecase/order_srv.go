package usecase

import (
	"context"
	"fmt"
	"time"

	"coffee-booking/internal/cart"
	"coffee-booking/internal/data/entity"
	"coffee-booking/internal/data/repository"
	"coffee-booking/internal/dto/request"
	"coffee-booking/internal/dto/response"
	"coffee-booking/pkg/realtime"
	"coffee-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// Checkout turns the cart into an order. On a partial failure the
	// response still carries the order id created in the first step.
	Checkout(ctx context.Context, userID, cartKey string) (*response.CheckoutResponse, error)
	GetUserOrders(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetOrderByID(ctx context.Context, userID, orderID string) (*response.OrderResponse, error)

	// Admin endpoints
	GetAllOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo     *repository.Repository
	carts    *cart.Manager
	notifier realtime.Notifier
	log      *zap.Logger
}

func NewOrderService(repo *repository.Repository, carts *cart.Manager, notifier realtime.Notifier, log *zap.Logger) OrderService {
	return &orderService{
		repo:     repo,
		carts:    carts,
		notifier: notifier,
		log:      log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Checkout(ctx context.Context, userID, cartKey string) (*response.CheckoutResponse, error) {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	store := s.carts.Store(ctx, cartKey)
	snapshot := store.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, fmt.Errorf("cannot checkout an empty cart")
	}

	subtotal := snapshot.TotalPrice
	tax := utils.Tax(subtotal)
	total := subtotal + tax

	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userUUID,
		Total:  total,
		Status: entity.OrderStatusPending,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publish(ctx, realtime.EventInsert, order.ID.String())

	resp := &response.CheckoutResponse{
		OrderID:  order.ID.String(),
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}

	// The order row exists from here on. Item recording failures surface
	// alongside the response so the caller still learns the order id.
	items, err := s.buildOrderItems(ctx, order.ID, snapshot.Items, now)
	if err != nil {
		s.log.Error("Checkout item resolution failed",
			zap.Error(err), zap.String("order_id", order.ID.String()))
		return resp, fmt.Errorf("record order items for order %s: %w", order.ID.String(), err)
	}

	if err := s.repo.OrderItem.CreateBatch(ctx, items); err != nil {
		s.log.Error("Checkout item insert failed",
			zap.Error(err), zap.String("order_id", order.ID.String()))
		return resp, fmt.Errorf("record order items for order %s: %w", order.ID.String(), err)
	}

	// The cart is emptied only once the order is fully recorded
	store.Clear(ctx)

	s.log.Info("Checkout completed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID),
		zap.Float64("subtotal", subtotal),
		zap.Float64("tax", tax),
		zap.Float64("total", total),
	)

	return resp, nil
}

// buildOrderItems resolves cart entries to catalog products by name. An
// entry with no matching product keeps a nil product id rather than
// failing the whole checkout.
func (s *orderService) buildOrderItems(ctx context.Context, orderID uuid.UUID, cartItems []cart.Item, now time.Time) ([]*entity.OrderItem, error) {
	names := make([]string, 0, len(cartItems))
	for _, item := range cartItems {
		names = append(names, item.Name)
	}

	products, err := s.repo.Product.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	productIDs := make(map[string]uuid.UUID, len(products))
	for _, product := range products {
		productIDs[product.Name] = product.ID
	}

	items := make([]*entity.OrderItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		item := &entity.OrderItem{
			BaseSimple: entity.BaseSimple{
				ID:        utils.GenerateUUID(),
				CreatedAt: now,
			},
			OrderID:   orderID,
			Quantity:  cartItem.Quantity,
			UnitPrice: cartItem.Price,
		}

		if productID, ok := productIDs[cartItem.Name]; ok {
			id := productID
			item.ProductID = &id
		} else {
			s.log.Warn("Cart entry has no catalog product",
				zap.String("name", cartItem.Name),
				zap.String("order_id", orderID.String()),
			)
		}

		items = append(items, item)
	}

	return items, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	orders, err := s.repo.Order.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}

	total, err := s.repo.Order.CountByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("count user orders: %w", err)
	}

	items := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, response.OrderToResponse(order, nil))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, userID, orderID string) (*response.OrderResponse, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Non-admin callers may only read their own orders
	if userID != "" && order.UserID.String() != userID {
		return nil, fmt.Errorf("order %s not found", orderID)
	}

	orderItems, err := s.repo.OrderItem.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("find order items: %w", err)
	}

	resp := response.OrderToResponse(order, orderItems)
	return &resp, nil
}

func (s *orderService) GetAllOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	orders, err := s.repo.Order.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	total, err := s.repo.Order.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	items := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, response.OrderToResponse(order, nil))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	status := entity.OrderStatus(req.Status)
	if err := s.repo.Order.UpdateStatus(ctx, order.ID, status); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	order.Status = status

	s.log.Info("Order status changed",
		zap.String("order_id", orderID),
		zap.String("status", req.Status),
	)
	s.publish(ctx, realtime.EventUpdate, orderID)

	resp := response.OrderToResponse(order, nil)
	return &resp, nil
}

func (s *orderService) findOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	orderUUID, err := utils.ParseUUID(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format %s: %w", orderID, err)
	}

	order, err := s.repo.Order.FindByID(ctx, orderUUID)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s not found", orderID)
	}

	return order, nil
}

func (s *orderService) publish(ctx context.Context, eventType realtime.EventType, id string) {
	event := realtime.Event{
		Table: "orders",
		Type:  eventType,
		ID:    id,
		At:    time.Now(),
	}
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish order change", zap.Error(err), zap.String("id", id))
	}
}
