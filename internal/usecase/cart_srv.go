package usecase

import (
	"context"
	"fmt"

	"coffee-booking/internal/cart"
	"coffee-booking/internal/dto/request"
	"coffee-booking/internal/dto/response"
	"coffee-booking/pkg/utils"

	"go.uber.org/zap"
)

type CartService interface {
	GetCart(ctx context.Context, cartKey string) (*response.CartResponse, error)
	AddItem(ctx context.Context, cartKey string, req *request.AddCartItemRequest) (*response.CartResponse, error)
	RemoveItem(ctx context.Context, cartKey string, itemID int) (*response.CartResponse, error)
	IncreaseQuantity(ctx context.Context, cartKey string, itemID int) (*response.CartResponse, error)
	DecreaseQuantity(ctx context.Context, cartKey string, itemID int) (*response.CartResponse, error)
	ClearCart(ctx context.Context, cartKey string) (*response.CartResponse, error)
	ToggleCart(ctx context.Context, cartKey string) (*response.CartResponse, error)
}

type cartService struct {
	carts *cart.Manager
	log   *zap.Logger
}

func NewCartService(carts *cart.Manager, log *zap.Logger) CartService {
	return &cartService{
		carts: carts,
		log:   log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) GetCart(ctx context.Context, cartKey string) (*response.CartResponse, error) {
	store := s.carts.Store(ctx, cartKey)
	resp := response.CartToResponse(store.Snapshot())
	return &resp, nil
}

func (s *cartService) AddItem(ctx context.Context, cartKey string, req *request.AddCartItemRequest) (*response.CartResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add cart item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	store := s.carts.Store(ctx, cartKey)
	store.Add(ctx, cart.Item{
		ID:          req.ID,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	})

	resp := response.CartToResponse(store.Snapshot())
	return &resp, nil
}

func (s *cartService) RemoveItem(ctx context.Context, cartKey string, itemID int) (*response.CartResponse, error) {
	store := s.carts.Store(ctx, cartKey)
	store.Remove(ctx, itemID)

	resp := response.CartToResponse(store.Snapshot())
	return &resp, nil
}

func (s *cartService) IncreaseQuantity(ctx context.Context, cartKey string, itemID int) (*response.CartResponse, error) {
	store := s.carts.Store(ctx, cartKey)
	store.IncreaseQuantity(ctx, itemID)

	resp := response.CartToResponse(store.Snapshot())
	return &resp, nil
}

func (s *cartService) DecreaseQuantity(ctx context.Context, cartKey string, itemID int) (*response.CartResponse, error) {
	store := s.carts.Store(ctx, cartKey)
	store.DecreaseQuantity(ctx, itemID)

	resp := response.CartToResponse(store.Snapshot())
	return &resp, nil
}

func (s *cartService) ClearCart(ctx context.Context, cartKey string) (*response.CartResponse, error) {
	store := s.carts.Store(ctx, cartKey)
	store.Clear(ctx)

	resp := response.CartToResponse(store.Snapshot())
	return &resp, nil
}

func (s *cartService) ToggleCart(ctx context.Context, cartKey string) (*response.CartResponse, error) {
	store := s.carts.Store(ctx, cartKey)
	store.Toggle()

	resp := response.CartToResponse(store.Snapshot())
	return &resp, nil
}
