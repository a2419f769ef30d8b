package usecase

import (
	"context"
	"fmt"

	"coffee-booking/internal/data/repository"
	"coffee-booking/internal/dto/response"
	"coffee-booking/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	GetProducts(ctx context.Context) ([]response.ProductResponse, error)
	GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error)
}

type productService struct {
	products repository.ProductRepository
	log      *zap.Logger
}

func NewProductService(products repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		products: products,
		log:      log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	items := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, response.ProductToResponse(product))
	}

	return items, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	productUUID, err := utils.ParseUUID(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID format %s: %w", productID, err)
	}

	product, err := s.products.FindByID(ctx, productUUID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s not found", productID)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}
