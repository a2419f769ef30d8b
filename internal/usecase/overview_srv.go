package usecase

import (
	"context"
	"fmt"

	"coffee-booking/internal/data/entity"
	"coffee-booking/internal/data/repository"
	"coffee-booking/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type OverviewService interface {
	GetOverview(ctx context.Context) (*response.OverviewResponse, error)
}

type overviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOverviewService(repo *repository.Repository, log *zap.Logger) OverviewService {
	return &overviewService{
		repo: repo,
		log:  log.With(zap.String("service", "overview")),
	}
}

// GetOverview gathers the dashboard counters. Each goroutine writes its own
// fields, so the response needs no locking.
func (s *overviewService) GetOverview(ctx context.Context) (*response.OverviewResponse, error) {
	var resp response.OverviewResponse

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.repo.Order.Stats(ctx)
		if err != nil {
			return err
		}
		resp.TotalOrders = stats.Total
		resp.PendingOrders = stats.Pending
		resp.TotalRevenue = stats.Revenue
		return nil
	})

	g.Go(func() error {
		total, err := s.repo.Booking.Count(ctx)
		if err != nil {
			return err
		}
		pending, err := s.repo.Booking.CountByStatus(ctx, entity.BookingStatusPending)
		if err != nil {
			return err
		}
		resp.TotalBookings = total
		resp.PendingBookings = pending
		return nil
	})

	g.Go(func() error {
		total, err := s.repo.Contact.Count(ctx, nil)
		if err != nil {
			return err
		}
		resp.TotalContacts = total
		return nil
	})

	g.Go(func() error {
		total, err := s.repo.Product.Count(ctx)
		if err != nil {
			return err
		}
		resp.TotalProducts = total
		return nil
	})

	g.Go(func() error {
		total, err := s.repo.User.Count(ctx)
		if err != nil {
			return err
		}
		resp.TotalUsers = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collect overview stats: %w", err)
	}

	return &resp, nil
}
