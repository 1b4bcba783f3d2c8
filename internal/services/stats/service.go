// Package stats computes dashboard aggregates from current table state.
// Nothing here is cached or incrementally maintained; every call re-runs
// the queries, and the first failing query aborts the whole report.
package stats

import (
	"context"
	"fmt"
	"time"

	"agrimart/internal/models"
	"agrimart/internal/repositories"
)

const recentLimit = 10

type Service interface {
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
	GetDetailedAnalytics(ctx context.Context) (*models.DetailedAnalytics, error)
	GetVendorStats(ctx context.Context, vendorID uint) (*models.VendorStats, error)
}

type service struct {
	userRepo    repositories.UserRepository
	vendorRepo  repositories.VendorRepository
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	now         func() time.Time
}

func NewService(
	userRepo repositories.UserRepository,
	vendorRepo repositories.VendorRepository,
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
) Service {
	return &service{
		userRepo:    userRepo,
		vendorRepo:  vendorRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		now:         time.Now,
	}
}

// GrowthPercent computes the month-over-month growth percentage. A zero
// previous period yields 0, never Inf or NaN.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func (s *service) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	stats := &models.AdminStats{}

	var err error
	if stats.TotalUsers, err = s.userRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.TotalVendors, err = s.vendorRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count vendors: %w", err)
	}
	if stats.PendingVendors, err = s.vendorRepo.CountByStatus(models.StatusPending); err != nil {
		return nil, fmt.Errorf("failed to count pending vendors: %w", err)
	}
	if stats.TotalProducts, err = s.productRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if stats.TotalOrders, err = s.orderRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if stats.TotalRevenue, err = s.orderRepo.RevenueTotal(); err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if stats.RecentOrders, err = s.orderRepo.ListRecent(recentLimit); err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}
	if stats.RecentVendors, err = s.vendorRepo.ListRecent(recentLimit); err != nil {
		return nil, fmt.Errorf("failed to list recent vendors: %w", err)
	}

	return stats, nil
}

func (s *service) GetDetailedAnalytics(ctx context.Context) (*models.DetailedAnalytics, error) {
	now := s.now()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousStart := currentStart.AddDate(0, -1, 0)

	currentRevenue, err := s.orderRepo.RevenueBetween(currentStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to sum current revenue: %w", err)
	}
	previousRevenue, err := s.orderRepo.RevenueBetween(previousStart, currentStart)
	if err != nil {
		return nil, fmt.Errorf("failed to sum previous revenue: %w", err)
	}

	currentOrders, err := s.orderRepo.CountBetween(currentStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count current orders: %w", err)
	}
	previousOrders, err := s.orderRepo.CountBetween(previousStart, currentStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count previous orders: %w", err)
	}

	currentUsers, err := s.userRepo.CountCreatedBetween(currentStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count current users: %w", err)
	}
	previousUsers, err := s.userRepo.CountCreatedBetween(previousStart, currentStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count previous users: %w", err)
	}

	return &models.DetailedAnalytics{
		Revenue: models.MonthDelta{
			Current:       currentRevenue,
			Previous:      previousRevenue,
			GrowthPercent: GrowthPercent(currentRevenue, previousRevenue),
		},
		Orders: models.MonthDelta{
			Current:       float64(currentOrders),
			Previous:      float64(previousOrders),
			GrowthPercent: GrowthPercent(float64(currentOrders), float64(previousOrders)),
		},
		NewUsers: models.MonthDelta{
			Current:       float64(currentUsers),
			Previous:      float64(previousUsers),
			GrowthPercent: GrowthPercent(float64(currentUsers), float64(previousUsers)),
		},
		GeneratedAt: now,
	}, nil
}

func (s *service) GetVendorStats(ctx context.Context, vendorID uint) (*models.VendorStats, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &models.VendorStats{}

	var err error
	if stats.TotalOrders, stats.TotalEarnings, err = s.orderRepo.VendorStats(vendorID, time.Time{}); err != nil {
		return nil, fmt.Errorf("failed to get vendor totals: %w", err)
	}
	if stats.DailyOrders, stats.DailyEarnings, err = s.orderRepo.VendorStats(vendorID, startOfDay); err != nil {
		return nil, fmt.Errorf("failed to get vendor daily stats: %w", err)
	}
	if stats.MonthlyOrders, stats.MonthlyEarnings, err = s.orderRepo.VendorStats(vendorID, startOfMonth); err != nil {
		return nil, fmt.Errorf("failed to get vendor monthly stats: %w", err)
	}
	if stats.RecentItems, err = s.orderRepo.RecentItemsByVendor(vendorID, recentLimit); err != nil {
		return nil, fmt.Errorf("failed to list recent vendor items: %w", err)
	}

	return stats, nil
}
