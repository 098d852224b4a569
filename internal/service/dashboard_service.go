// internal/service/dashboard_service.go
package service

import (
	"context"

	"github.com/unclebandit/crm-viewer/internal/db"
	"github.com/unclebandit/crm-viewer/internal/model"
	"github.com/unclebandit/crm-viewer/internal/repository"
)

type DashboardService struct {
	CustomerRepo    repository.CustomerRepositoryInterface
	InteractionRepo repository.InteractionRepositoryInterface
	StatsRepo       repository.StatsRepositoryInterface
	Opener          db.Opener
}

// NewDashboardService wires the three repositories over one opener.
func NewDashboardService(opener db.Opener) *DashboardService {
	return &DashboardService{
		CustomerRepo:    &repository.CustomerRepository{Opener: opener},
		InteractionRepo: &repository.InteractionRepository{Opener: opener},
		StatsRepo:       &repository.StatsRepository{Opener: opener},
		Opener:          opener,
	}
}

func (s *DashboardService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.CustomerRepo.ListCustomers(ctx)
}

func (s *DashboardService) ListInteractions(ctx context.Context) ([]model.Interaction, error) {
	return s.InteractionRepo.ListInteractions(ctx)
}

func (s *DashboardService) GetStats(ctx context.Context) (model.Stats, error) {
	return s.StatsRepo.GetStats(ctx)
}

// Overview runs the three reads in order and stops at the first failure.
func (s *DashboardService) Overview(ctx context.Context) (*model.Overview, error) {
	customers, err := s.CustomerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	interactions, err := s.InteractionRepo.ListInteractions(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.StatsRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Overview{
		Customers:    customers,
		Interactions: interactions,
		Stats:        stats,
	}, nil
}

// Ready reports whether the database answers a trivial query.
func (s *DashboardService) Ready(ctx context.Context) error {
	return db.Ping(ctx, s.Opener)
}
