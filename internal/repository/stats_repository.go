package repository

import (
	"context"

	"github.com/unclebandit/crm-viewer/internal/db"
	appErrors "github.com/unclebandit/crm-viewer/internal/errors"
	"github.com/unclebandit/crm-viewer/internal/model"
)

type StatsRepositoryInterface interface {
	GetStats(ctx context.Context) (model.Stats, error)
}

type StatsRepository struct {
	Opener db.Opener
}

// GetStats counts customers, interactions and customers with a .pt email.
// LIKE is case-sensitive, so ".PT" does not count.
func (r *StatsRepository) GetStats(ctx context.Context) (model.Stats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM customers),
            (SELECT COUNT(*) FROM interactions),
            (SELECT COUNT(*) FROM customers WHERE email LIKE '%.pt')
    `
	var s model.Stats

	conn, err := r.Opener.Open(ctx)
	if err != nil {
		return s, appErrors.NewDatabaseError("get stats", err)
	}
	defer conn.Close()

	if err := conn.QueryRowContext(ctx, query).Scan(&s.TotalCustomers, &s.TotalInteractions, &s.PTEmails); err != nil {
		return model.Stats{}, appErrors.NewDatabaseError("get stats", err)
	}
	return s, nil
}

var _ StatsRepositoryInterface = (*StatsRepository)(nil)
