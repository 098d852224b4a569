package repository

import (
	"context"
	"time"

	"github.com/unclebandit/crm-viewer/internal/db"
	appErrors "github.com/unclebandit/crm-viewer/internal/errors"
	"github.com/unclebandit/crm-viewer/internal/model"
)

// CustomerRepositoryInterface defines methods used by handlers and services
type CustomerRepositoryInterface interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	Opener db.Opener
}

// ListCustomers fetches every customer, lowest id first
func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	query := `
        SELECT id, name, email, phone, address, company, notes, created_at
        FROM customers
        ORDER BY id
    `
	conn, err := r.Opener.Open(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list customers", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list customers", err)
	}
	defer rows.Close()

	zoned, err := zonedColumn(rows, 7)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list customers", err)
	}

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		var createdAt *time.Time
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Company, &c.Notes, &createdAt); err != nil {
			return nil, appErrors.NewDatabaseError("list customers", err)
		}
		c.CreatedAt = model.NewTimestamp(createdAt, zoned)
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.NewDatabaseError("list customers", err)
	}
	return customers, nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
