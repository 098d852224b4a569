package repository

import (
	"context"
	"time"

	"github.com/unclebandit/crm-viewer/internal/db"
	appErrors "github.com/unclebandit/crm-viewer/internal/errors"
	"github.com/unclebandit/crm-viewer/internal/model"
)

type InteractionRepositoryInterface interface {
	ListInteractions(ctx context.Context) ([]model.Interaction, error)
}

type InteractionRepository struct {
	Opener db.Opener
}

// ListInteractions returns interactions newest first with the customer's name.
// Interactions pointing at a missing customer drop out of the inner join.
func (r *InteractionRepository) ListInteractions(ctx context.Context) ([]model.Interaction, error) {
	query := `
        SELECT
            i.id,
            c.name AS customer_name,
            i.interaction_type,
            i.subject,
            i.description,
            i.created_by,
            i.created_at
        FROM interactions i
        JOIN customers c ON i.customer_id = c.id
        ORDER BY i.created_at DESC
    `
	conn, err := r.Opener.Open(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list interactions", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list interactions", err)
	}
	defer rows.Close()

	zoned, err := zonedColumn(rows, 6)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list interactions", err)
	}

	interactions := []model.Interaction{}
	for rows.Next() {
		var i model.Interaction
		var createdAt *time.Time
		if err := rows.Scan(&i.ID, &i.CustomerName, &i.InteractionType, &i.Subject, &i.Description, &i.CreatedBy, &createdAt); err != nil {
			return nil, appErrors.NewDatabaseError("list interactions", err)
		}
		i.CreatedAt = model.NewTimestamp(createdAt, zoned)
		interactions = append(interactions, i)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.NewDatabaseError("list interactions", err)
	}
	return interactions, nil
}

var _ InteractionRepositoryInterface = (*InteractionRepository)(nil)
