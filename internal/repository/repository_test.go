package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/crm-viewer/internal/db/dbtest"
	appErrors "github.com/unclebandit/crm-viewer/internal/errors"
	"github.com/unclebandit/crm-viewer/internal/repository"
)

const fixture = `
INSERT INTO customers (id, name, email, phone, address, company, notes, created_at) VALUES
    (3, 'Carla Mendes', 'c@y.PT', NULL, NULL, NULL, NULL, '2024-01-03 09:00:00'),
    (1, 'Ana Silva', 'a@x.pt', '+351 910 000 001', 'Rua Augusta 1, Lisboa', 'Silva Lda', 'VIP', '2024-01-01 09:00:00'),
    (2, 'Bruno Costa', 'b@x.com', NULL, NULL, 'Costa SA', NULL, '2024-01-02 09:00:00');

INSERT INTO interactions (id, customer_id, interaction_type, subject, description, created_by, created_at) VALUES
    (10, 1, 'email', 'Welcome', 'Sent welcome pack', 'joao', '2024-02-01 10:00:00'),
    (11, 1, 'call', 'Follow-up', NULL, 'maria', '2024-02-03 15:30:00'),
    (12, 2, 'meeting', 'Kickoff', 'On site', 'joao', '2024-02-02 11:00:00'),
    (13, 99, 'support', 'Orphan', 'No such customer', 'joao', '2024-02-04 08:00:00');
`

func TestListCustomersOrderedByID(t *testing.T) {
	repo := &repository.CustomerRepository{Opener: dbtest.NewSQLite(t, fixture)}

	customers, err := repo.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 3)

	for i, c := range customers {
		assert.Equal(t, i+1, c.ID)
	}

	ana := customers[0]
	assert.Equal(t, "Ana Silva", ana.Name)
	require.NotNil(t, ana.Email)
	assert.Equal(t, "a@x.pt", *ana.Email)
	require.NotNil(t, ana.Notes)
	assert.Equal(t, "VIP", *ana.Notes)
	require.NotNil(t, ana.CreatedAt)
	assert.True(t, ana.CreatedAt.Time.Equal(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)))
	// created_at is TIMESTAMP, a wall-clock column.
	assert.False(t, ana.CreatedAt.Zoned)

	assert.Nil(t, customers[1].Phone)
	assert.Nil(t, customers[2].Company)
}

func TestListCustomersEmpty(t *testing.T) {
	repo := &repository.CustomerRepository{Opener: dbtest.NewSQLite(t, "")}

	customers, err := repo.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestListInteractionsNewestFirstWithoutOrphans(t *testing.T) {
	repo := &repository.InteractionRepository{Opener: dbtest.NewSQLite(t, fixture)}

	interactions, err := repo.ListInteractions(context.Background())
	require.NoError(t, err)
	require.Len(t, interactions, 3)

	ids := []int{}
	for _, i := range interactions {
		ids = append(ids, i.ID)
		assert.NotEqual(t, "Orphan", i.Subject)
	}
	assert.Equal(t, []int{11, 12, 10}, ids)

	assert.Equal(t, "Ana Silva", interactions[0].CustomerName)
	assert.Equal(t, "call", interactions[0].InteractionType)
	assert.Nil(t, interactions[0].Description)
	assert.Equal(t, "Bruno Costa", interactions[1].CustomerName)

	for k := 1; k < len(interactions); k++ {
		assert.False(t, interactions[k].CreatedAt.Time.After(interactions[k-1].CreatedAt.Time))
	}
}

func TestGetStats(t *testing.T) {
	repo := &repository.StatsRepository{Opener: dbtest.NewSQLite(t, fixture)}

	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalCustomers)
	assert.Equal(t, 4, stats.TotalInteractions)
	// a@x.pt counts, b@x.com and c@y.PT do not.
	assert.Equal(t, 1, stats.PTEmails)
}

func TestGetStatsEmpty(t *testing.T) {
	repo := &repository.StatsRepository{Opener: dbtest.NewSQLite(t, "")}

	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats)
}

func TestRepositoriesSurfaceDatabaseErrors(t *testing.T) {
	opener := dbtest.Unreachable("dial tcp: connection refused")
	ctx := context.Background()

	customers, err := (&repository.CustomerRepository{Opener: opener}).ListCustomers(ctx)
	assert.Nil(t, customers)
	assertDatabaseError(t, err, "list customers")

	interactions, err := (&repository.InteractionRepository{Opener: opener}).ListInteractions(ctx)
	assert.Nil(t, interactions)
	assertDatabaseError(t, err, "list interactions")

	_, err = (&repository.StatsRepository{Opener: opener}).GetStats(ctx)
	assertDatabaseError(t, err, "get stats")
}

func TestListCustomersMissingTable(t *testing.T) {
	opener := dbtest.NewSQLite(t, "DROP TABLE customers;")

	_, err := (&repository.CustomerRepository{Opener: opener}).ListCustomers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customers")
}

func assertDatabaseError(t *testing.T, err error, op string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, "dial tcp: connection refused", err.Error())

	var dbErr *appErrors.DatabaseError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, op, dbErr.Op)
}
