package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/devang/placeport/internal/db"
)

// PgPlacementTxRunner implements PlacementTxRunner over a pgx transaction.
type PgPlacementTxRunner struct {
	database  *db.PostgresDB
	users     *UserRepository
	companies *CompanyRepository
}

// NewPlacementTxRunner creates a PlacementTxRunner backed by Postgres.
func NewPlacementTxRunner(database *db.PostgresDB, users *UserRepository, companies *CompanyRepository) *PgPlacementTxRunner {
	return &PgPlacementTxRunner{
		database:  database,
		users:     users,
		companies: companies,
	}
}

// WithinTx rebinds the user and company repositories to a single transaction
// and runs fn against them. fn returning an error aborts the whole
// transaction.
func (r *PgPlacementTxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context, st PlacementStores) error) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, PlacementStores{
			Users:     r.users.WithTx(tx),
			Companies: r.companies.WithTx(tx),
		})
	})
}
