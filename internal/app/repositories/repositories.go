package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/devang/placeport/internal/db"
)

// Querier is the subset of pgx operations repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, which is what lets a repository be
// re-bound to a transaction via WithTx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	CompanyRepository    *CompanyRepository
	ExperienceRepository *ExperienceRepository
	StatsRepository      *StatsRepository
	CodeRepository       *CodeRepository
	TxRunner             *PgPlacementTxRunner
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB, redisClient *redis.Client) *Repositories {
	users := NewUserRepository(database.Pool)
	companies := NewCompanyRepository(database.Pool)
	return &Repositories{
		UserRepository:       users,
		CompanyRepository:    companies,
		ExperienceRepository: NewExperienceRepository(database.Pool),
		StatsRepository:      NewStatsRepository(database.Pool),
		CodeRepository:       NewCodeRepository(redisClient),
		TxRunner:             NewPlacementTxRunner(database, users, companies),
	}
}
