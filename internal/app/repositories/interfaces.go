package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/devang/placeport/internal/app/models"
)

// UserStore is the user-directory surface the services depend on.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	RollNoExists(ctx context.Context, rollNo string) (bool, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	SetRole(ctx context.Context, id uuid.UUID, role models.Role) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
}

// UserPlacementStore is the slice of the user directory the placement service
// writes through. Everything here is transaction-scoped when reached via
// PlacementTxRunner.
type UserPlacementStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePlacement(ctx context.Context, id uuid.UUID, placed bool, p models.Placement) error
	UpdatePlacementLocation(ctx context.Context, id uuid.UUID, location string) error
	ResetPlacementsByCompany(ctx context.Context, companyID string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyPlacementStore is the company-registry slice the placement service
// writes through.
type CompanyPlacementStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	AddSelectedRollNo(ctx context.Context, id uuid.UUID, rollNo string) error
	RemoveSelectedRollNo(ctx context.Context, id uuid.UUID, rollNo string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyStore is the company-registry surface the company service depends
// on. Delete is absent on purpose; removal goes through the placement
// transaction runner so student records are detached in the same boundary.
type CompanyStore interface {
	Create(ctx context.Context, c *models.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, c *models.Company) error
}

// ExperienceStore is the interview-experience surface.
type ExperienceStore interface {
	Create(ctx context.Context, e *models.Experience) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Experience, error)
	List(ctx context.Context) ([]*models.Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CodeStore is the one-time-code surface the auth service depends on.
type CodeStore interface {
	SaveCode(ctx context.Context, email, hashedCode string, ttl time.Duration) error
	ConsumeCode(ctx context.Context, email string) (string, error)
	PeekCode(ctx context.Context, email string) (string, error)
	MarkVerified(ctx context.Context, email string, ttl time.Duration) error
	ConsumeVerified(ctx context.Context, email string) error
}

// PlacementStores bundles the transaction-scoped stores handed to a placement
// operation.
type PlacementStores struct {
	Users     UserPlacementStore
	Companies CompanyPlacementStore
}

// PlacementTxRunner runs a placement operation inside one atomic boundary.
// Either every write in fn is visible or none is.
type PlacementTxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, st PlacementStores) error) error
}
