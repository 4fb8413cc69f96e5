package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lichcore/dominion/internal/database/postgres"
	"github.com/lichcore/dominion/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Assignment repository.Assignment
	Loadout    repository.Loadout
	Meta       repository.Meta
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Assignment: postgres.NewAssignmentRepository(dbPool),
		Loadout:    postgres.NewLoadoutRepository(dbPool),
		Meta:       postgres.NewMetaRepository(dbPool),
	}
}
