package repository

import (
	"context"

	"github.com/lichcore/dominion/internal/domain"
)

// Assignment defines the interface for profession assignment persistence.
type Assignment interface {
	// Assign records a user↔profession pair. Assigning an already-held
	// profession is a no-op.
	Assign(ctx context.Context, userID, profession string) error
	// Unassign removes a user↔profession pair if present.
	Unassign(ctx context.Context, userID, profession string) error
	// RemoveUser deletes every assignment held by the user. Used when a
	// member leaves the guild.
	RemoveUser(ctx context.Context, userID string) error
	// FetchAll returns all assignments grouped by user.
	FetchAll(ctx context.Context) (domain.AssignmentSnapshot, error)
	// CountByProfession returns the number of users assigned to profession.
	CountByProfession(ctx context.Context, profession string) (int, error)
}
