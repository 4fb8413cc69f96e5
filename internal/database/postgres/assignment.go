package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lichcore/dominion/internal/domain"
)

// AssignmentRepository implements the assignment repository for PostgreSQL
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Assign records a user↔profession pair, ignoring duplicates
func (r *AssignmentRepository) Assign(ctx context.Context, userID, profession string) error {
	query := `
		INSERT INTO assignments (user_id, profession)
		VALUES ($1, $2)
		ON CONFLICT (user_id, profession) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID, profession); err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

// Unassign removes a user↔profession pair
func (r *AssignmentRepository) Unassign(ctx context.Context, userID, profession string) error {
	query := `DELETE FROM assignments WHERE user_id = $1 AND profession = $2`
	if _, err := r.db.Exec(ctx, query, userID, profession); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// RemoveUser deletes all assignments for a user
func (r *AssignmentRepository) RemoveUser(ctx context.Context, userID string) error {
	query := `DELETE FROM assignments WHERE user_id = $1`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete user assignments: %w", err)
	}
	return nil
}

// FetchAll returns every assignment grouped by user
func (r *AssignmentRepository) FetchAll(ctx context.Context) (domain.AssignmentSnapshot, error) {
	query := `SELECT user_id, profession FROM assignments`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	snapshot := make(domain.AssignmentSnapshot)
	for rows.Next() {
		var userID, profession string
		if err := rows.Scan(&userID, &profession); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		snapshot[userID] = append(snapshot[userID], profession)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignments: %w", err)
	}

	return snapshot, nil
}

// CountByProfession returns the number of users assigned to a profession
func (r *AssignmentRepository) CountByProfession(ctx context.Context, profession string) (int, error) {
	query := `SELECT COUNT(*) FROM assignments WHERE profession = $1`
	var count int
	if err := r.db.QueryRow(ctx, query, profession).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}
