package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/registre/internal/common"
	"github.com/dmitrijs2005/registre/internal/dbx"
	"github.com/dmitrijs2005/registre/internal/server/models"
)

// PostgresRepository implements Repository on the "users" table.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	query :=
		`SELECT id, first_name, last_name, bio, role, created_at FROM users
		 ORDER BY created_at DESC, seq DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Record{}
	for rows.Next() {
		var rec models.Record
		var bio, role sql.NullString
		if err := rows.Scan(&rec.ID, &rec.FirstName, &rec.LastName, &bio, &role, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		rec.Bio, rec.Role = bio.String, role.String
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Add inserts one row. A record whose id equals common.ClearSentinelID is
// refused: Clear relies on that id never being stored.
func (r *PostgresRepository) Add(ctx context.Context, record *models.Record) error {
	if record.ID == common.ClearSentinelID {
		return fmt.Errorf("%w: id %q is reserved", common.ErrorValidation, record.ID)
	}

	query :=
		`INSERT INTO users (id, first_name, last_name, bio, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.FirstName, record.LastName, nullIfEmpty(record.Bio), nullIfEmpty(record.Role), record.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Clear deletes every row whose id differs from the sentinel, i.e. all of them.
func (r *PostgresRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id <> $1`, common.ClearSentinelID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
