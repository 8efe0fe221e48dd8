package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/treasury/internal/domain"
)

// CSSRepository implements usecase.CSSRepository.
type CSSRepository struct {
	pool *pgxpool.Pool
}

// NewCSSRepository creates a new CSSRepository.
func NewCSSRepository(pool *pgxpool.Pool) *CSSRepository {
	return &CSSRepository{pool: pool}
}

// GetByID retrieves a CSS by ID.
func (r *CSSRepository) GetByID(ctx context.Context, id string) (*domain.CSS, error) {
	query := `
		SELECT id, code, name, active, created_at, updated_at
		FROM css
		WHERE id = $1
	`

	var css domain.CSS
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&css.ID,
		&css.Code,
		&css.Name,
		&css.Active,
		&css.CreatedAt,
		&css.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCSSNotFound
		}

		return nil, err
	}

	return &css, nil
}
