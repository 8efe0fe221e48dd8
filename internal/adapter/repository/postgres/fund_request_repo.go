package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/treasury/internal/domain"
)

// FundRequestRepository implements usecase.FundRequestRepository.
type FundRequestRepository struct {
	pool *pgxpool.Pool
}

// NewFundRequestRepository creates a new FundRequestRepository.
func NewFundRequestRepository(pool *pgxpool.Pool) *FundRequestRepository {
	return &FundRequestRepository{pool: pool}
}

// ListApprovedNeeds retrieves the day-level needs of approved fund requests
// falling within [from, to].
func (r *FundRequestRepository) ListApprovedNeeds(ctx context.Context, from, to time.Time) ([]*domain.DayNeed, error) {
	query := `
		SELECT fr.reference, c.name, d.need_date, d.amount
		FROM fund_request_days d
		JOIN fund_requests fr ON fr.id = d.request_id
		JOIN css c ON c.id = fr.css_id
		WHERE fr.status = $1 AND d.need_date BETWEEN $2 AND $3
		ORDER BY d.need_date, fr.reference
	`

	rows, err := r.pool.Query(ctx, query, domain.RequestApproved, timeToPgDate(from), timeToPgDate(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var needs []*domain.DayNeed
	for rows.Next() {
		var (
			need   domain.DayNeed
			amount pgtype.Numeric
		)

		if err := rows.Scan(&need.RequestReference, &need.CSSName, &need.Date, &amount); err != nil {
			return nil, err
		}

		need.Amount = numericToDecimal(amount)
		needs = append(needs, &need)
	}

	return needs, rows.Err()
}
