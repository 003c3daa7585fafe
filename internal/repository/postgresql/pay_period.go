package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/payroll"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/database"
)

type payPeriodRepository struct {
	db *database.DB
}

func NewPayPeriodRepository(db *database.DB) payroll.PayPeriodRepository {
	return &payPeriodRepository{db: db}
}

// CreatePeriod implements payroll.PayPeriodRepository.
func (p *payPeriodRepository) CreatePeriod(ctx context.Context, period payroll.PayPeriod) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO pay_periods (
			id, company_id, name, start_date, end_date, pay_date, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		period.ID,
		period.CompanyID,
		period.Name,
		period.StartDate,
		period.EndDate,
		period.PayDate,
		period.Status,
	).Scan(&period.CreatedAt, &period.UpdatedAt)

	if err != nil {
		return payroll.PayPeriod{}, fmt.Errorf("failed to create pay period: %w", err)
	}

	return period, nil
}

// GetPeriodByID implements payroll.PayPeriodRepository.
func (p *payPeriodRepository) GetPeriodByID(ctx context.Context, id string, companyID string) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, company_id, name, start_date, end_date, pay_date, status,
			   created_at, updated_at
		FROM pay_periods
		WHERE id = $1 AND company_id = $2
	`

	var period payroll.PayPeriod
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&period.ID, &period.CompanyID, &period.Name,
		&period.StartDate, &period.EndDate, &period.PayDate, &period.Status,
		&period.CreatedAt, &period.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayPeriod{}, fmt.Errorf("failed to get pay period: %w", err)
	}

	return period, nil
}

// ListPeriods implements payroll.PayPeriodRepository.
func (p *payPeriodRepository) ListPeriods(ctx context.Context, companyID string, filter payroll.PeriodFilter) ([]payroll.PayPeriod, int64, error) {
	q := GetQuerier(ctx, p.db)

	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}
	argIdx := 2

	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM pay_periods ` + whereClause

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count pay periods: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit

	listQuery := `
		SELECT id, company_id, name, start_date, end_date, pay_date, status,
			   created_at, updated_at
		FROM pay_periods
		` + whereClause + `
		ORDER BY start_date DESC
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pay periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayPeriod
	for rows.Next() {
		var period payroll.PayPeriod
		err := rows.Scan(
			&period.ID, &period.CompanyID, &period.Name,
			&period.StartDate, &period.EndDate, &period.PayDate, &period.Status,
			&period.CreatedAt, &period.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan pay period: %w", err)
		}
		periods = append(periods, period)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate pay periods: %w", err)
	}

	return periods, total, nil
}

// UpdatePeriodStatus implements payroll.PayPeriodRepository.
func (p *payPeriodRepository) UpdatePeriodStatus(ctx context.Context, id string, companyID string, status payroll.PeriodStatus) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE pay_periods
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3
	`

	tag, err := q.Exec(ctx, query, status, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to update pay period status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}

	return nil
}
