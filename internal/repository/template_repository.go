package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vlkr/booking_api/internal/model"
)

// TemplateRepository manages the recurring weekly timeslot templates.
type TemplateRepository struct {
	pool *pgxpool.Pool
}

func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

// Create inserts a new template. The unique index on
// (service_id, weekday, start_at) surfaces as a unique-violation error.
func (r *TemplateRepository) Create(ctx context.Context, template *model.TimeslotTemplate) error {
	query := `
		INSERT INTO timeslot_templates (service_id, weekday, start_at, end_at, enabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		template.ServiceID,
		template.Weekday,
		template.StartAt,
		template.EndAt,
		template.Enabled,
	).Scan(&template.ID, &template.CreatedAt)

	if err != nil {
		return fmt.Errorf("create timeslot template: %w", err)
	}

	return nil
}

// ListEnabled returns the enabled templates of a service on a weekday,
// ordered by start time ascending.
func (r *TemplateRepository) ListEnabled(ctx context.Context, serviceID int64, weekday int) ([]*model.TimeslotTemplate, error) {
	query := `
		SELECT id, service_id, weekday, start_at, end_at, enabled, created_at
		FROM timeslot_templates
		WHERE service_id = $1 AND weekday = $2 AND enabled
		ORDER BY start_at
	`

	rows, err := r.pool.Query(ctx, query, serviceID, weekday)
	if err != nil {
		return nil, fmt.Errorf("list enabled templates: %w", err)
	}
	defer rows.Close()

	var templates []*model.TimeslotTemplate
	for rows.Next() {
		var template model.TimeslotTemplate
		err := rows.Scan(
			&template.ID,
			&template.ServiceID,
			&template.Weekday,
			&template.StartAt,
			&template.EndAt,
			&template.Enabled,
			&template.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan timeslot template: %w", err)
		}
		templates = append(templates, &template)
	}

	return templates, nil
}

// GetEnabled returns the enabled template matching
// (service, weekday, start time), nil if none is defined.
func (r *TemplateRepository) GetEnabled(ctx context.Context, serviceID int64, weekday int, startAt string) (*model.TimeslotTemplate, error) {
	query := `
		SELECT id, service_id, weekday, start_at, end_at, enabled, created_at
		FROM timeslot_templates
		WHERE service_id = $1 AND weekday = $2 AND start_at = $3 AND enabled
	`

	var template model.TimeslotTemplate
	err := r.pool.QueryRow(ctx, query, serviceID, weekday, startAt).Scan(
		&template.ID,
		&template.ServiceID,
		&template.Weekday,
		&template.StartAt,
		&template.EndAt,
		&template.Enabled,
		&template.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get enabled template: %w", err)
	}

	return &template, nil
}
