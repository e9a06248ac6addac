package supabase

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"servicehub-backend/internal/models"
)

func (d *DatabaseClient) CreateService(providerID uuid.UUID, req models.CreateServiceRequest) (*models.Service, error) {
	locations, err := json.Marshal(req.Locations)
	if err != nil {
		return nil, fmt.Errorf("failed to encode locations: %w", err)
	}

	var service models.Service
	err = d.db.QueryRow(`
		INSERT INTO services (provider_id, title, description, category, price_from, status, locations)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, provider_id, title, description, category, price_from, status, rejection_reason, locations, created_at
	`, providerID, req.Title, req.Description, req.Category, req.PriceFrom,
		models.ServiceStatusPending, locations).Scan(
		&service.ID, &service.ProviderID, &service.Title, &service.Description,
		&service.Category, &service.PriceFrom, &service.Status,
		&service.RejectionReason, &service.Locations, &service.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	return &service, nil
}

func (d *DatabaseClient) GetService(serviceID uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := d.db.QueryRow(`
		SELECT id, provider_id, title, description, category, price_from, status, rejection_reason, locations, created_at
		FROM services
		WHERE id = $1
	`, serviceID).Scan(
		&service.ID, &service.ProviderID, &service.Title, &service.Description,
		&service.Category, &service.PriceFrom, &service.Status,
		&service.RejectionReason, &service.Locations, &service.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return &service, nil
}

// ServiceSearchParams are the optional filters of the public search.
type ServiceSearchParams struct {
	Query    string
	Category string
	Province string
	City     string
	Limit    int
	Offset   int
}

// SearchServices runs the filtered, paginated search over approved services.
// Location filters use jsonb containment against the locations array.
func (d *DatabaseClient) SearchServices(params ServiceSearchParams) ([]models.Service, int, error) {
	base := d.sq.
		Select().
		From("services").
		Where("status = ?", models.ServiceStatusApproved)

	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		base = base.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if params.Category != "" {
		base = base.Where("category = ?", params.Category)
	}
	if params.Province != "" || params.City != "" {
		loc := map[string]string{}
		if params.Province != "" {
			loc["province"] = params.Province
		}
		if params.City != "" {
			loc["city"] = params.City
		}
		locJSON, err := json.Marshal([]map[string]string{loc})
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode location filter: %w", err)
		}
		base = base.Where("locations @> ?::jsonb", string(locJSON))
	}

	countSQL, countArgs, err := base.Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := d.db.QueryRow(countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	listSQL, listArgs, err := base.
		Columns("id", "provider_id", "title", "description", "category",
			"price_from", "status", "rejection_reason", "locations", "created_at").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(params.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build search query: %w", err)
	}

	rows, err := d.db.Query(listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var s models.Service
		err := rows.Scan(&s.ID, &s.ProviderID, &s.Title, &s.Description, &s.Category,
			&s.PriceFrom, &s.Status, &s.RejectionReason, &s.Locations, &s.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}

	return services, total, rows.Err()
}

// ListProviderServices returns all of one provider's listings regardless of
// moderation status, newest first.
func (d *DatabaseClient) ListProviderServices(providerID uuid.UUID) ([]models.Service, error) {
	return d.listServices(squirrel.Eq{"provider_id": providerID})
}

// ListServicesByStatus backs the admin moderation queue.
func (d *DatabaseClient) ListServicesByStatus(status string) ([]models.Service, error) {
	return d.listServices(squirrel.Eq{"status": status})
}

func (d *DatabaseClient) listServices(where squirrel.Eq) ([]models.Service, error) {
	query, args, err := d.sq.
		Select("id", "provider_id", "title", "description", "category",
			"price_from", "status", "rejection_reason", "locations", "created_at").
		From("services").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var s models.Service
		err := rows.Scan(&s.ID, &s.ProviderID, &s.Title, &s.Description, &s.Category,
			&s.PriceFrom, &s.Status, &s.RejectionReason, &s.Locations, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

// ApproveService is admin-only at the handler layer.
func (d *DatabaseClient) ApproveService(serviceID uuid.UUID) (*models.Service, error) {
	return d.moderateService(serviceID, models.ServiceStatusApproved, "",
		"Your service listing was approved")
}

func (d *DatabaseClient) RejectService(serviceID uuid.UUID, reason string) (*models.Service, error) {
	message := "Your service listing was rejected"
	if reason != "" {
		message = fmt.Sprintf("Your service listing was rejected: %s", reason)
	}
	return d.moderateService(serviceID, models.ServiceStatusRejected, reason, message)
}

func (d *DatabaseClient) moderateService(serviceID uuid.UUID, status, reason, message string) (*models.Service, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var service models.Service
	err = tx.QueryRow(`
		UPDATE services
		SET status = $2, rejection_reason = NULLIF($3, '')
		WHERE id = $1
		RETURNING id, provider_id, title, description, category, price_from, status, rejection_reason, locations, created_at
	`, serviceID, status, reason).Scan(
		&service.ID, &service.ProviderID, &service.Title, &service.Description,
		&service.Category, &service.PriceFrom, &service.Status,
		&service.RejectionReason, &service.Locations, &service.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to moderate service: %w", err)
	}

	if err := notifyTx(tx, service.ProviderID, message,
		fmt.Sprintf("/services/%s", serviceID)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit moderation: %w", err)
	}

	return &service, nil
}
