package supabase

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"servicehub-backend/internal/models"
)

func (d *DatabaseClient) CreateStatusUpdate(providerID uuid.UUID, caption string, imageURLs []string) (*models.StatusUpdate, error) {
	urls, err := json.Marshal(imageURLs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image urls: %w", err)
	}

	var status models.StatusUpdate
	err = d.db.QueryRow(`
		INSERT INTO status_updates (provider_id, caption, image_urls)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id, provider_id, caption, image_urls, like_count, created_at
	`, providerID, caption, urls).Scan(
		&status.ID, &status.ProviderID, &status.Caption,
		&status.ImageURLs, &status.LikeCount, &status.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create status update: %w", err)
	}

	return &status, nil
}

func (d *DatabaseClient) GetStatusUpdate(statusID uuid.UUID) (*models.StatusUpdate, error) {
	var status models.StatusUpdate
	err := d.db.QueryRow(`
		SELECT id, provider_id, caption, image_urls, like_count, created_at
		FROM status_updates
		WHERE id = $1
	`, statusID).Scan(
		&status.ID, &status.ProviderID, &status.Caption,
		&status.ImageURLs, &status.LikeCount, &status.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get status update: %w", err)
	}

	return &status, nil
}

// ListStatusUpdates is the reverse-chronological feed.
func (d *DatabaseClient) ListStatusUpdates(limit, offset int) ([]models.StatusUpdate, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := d.db.Query(`
		SELECT id, provider_id, caption, image_urls, like_count, created_at
		FROM status_updates
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list status updates: %w", err)
	}
	defer rows.Close()

	var statuses []models.StatusUpdate
	for rows.Next() {
		var s models.StatusUpdate
		if err := rows.Scan(&s.ID, &s.ProviderID, &s.Caption, &s.ImageURLs, &s.LikeCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan status update: %w", err)
		}
		statuses = append(statuses, s)
	}

	return statuses, rows.Err()
}

func (d *DatabaseClient) LikeStatusUpdate(statusID uuid.UUID) (int, error) {
	var likeCount int
	err := d.db.QueryRow(`
		UPDATE status_updates
		SET like_count = like_count + 1
		WHERE id = $1
		RETURNING like_count
	`, statusID).Scan(&likeCount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to like status update: %w", err)
	}

	return likeCount, nil
}

// DeleteStatusUpdate removes the row only. Deleting the referenced storage
// objects first is the status service's job.
func (d *DatabaseClient) DeleteStatusUpdate(statusID, providerID uuid.UUID) error {
	res, err := d.db.Exec(`
		DELETE FROM status_updates
		WHERE id = $1 AND provider_id = $2
	`, statusID, providerID)
	if err != nil {
		return fmt.Errorf("failed to delete status update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
