package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"servicehub-backend/internal/models"
)

func (d *DatabaseClient) GetProfile(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	var role string
	err := d.db.QueryRow(`
		SELECT id, role, full_name, business_name, phone, province, city, created_at
		FROM profiles
		WHERE id = $1
	`, userID).Scan(
		&profile.ID, &role, &profile.FullName, &profile.BusinessName,
		&profile.Phone, &profile.Province, &profile.City, &profile.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.Role, err = models.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", userID, err)
	}

	return &profile, nil
}

// GetRole reads the caller's role from the profiles table. Authorization
// always uses this, never a role claim asserted by the client.
func (d *DatabaseClient) GetRole(userID uuid.UUID) (models.Role, error) {
	var role string
	err := d.db.QueryRow(`SELECT role FROM profiles WHERE id = $1`, userID).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RoleGuest, nil
	}
	if err != nil {
		return models.RoleGuest, fmt.Errorf("failed to get role: %w", err)
	}
	return models.ParseRole(role)
}

func (d *DatabaseClient) UpdateProfile(userID uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error) {
	_, err := d.db.Exec(`
		UPDATE profiles
		SET full_name     = COALESCE(NULLIF($2, ''), full_name),
		    business_name = COALESCE(NULLIF($3, ''), business_name),
		    phone         = COALESCE(NULLIF($4, ''), phone),
		    province      = COALESCE(NULLIF($5, ''), province),
		    city          = COALESCE(NULLIF($6, ''), city)
		WHERE id = $1
	`, userID, req.FullName, req.BusinessName, req.Phone, req.Province, req.City)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return d.GetProfile(userID)
}

func (d *DatabaseClient) ListProfiles() ([]models.Profile, error) {
	rows, err := d.db.Query(`
		SELECT id, role, full_name, created_at
		FROM profiles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var profile models.Profile
		var role string
		if err := rows.Scan(&profile.ID, &role, &profile.FullName, &profile.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profile.Role, _ = models.ParseRole(role)
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

func (d *DatabaseClient) UpdateRole(userID uuid.UUID, role models.Role) error {
	res, err := d.db.Exec(`UPDATE profiles SET role = $1 WHERE id = $2`, string(role), userID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
