package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"servicehub-backend/internal/models"
)

// CreateReview lets the client of a completed booking review its provider,
// once. The unique constraint on booking_id backstops the check.
func (d *DatabaseClient) CreateReview(bookingID, clientID uuid.UUID, rating int, comment string) (*models.Review, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := lockBooking(tx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != clientID {
		return nil, models.ErrNotOwner
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, models.ErrBookingState
	}

	var review models.Review
	err = tx.QueryRow(`
		INSERT INTO reviews (booking_id, client_id, provider_id, rating, comment)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, booking_id, client_id, provider_id, rating, comment, created_at
	`, bookingID, clientID, booking.ProviderID, rating, comment).Scan(
		&review.ID, &review.BookingID, &review.ClientID, &review.ProviderID,
		&review.Rating, &review.Comment, &review.CreatedAt,
	)
	if isUniqueViolation(err) {
		return nil, models.ErrAlreadyReviewed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}

	if err := notifyTx(tx, booking.ProviderID, "You received a new review",
		fmt.Sprintf("/providers/%s/reviews", booking.ProviderID)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit review: %w", err)
	}

	return &review, nil
}

func (d *DatabaseClient) ListProviderReviews(providerID uuid.UUID) ([]models.Review, error) {
	rows, err := d.db.Query(`
		SELECT id, booking_id, client_id, provider_id, rating, comment, created_at
		FROM reviews
		WHERE provider_id = $1
		ORDER BY created_at DESC
	`, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.BookingID, &r.ClientID, &r.ProviderID, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, r)
	}

	return reviews, rows.Err()
}
