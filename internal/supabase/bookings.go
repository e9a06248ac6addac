package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"servicehub-backend/internal/models"
)

func (d *DatabaseClient) CreateBooking(clientID, providerID uuid.UUID, serviceID uuid.NullUUID, scheduledFor sql.NullTime, quoteDescription string) (*models.Booking, error) {
	var booking models.Booking
	err := d.db.QueryRow(`
		INSERT INTO bookings (client_id, provider_id, service_id, scheduled_for, status, quote_description)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING id, client_id, provider_id, service_id, scheduled_for, status, quote_description, quote_attachments, created_at
	`, clientID, providerID, serviceID, scheduledFor, models.BookingStatusPending, quoteDescription).Scan(
		&booking.ID, &booking.ClientID, &booking.ProviderID, &booking.ServiceID,
		&booking.ScheduledFor, &booking.Status, &booking.QuoteDescription,
		&booking.QuoteAttachments, &booking.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return &booking, nil
}

func (d *DatabaseClient) GetBooking(bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := d.db.QueryRow(`
		SELECT id, client_id, provider_id, service_id, scheduled_for, status, quote_description, quote_attachments, created_at
		FROM bookings
		WHERE id = $1
	`, bookingID).Scan(
		&booking.ID, &booking.ClientID, &booking.ProviderID, &booking.ServiceID,
		&booking.ScheduledFor, &booking.Status, &booking.QuoteDescription,
		&booking.QuoteAttachments, &booking.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// ListBookings returns bookings where the user is either party.
func (d *DatabaseClient) ListBookings(userID uuid.UUID) ([]models.Booking, error) {
	rows, err := d.db.Query(`
		SELECT id, client_id, provider_id, service_id, scheduled_for, status, quote_description, quote_attachments, created_at
		FROM bookings
		WHERE client_id = $1 OR provider_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(&b.ID, &b.ClientID, &b.ProviderID, &b.ServiceID,
			&b.ScheduledFor, &b.Status, &b.QuoteDescription, &b.QuoteAttachments, &b.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (d *DatabaseClient) ConfirmBooking(bookingID, providerID uuid.UUID) (*models.Booking, error) {
	return d.transitionBooking(bookingID, providerID, "provider_id",
		models.BookingStatusPending, models.BookingStatusConfirmed)
}

// CancelBooking allows either party to cancel anything not yet completed.
func (d *DatabaseClient) CancelBooking(bookingID, userID uuid.UUID) (*models.Booking, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := lockBooking(tx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != userID && booking.ProviderID != userID {
		return nil, models.ErrNotParticipant
	}
	if booking.Status == models.BookingStatusCompleted || booking.Status == models.BookingStatusCancelled {
		return nil, models.ErrBookingState
	}

	if _, err := tx.Exec(`UPDATE bookings SET status = $1 WHERE id = $2`,
		models.BookingStatusCancelled, bookingID); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	other := booking.ProviderID
	if userID == booking.ProviderID {
		other = booking.ClientID
	}
	if err := notifyTx(tx, other, "A booking was cancelled",
		fmt.Sprintf("/bookings/%s", bookingID)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	booking.Status = models.BookingStatusCancelled
	return booking, nil
}

// CreateQuotation inserts the quotation and advances the booking to
// quote-provided in one transaction. A confirmed booking with no prior
// quotation is required; the unique constraint on quotations.booking_id
// backstops the single-quotation rule.
func (d *DatabaseClient) CreateQuotation(bookingID, providerID uuid.UUID, amount float64, attachmentURL string) (*models.Quotation, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := lockBooking(tx, bookingID)
	if err != nil {
		return nil, err
	}

	var hasQuotation bool
	err = tx.QueryRow(`SELECT COUNT(*) > 0 FROM quotations WHERE booking_id = $1`, bookingID).Scan(&hasQuotation)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing quotation: %w", err)
	}

	if err := models.CanProvideQuotation(booking, providerID, hasQuotation); err != nil {
		return nil, err
	}

	var quotation models.Quotation
	err = tx.QueryRow(`
		INSERT INTO quotations (booking_id, provider_id, amount, attachment_url, status)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id, booking_id, provider_id, amount, attachment_url, status, created_at
	`, bookingID, providerID, amount, attachmentURL, models.QuotationStatusPending).Scan(
		&quotation.ID, &quotation.BookingID, &quotation.ProviderID,
		&quotation.Amount, &quotation.AttachmentURL, &quotation.Status, &quotation.CreatedAt,
	)
	if isUniqueViolation(err) {
		return nil, models.ErrQuotationExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert quotation: %w", err)
	}

	if _, err := tx.Exec(`UPDATE bookings SET status = $1 WHERE id = $2`,
		models.BookingStatusQuoteProvided, bookingID); err != nil {
		return nil, fmt.Errorf("failed to advance booking: %w", err)
	}

	if err := notifyTx(tx, booking.ClientID, "You received a quotation",
		fmt.Sprintf("/bookings/%s", bookingID)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit quotation: %w", err)
	}

	return &quotation, nil
}

func (d *DatabaseClient) GetQuotationByBooking(bookingID uuid.UUID) (*models.Quotation, error) {
	var q models.Quotation
	err := d.db.QueryRow(`
		SELECT id, booking_id, provider_id, amount, attachment_url, status, created_at
		FROM quotations
		WHERE booking_id = $1
	`, bookingID).Scan(&q.ID, &q.BookingID, &q.ProviderID, &q.Amount,
		&q.AttachmentURL, &q.Status, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}

	return &q, nil
}

func (d *DatabaseClient) ApproveQuotation(quotationID, clientID uuid.UUID) (*models.Quotation, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var q models.Quotation
	var bookingClientID uuid.UUID
	err = tx.QueryRow(`
		SELECT q.id, q.booking_id, q.provider_id, q.amount, q.attachment_url, q.status, q.created_at, b.client_id
		FROM quotations q
		JOIN bookings b ON b.id = q.booking_id
		WHERE q.id = $1
		FOR UPDATE
	`, quotationID).Scan(&q.ID, &q.BookingID, &q.ProviderID, &q.Amount,
		&q.AttachmentURL, &q.Status, &q.CreatedAt, &bookingClientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock quotation: %w", err)
	}

	if bookingClientID != clientID {
		return nil, models.ErrNotOwner
	}
	if q.Status != models.QuotationStatusPending {
		return nil, models.ErrBookingState
	}

	if _, err := tx.Exec(`UPDATE quotations SET status = $1 WHERE id = $2`,
		models.QuotationStatusApproved, quotationID); err != nil {
		return nil, fmt.Errorf("failed to approve quotation: %w", err)
	}

	if err := notifyTx(tx, q.ProviderID, "Your quotation was approved",
		fmt.Sprintf("/bookings/%s", q.BookingID)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit quotation approval: %w", err)
	}

	q.Status = models.QuotationStatusApproved
	return &q, nil
}

// CompleteBooking marks a booking completed. Only reachable once a
// quotation on the booking has been approved.
func (d *DatabaseClient) CompleteBooking(bookingID, providerID uuid.UUID) (*models.Booking, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := lockBooking(tx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ProviderID != providerID {
		return nil, models.ErrNotOwner
	}

	var quotationStatus string
	err = tx.QueryRow(`SELECT status FROM quotations WHERE booking_id = $1`, bookingID).Scan(&quotationStatus)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check quotation: %w", err)
	}

	if err := models.CanComplete(booking, quotationStatus); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(`UPDATE bookings SET status = $1 WHERE id = $2`,
		models.BookingStatusCompleted, bookingID); err != nil {
		return nil, fmt.Errorf("failed to complete booking: %w", err)
	}

	if err := notifyTx(tx, booking.ClientID, "Your booking was marked complete",
		fmt.Sprintf("/bookings/%s", bookingID)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit completion: %w", err)
	}

	booking.Status = models.BookingStatusCompleted
	return booking, nil
}

func (d *DatabaseClient) transitionBooking(bookingID, actorID uuid.UUID, actorColumn, from, to string) (*models.Booking, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := lockBooking(tx, bookingID)
	if err != nil {
		return nil, err
	}

	actor := booking.ProviderID
	other := booking.ClientID
	if actorColumn == "client_id" {
		actor, other = booking.ClientID, booking.ProviderID
	}
	if actor != actorID {
		return nil, models.ErrNotOwner
	}
	if booking.Status != from {
		return nil, models.ErrBookingState
	}

	if _, err := tx.Exec(`UPDATE bookings SET status = $1 WHERE id = $2`, to, bookingID); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	if err := notifyTx(tx, other, fmt.Sprintf("Booking is now %s", to),
		fmt.Sprintf("/bookings/%s", bookingID)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking transition: %w", err)
	}

	booking.Status = to
	return booking, nil
}

func lockBooking(tx *sql.Tx, bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := tx.QueryRow(`
		SELECT id, client_id, provider_id, service_id, scheduled_for, status, quote_description, quote_attachments, created_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`, bookingID).Scan(
		&booking.ID, &booking.ClientID, &booking.ProviderID, &booking.ServiceID,
		&booking.ScheduledFor, &booking.Status, &booking.QuoteDescription,
		&booking.QuoteAttachments, &booking.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	return &booking, nil
}

func (d *DatabaseClient) CreateQuoteRequest(requesterID uuid.UUID, category, description string) (*models.QuoteRequest, error) {
	var qr models.QuoteRequest
	err := d.db.QueryRow(`
		INSERT INTO quote_requests (requester_id, category, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, requester_id, category, description, status, created_at
	`, requesterID, category, description, models.QuoteRequestStatusPending).Scan(
		&qr.ID, &qr.RequesterID, &qr.Category, &qr.Description, &qr.Status, &qr.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote request: %w", err)
	}

	return &qr, nil
}

// ListQuoteRequests returns requests in a given status, oldest first, for
// the admin review queue. An empty status returns everything.
func (d *DatabaseClient) ListQuoteRequests(status string) ([]models.QuoteRequest, error) {
	builder := d.sq.Select("id", "requester_id", "category", "description", "status", "created_at").
		From("quote_requests").
		OrderBy("created_at ASC")
	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote requests: %w", err)
	}
	defer rows.Close()

	var requests []models.QuoteRequest
	for rows.Next() {
		var qr models.QuoteRequest
		if err := rows.Scan(&qr.ID, &qr.RequesterID, &qr.Category, &qr.Description, &qr.Status, &qr.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quote request: %w", err)
		}
		requests = append(requests, qr)
	}

	return requests, rows.Err()
}

// FanoutResult reports what a quote-request approval created.
type FanoutResult struct {
	Request    *models.QuoteRequest
	BookingIDs []uuid.UUID
}

// ApproveQuoteRequest fans a pending request out into one pending booking
// per sampled provider, marks the request approved, and notifies the
// requester, all in one transaction. Providers are drawn as an unweighted
// random sample of those with an approved service in the category, capped
// at fanoutSize.
func (d *DatabaseClient) ApproveQuoteRequest(requestID uuid.UUID, fanoutSize int) (*FanoutResult, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var qr models.QuoteRequest
	err = tx.QueryRow(`
		SELECT id, requester_id, category, description, status, created_at
		FROM quote_requests
		WHERE id = $1
		FOR UPDATE
	`, requestID).Scan(&qr.ID, &qr.RequesterID, &qr.Category, &qr.Description, &qr.Status, &qr.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock quote request: %w", err)
	}

	if qr.Status != models.QuoteRequestStatusPending {
		return nil, models.ErrBookingState
	}

	// DISTINCT goes in a subquery: Postgres rejects SELECT DISTINCT combined
	// with ORDER BY random() because random() is not in the select list.
	rows, err := tx.Query(`
		SELECT provider_id FROM (
			SELECT DISTINCT provider_id
			FROM services
			WHERE status = $1 AND category = $2
		) candidates
		ORDER BY random()
	`, models.ServiceStatusApproved, qr.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to sample providers: %w", err)
	}

	var providers []uuid.UUID
	for rows.Next() {
		var providerID uuid.UUID
		if err := rows.Scan(&providerID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan provider: %w", err)
		}
		providers = append(providers, providerID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to sample providers: %w", err)
	}
	providers = providers[:models.FanoutCount(len(providers), fanoutSize)]

	bookingIDs := make([]uuid.UUID, 0, len(providers))
	for _, providerID := range providers {
		var bookingID uuid.UUID
		err := tx.QueryRow(`
			INSERT INTO bookings (client_id, provider_id, status, quote_description)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, qr.RequesterID, providerID, models.BookingStatusPending, qr.Description).Scan(&bookingID)
		if err != nil {
			return nil, fmt.Errorf("failed to create fan-out booking: %w", err)
		}
		bookingIDs = append(bookingIDs, bookingID)

		if err := notifyTx(tx, providerID, "You received a quote request",
			fmt.Sprintf("/bookings/%s", bookingID)); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(`UPDATE quote_requests SET status = $1 WHERE id = $2`,
		models.QuoteRequestStatusApproved, requestID); err != nil {
		return nil, fmt.Errorf("failed to approve quote request: %w", err)
	}

	if err := notifyTx(tx, qr.RequesterID,
		fmt.Sprintf("Your quote request was sent to %d providers", len(bookingIDs)),
		"/bookings"); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit fan-out: %w", err)
	}

	qr.Status = models.QuoteRequestStatusApproved
	return &FanoutResult{Request: &qr, BookingIDs: bookingIDs}, nil
}
