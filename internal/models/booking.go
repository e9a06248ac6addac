package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending       = "pending"
	BookingStatusConfirmed     = "confirmed"
	BookingStatusQuoteProvided = "quote-provided"
	BookingStatusCompleted     = "completed"
	BookingStatusCancelled     = "cancelled"
)

const (
	QuotationStatusPending  = "pending"
	QuotationStatusApproved = "approved"
)

const (
	QuoteRequestStatusPending  = "pending"
	QuoteRequestStatusApproved = "approved"
)

type Booking struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	ProviderID       uuid.UUID
	ServiceID        uuid.NullUUID
	ScheduledFor     sql.NullTime
	Status           string
	QuoteDescription sql.NullString
	QuoteAttachments json.RawMessage
	CreatedAt        time.Time
}

// Quotation is the priced offer anchored to a Booking. A booking can only
// reach "completed" once a quotation on it is approved.
type Quotation struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	ProviderID    uuid.UUID
	Amount        float64
	AttachmentURL sql.NullString
	Status        string
	CreatedAt     time.Time
}

// QuoteRequest is a homeowner's "get me multiple quotes" record. Admin
// approval fans it out into one pending booking per sampled provider.
type QuoteRequest struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Category    string
	Description string
	Status      string
	CreatedAt   time.Time
}
