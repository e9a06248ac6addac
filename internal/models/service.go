package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ServiceStatusPending  = "pending"
	ServiceStatusApproved = "approved"
	ServiceStatusRejected = "rejected"
)

type Service struct {
	ID              uuid.UUID
	ProviderID      uuid.UUID
	Title           string
	Description     string
	Category        string
	PriceFrom       sql.NullFloat64
	Status          string
	RejectionReason sql.NullString
	Locations       json.RawMessage
	CreatedAt       time.Time
}

type ServiceLocation struct {
	Province string `json:"province"`
	City     string `json:"city"`
}

// StatusUpdate is a provider feed post: one or more images plus an optional
// caption, unrelated to the workflow status fields.
type StatusUpdate struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	Caption    sql.NullString
	ImageURLs  json.RawMessage
	LikeCount  int
	CreatedAt  time.Time
}

type Review struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	ClientID   uuid.UUID
	ProviderID uuid.UUID
	Rating     int
	Comment    sql.NullString
	CreatedAt  time.Time
}
