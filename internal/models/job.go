package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	JobPostStatusOpen   = "open"
	JobPostStatusClosed = "closed"
)

const (
	ProposalStatusPending  = "pending"
	ProposalStatusApproved = "approved"
	ProposalStatusRejected = "rejected"
)

type JobPost struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Title             string
	Description       string
	Province          string
	City              string
	Budget            sql.NullFloat64
	Status            string
	ExpiresAt         time.Time
	WinningProposalID uuid.NullUUID
	CreatedAt         time.Time
}

// Expired is computed at read time; no "expired" status is persisted.
func (p *JobPost) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

type JobProposal struct {
	ID           uuid.UUID
	PostID       uuid.UUID
	ProviderID   uuid.UUID
	QuoteAmount  float64
	QuoteDetails string
	LineItems    json.RawMessage
	Status       string
	CreatedAt    time.Time
}

type LineItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
