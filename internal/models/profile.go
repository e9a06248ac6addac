package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Profile mirrors the auth user row plus marketplace fields. The ID is the
// Supabase auth user id.
type Profile struct {
	ID           uuid.UUID
	Role         Role
	FullName     string
	BusinessName sql.NullString
	Phone        sql.NullString
	Province     sql.NullString
	City         sql.NullString
	CreatedAt    time.Time
}

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Message   string
	Link      sql.NullString
	IsRead    bool
	CreatedAt time.Time
}
