package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the unique pairing of a client and a provider. Lookups
// match either orientation of the pair.
type Conversation struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	ProviderID uuid.UUID
	CreatedAt  time.Time
}

func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.ClientID == userID || c.ProviderID == userID
}

// OtherParticipant returns the peer of userID in the conversation.
func (c *Conversation) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if c.ClientID == userID {
		return c.ProviderID
	}
	return c.ClientID
}

type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Content        string
	IsRead         bool
	CreatedAt      time.Time
}
