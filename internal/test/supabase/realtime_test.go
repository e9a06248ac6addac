package supabase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"servicehub-backend/internal/supabase"
)

func TestMessageInsertedPayload(t *testing.T) {
	messageID := uuid.New()
	conversationID := uuid.New()
	senderID := uuid.New()
	now := time.Now()

	payload := supabase.MessageInsertedPayload(messageID, conversationID, senderID, "hello", "ref-1", now)

	assert.Equal(t, messageID.String(), payload["message_id"])
	assert.Equal(t, conversationID.String(), payload["conversation_id"])
	assert.Equal(t, senderID.String(), payload["sender_id"])
	assert.Equal(t, "hello", payload["content"])
	assert.Equal(t, "ref-1", payload["client_ref"])
	assert.Equal(t, false, payload["is_read"])
}

func TestMessageInsertedPayload_NoClientRef(t *testing.T) {
	payload := supabase.MessageInsertedPayload(uuid.New(), uuid.New(), uuid.New(), "hi", "", time.Now())

	// The key is absent rather than empty so subscribers can key off its presence.
	_, exists := payload["client_ref"]
	assert.False(t, exists)
}

func TestMessagesReadPayload(t *testing.T) {
	conversationID := uuid.New()
	readerID := uuid.New()

	payload := supabase.MessagesReadPayload(conversationID, readerID, 4)

	assert.Equal(t, conversationID.String(), payload["conversation_id"])
	assert.Equal(t, readerID.String(), payload["reader_id"])
	assert.Equal(t, 4, payload["updated"])
}

func TestBookingStatusPayload(t *testing.T) {
	bookingID := uuid.New()

	payload := supabase.BookingStatusPayload(bookingID, "confirmed")

	assert.Equal(t, bookingID.String(), payload["booking_id"])
	assert.Equal(t, "confirmed", payload["status"])
}
