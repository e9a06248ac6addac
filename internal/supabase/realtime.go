package supabase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// Supabase Realtime already broadcasts row changes for subscribed tables;
	// the inserts and updates this server performs reach clients without an
	// explicit publish. This is a placeholder for future broadcast-channel
	// events sent over the Realtime REST API.
	return nil
}

func (r *RealtimeClient) PublishConversationEvent(conversationID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("conversation:%s", conversationID.String())
	return r.PublishEvent(channel, event, payload)
}

func (r *RealtimeClient) PublishUserEvent(userID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("user:%s", userID.String())
	return r.PublishEvent(channel, event, payload)
}

// Event payloads. These document the shapes chat and booking subscribers
// receive on their channels.

func MessageInsertedPayload(messageID, conversationID, senderID uuid.UUID, content, clientRef string, createdAt time.Time) map[string]interface{} {
	payload := map[string]interface{}{
		"message_id":      messageID.String(),
		"conversation_id": conversationID.String(),
		"sender_id":       senderID.String(),
		"content":         content,
		"is_read":         false,
		"created_at":      createdAt,
	}
	if clientRef != "" {
		payload["client_ref"] = clientRef
	}
	return payload
}

func MessagesReadPayload(conversationID, readerID uuid.UUID, updated int) map[string]interface{} {
	return map[string]interface{}{
		"conversation_id": conversationID.String(),
		"reader_id":       readerID.String(),
		"updated":         updated,
	}
}

func BookingStatusPayload(bookingID uuid.UUID, status string) map[string]interface{} {
	return map[string]interface{}{
		"booking_id": bookingID.String(),
		"status":     status,
	}
}

func ProposalDecisionPayload(postID, proposalID uuid.UUID, status string) map[string]interface{} {
	return map[string]interface{}{
		"post_id":     postID.String(),
		"proposal_id": proposalID.String(),
		"status":      status,
	}
}
