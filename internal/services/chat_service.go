package services

import (
	"errors"

	"github.com/google/uuid"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

// ChatService owns the conversation lifecycle: pair lookup, message send
// with its notification, and read-receipt marking, plus the realtime
// payloads subscribers receive for each.
type ChatService struct {
	dbClient       *supabase.DatabaseClient
	realtimeClient *supabase.RealtimeClient
}

func NewChatService(dbClient *supabase.DatabaseClient, realtimeClient *supabase.RealtimeClient) *ChatService {
	return &ChatService{
		dbClient:       dbClient,
		realtimeClient: realtimeClient,
	}
}

// Open finds the conversation for the (caller, other) pair in either
// orientation, creating it when absent. The caller's role decides which
// side of the pair they occupy on create.
func (s *ChatService) Open(callerID, otherID uuid.UUID, callerRole models.Role) (*models.Conversation, error) {
	conv, err := s.dbClient.FindConversation(callerID, otherID)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, supabase.ErrNotFound) {
		return nil, err
	}

	clientID, providerID := callerID, otherID
	if callerRole == models.RoleProvider {
		clientID, providerID = otherID, callerID
	}
	return s.dbClient.CreateConversation(clientID, providerID)
}

// Send persists the message together with the recipient's notification and
// publishes the insert payload. ClientRef is echoed untouched so the sender
// can replace its optimistic entry; a failed send persists nothing, so the
// client's rollback leaves no orphan row behind.
func (s *ChatService) Send(conversationID, senderID uuid.UUID, content, clientRef string) (*models.Message, error) {
	conv, err := s.dbClient.GetConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(senderID) {
		return nil, models.ErrNotParticipant
	}

	message, err := s.dbClient.CreateMessage(conversationID, senderID, conv.OtherParticipant(senderID), content)
	if err != nil {
		return nil, err
	}

	_ = s.realtimeClient.PublishConversationEvent(conversationID, "message_inserted",
		supabase.MessageInsertedPayload(message.ID, conversationID, senderID, content, clientRef, message.CreatedAt))

	return message, nil
}

// MarkRead bulk-flips unread messages from the other party and publishes
// the read-receipt payload when anything changed.
func (s *ChatService) MarkRead(conversationID, readerID uuid.UUID) (int, error) {
	conv, err := s.dbClient.GetConversation(conversationID)
	if err != nil {
		return 0, err
	}
	if !conv.HasParticipant(readerID) {
		return 0, models.ErrNotParticipant
	}

	updated, err := s.dbClient.MarkMessagesRead(conversationID, readerID)
	if err != nil {
		return 0, err
	}

	if updated > 0 {
		_ = s.realtimeClient.PublishConversationEvent(conversationID, "messages_read",
			supabase.MessagesReadPayload(conversationID, readerID, updated))
	}

	return updated, nil
}
