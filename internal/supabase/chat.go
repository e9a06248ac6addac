package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"servicehub-backend/internal/models"
)

// FindConversation matches either orientation of the (client, provider) pair.
func (d *DatabaseClient) FindConversation(a, b uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	err := d.db.QueryRow(`
		SELECT id, client_id, provider_id, created_at
		FROM conversations
		WHERE (client_id = $1 AND provider_id = $2)
		   OR (client_id = $2 AND provider_id = $1)
	`, a, b).Scan(&conv.ID, &conv.ClientID, &conv.ProviderID, &conv.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	return &conv, nil
}

// CreateConversation inserts the pair. Two sessions racing the same pair
// fall back to the existing row via the unique constraint.
func (d *DatabaseClient) CreateConversation(clientID, providerID uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	err := d.db.QueryRow(`
		INSERT INTO conversations (client_id, provider_id)
		VALUES ($1, $2)
		RETURNING id, client_id, provider_id, created_at
	`, clientID, providerID).Scan(&conv.ID, &conv.ClientID, &conv.ProviderID, &conv.CreatedAt)
	if isUniqueViolation(err) {
		return d.FindConversation(clientID, providerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	return &conv, nil
}

func (d *DatabaseClient) GetConversation(conversationID uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	err := d.db.QueryRow(`
		SELECT id, client_id, provider_id, created_at
		FROM conversations
		WHERE id = $1
	`, conversationID).Scan(&conv.ID, &conv.ClientID, &conv.ProviderID, &conv.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	return &conv, nil
}

// ListConversations returns the user's conversations with the count of
// messages from the other party that they have not read yet.
func (d *DatabaseClient) ListConversations(userID uuid.UUID) ([]models.Conversation, map[uuid.UUID]int, error) {
	rows, err := d.db.Query(`
		SELECT c.id, c.client_id, c.provider_id, c.created_at,
		       COUNT(m.id) FILTER (WHERE NOT m.is_read AND m.sender_id <> $1) AS unread
		FROM conversations c
		LEFT JOIN messages m ON m.conversation_id = c.id
		WHERE c.client_id = $1 OR c.provider_id = $1
		GROUP BY c.id
		ORDER BY c.created_at DESC
	`, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []models.Conversation
	unread := make(map[uuid.UUID]int)
	for rows.Next() {
		var conv models.Conversation
		var count int
		if err := rows.Scan(&conv.ID, &conv.ClientID, &conv.ProviderID, &conv.CreatedAt, &count); err != nil {
			return nil, nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, conv)
		unread[conv.ID] = count
	}

	return conversations, unread, rows.Err()
}

// ListMessages returns messages in ascending creation order, the order the
// chat panel renders them in.
func (d *DatabaseClient) ListMessages(conversationID uuid.UUID) ([]models.Message, error) {
	rows, err := d.db.Query(`
		SELECT id, conversation_id, sender_id, content, is_read, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
	`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// CreateMessage inserts the message and the recipient's notification
// together. The message row either persists with its notification or not at
// all, so a failed send leaves nothing behind for an optimistic client to
// reconcile against.
func (d *DatabaseClient) CreateMessage(conversationID, senderID, recipientID uuid.UUID, content string) (*models.Message, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var m models.Message
	err = tx.QueryRow(`
		INSERT INTO messages (conversation_id, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, conversation_id, sender_id, content, is_read, created_at
	`, conversationID, senderID, content).Scan(
		&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.IsRead, &m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}

	if err := notifyTx(tx, recipientID, "You have a new message",
		fmt.Sprintf("/conversations/%s", conversationID)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message: %w", err)
	}

	return &m, nil
}

// MarkMessagesRead flips is_read on every unread message in the
// conversation not authored by the reader, and reports how many changed.
func (d *DatabaseClient) MarkMessagesRead(conversationID, readerID uuid.UUID) (int, error) {
	res, err := d.db.Exec(`
		UPDATE messages
		SET is_read = TRUE
		WHERE conversation_id = $1 AND sender_id <> $2 AND NOT is_read
	`, conversationID, readerID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count marked messages: %w", err)
	}
	return int(n), nil
}
