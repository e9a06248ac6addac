package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"servicehub-backend/internal/models"
)

func (d *DatabaseClient) CreateNotification(userID uuid.UUID, message, link string) error {
	_, err := d.db.Exec(`
		INSERT INTO notifications (user_id, message, link)
		VALUES ($1, $2, NULLIF($3, ''))
	`, userID, message, link)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// notifyTx inserts a notification inside a workflow transaction so the
// notification row commits or rolls back with the operation it announces.
func notifyTx(tx *sql.Tx, userID uuid.UUID, message, link string) error {
	_, err := tx.Exec(`
		INSERT INTO notifications (user_id, message, link)
		VALUES ($1, $2, NULLIF($3, ''))
	`, userID, message, link)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (d *DatabaseClient) ListNotifications(userID uuid.UUID) ([]models.Notification, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, message, link, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Link, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (d *DatabaseClient) MarkNotificationRead(notificationID, userID uuid.UUID) error {
	res, err := d.db.Exec(`
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
	`, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
