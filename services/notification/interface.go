package notification

import (
	"context"

	"freshfold/models"
)

// NotificationService surfaces success/failure feedback to the booking client.
// Notices are queued per session and drained by the frontend's toast layer.
type NotificationService interface {
	Push(ctx context.Context, sessionID string, level models.NoticeLevel, message string) error
	Drain(ctx context.Context, sessionID string) ([]models.Notice, error)
}
