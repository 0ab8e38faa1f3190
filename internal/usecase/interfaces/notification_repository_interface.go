package interfaces

import (
	"context"
	"novamart/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
}
