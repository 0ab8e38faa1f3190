package interfaces

import (
	"context"
	"novamart/internal/domain/entities"
)

// IChatRepository abstracts DynamoDB persistence for Chat bindings.
type IChatRepository interface {
	Create(ctx context.Context, c entities.Chat) (entities.Chat, error)
	GetByID(ctx context.Context, id string) (entities.Chat, error)
	FindOpenByNegotiationID(ctx context.Context, negotiationID string) (entities.Chat, error)
	Close(ctx context.Context, id string) (entities.Chat, error)
}
