package interfaces

import (
	"context"
	"errors"
	"novamart/internal/domain/entities"
)

// ErrInvalidCursor is returned by ListByChatID when the supplied cursor is not
// one this repository produced.
var ErrInvalidCursor = errors.New("invalid cursor")

// IMessageRepository abstracts DynamoDB persistence for chat messages.
//
// Messages are append-only. ListByChatID pages in ascending id (ULID) order;
// the returned cursor is opaque and restartable: passing it back resumes the
// scan after the last returned message, an empty cursor starts from the
// beginning, and an empty returned cursor means the transcript is exhausted.
type IMessageRepository interface {
	Append(ctx context.Context, m entities.Message) (entities.Message, error)
	ListByChatID(ctx context.Context, chatID string, limit int, cursor string) ([]entities.Message, string, error)
}
