package response

import (
	"time"

	"novamart/internal/domain/entities"
)

type OfferResponse struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type MessageResponse struct {
	ID          string         `json:"id"`
	ChatID      string         `json:"chat_id"`
	SenderID    string         `json:"sender_id"`
	SenderRole  string         `json:"sender_role"`
	Message     string         `json:"message"`
	MessageType string         `json:"message_type"`
	Offer       *OfferResponse `json:"offer,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func FromMessage(m entities.Message) MessageResponse {
	out := MessageResponse{
		ID:          m.ID,
		ChatID:      m.ChatID,
		SenderID:    m.SenderID,
		SenderRole:  string(m.SenderRole),
		Message:     m.Message,
		MessageType: string(m.MessageType),
		CreatedAt:   m.CreatedAt,
	}
	if m.Offer != nil {
		out.Offer = &OfferResponse{Price: m.Offer.Price, Quantity: m.Offer.Quantity}
	}
	return out
}

// MessageHistoryResponse is one transcript page. NextCursor is opaque; an
// empty value means the transcript is exhausted.
type MessageHistoryResponse struct {
	Messages   []MessageResponse `json:"messages"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

func FromMessages(list []entities.Message, nextCursor string) MessageHistoryResponse {
	out := MessageHistoryResponse{
		Messages:   make([]MessageResponse, 0, len(list)),
		NextCursor: nextCursor,
	}
	for _, m := range list {
		out.Messages = append(out.Messages, FromMessage(m))
	}
	return out
}
