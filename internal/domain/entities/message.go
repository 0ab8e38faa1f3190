package entities

import "time"

// MessageType distinguishes user text, offer revisions, file attachments and
// transition log entries.

type MessageType string

const (
	MessageTypeText   MessageType = "TEXT"
	MessageTypeSystem MessageType = "SYSTEM"
	MessageTypeFile   MessageType = "FILE"
	MessageTypeOffer  MessageType = "OFFER"
)

// IsValid reports whether t is a known message type.
func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeText, MessageTypeSystem, MessageTypeFile, MessageTypeOffer:
		return true
	}
	return false
}

// OfferDetails carries the proposed terms of an OFFER message.
type OfferDetails struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Message is one immutable entry of a negotiation's chat transcript.
//
// Storage model (DynamoDB):
//   - PK: chat_id
//   - SK: id
//
// The id is a ULID minted at append time from a monotonic source, so
// lexicographic id order equals commit order. History queries sort on the
// range key and therefore return a stable total order (createdAt, then
// insertion sequence). Messages are never edited or deleted.

type Message struct {
	ID          string        `json:"id"`
	ChatID      string        `json:"chat_id"`
	SenderID    string        `json:"sender_id"`
	SenderRole  ActorRole     `json:"sender_role"`
	Message     string        `json:"message"`
	MessageType MessageType   `json:"message_type"`
	Offer       *OfferDetails `json:"offer,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
