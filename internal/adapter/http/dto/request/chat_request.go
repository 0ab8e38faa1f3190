package request

import "strings"

// EnsureChatRequest binds (or rebinds) the chat of a negotiation.
type EnsureChatRequest struct {
	NegotiationID string `json:"negotiation_id" binding:"required"`
}

type OfferRequest struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// AppendMessageRequest posts one participant message to a chat. MessageType
// defaults to TEXT; SYSTEM is not accepted here.
type AppendMessageRequest struct {
	SenderID    string        `json:"sender_id" binding:"required"`
	SenderRole  string        `json:"sender_role" binding:"required"`
	Message     string        `json:"message"`
	MessageType string        `json:"message_type"`
	Offer       *OfferRequest `json:"offer"`
}

func (r AppendMessageRequest) ResolveSenderRole() string {
	return strings.ToUpper(strings.TrimSpace(r.SenderRole))
}

func (r AppendMessageRequest) ResolveMessageType() string {
	return strings.ToUpper(strings.TrimSpace(r.MessageType))
}

// CloseChatRequest closes the chat on behalf of one of its participants.
type CloseChatRequest struct {
	RequesterID string `json:"requester_id" binding:"required"`
}
