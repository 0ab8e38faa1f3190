package entities

import "time"

type ChatStatus string

const (
	ChatStatusOpen   ChatStatus = "OPEN"
	ChatStatusClosed ChatStatus = "CLOSED"
)

// ChatParticipant binds a user to a chat with the role they act under.
type ChatParticipant struct {
	UserID string    `json:"user_id"`
	Role   ActorRole `json:"role"`
}

// Chat is the conversation attached to one negotiation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (negotiation_id-index): negotiation_id
//
// A negotiation has at most one OPEN chat; closing a chat stops new appends
// but leaves the stored transcript untouched.

type Chat struct {
	ID            string            `json:"id"`
	NegotiationID string            `json:"negotiation_id"`
	Participants  []ChatParticipant `json:"participants"`
	Status        ChatStatus        `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	ClosedAt      *time.Time        `json:"closed_at,omitempty"`
}

// HasParticipant reports whether userID belongs to the chat.
func (c Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}
