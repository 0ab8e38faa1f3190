package response

import (
	"time"

	"novamart/internal/domain/entities"
)

type ChatParticipantResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type ChatResponse struct {
	ID            string                    `json:"id"`
	NegotiationID string                    `json:"negotiation_id"`
	Participants  []ChatParticipantResponse `json:"participants"`
	Status        string                    `json:"status"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
	ClosedAt      *time.Time                `json:"closed_at,omitempty"`
}

func FromChat(c entities.Chat) ChatResponse {
	out := ChatResponse{
		ID:            c.ID,
		NegotiationID: c.NegotiationID,
		Participants:  make([]ChatParticipantResponse, 0, len(c.Participants)),
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		ClosedAt:      c.ClosedAt,
	}
	for _, p := range c.Participants {
		out.Participants = append(out.Participants, ChatParticipantResponse{UserID: p.UserID, Role: string(p.Role)})
	}
	return out
}
