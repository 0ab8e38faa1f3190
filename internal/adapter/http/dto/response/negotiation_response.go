package response

import (
	"time"

	"novamart/internal/domain/entities"
)

type NegotiationResponse struct {
	ID             string    `json:"id"`
	DealerID       string    `json:"dealer_id"`
	ManufacturerID string    `json:"manufacturer_id"`
	ProductID      string    `json:"product_id"`
	Quantity       int       `json:"quantity"`
	CurrentOffer   float64   `json:"current_offer"`
	Status         string    `json:"status"`
	ChatID         string    `json:"chat_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromNegotiation(n entities.Negotiation) NegotiationResponse {
	return NegotiationResponse{
		ID:             n.ID,
		DealerID:       n.DealerID,
		ManufacturerID: n.ManufacturerID,
		ProductID:      n.ProductID,
		Quantity:       n.Quantity,
		CurrentOffer:   n.CurrentOffer,
		Status:         string(n.Status),
		ChatID:         n.ChatID,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func FromNegotiations(list []entities.Negotiation) []NegotiationResponse {
	out := make([]NegotiationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, FromNegotiation(n))
	}
	return out
}

// ApplyNegotiationResponse returns the committed record together with the
// transcript entry the action produced.
type ApplyNegotiationResponse struct {
	Negotiation NegotiationResponse `json:"negotiation"`
	Message     MessageResponse     `json:"message"`
}
