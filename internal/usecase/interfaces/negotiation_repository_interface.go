package interfaces

import (
	"context"
	"novamart/internal/domain/entities"
)

// NegotiationFieldUpdate carries the record mutations that ride along with a
// transition. Nil pointers leave the stored value untouched.
type NegotiationFieldUpdate struct {
	Status       entities.NegotiationStatus
	CurrentOffer *float64
	Quantity     *int
}

// INegotiationRepository abstracts DynamoDB persistence for Negotiation.
//
// ApplyTransition is the single mutation path for status/offer fields: it
// must commit the field update and the chat message in one transaction,
// conditioned on the stored status still matching expectedStatus. A failed
// condition returns a zero-value Negotiation and a nil error, which the use
// case maps to a stale-state conflict.
type INegotiationRepository interface {
	Create(ctx context.Context, n entities.Negotiation) (entities.Negotiation, error)
	GetByID(ctx context.Context, id string) (entities.Negotiation, error)
	ListByDealerID(ctx context.Context, dealerID string) ([]entities.Negotiation, error)
	ListByManufacturerID(ctx context.Context, manufacturerID string) ([]entities.Negotiation, error)
	FindOpenByDealerAndProduct(ctx context.Context, dealerID, productID string) (entities.Negotiation, error)
	ApplyTransition(ctx context.Context, id string, expectedStatus entities.NegotiationStatus, update NegotiationFieldUpdate, msg entities.Message) (entities.Negotiation, error)
}
