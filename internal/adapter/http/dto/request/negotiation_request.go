package request

import "strings"

// CreateNegotiationRequest starts a sourcing request from a dealer against a
// manufacturer's product.
type CreateNegotiationRequest struct {
	DealerID       string  `json:"dealer_id" binding:"required"`
	ManufacturerID string  `json:"manufacturer_id" binding:"required"`
	ProductID      string  `json:"product_id" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required"`
	InitialOffer   float64 `json:"initial_offer" binding:"required"`
}

// ApplyNegotiationRequest is one action against a negotiation. Action is
// mandatory; the other fields matter only for some actions (message text for
// "message", price/quantity for "revise_offer"). ExpectedStatus carries the
// status the actor last observed so concurrent transitions are detected.
type ApplyNegotiationRequest struct {
	ActorID        string  `json:"actor_id" binding:"required"`
	ActorRole      string  `json:"actor_role" binding:"required"`
	Action         string  `json:"action" binding:"required"`
	ExpectedStatus string  `json:"expected_status"`
	Message        string  `json:"message"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
}

func (r ApplyNegotiationRequest) ResolveActorRole() string {
	return strings.ToUpper(strings.TrimSpace(r.ActorRole))
}

func (r ApplyNegotiationRequest) ResolveAction() string {
	return strings.ToLower(strings.TrimSpace(r.Action))
}

func (r ApplyNegotiationRequest) ResolveExpectedStatus() string {
	return strings.ToUpper(strings.TrimSpace(r.ExpectedStatus))
}
