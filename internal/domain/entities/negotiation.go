package entities

import (
	"errors"
	"time"
)

// NegotiationStatus represents the lifecycle of a bulk-supply negotiation.
//
// The status set is closed. Transitions only move forward along the graph
// validated by Transition(); terminal records are kept for audit and never
// deleted.

type NegotiationStatus string

const (
	NegotiationStatusOpen           NegotiationStatus = "OPEN"
	NegotiationStatusAccepted       NegotiationStatus = "ACCEPTED"
	NegotiationStatusRejected       NegotiationStatus = "REJECTED"
	NegotiationStatusOrderRequested NegotiationStatus = "ORDER_REQUESTED"
	NegotiationStatusOrderFulfilled NegotiationStatus = "ORDER_FULFILLED"
)

// IsValid reports whether s belongs to the closed status set.
func (s NegotiationStatus) IsValid() bool {
	switch s {
	case NegotiationStatusOpen,
		NegotiationStatusAccepted,
		NegotiationStatusRejected,
		NegotiationStatusOrderRequested,
		NegotiationStatusOrderFulfilled:
		return true
	}
	return false
}

// IsTerminal reports whether no further action is accepted from s.
func (s NegotiationStatus) IsTerminal() bool {
	return s == NegotiationStatusRejected || s == NegotiationStatusOrderFulfilled
}

// ActorRole identifies who performs an action or sends a message.
//
// SYSTEM is reserved for transition log entries; ADMIN is a read-only
// moderation role and is never a valid transition actor.

type ActorRole string

const (
	RoleDealer       ActorRole = "DEALER"
	RoleManufacturer ActorRole = "MANUFACTURER"
	RoleSystem       ActorRole = "SYSTEM"
	RoleAdmin        ActorRole = "ADMIN"
)

// IsParty reports whether the role is one of the two negotiating parties.
func (r ActorRole) IsParty() bool {
	return r == RoleDealer || r == RoleManufacturer
}

// NegotiationAction is a request against the transition authority.

type NegotiationAction string

const (
	ActionMessage      NegotiationAction = "message"
	ActionReviseOffer  NegotiationAction = "revise_offer"
	ActionAccept       NegotiationAction = "accept"
	ActionReject       NegotiationAction = "reject"
	ActionRequestOrder NegotiationAction = "request_order"
	ActionFulfill      NegotiationAction = "fulfill"
)

// IsValid reports whether a is a known action.
func (a NegotiationAction) IsValid() bool {
	switch a {
	case ActionMessage, ActionReviseOffer, ActionAccept, ActionReject, ActionRequestOrder, ActionFulfill:
		return true
	}
	return false
}

// Negotiation is the persisted record of a dealer/manufacturer price
// negotiation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (dealer_id-index): dealer_id
//   - GSI2 (manufacturer_id-index): manufacturer_id
//
// Status and CurrentOffer are mutated only through the transition authority,
// which commits the field update and the corresponding chat entry in one
// transaction.

type Negotiation struct {
	ID             string            `json:"id"`
	DealerID       string            `json:"dealer_id"`
	ManufacturerID string            `json:"manufacturer_id"`
	ProductID      string            `json:"product_id"`
	Quantity       int               `json:"quantity"`
	CurrentOffer   float64           `json:"current_offer"`
	Status         NegotiationStatus `json:"status"`
	ChatID         string            `json:"chat_id"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ErrInvalidTransition is returned by Transition for any (status, actor,
// action) triple outside the table below.
var ErrInvalidTransition = errors.New("invalid negotiation transition")

// TransitionResult is the outcome of a permitted action.
type TransitionResult struct {
	NewStatus  NegotiationStatus
	SystemNote string
	// StatusChanged is false for message/revise_offer, which leave the
	// negotiation OPEN.
	StatusChanged bool
}

// Transition validates an action against the current status and actor role.
//
//	OPEN            --message/revise_offer (either party)--> OPEN
//	OPEN            --accept (manufacturer)--------------->  ACCEPTED
//	OPEN            --reject (manufacturer)--------------->  REJECTED   (terminal)
//	ACCEPTED        --request_order (dealer)-------------->  ORDER_REQUESTED
//	ORDER_REQUESTED --fulfill (manufacturer)-------------->  ORDER_FULFILLED (terminal)
//
// Role gating encodes turn-taking discipline: a dealer cannot accept its own
// offer and a manufacturer cannot raise the order request. Every other
// combination is rejected with ErrInvalidTransition and must cause no side
// effects in the caller.
func Transition(current NegotiationStatus, actor ActorRole, action NegotiationAction) (TransitionResult, error) {
	if !current.IsValid() || !actor.IsParty() || !action.IsValid() {
		return TransitionResult{}, ErrInvalidTransition
	}

	switch current {
	case NegotiationStatusOpen:
		switch {
		case action == ActionMessage || action == ActionReviseOffer:
			return TransitionResult{NewStatus: NegotiationStatusOpen}, nil
		case action == ActionAccept && actor == RoleManufacturer:
			return TransitionResult{NewStatus: NegotiationStatusAccepted, SystemNote: "Negotiation accepted", StatusChanged: true}, nil
		case action == ActionReject && actor == RoleManufacturer:
			return TransitionResult{NewStatus: NegotiationStatusRejected, SystemNote: "Negotiation rejected", StatusChanged: true}, nil
		}
	case NegotiationStatusAccepted:
		if action == ActionRequestOrder && actor == RoleDealer {
			return TransitionResult{NewStatus: NegotiationStatusOrderRequested, SystemNote: "Order requested", StatusChanged: true}, nil
		}
	case NegotiationStatusOrderRequested:
		if action == ActionFulfill && actor == RoleManufacturer {
			return TransitionResult{NewStatus: NegotiationStatusOrderFulfilled, SystemNote: "Order fulfilled", StatusChanged: true}, nil
		}
	}

	return TransitionResult{}, ErrInvalidTransition
}
