package entities

import (
	"encoding/json"
	"time"
)

type EscrowStatus string

const (
	EscrowStatusHeld     EscrowStatus = "HELD"
	EscrowStatusReleased EscrowStatus = "RELEASED"
	EscrowStatusRefunded EscrowStatus = "REFUNDED"
)

// EscrowDeposit records the buyer-protection hold placed when a dealer raises
// the order request. The amount is always currentOffer x quantity of the
// stored negotiation, never a client-supplied figure.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (negotiation_id-index): negotiation_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type EscrowDeposit struct {
	ID            string       `json:"id"`
	NegotiationID string       `json:"negotiation_id"`
	Amount        float64      `json:"amount"`
	Status        EscrowStatus `json:"status"`
	Date          time.Time    `json:"date"`

	ProviderPaymentID  string                 `json:"provider_payment_id"`
	ProviderStatus     string                 `json:"provider_status"`
	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
