package interfaces

import (
	"context"
	"encoding/json"
)

// IEscrowGateway abstracts the external payment provider (e.g. Mercado Pago)
// used to place the escrow hold.
//
// The negotiation service uses it to create the deposit and persists the
// provider response payload for traceability.
type IEscrowGateway interface {
	CreateDeposit(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
