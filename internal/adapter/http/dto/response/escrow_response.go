package response

import (
	"time"

	"novamart/internal/domain/entities"
)

type EscrowDepositResponse struct {
	ID            string    `json:"id"`
	NegotiationID string    `json:"negotiation_id"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`

	ProviderPaymentID  string                 `json:"provider_payment_id,omitempty"`
	ProviderStatus     string                 `json:"provider_status,omitempty"`
	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromEscrowDeposit(d entities.EscrowDeposit) EscrowDepositResponse {
	return EscrowDepositResponse{
		ID:                 d.ID,
		NegotiationID:      d.NegotiationID,
		Amount:             d.Amount,
		Status:             string(d.Status),
		Date:               d.Date,
		ProviderPaymentID:  d.ProviderPaymentID,
		ProviderStatus:     d.ProviderStatus,
		ProviderPayloadRaw: string(d.ProviderPayloadRaw),
		ProviderPayload:    d.ProviderPayload,
	}
}

func FromEscrowDeposits(list []entities.EscrowDeposit) []EscrowDepositResponse {
	out := make([]EscrowDepositResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromEscrowDeposit(d))
	}
	return out
}
