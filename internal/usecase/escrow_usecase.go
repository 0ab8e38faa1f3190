package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"novamart/internal/domain/entities"
	"novamart/internal/usecase/interfaces"
)

var (
	ErrEscrowNotAllowed           = errors.New("escrow deposit requires an order request")
	ErrInvalidEscrowPayload       = errors.New("invalid escrow payload")
	ErrEscrowGatewayNotConfigured = errors.New("escrow gateway not configured")
	ErrEscrowGatewayBadRequest    = errors.New("escrow gateway bad request")
	ErrEscrowGatewayUnauthorized  = errors.New("escrow gateway unauthorized")
)

// IEscrowUseCase encapsulates the "place deposit and hold" behavior.
//
// The deposit amount is always derived from the stored negotiation
// (currentOffer x quantity); the caller's payload only carries payment-method
// details for the provider.
type IEscrowUseCase interface {
	Deposit(ctx context.Context, negotiationID string, payload json.RawMessage) (entities.EscrowDeposit, error)
	ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.EscrowDeposit, error)
}

type EscrowUseCase struct {
	repo            interfaces.IEscrowRepository
	negotiationRepo interfaces.INegotiationRepository
	gateway         interfaces.IEscrowGateway
}

var _ IEscrowUseCase = (*EscrowUseCase)(nil)

func NewEscrowUseCase(repo interfaces.IEscrowRepository, negotiationRepo interfaces.INegotiationRepository, gateway interfaces.IEscrowGateway) *EscrowUseCase {
	return &EscrowUseCase{repo: repo, negotiationRepo: negotiationRepo, gateway: gateway}
}

func (u *EscrowUseCase) Deposit(ctx context.Context, negotiationID string, payload json.RawMessage) (entities.EscrowDeposit, error) {
	log.Printf("[escrow][usecase] deposit start raw_negotiation_id=%q payload_len=%d", negotiationID, len(payload))
	mockMode := isEscrowGatewayMockEnabled()

	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return entities.EscrowDeposit{}, ErrInvalidNegotiationID
	}
	if len(payload) == 0 {
		if mockMode {
			payload = json.RawMessage("{}")
		} else {
			return entities.EscrowDeposit{}, ErrInvalidEscrowPayload
		}
	}
	if !json.Valid(payload) {
		if mockMode {
			payload = json.RawMessage("{}")
		} else {
			return entities.EscrowDeposit{}, ErrInvalidEscrowPayload
		}
	}
	if u.gateway == nil {
		return entities.EscrowDeposit{}, ErrEscrowGatewayNotConfigured
	}

	n, err := u.negotiationRepo.GetByID(ctx, negotiationID)
	if err != nil {
		return entities.EscrowDeposit{}, err
	}
	if n.ID == "" {
		return entities.EscrowDeposit{}, ErrNegotiationNotFound
	}
	if !mockMode && n.Status != entities.NegotiationStatusOrderRequested {
		log.Printf("[escrow][usecase] negotiation not in order-requested state negotiation_id=%s status=%s", n.ID, n.Status)
		return entities.EscrowDeposit{}, ErrEscrowNotAllowed
	}

	amount := n.CurrentOffer * float64(n.Quantity)

	// The provider uses external_reference to reconcile events; the stored
	// negotiation is the source of truth for the amount.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = n.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Escrow deposit for negotiation %s", n.ID)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreateDeposit(ctx, payload)
	if err != nil {
		log.Printf("[escrow][usecase] gateway failed negotiation_id=%s err=%v", n.ID, err)
		if isGatewayUnauthorized(err) {
			return entities.EscrowDeposit{}, ErrEscrowGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.EscrowDeposit{}, ErrEscrowGatewayBadRequest
		}
		return entities.EscrowDeposit{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[escrow][usecase] provider response unmarshal failed negotiation_id=%s err=%v", n.ID, err)
	}

	d := entities.EscrowDeposit{
		ID:                 providerPaymentID,
		NegotiationID:      n.ID,
		Amount:             amount,
		Status:             entities.EscrowStatusHeld,
		Date:               time.Now().UTC(),
		ProviderPaymentID:  providerPaymentID,
		ProviderStatus:     providerStatus,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[escrow][usecase] repository create failed negotiation_id=%s deposit_id=%s err=%v", n.ID, d.ID, err)
		return entities.EscrowDeposit{}, err
	}
	log.Printf("[escrow][usecase] deposit held negotiation_id=%s deposit_id=%s amount=%.2f", n.ID, created.ID, amount)
	return created, nil
}

func (u *EscrowUseCase) ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.EscrowDeposit, error) {
	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return nil, ErrInvalidNegotiationID
	}
	return u.repo.ListByNegotiationID(ctx, negotiationID)
}

func isEscrowGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
