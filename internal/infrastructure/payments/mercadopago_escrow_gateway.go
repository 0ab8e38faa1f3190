package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"novamart/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoEscrowGateway places escrow holds through the Mercado Pago
// payments API. In mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) it
// fabricates an approved provider response so local flows work without
// credentials.
type MercadoPagoEscrowGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IEscrowGateway = (*MercadoPagoEscrowGateway)(nil)

func NewMercadoPagoEscrowGateway(accessToken string) (*MercadoPagoEscrowGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[escrow][gateway] mock mode enabled")
		return &MercadoPagoEscrowGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[escrow][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[escrow][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[escrow][gateway] Mercado Pago client initialized")

	return &MercadoPagoEscrowGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoEscrowGateway) CreateDeposit(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		log.Printf("[escrow][gateway] mock deposit start payload_len=%d", len(requestPayload))

		resp := map[string]any{}
		if len(requestPayload) > 0 && json.Valid(requestPayload) {
			if err := json.Unmarshal(requestPayload, &resp); err != nil {
				resp = map[string]any{"request_payload_raw": string(requestPayload)}
			}
		}

		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp["id"] = id
		resp["status"] = "approved"
		resp["status_detail"] = "accredited"
		if _, ok := resp["date_created"]; !ok {
			resp["date_created"] = now
		}
		if _, ok := resp["date_approved"]; !ok {
			resp["date_approved"] = now
		}

		b, err := json.Marshal(resp)
		if err != nil {
			log.Printf("[escrow][gateway] mock response marshal failed err=%v", err)
			return "", "", nil, err
		}

		log.Printf("[escrow][gateway] mock deposit success provider_payment_id=%s provider_status=approved", id)
		return id, "approved", b, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[escrow][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[escrow][gateway] deposit start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[escrow][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[escrow][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[escrow][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[escrow][gateway] deposit success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
