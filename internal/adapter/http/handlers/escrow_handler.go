package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "novamart/internal/adapter/http/dto/response"
	"novamart/internal/usecase"
	"novamart/pkg"

	"github.com/gin-gonic/gin"
)

// EscrowHandler handles HTTP requests for escrow deposits.

type EscrowHandler struct {
	usecase usecase.IEscrowUseCase
}

func NewEscrowHandler(uc usecase.IEscrowUseCase) *EscrowHandler {
	return &EscrowHandler{usecase: uc}
}

// CreateDeposit places the escrow hold for a requested order. The body is the
// provider payment payload (payment method details); the amount is derived
// from the stored negotiation.
func (h *EscrowHandler) CreateDeposit(c *gin.Context) {
	negotiationID := c.Param("negotiation_id")
	log.Printf("[escrow][handler] deposit start negotiation_id=%s", negotiationID)
	mockMode := isEscrowMockEnabled()

	payload, err := readEscrowPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[escrow][handler] payload invalid in mock mode; fallback to empty payload negotiation_id=%s err=%v", negotiationID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[escrow][handler] invalid payload negotiation_id=%s err=%v", negotiationID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.Deposit(c.Request.Context(), negotiationID, payload)
	if err != nil {
		log.Printf("[escrow][handler] deposit failed negotiation_id=%s err=%v", negotiationID, err)
		appErr := mapEscrowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[escrow][handler] deposit success negotiation_id=%s deposit_id=%s status=%s", negotiationID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromEscrowDeposit(created))
}

// ListDeposits returns every deposit held for a negotiation.
func (h *EscrowHandler) ListDeposits(c *gin.Context) {
	negotiationID := c.Param("negotiation_id")

	deposits, err := h.usecase.ListByNegotiationID(c.Request.Context(), negotiationID)
	if err != nil {
		appErr := mapEscrowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEscrowDeposits(deposits))
}

func readEscrowPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["payment_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("payment_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapEscrowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNegotiationID),
		errors.Is(err, usecase.ErrInvalidEscrowPayload),
		errors.Is(err, usecase.ErrEscrowGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEscrowGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEscrowNotAllowed):
		return pkg.NewDomainErrorSimple("ESCROW_NOT_ALLOWED", "Escrow deposit requires a requested order", http.StatusConflict)
	case errors.Is(err, usecase.ErrNegotiationNotFound):
		return pkg.NewDomainErrorSimple("NEGOTIATION_NOT_FOUND", "Negotiation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEscrowGatewayNotConfigured):
		return pkg.NewDomainError("ESCROW_GATEWAY_NOT_CONFIGURED", "Escrow gateway not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isEscrowMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
