package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "novamart/internal/adapter/http/dto/request"
	response "novamart/internal/adapter/http/dto/response"
	"novamart/internal/domain/entities"
	"novamart/internal/usecase"
	"novamart/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNegotiationPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// NegotiationHandler handles HTTP requests for the negotiation lifecycle.

type NegotiationHandler struct {
	usecase usecase.INegotiationUseCase
}

func NewNegotiationHandler(uc usecase.INegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{usecase: uc}
}

// CreateNegotiation starts a sourcing request and seeds its chat.
func (h *NegotiationHandler) CreateNegotiation(c *gin.Context) {
	var payload request.CreateNegotiationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateNegotiationInput{
		DealerID:       payload.DealerID,
		ManufacturerID: payload.ManufacturerID,
		ProductID:      payload.ProductID,
		Quantity:       payload.Quantity,
		InitialOffer:   payload.InitialOffer,
	})
	if err != nil {
		log.Printf("[negotiation][handler] create failed dealer_id=%s err=%v", payload.DealerID, err)
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromNegotiation(created))
}

// GetNegotiation returns one negotiation by id.
func (h *NegotiationHandler) GetNegotiation(c *gin.Context) {
	id := c.Param("id")

	n, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNegotiation(n))
}

// ListNegotiations lists negotiations for one side of the marketplace,
// selected with the dealer_id or manufacturer_id query parameter.
func (h *NegotiationHandler) ListNegotiations(c *gin.Context) {
	dealerID := strings.TrimSpace(c.Query("dealer_id"))
	manufacturerID := strings.TrimSpace(c.Query("manufacturer_id"))

	var (
		list []entities.Negotiation
		err  error
	)
	switch {
	case dealerID != "":
		list, err = h.usecase.ListByDealerID(c.Request.Context(), dealerID)
	case manufacturerID != "":
		list, err = h.usecase.ListByManufacturerID(c.Request.Context(), manufacturerID)
	default:
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNegotiations(list))
}

// ApplyNegotiationAction submits one lifecycle action. Accepted actions
// return the committed record together with the transcript entry.
func (h *NegotiationHandler) ApplyNegotiationAction(c *gin.Context) {
	id := c.Param("id")

	var payload request.ApplyNegotiationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Apply(c.Request.Context(), id, usecase.ApplyInput{
		ActorID:        payload.ActorID,
		ActorRole:      entities.ActorRole(payload.ResolveActorRole()),
		Action:         entities.NegotiationAction(payload.ResolveAction()),
		ExpectedStatus: entities.NegotiationStatus(payload.ResolveExpectedStatus()),
		Message:        payload.Message,
		Price:          payload.Price,
		Quantity:       payload.Quantity,
	})
	if err != nil {
		log.Printf("[negotiation][handler] apply failed negotiation_id=%s action=%s err=%v", id, payload.Action, err)
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ApplyNegotiationResponse{
		Negotiation: response.FromNegotiation(res.Negotiation),
		Message:     response.FromMessage(res.Message),
	})
}

func mapNegotiationError(err error) *pkg.AppError {
	var dup *usecase.OpenNegotiationExistsError
	switch {
	case errors.Is(err, usecase.ErrInvalidNegotiationID),
		errors.Is(err, usecase.ErrInvalidParty),
		errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidOffer),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrEmptyMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &dup):
		return pkg.NewDomainErrorSimple("OPEN_NEGOTIATION_EXISTS", "An open negotiation already exists for this dealer and product: "+dup.NegotiationID, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Action not allowed in the current negotiation state", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleState):
		return pkg.NewDomainErrorSimple("STALE_STATE", "Negotiation changed concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotParticipant):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not a participant of this negotiation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNegotiationNotFound):
		return pkg.NewDomainErrorSimple("NEGOTIATION_NOT_FOUND", "Negotiation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
