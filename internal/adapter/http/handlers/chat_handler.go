package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	request "novamart/internal/adapter/http/dto/request"
	response "novamart/internal/adapter/http/dto/response"
	"novamart/internal/domain/entities"
	"novamart/internal/usecase"
	"novamart/internal/usecase/interfaces"
	"novamart/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// ChatHandler handles HTTP requests for the message/offer channel.

type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// EnsureChat resolves the chat bound to a negotiation, recreating the binding
// if it is missing. Idempotent.
func (h *ChatHandler) EnsureChat(c *gin.Context) {
	var payload request.EnsureChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	chat, err := h.usecase.EnsureForNegotiation(c.Request.Context(), payload.NegotiationID)
	if err != nil {
		log.Printf("[chat][handler] ensure failed negotiation_id=%s err=%v", payload.NegotiationID, err)
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChat(chat))
}

// GetChat returns one chat by id.
func (h *ChatHandler) GetChat(c *gin.Context) {
	id := c.Param("id")

	chat, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChat(chat))
}

// AppendMessage posts one participant message to the chat.
func (h *ChatHandler) AppendMessage(c *gin.Context) {
	chatID := c.Param("id")

	var payload request.AppendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	in := usecase.AppendMessageInput{
		SenderID:    payload.SenderID,
		SenderRole:  entities.ActorRole(payload.ResolveSenderRole()),
		Message:     payload.Message,
		MessageType: entities.MessageType(payload.ResolveMessageType()),
	}
	if payload.Offer != nil {
		in.Offer = &entities.OfferDetails{Price: payload.Offer.Price, Quantity: payload.Offer.Quantity}
	}

	msg, err := h.usecase.AppendMessage(c.Request.Context(), chatID, in)
	if err != nil {
		log.Printf("[chat][handler] append failed chat_id=%s sender_id=%s err=%v", chatID, payload.SenderID, err)
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMessage(msg))
}

// GetHistory returns one transcript page in creation order. Query parameters:
// requester_id (participant gate), limit, cursor (opaque, from the previous
// page).
func (h *ChatHandler) GetHistory(c *gin.Context) {
	chatID := c.Param("id")
	requesterID := strings.TrimSpace(c.Query("requester_id"))
	cursor := c.Query("cursor")

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
			return
		}
		limit = v
	}

	msgs, next, err := h.usecase.History(c.Request.Context(), chatID, requesterID, limit, cursor)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMessages(msgs, next))
}

// CloseChat closes the chat on behalf of a participant. Stored history stays
// readable.
func (h *ChatHandler) CloseChat(c *gin.Context) {
	chatID := c.Param("id")

	var payload request.CloseChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	chat, err := h.usecase.Close(c.Request.Context(), chatID, payload.RequesterID)
	if err != nil {
		log.Printf("[chat][handler] close failed chat_id=%s requester_id=%s err=%v", chatID, payload.RequesterID, err)
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChat(chat))
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChatID),
		errors.Is(err, usecase.ErrInvalidNegotiationID),
		errors.Is(err, usecase.ErrInvalidSender),
		errors.Is(err, usecase.ErrInvalidMessageType),
		errors.Is(err, usecase.ErrInvalidOfferTerms),
		errors.Is(err, usecase.ErrEmptyMessage),
		errors.Is(err, interfaces.ErrInvalidCursor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotParticipant):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Requester is not a participant of this chat", http.StatusForbidden)
	case errors.Is(err, usecase.ErrChatClosed):
		return pkg.NewDomainErrorSimple("CHAT_CLOSED", "Chat is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNegotiationLocked):
		return pkg.NewDomainErrorSimple("NEGOTIATION_LOCKED", "Negotiation is closed to new messages", http.StatusConflict)
	case errors.Is(err, usecase.ErrChatNotFound):
		return pkg.NewDomainErrorSimple("CHAT_NOT_FOUND", "Chat not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNegotiationNotFound):
		return pkg.NewDomainErrorSimple("NEGOTIATION_NOT_FOUND", "Negotiation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
