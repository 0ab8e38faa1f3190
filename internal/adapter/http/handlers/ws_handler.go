package handlers

import (
	"log"
	"net/http"
	"strings"

	"novamart/internal/domain/entities"
	"novamart/internal/infrastructure/ws"
	"novamart/internal/usecase"
	"novamart/pkg"

	"github.com/gin-gonic/gin"
)

// WSHandler upgrades authorized participants onto the chat websocket.

type WSHandler struct {
	hub     *ws.Hub
	usecase usecase.IChatUseCase
}

func NewWSHandler(hub *ws.Hub, uc usecase.IChatUseCase) *WSHandler {
	return &WSHandler{hub: hub, usecase: uc}
}

// Connect validates the chat and the requesting participant, then hands the
// connection to the hub. The participant's role is taken from the chat record,
// never from the request.
func (h *WSHandler) Connect(c *gin.Context) {
	chatID := strings.TrimSpace(c.Query("chat_id"))
	userID := strings.TrimSpace(c.Query("user_id"))
	if chatID == "" || userID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "chat_id and user_id are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	chat, err := h.usecase.GetByID(c.Request.Context(), chatID)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if chat.Status != entities.ChatStatusOpen {
		appErr := pkg.NewDomainErrorSimple("CHAT_CLOSED", "Chat is closed", http.StatusConflict)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	role, err := participantRole(chat, userID)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[ws][handler] connect chat_id=%s user_id=%s role=%s", chatID, userID, role)
	ws.ServeWS(h.hub, c.Writer, c.Request, chatID, userID, role)
}

func participantRole(chat entities.Chat, userID string) (entities.ActorRole, error) {
	for _, p := range chat.Participants {
		if p.UserID == userID {
			return p.Role, nil
		}
	}
	return "", usecase.ErrNotParticipant
}
