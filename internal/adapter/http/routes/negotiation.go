package routes

import (
	"novamart/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNegotiations  = "/negotiations"
	PathChats         = "/chats"
	PathEscrow        = "/escrow"
	PathNotifications = "/notifications"
	PathWS            = "/ws"
)

func addNegotiationRoutes(
	rg *gin.RouterGroup,
	negotiationHandler *handlers.NegotiationHandler,
	chatHandler *handlers.ChatHandler,
	escrowHandler *handlers.EscrowHandler,
	notificationHandler *handlers.NotificationHandler,
	wsHandler *handlers.WSHandler,
) {
	negotiations := rg.Group(PathNegotiations)
	{
		negotiations.POST("", negotiationHandler.CreateNegotiation)
		negotiations.GET("", negotiationHandler.ListNegotiations)
		negotiations.GET("/:id", negotiationHandler.GetNegotiation)
		negotiations.PUT("/:id", negotiationHandler.ApplyNegotiationAction)
	}

	chats := rg.Group(PathChats)
	{
		chats.POST("", chatHandler.EnsureChat)
		chats.GET("/:id", chatHandler.GetChat)
		chats.GET("/:id/messages", chatHandler.GetHistory)
		chats.POST("/:id/messages", chatHandler.AppendMessage)
		chats.PATCH("/:id/close", chatHandler.CloseChat)
	}

	escrow := rg.Group(PathEscrow)
	{
		escrow.POST("/:negotiation_id", escrowHandler.CreateDeposit)
		escrow.GET("/:negotiation_id", escrowHandler.ListDeposits)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
	}

	rg.GET(PathWS, wsHandler.Connect)
}
