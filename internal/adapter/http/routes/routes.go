package routes

import (
	"log"
	_ "novamart/docs" // This will be auto-generated
	"novamart/internal/adapter/http/handlers"
	repository2 "novamart/internal/adapter/persistence/repository"
	"novamart/internal/infrastructure/database"
	"novamart/internal/infrastructure/payments"
	"novamart/internal/infrastructure/ws"
	"novamart/internal/usecase"
	"novamart/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	negotiationRepo := repository2.NewNegotiationDynamoRepository(ddb)
	chatRepo := repository2.NewChatDynamoRepository(ddb)
	messageRepo := repository2.NewMessageDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	allocationRepo := repository2.NewAllocationDynamoRepository(ddb)
	escrowRepo := repository2.NewEscrowDynamoRepository(ddb)

	hub := ws.NewHub()

	negotiationUseCase := usecase.NewNegotiationUseCase(negotiationRepo, chatRepo, messageRepo, notificationRepo, allocationRepo, hub)
	chatUseCase := usecase.NewChatUseCase(chatRepo, messageRepo, negotiationRepo, hub)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	var escrowGateway interfaces.IEscrowGateway
	mpGateway, err := payments.NewMercadoPagoEscrowGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago escrow gateway not configured: %v", err)
	} else {
		escrowGateway = mpGateway
	}

	escrowUseCase := usecase.NewEscrowUseCase(escrowRepo, negotiationRepo, escrowGateway)

	hub.SetChatService(chatUseCase)

	negotiationHandler := handlers.NewNegotiationHandler(negotiationUseCase)
	chatHandler := handlers.NewChatHandler(chatUseCase)
	escrowHandler := handlers.NewEscrowHandler(escrowUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	wsHandler := handlers.NewWSHandler(hub, chatUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addNegotiationRoutes(v1, negotiationHandler, chatHandler, escrowHandler, notificationHandler, wsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
