package routes

import (
	"log"
	"strconv"

	_ "rera_quotation/docs" // This will be auto-generated
	"rera_quotation/internal/adapter/http/handlers"
	repository2 "rera_quotation/internal/adapter/persistence/repository"
	"rera_quotation/internal/infrastructure/database"
	"rera_quotation/internal/infrastructure/documents"
	"rera_quotation/internal/infrastructure/notify"
	"rera_quotation/internal/usecase"

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

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	approvalRepo := repository2.NewApprovalDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)

	notifier := notify.NewEmailNotifierFromEnv()
	renderer := documents.NewPDFRenderer()

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, approvalRepo, catalogRepo, renderer)
	approvalUseCase := usecase.NewApprovalUseCase(quotationRepo, approvalRepo, notifier)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	approvalHandler := handlers.NewApprovalHandler(approvalUseCase)
	catalogHandler := handlers.NewCatalogHandler(quotationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quotationHandler, approvalHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
