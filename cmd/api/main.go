package main

import (
	"log"

	_ "rera_quotation/docs"
	"rera_quotation/internal/adapter/http/routes"
	"rera_quotation/internal/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           RERA Quotation Service API
// @version         1.0
// @description     Quotation pricing and approval workflow for RERA regulatory consultancy, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := logging.Initialize(logging.DefaultConfig()); err != nil {
		log.Fatalf("failed to initialize logging: %v", err)
	}
	defer logging.Sync()

	routes.Run()
}
