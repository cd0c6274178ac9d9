package routes

import (
	"rera_quotation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathCatalog    = "/catalog"
)

func addQuotationRoutes(
	rg *gin.RouterGroup,
	quotationHandler *handlers.QuotationHandler,
	approvalHandler *handlers.ApprovalHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	rg.GET(PathCatalog, catalogHandler.GetCatalog)

	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.POST("/preview", quotationHandler.PreviewPricing)
		quotations.GET("", quotationHandler.ListQuotations)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.PATCH("/:id/services/:service_id/price", quotationHandler.UpdateServicePrice)
		quotations.POST("/:id/submit", quotationHandler.SubmitQuotation)
		quotations.GET("/:id/document", quotationHandler.DownloadQuotationDocument)

		quotations.POST("/:id/decision", approvalHandler.DecideQuotation)
		quotations.GET("/:id/approvals", approvalHandler.ListApprovals)
	}
}
