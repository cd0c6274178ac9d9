package handlers

import (
	"net/http"

	response "rera_quotation/internal/adapter/http/dto/response"
	"rera_quotation/internal/usecase"
	"rera_quotation/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the pricing reference data the quotation wizard is
// built from.

type CatalogHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewCatalogHandler(uc usecase.IQuotationUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.usecase.GetCatalog(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalog(catalog))
}
