package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "rera_quotation/internal/adapter/http/dto/request"
	response "rera_quotation/internal/adapter/http/dto/response"
	"rera_quotation/internal/domain/entities"
	"rera_quotation/internal/usecase"
	"rera_quotation/internal/usecase/interfaces"
	"rera_quotation/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for the quotation lifecycle:
// pricing preview, draft creation, manual overrides, submission and the
// rendered PDF.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// PreviewPricing prices a selection without persisting anything. The wizard
// calls this on every review step.
func (h *QuotationHandler) PreviewPricing(c *gin.Context) {
	var payload request.PricingSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	sel, appErr := resolveSelection(payload)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pricing, err := h.usecase.Preview(c.Request.Context(), sel)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotationPricing(pricing))
}

func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	sel, appErr := resolveSelection(payload.Selection)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cmd := usecase.CreateQuotationCommand{
		ProjectName:     payload.ProjectName,
		ProjectLocation: payload.ProjectLocation,
		ClientName:      payload.ClientName,
		ClientEmail:     payload.ClientEmail,
		CreatedBy:       payload.CreatedBy,
		CreatedByName:   payload.CreatedByName,
		CreatedByEmail:  payload.CreatedByEmail,
		Selection:       sel,
	}

	quotation, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(quotation))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	quotation, history, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotationWithHistory(quotation, history))
}

func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	filter := interfaces.QuotationFilter{
		Status: entities.QuotationStatus(c.Query("status")),
	}
	if raw := c.Query("min_discount"); raw != "" {
		minDiscount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "min_discount must be a number", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		filter.MinDiscountPercentage = minDiscount
	}

	quotations, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(quotations))
}

func (h *QuotationHandler) UpdateServicePrice(c *gin.Context) {
	var payload request.ServicePriceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.UpdateServicePrice(
		c.Request.Context(),
		c.Param("id"),
		c.Param("service_id"),
		*payload.NewPrice,
		payload.DiscountReason,
	)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) SubmitQuotation(c *gin.Context) {
	quotation, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

// DownloadQuotationDocument streams the rendered PDF.
func (h *QuotationHandler) DownloadQuotationDocument(c *gin.Context) {
	doc, err := h.usecase.RenderDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="quotation.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func resolveSelection(payload request.PricingSelectionRequest) (usecase.PricingSelection, *pkg.AppError) {
	developerTypeID, err := payload.ResolveDeveloperTypeID()
	if err != nil {
		return usecase.PricingSelection{}, pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	}
	return usecase.PricingSelection{
		DeveloperTypeID: developerTypeID,
		RegionID:        payload.RegionID,
		PlotAreaRangeID: payload.PlotAreaRangeID,
		ServiceIDs:      payload.ResolveServiceIDs(),
		Overrides:       payload.ResolveOverrides(),
	}, nil
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidSelection), errors.Is(err, usecase.ErrUnknownDeveloperType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotInQuotation):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_IN_QUOTATION", "Service is not part of this quotation", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotEditable):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_EDITABLE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmitConflict):
		return pkg.NewDomainErrorSimple("QUOTATION_CONFLICT", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
