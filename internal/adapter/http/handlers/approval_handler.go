package handlers

import (
	"errors"
	"net/http"

	request "rera_quotation/internal/adapter/http/dto/request"
	response "rera_quotation/internal/adapter/http/dto/response"
	"rera_quotation/internal/usecase"
	"rera_quotation/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDecisionPayload = pkg.NewDomainErrorSimple("INVALID_DECISION_INPUT", "Invalid decision payload", http.StatusBadRequest)
)

// ApprovalHandler handles approve/reject decisions and approval history.

type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// DecideQuotation applies one approve/reject decision to a pending
// quotation.
func (h *ApprovalHandler) DecideQuotation(c *gin.Context) {
	var payload request.ApprovalDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDecisionPayload.HTTPStatus, errInvalidDecisionPayload.ToHTTPError())
		return
	}

	approver, err := payload.ResolveApprover()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cmd := usecase.DecideCommand{
		QuotationID: c.Param("id"),
		Approver:    approver,
		Decision:    payload.ResolveDecision(),
		Comments:    payload.Comments,
	}

	quotation, record, err := h.usecase.Decide(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDecision(quotation, record))
}

func (h *ApprovalHandler) ListApprovals(c *gin.Context) {
	records, err := h.usecase.ListByQuotationID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalRecords(records))
}

func mapApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, usecase.ErrInvalidApprover),
		errors.Is(err, usecase.ErrRejectionCommentRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientRole):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_ROLE", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuotationNotPending):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_PENDING", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrDecisionConflict):
		return pkg.NewDomainErrorSimple("DECISION_CONFLICT", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
