package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rera_quotation/internal/adapter/http/handlers/mocks"
	"rera_quotation/internal/domain/entities"
	"rera_quotation/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestApprovalHandler_DecideQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	decisionBody := `{
		"action": "approved",
		"approver_id": "u-7",
		"approver_name": "Arjun",
		"approver_role": "senior_manager"
	}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/decision", h.DecideQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/decision", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("action outside oneof", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/decision", h.DecideQuotation)

		body := `{"action":"maybe","approver_id":"u-7","approver_role":"manager"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/decision", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/decision", h.DecideQuotation)

		body := `{"action":"approved","approver_id":"u-7","approver_role":"intern"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/decision", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient role maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/decision", h.DecideQuotation)

		uc.EXPECT().Decide(gomock.Any(), gomock.Any()).
			Return(entities.Quotation{}, entities.ApprovalRecord{}, usecase.ErrInsufficientRole)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/decision", bytes.NewBufferString(decisionBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("decision conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/decision", h.DecideQuotation)

		uc.EXPECT().Decide(gomock.Any(), gomock.Any()).
			Return(entities.Quotation{}, entities.ApprovalRecord{}, usecase.ErrDecisionConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/decision", bytes.NewBufferString(decisionBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewApprovalHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/decision", h.DecideQuotation)

		uc.EXPECT().Decide(gomock.Any(), gomock.AssignableToTypeOf(usecase.DecideCommand{})).DoAndReturn(
			func(_ any, cmd usecase.DecideCommand) (entities.Quotation, entities.ApprovalRecord, error) {
				if cmd.QuotationID != "q-1" || cmd.Approver.Role != entities.UserRoleSeniorManager {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Quotation{ID: "q-1", Status: entities.QuotationStatusApproved},
					entities.ApprovalRecord{ID: "ap-1", QuotationID: "q-1", Decision: entities.ApprovalDecisionApproved},
					nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/decision", bytes.NewBufferString(decisionBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		quotation, _ := body["quotation"].(map[string]any)
		approval, _ := body["approval"].(map[string]any)
		if quotation["status"] != "approved" || approval["id"] != "ap-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestApprovalHandler_ListApprovals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIApprovalUseCase(ctrl)
	h := NewApprovalHandler(uc)

	r := gin.New()
	r.GET("/v1/quotations/:id/approvals", h.ListApprovals)

	uc.EXPECT().ListByQuotationID(gomock.Any(), "q-1").
		Return([]entities.ApprovalRecord{{ID: "ap-1"}, {ID: "ap-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1/approvals", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("expected 2 records, got %s", w.Body.String())
	}
}

func TestMapApprovalError(t *testing.T) {
	if got := mapApprovalError(usecase.ErrInvalidDecision); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapApprovalError(usecase.ErrRejectionCommentRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapApprovalError(usecase.ErrQuotationNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapApprovalError(usecase.ErrInsufficientRole); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapApprovalError(usecase.ErrQuotationNotPending); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapApprovalError(usecase.ErrDecisionConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapApprovalError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
