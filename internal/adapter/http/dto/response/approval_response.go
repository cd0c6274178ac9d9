package response

import (
	"time"

	"rera_quotation/internal/domain/entities"
)

type ApprovalRecordResponse struct {
	ID                 string    `json:"id"`
	QuotationID        string    `json:"quotation_id"`
	ApproverID         string    `json:"approver_id"`
	ApproverName       string    `json:"approver_name,omitempty"`
	Decision           string    `json:"decision"`
	DecidedAt          time.Time `json:"decided_at"`
	Comments           string    `json:"comments,omitempty"`
	RequiredLevel      string    `json:"required_level"`
	OriginalAmount     int64     `json:"original_amount"`
	DiscountedAmount   int64     `json:"discounted_amount"`
	DiscountPercentage float64   `json:"discount_percentage"`
}

func FromApprovalRecord(r entities.ApprovalRecord) ApprovalRecordResponse {
	return ApprovalRecordResponse{
		ID:                 r.ID,
		QuotationID:        r.QuotationID,
		ApproverID:         r.ApproverID,
		ApproverName:       r.ApproverName,
		Decision:           string(r.Decision),
		DecidedAt:          r.DecidedAt,
		Comments:           r.Comments,
		RequiredLevel:      r.RequiredLevel.String(),
		OriginalAmount:     r.OriginalAmount,
		DiscountedAmount:   r.DiscountedAmount,
		DiscountPercentage: r.DiscountPercentage,
	}
}

func FromApprovalRecords(records []entities.ApprovalRecord) []ApprovalRecordResponse {
	out := make([]ApprovalRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromApprovalRecord(r))
	}
	return out
}

// DecisionResponse is returned by the decision endpoint: the quotation in
// its new state plus the record just written.
type DecisionResponse struct {
	Quotation QuotationResponse      `json:"quotation"`
	Approval  ApprovalRecordResponse `json:"approval"`
}

func FromDecision(q entities.Quotation, r entities.ApprovalRecord) DecisionResponse {
	return DecisionResponse{
		Quotation: FromQuotation(q),
		Approval:  FromApprovalRecord(r),
	}
}
