package entities

import "time"

// ApprovalDecision is the outcome of one human approval action.

type ApprovalDecision string

const (
	ApprovalDecisionApproved ApprovalDecision = "approved"
	ApprovalDecisionRejected ApprovalDecision = "rejected"
)

// Approver identifies the actor taking an approval decision.
type Approver struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// ApprovalRecord is the immutable audit entry written for every decision,
// approved or rejected.
//
// The amounts and the required level are frozen at decision time and never
// recomputed: if the quotation is edited later, that is a new quotation
// state and a new decision.
//
// Storage model (DynamoDB):
//   - PK: id
//   - quotation_id groups a quotation's history
type ApprovalRecord struct {
	ID            string           `json:"id"`
	QuotationID   string           `json:"quotation_id"`
	ApproverID    string           `json:"approver_id"`
	ApproverName  string           `json:"approver_name"`
	Decision      ApprovalDecision `json:"decision"`
	DecidedAt     time.Time        `json:"decided_at"`
	Comments      string           `json:"comments,omitempty"`
	RequiredLevel ApprovalLevel    `json:"required_level"`

	OriginalAmount     int64   `json:"original_amount"`
	DiscountedAmount   int64   `json:"discounted_amount"`
	DiscountPercentage float64 `json:"discount_percentage"`
}
