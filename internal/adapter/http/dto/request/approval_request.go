package request

import (
	"errors"
	"strings"

	"rera_quotation/internal/domain/entities"
)

var (
	ErrUnknownApproverRole = errors.New("unknown approver role")
	ErrApproverIDRequired  = errors.New("approver id is required")
)

// ApprovalDecisionRequest is one approve/reject action. The approver block
// identifies the human taking the decision; authentication happens upstream
// and the gateway forwards the resolved identity here.
type ApprovalDecisionRequest struct {
	Action   string `json:"action" binding:"required,oneof=approved rejected"`
	Comments string `json:"comments"`

	ApproverID    string `json:"approver_id" binding:"required"`
	ApproverName  string `json:"approver_name"`
	ApproverEmail string `json:"approver_email"`
	ApproverRole  string `json:"approver_role" binding:"required"`
}

func (r ApprovalDecisionRequest) ResolveDecision() entities.ApprovalDecision {
	return entities.ApprovalDecision(strings.TrimSpace(r.Action))
}

func (r ApprovalDecisionRequest) ResolveApprover() (entities.Approver, error) {
	id := strings.TrimSpace(r.ApproverID)
	if id == "" {
		return entities.Approver{}, ErrApproverIDRequired
	}
	role, ok := entities.ParseUserRole(strings.TrimSpace(r.ApproverRole))
	if !ok {
		return entities.Approver{}, ErrUnknownApproverRole
	}
	return entities.Approver{
		ID:    id,
		Name:  strings.TrimSpace(r.ApproverName),
		Email: strings.TrimSpace(r.ApproverEmail),
		Role:  role,
	}, nil
}
