package interfaces

import (
	"context"

	"rera_quotation/internal/domain/entities"
)

// ApprovalNotification carries everything the notification needs about a
// decision; the notifier never reads back from storage.
type ApprovalNotification struct {
	QuotationID        string
	QuotationNumber    string
	Decision           entities.ApprovalDecision
	ApproverName       string
	RecipientEmail     string
	RecipientName      string
	Comments           string
	TotalAmount        int64
	DiscountPercentage float64
}

// IApprovalNotifier notifies the quotation creator after a decision.
//
// Fire-and-forget contract: a failed notification is logged by the caller
// and must never roll back or fail the approval transition.
type IApprovalNotifier interface {
	SendApprovalNotification(ctx context.Context, n ApprovalNotification) error
}
