package interfaces

import (
	"context"

	"rera_quotation/internal/domain/entities"
)

// IApprovalRepository abstracts DynamoDB persistence for ApprovalRecord.
//
// Records are append-only: a quotation's approval history accumulates and
// existing entries are never rewritten.
type IApprovalRepository interface {
	Create(ctx context.Context, r entities.ApprovalRecord) (entities.ApprovalRecord, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.ApprovalRecord, error)
}
