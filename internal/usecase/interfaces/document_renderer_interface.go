package interfaces

import (
	"context"

	"rera_quotation/internal/domain/entities"
)

// IDocumentRenderer produces the client-facing quotation document from a
// fully-hydrated quotation (header, lines, approval history).
type IDocumentRenderer interface {
	RenderQuotation(ctx context.Context, q entities.Quotation, history []entities.ApprovalRecord) ([]byte, error)
}
