package interfaces

import (
	"context"
	"time"

	"rera_quotation/internal/domain/entities"
)

// QuotationFilter narrows List results. Zero values mean "no filter".
type QuotationFilter struct {
	Status                entities.QuotationStatus
	MinDiscountPercentage float64
}

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// Not-found is reported as a zero-value Quotation with a nil error; callers
// map it to their own sentinel. TransitionStatus must be conditional on the
// current status so that concurrent decisions on one quotation have exactly
// one winner; the loser gets a zero-value Quotation back.
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	UpdatePricing(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	List(ctx context.Context, filter QuotationFilter) ([]entities.Quotation, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.QuotationStatus, approvedBy string, approvedAt *time.Time) (entities.Quotation, error)
}
