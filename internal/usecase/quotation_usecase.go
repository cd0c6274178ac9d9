package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rera_quotation/internal/domain/entities"
	"rera_quotation/internal/domain/pricing"
	"rera_quotation/internal/logging"
	"rera_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound     = errors.New("quotation not found")
	ErrInvalidQuotationID    = errors.New("invalid quotation id")
	ErrInvalidSelection      = errors.New("invalid selection")
	ErrUnknownDeveloperType  = errors.New("unknown developer type")
	ErrQuotationNotEditable  = errors.New("quotation is not editable")
	ErrServiceNotInQuotation = errors.New("service not part of quotation")
	ErrSubmitConflict        = errors.New("quotation submitted concurrently")
)

// PricingSelection is the raw wizard state a pricing run starts from.
// RegionID and PlotAreaRangeID may be empty mid-wizard; overrides are keyed
// by service id.
type PricingSelection struct {
	DeveloperTypeID string
	RegionID        string
	PlotAreaRangeID string
	ServiceIDs      []string
	Overrides       map[string]pricing.PriceOverride
}

// CreateQuotationCommand is a priced quotation plus its header fields.
type CreateQuotationCommand struct {
	ProjectName     string
	ProjectLocation string
	ClientName      string
	ClientEmail     string
	CreatedBy       string
	CreatedByName   string
	CreatedByEmail  string
	Selection       PricingSelection
}

// IQuotationUseCase exposes the quotation lifecycle up to (but excluding)
// the approval decision:
//   - Preview: price a selection without persisting (wizard review step)
//   - Create: price and persist a draft
//   - UpdateServicePrice: manual override on a draft line, full recompute
//   - Submit: draft -> pending_approval, or straight to approved when the
//     discount clears no approval tier
//   - RenderDocument: PDF for a hydrated quotation
type IQuotationUseCase interface {
	Preview(ctx context.Context, sel PricingSelection) (entities.QuotationPricing, error)
	Create(ctx context.Context, cmd CreateQuotationCommand) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, []entities.ApprovalRecord, error)
	List(ctx context.Context, filter interfaces.QuotationFilter) ([]entities.Quotation, error)
	UpdateServicePrice(ctx context.Context, quotationID, serviceID string, newPrice int64, reason string) (entities.Quotation, error)
	Submit(ctx context.Context, id string) (entities.Quotation, error)
	RenderDocument(ctx context.Context, id string) ([]byte, error)
	GetCatalog(ctx context.Context) (entities.Catalog, error)
}

type QuotationUseCase struct {
	repo         interfaces.IQuotationRepository
	approvalRepo interfaces.IApprovalRepository
	catalog      interfaces.ICatalogProvider
	renderer     interfaces.IDocumentRenderer
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	approvalRepo interfaces.IApprovalRepository,
	catalog interfaces.ICatalogProvider,
	renderer interfaces.IDocumentRenderer,
) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, approvalRepo: approvalRepo, catalog: catalog, renderer: renderer}
}

func (u *QuotationUseCase) Preview(ctx context.Context, sel PricingSelection) (entities.QuotationPricing, error) {
	return u.price(ctx, sel)
}

func (u *QuotationUseCase) Create(ctx context.Context, cmd CreateQuotationCommand) (entities.Quotation, error) {
	logging.Sugar.Infof("[quotation][usecase] create start developer_type=%s services=%d",
		cmd.Selection.DeveloperTypeID, len(cmd.Selection.ServiceIDs))

	computed, err := u.price(ctx, cmd.Selection)
	if err != nil {
		return entities.Quotation{}, err
	}

	if res := pricing.Validate(computed); !res.IsValid {
		// Advisory only: surfaced to the caller, never blocking.
		logging.Sugar.Warnf("[quotation][usecase] pricing violations on create: %v", res.Errors)
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:              uuid.NewString(),
		Number:          newQuotationNumber(now),
		ProjectName:     strings.TrimSpace(cmd.ProjectName),
		ProjectLocation: strings.TrimSpace(cmd.ProjectLocation),
		ClientName:      strings.TrimSpace(cmd.ClientName),
		ClientEmail:     strings.TrimSpace(cmd.ClientEmail),
		CreatedBy:       strings.TrimSpace(cmd.CreatedBy),
		CreatedByName:   strings.TrimSpace(cmd.CreatedByName),
		CreatedByEmail:  strings.TrimSpace(cmd.CreatedByEmail),
		DeveloperTypeID: cmd.Selection.DeveloperTypeID,
		RegionID:        cmd.Selection.RegionID,
		PlotAreaRangeID: cmd.Selection.PlotAreaRangeID,
		Pricing:         computed,
		Status:          entities.QuotationStatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	logging.Sugar.Infof("[quotation][usecase] created quotation_id=%s number=%s total=%d level=%s",
		created.ID, created.Number, created.Pricing.FinalTotal, created.Pricing.ApprovalLevel)
	return created, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, []entities.ApprovalRecord, error) {
	q, err := u.requireQuotation(ctx, id)
	if err != nil {
		return entities.Quotation{}, nil, err
	}

	history, err := u.approvalRepo.ListByQuotationID(ctx, q.ID)
	if err != nil {
		return entities.Quotation{}, nil, err
	}
	return q, history, nil
}

func (u *QuotationUseCase) List(ctx context.Context, filter interfaces.QuotationFilter) ([]entities.Quotation, error) {
	return u.repo.List(ctx, filter)
}

// UpdateServicePrice applies a manual override to one line of a draft
// quotation and recomputes the whole aggregate from the updated line set.
func (u *QuotationUseCase) UpdateServicePrice(ctx context.Context, quotationID, serviceID string, newPrice int64, reason string) (entities.Quotation, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Quotation{}, ErrServiceNotInQuotation
	}

	q, err := u.requireQuotation(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusDraft {
		return entities.Quotation{}, fmt.Errorf("%w: quotation %s is %s", ErrQuotationNotEditable, q.ID, q.Status)
	}
	if !hasService(q.Pricing, serviceID) {
		return entities.Quotation{}, fmt.Errorf("%w: %s", ErrServiceNotInQuotation, serviceID)
	}

	q.Pricing = pricing.UpdateServicePrice(q.Pricing, serviceID, newPrice, reason)
	q.UpdatedAt = time.Now().UTC()

	if res := pricing.Validate(q.Pricing); !res.IsValid {
		logging.Sugar.Warnf("[quotation][usecase] pricing violations after override quotation_id=%s: %v", q.ID, res.Errors)
	}

	updated, err := u.repo.UpdatePricing(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	logging.Sugar.Infof("[quotation][usecase] price override quotation_id=%s service_id=%s new_price=%d level=%s",
		updated.ID, serviceID, newPrice, updated.Pricing.ApprovalLevel)
	return updated, nil
}

// Submit moves a draft into the approval workflow. A discount below every
// approval tier auto-approves immediately; anything else parks the
// quotation in pending_approval for a human decision.
func (u *QuotationUseCase) Submit(ctx context.Context, id string) (entities.Quotation, error) {
	q, err := u.requireQuotation(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusDraft {
		return entities.Quotation{}, fmt.Errorf("%w: quotation %s is %s", ErrQuotationNotEditable, q.ID, q.Status)
	}

	target := entities.QuotationStatusPendingApproval
	var approvedAt *time.Time
	if !q.Pricing.NeedsApproval {
		target = entities.QuotationStatusApproved
		now := time.Now().UTC()
		approvedAt = &now
	}

	updated, err := u.repo.TransitionStatus(ctx, q.ID, entities.QuotationStatusDraft, target, "", approvedAt)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, fmt.Errorf("%w: quotation %s", ErrSubmitConflict, q.ID)
	}
	logging.Sugar.Infof("[quotation][usecase] submitted quotation_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *QuotationUseCase) RenderDocument(ctx context.Context, id string) ([]byte, error) {
	q, history, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.renderer.RenderQuotation(ctx, q, history)
}

func (u *QuotationUseCase) GetCatalog(ctx context.Context) (entities.Catalog, error) {
	return u.catalog.GetCatalog(ctx)
}

func (u *QuotationUseCase) price(ctx context.Context, sel PricingSelection) (entities.QuotationPricing, error) {
	if strings.TrimSpace(sel.DeveloperTypeID) == "" {
		return entities.QuotationPricing{}, fmt.Errorf("%w: developer_type_id is required", ErrInvalidSelection)
	}

	catalog, err := u.catalog.GetCatalog(ctx)
	if err != nil {
		return entities.QuotationPricing{}, err
	}

	engine := pricing.NewEngine(catalog)
	computed, err := engine.CalculateQuotationPricing(sel.DeveloperTypeID, sel.RegionID, sel.PlotAreaRangeID, sel.ServiceIDs, sel.Overrides)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownDeveloperType) {
			return entities.QuotationPricing{}, fmt.Errorf("%w: %s", ErrUnknownDeveloperType, sel.DeveloperTypeID)
		}
		return entities.QuotationPricing{}, err
	}
	return computed, nil
}

func (u *QuotationUseCase) requireQuotation(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func hasService(p entities.QuotationPricing, serviceID string) bool {
	for _, line := range p.Services {
		if line.ServiceID == serviceID {
			return true
		}
	}
	return false
}

// newQuotationNumber builds a human-facing reference like QT-2026-1A2B3C.
func newQuotationNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("QT-%d-%s", now.Year(), suffix)
}
