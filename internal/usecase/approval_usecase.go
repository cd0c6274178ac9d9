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
	ErrInvalidDecision          = errors.New("invalid decision")
	ErrInvalidApprover          = errors.New("invalid approver")
	ErrQuotationNotPending      = errors.New("quotation is not pending approval")
	ErrInsufficientRole         = errors.New("insufficient role")
	ErrRejectionCommentRequired = errors.New("comments are required when rejecting")
	ErrDecisionConflict         = errors.New("quotation was decided concurrently")
)

// DecideCommand is one approve/reject action on a pending quotation.
type DecideCommand struct {
	QuotationID string
	Approver    entities.Approver
	Decision    entities.ApprovalDecision
	Comments    string
}

// IApprovalUseCase applies approval decisions and reads approval history.
type IApprovalUseCase interface {
	Decide(ctx context.Context, cmd DecideCommand) (entities.Quotation, entities.ApprovalRecord, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.ApprovalRecord, error)
}

type ApprovalUseCase struct {
	quotations interfaces.IQuotationRepository
	approvals  interfaces.IApprovalRepository
	notifier   interfaces.IApprovalNotifier
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(
	quotations interfaces.IQuotationRepository,
	approvals interfaces.IApprovalRepository,
	notifier interfaces.IApprovalNotifier,
) *ApprovalUseCase {
	return &ApprovalUseCase{quotations: quotations, approvals: approvals, notifier: notifier}
}

// Decide runs the full approval gate for one decision:
//
//  1. the quotation must exist and be exactly pending_approval;
//  2. the approver's role rank must clear the level required by the stored
//     discount percentage;
//  3. the status transition is conditional on the status still being
//     pending_approval, so one of two concurrent decisions loses cleanly;
//  4. an immutable approval record freezes the amounts at decision time;
//  5. the creator is notified, and a notification failure never fails the
//     decision.
func (u *ApprovalUseCase) Decide(ctx context.Context, cmd DecideCommand) (entities.Quotation, entities.ApprovalRecord, error) {
	quotationID := strings.TrimSpace(cmd.QuotationID)
	if quotationID == "" {
		return entities.Quotation{}, entities.ApprovalRecord{}, ErrInvalidQuotationID
	}
	if cmd.Decision != entities.ApprovalDecisionApproved && cmd.Decision != entities.ApprovalDecisionRejected {
		return entities.Quotation{}, entities.ApprovalRecord{}, fmt.Errorf("%w: %q", ErrInvalidDecision, cmd.Decision)
	}
	if strings.TrimSpace(cmd.Approver.ID) == "" {
		return entities.Quotation{}, entities.ApprovalRecord{}, ErrInvalidApprover
	}
	if cmd.Decision == entities.ApprovalDecisionRejected && strings.TrimSpace(cmd.Comments) == "" {
		return entities.Quotation{}, entities.ApprovalRecord{}, ErrRejectionCommentRequired
	}

	logging.Sugar.Infof("[approval][usecase] decide start quotation_id=%s decision=%s approver=%s role=%s",
		quotationID, cmd.Decision, cmd.Approver.ID, cmd.Approver.Role)

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, entities.ApprovalRecord{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, entities.ApprovalRecord{}, ErrQuotationNotFound
	}
	if q.Status != entities.QuotationStatusPendingApproval {
		return entities.Quotation{}, entities.ApprovalRecord{},
			fmt.Errorf("%w: quotation %s is %s", ErrQuotationNotPending, q.ID, q.Status)
	}

	// The required level is always recomputed from the stored discount, not
	// read back from the aggregate.
	required := pricing.RequiredApprovalLevel(q.Pricing.TotalDiscountPercentage)
	if !cmd.Approver.Role.CanApprove(required) {
		return entities.Quotation{}, entities.ApprovalRecord{},
			fmt.Errorf("%w: %s approval required for %.1f%% discount, approver holds %s",
				ErrInsufficientRole, required, q.Pricing.TotalDiscountPercentage, cmd.Approver.Role)
	}

	now := time.Now().UTC()
	target := entities.QuotationStatusRejected
	approvedBy := ""
	var approvedAt *time.Time
	if cmd.Decision == entities.ApprovalDecisionApproved {
		target = entities.QuotationStatusApproved
		approvedBy = cmd.Approver.ID
		approvedAt = &now
	}

	updated, err := u.quotations.TransitionStatus(ctx, q.ID, entities.QuotationStatusPendingApproval, target, approvedBy, approvedAt)
	if err != nil {
		return entities.Quotation{}, entities.ApprovalRecord{}, err
	}
	if updated.ID == "" {
		// Lost the race: someone else moved the quotation out of
		// pending_approval first. No approval record is written.
		logging.Sugar.Warnf("[approval][usecase] conflict quotation_id=%s decision=%s", q.ID, cmd.Decision)
		return entities.Quotation{}, entities.ApprovalRecord{},
			fmt.Errorf("%w: quotation %s", ErrDecisionConflict, q.ID)
	}

	record := entities.ApprovalRecord{
		ID:                 uuid.NewString(),
		QuotationID:        q.ID,
		ApproverID:         cmd.Approver.ID,
		ApproverName:       cmd.Approver.Name,
		Decision:           cmd.Decision,
		DecidedAt:          now,
		Comments:           strings.TrimSpace(cmd.Comments),
		RequiredLevel:      required,
		OriginalAmount:     q.Pricing.FinalTotal + q.Pricing.TotalDiscountAmount,
		DiscountedAmount:   q.Pricing.FinalTotal,
		DiscountPercentage: q.Pricing.TotalDiscountPercentage,
	}

	record, err = u.approvals.Create(ctx, record)
	if err != nil {
		// The transition already happened; surface the error so the caller
		// knows the audit trail is incomplete.
		logging.Sugar.Errorf("[approval][usecase] record write failed quotation_id=%s err=%v", q.ID, err)
		return entities.Quotation{}, entities.ApprovalRecord{}, err
	}

	u.notify(ctx, updated, record)

	logging.Sugar.Infof("[approval][usecase] decided quotation_id=%s status=%s required_level=%s",
		updated.ID, updated.Status, required)
	return updated, record, nil
}

func (u *ApprovalUseCase) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.ApprovalRecord, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return nil, ErrInvalidQuotationID
	}
	return u.approvals.ListByQuotationID(ctx, quotationID)
}

// notify sends the decision email to the quotation creator. Failures are
// logged and swallowed.
func (u *ApprovalUseCase) notify(ctx context.Context, q entities.Quotation, record entities.ApprovalRecord) {
	if u.notifier == nil {
		return
	}

	n := interfaces.ApprovalNotification{
		QuotationID:        q.ID,
		QuotationNumber:    q.Number,
		Decision:           record.Decision,
		ApproverName:       record.ApproverName,
		RecipientEmail:     q.CreatedByEmail,
		RecipientName:      q.CreatedByName,
		Comments:           record.Comments,
		TotalAmount:        record.DiscountedAmount,
		DiscountPercentage: record.DiscountPercentage,
	}
	if err := u.notifier.SendApprovalNotification(ctx, n); err != nil {
		logging.Sugar.Warnf("[approval][usecase] notification failed quotation_id=%s err=%v", q.ID, err)
	}
}
