package entities

import "time"

// QuotationStatus represents the quotation lifecycle.
//
// State machine:
//
//	draft -> pending_approval -> approved | rejected
//
// A draft whose discount needs no human approval moves straight to approved
// on submission. Approved/rejected are terminal; editing a decided quotation
// means creating a new one.

type QuotationStatus string

const (
	QuotationStatusDraft           QuotationStatus = "draft"
	QuotationStatusPendingApproval QuotationStatus = "pending_approval"
	QuotationStatusApproved        QuotationStatus = "approved"
	QuotationStatusRejected        QuotationStatus = "rejected"
)

// ApprovalLevel is the minimum authority tier required to approve a
// quotation. The numeric value doubles as the authority rank, so levels are
// directly comparable.

type ApprovalLevel int

const (
	ApprovalLevelAuto          ApprovalLevel = 0
	ApprovalLevelManager       ApprovalLevel = 1
	ApprovalLevelSeniorManager ApprovalLevel = 2
	ApprovalLevelDirector      ApprovalLevel = 3
)

func (l ApprovalLevel) String() string {
	switch l {
	case ApprovalLevelManager:
		return "manager"
	case ApprovalLevelSeniorManager:
		return "senior_manager"
	case ApprovalLevelDirector:
		return "director"
	default:
		return "auto_approved"
	}
}

func ParseApprovalLevel(s string) (ApprovalLevel, bool) {
	switch s {
	case "auto_approved":
		return ApprovalLevelAuto, true
	case "manager":
		return ApprovalLevelManager, true
	case "senior_manager":
		return ApprovalLevelSeniorManager, true
	case "director":
		return ApprovalLevelDirector, true
	}
	return ApprovalLevelAuto, false
}

// UserRole is the authority an actor holds. Ranks are ordered
// manager < senior_manager < director < admin; admin clears any approval
// level, including auto_approved.

type UserRole int

const (
	UserRoleUnknown       UserRole = 0
	UserRoleManager       UserRole = 1
	UserRoleSeniorManager UserRole = 2
	UserRoleDirector      UserRole = 3
	UserRoleAdmin         UserRole = 4
)

func (r UserRole) String() string {
	switch r {
	case UserRoleManager:
		return "manager"
	case UserRoleSeniorManager:
		return "senior_manager"
	case UserRoleDirector:
		return "director"
	case UserRoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

func ParseUserRole(s string) (UserRole, bool) {
	switch s {
	case "manager":
		return UserRoleManager, true
	case "senior_manager":
		return UserRoleSeniorManager, true
	case "director":
		return UserRoleDirector, true
	case "admin":
		return UserRoleAdmin, true
	}
	return UserRoleUnknown, false
}

// CanApprove reports whether the role's rank clears the given level.
func (r UserRole) CanApprove(level ApprovalLevel) bool {
	return int(r) >= int(level)
}

// PricingFactors are the four multipliers resolved for one line, kept
// alongside it so the breakdown stays reproducible after catalog changes.
type PricingFactors struct {
	DeveloperTypeMultiplier float64 `json:"developer_type_multiplier"`
	RegionalMultiplier      float64 `json:"regional_multiplier"`
	PlotAreaMultiplier      float64 `json:"plot_area_multiplier"`
	ServiceComplexityFactor float64 `json:"service_complexity_factor"`
}

// ServicePricing is the priced record for one selected service.
//
// CalculatedPrice is always basePrice x all four multipliers, independent of
// any manual override; overrides only move FinalPrice and the discount
// fields derived from it.
type ServicePricing struct {
	ServiceID          string         `json:"service_id"`
	ServiceName        string         `json:"service_name"`
	BasePrice          int64          `json:"base_price"`
	CalculatedPrice    int64          `json:"calculated_price"`
	FinalPrice         int64          `json:"final_price"`
	DiscountAmount     int64          `json:"discount_amount"`
	DiscountPercentage float64        `json:"discount_percentage"`
	DiscountReason     string         `json:"discount_reason"`
	PricingFactors     PricingFactors `json:"pricing_factors"`
}

// QuotationPricing is the full computed pricing result: lines in selection
// order plus totals and the approval decision derived from them. It is a
// value object, recomputed from scratch whenever selections change.
type QuotationPricing struct {
	Services                []ServicePricing `json:"services"`
	Subtotal                int64            `json:"subtotal"`
	TotalDiscountAmount     int64            `json:"total_discount_amount"`
	TotalDiscountPercentage float64          `json:"total_discount_percentage"`
	FinalTotal              int64            `json:"final_total"`
	RoundedTotal            int64            `json:"rounded_total"`
	ApprovalLevel           ApprovalLevel    `json:"approval_level"`
	NeedsApproval           bool             `json:"needs_approval"`
}

// Quotation is the persisted aggregate: header, selections, computed pricing
// and workflow state.
//
// Storage model (DynamoDB):
//   - PK: id
//   - lines are stored inline with the item; approval history lives in its
//     own table and accumulates additively.
type Quotation struct {
	ID              string `json:"id"`
	Number          string `json:"number"`
	ProjectName     string `json:"project_name"`
	ProjectLocation string `json:"project_location"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`

	CreatedBy      string `json:"created_by"`
	CreatedByName  string `json:"created_by_name"`
	CreatedByEmail string `json:"created_by_email"`

	DeveloperTypeID string `json:"developer_type_id"`
	RegionID        string `json:"region_id"`
	PlotAreaRangeID string `json:"plot_area_range_id"`

	Pricing QuotationPricing `json:"pricing"`

	Status     QuotationStatus `json:"status"`
	ApprovedBy string          `json:"approved_by,omitempty"`
	ApprovedAt *time.Time      `json:"approved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
