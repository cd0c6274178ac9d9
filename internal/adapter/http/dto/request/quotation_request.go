package request

import (
	"errors"
	"strings"

	"rera_quotation/internal/domain/pricing"
)

var (
	ErrDeveloperTypeRequired = errors.New("developer_type_id is required")
)

// PriceOverrideRequest is one manual price override keyed by service id. A
// present ModifiedPrice always wins, including zero.
type PriceOverrideRequest struct {
	ServiceID      string `json:"service_id" binding:"required"`
	ModifiedPrice  *int64 `json:"modified_price" binding:"required"`
	DiscountReason string `json:"discount_reason"`
}

// PricingSelectionRequest carries the wizard state shared by preview and
// create: the three catalog axes, the selected services and any manual
// overrides. Only the developer type is mandatory.
type PricingSelectionRequest struct {
	DeveloperTypeID string                 `json:"developer_type_id" binding:"required"`
	RegionID        string                 `json:"region_id"`
	PlotAreaRangeID string                 `json:"plot_area_range_id"`
	ServiceIDs      []string               `json:"service_ids"`
	Overrides       []PriceOverrideRequest `json:"overrides"`
}

func (r PricingSelectionRequest) ResolveDeveloperTypeID() (string, error) {
	v := strings.TrimSpace(r.DeveloperTypeID)
	if v == "" {
		return "", ErrDeveloperTypeRequired
	}
	return v, nil
}

func (r PricingSelectionRequest) ResolveServiceIDs() []string {
	ids := make([]string, 0, len(r.ServiceIDs))
	for _, id := range r.ServiceIDs {
		if v := strings.TrimSpace(id); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}

func (r PricingSelectionRequest) ResolveOverrides() map[string]pricing.PriceOverride {
	if len(r.Overrides) == 0 {
		return nil
	}
	overrides := make(map[string]pricing.PriceOverride, len(r.Overrides))
	for _, o := range r.Overrides {
		id := strings.TrimSpace(o.ServiceID)
		if id == "" || o.ModifiedPrice == nil {
			continue
		}
		overrides[id] = pricing.PriceOverride{
			ModifiedPrice:  *o.ModifiedPrice,
			DiscountReason: strings.TrimSpace(o.DiscountReason),
		}
	}
	return overrides
}

// QuotationRequest is the create payload: project and client header plus the
// pricing selection.
type QuotationRequest struct {
	ProjectName     string `json:"project_name" binding:"required"`
	ProjectLocation string `json:"project_location"`
	ClientName      string `json:"client_name" binding:"required"`
	ClientEmail     string `json:"client_email"`

	CreatedBy      string `json:"created_by"`
	CreatedByName  string `json:"created_by_name"`
	CreatedByEmail string `json:"created_by_email"`

	Selection PricingSelectionRequest `json:"selection" binding:"required"`
}

// ServicePriceUpdateRequest overrides one line's price on a draft. NewPrice
// is a pointer so an explicit zero survives binding.
type ServicePriceUpdateRequest struct {
	NewPrice       *int64 `json:"new_price" binding:"required"`
	DiscountReason string `json:"discount_reason"`
}
