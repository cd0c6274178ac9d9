package response

import (
	"time"

	"rera_quotation/internal/domain/entities"
	"rera_quotation/internal/domain/pricing"
)

type PricingFactorsResponse struct {
	DeveloperTypeMultiplier float64 `json:"developer_type_multiplier"`
	RegionalMultiplier      float64 `json:"regional_multiplier"`
	PlotAreaMultiplier      float64 `json:"plot_area_multiplier"`
	ServiceComplexityFactor float64 `json:"service_complexity_factor"`
}

type ServicePricingResponse struct {
	ServiceID          string                 `json:"service_id"`
	ServiceName        string                 `json:"service_name"`
	BasePrice          int64                  `json:"base_price"`
	CalculatedPrice    int64                  `json:"calculated_price"`
	FinalPrice         int64                  `json:"final_price"`
	DiscountAmount     int64                  `json:"discount_amount"`
	DiscountPercentage float64                `json:"discount_percentage"`
	DiscountReason     string                 `json:"discount_reason,omitempty"`
	PricingFactors     PricingFactorsResponse `json:"pricing_factors"`
}

// QuotationPricingResponse mirrors the computed pricing aggregate, plus the
// advisory validation verdict so clients can surface violations without
// blocking the workflow.
type QuotationPricingResponse struct {
	Services                []ServicePricingResponse `json:"services"`
	Subtotal                int64                    `json:"subtotal"`
	TotalDiscountAmount     int64                    `json:"total_discount_amount"`
	TotalDiscountPercentage float64                  `json:"total_discount_percentage"`
	FinalTotal              int64                    `json:"final_total"`
	RoundedTotal            int64                    `json:"rounded_total"`
	ApprovalLevel           string                   `json:"approval_level"`
	NeedsApproval           bool                     `json:"needs_approval"`
	ValidationErrors        []string                 `json:"validation_errors,omitempty"`
}

type QuotationResponse struct {
	ID              string `json:"id"`
	Number          string `json:"number"`
	ProjectName     string `json:"project_name"`
	ProjectLocation string `json:"project_location,omitempty"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email,omitempty"`

	CreatedBy      string `json:"created_by,omitempty"`
	CreatedByName  string `json:"created_by_name,omitempty"`
	CreatedByEmail string `json:"created_by_email,omitempty"`

	DeveloperTypeID string `json:"developer_type_id"`
	RegionID        string `json:"region_id,omitempty"`
	PlotAreaRangeID string `json:"plot_area_range_id,omitempty"`

	Pricing QuotationPricingResponse `json:"pricing"`

	Status     string     `json:"status"`
	ApprovedBy string     `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`

	Approvals []ApprovalRecordResponse `json:"approvals,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuotationPricing(p entities.QuotationPricing) QuotationPricingResponse {
	services := make([]ServicePricingResponse, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, ServicePricingResponse{
			ServiceID:          s.ServiceID,
			ServiceName:        s.ServiceName,
			BasePrice:          s.BasePrice,
			CalculatedPrice:    s.CalculatedPrice,
			FinalPrice:         s.FinalPrice,
			DiscountAmount:     s.DiscountAmount,
			DiscountPercentage: s.DiscountPercentage,
			DiscountReason:     s.DiscountReason,
			PricingFactors: PricingFactorsResponse{
				DeveloperTypeMultiplier: s.PricingFactors.DeveloperTypeMultiplier,
				RegionalMultiplier:      s.PricingFactors.RegionalMultiplier,
				PlotAreaMultiplier:      s.PricingFactors.PlotAreaMultiplier,
				ServiceComplexityFactor: s.PricingFactors.ServiceComplexityFactor,
			},
		})
	}

	resp := QuotationPricingResponse{
		Services:                services,
		Subtotal:                p.Subtotal,
		TotalDiscountAmount:     p.TotalDiscountAmount,
		TotalDiscountPercentage: p.TotalDiscountPercentage,
		FinalTotal:              p.FinalTotal,
		RoundedTotal:            p.RoundedTotal,
		ApprovalLevel:           p.ApprovalLevel.String(),
		NeedsApproval:           p.NeedsApproval,
	}
	if res := pricing.Validate(p); !res.IsValid {
		resp.ValidationErrors = res.Errors
	}
	return resp
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:              q.ID,
		Number:          q.Number,
		ProjectName:     q.ProjectName,
		ProjectLocation: q.ProjectLocation,
		ClientName:      q.ClientName,
		ClientEmail:     q.ClientEmail,
		CreatedBy:       q.CreatedBy,
		CreatedByName:   q.CreatedByName,
		CreatedByEmail:  q.CreatedByEmail,
		DeveloperTypeID: q.DeveloperTypeID,
		RegionID:        q.RegionID,
		PlotAreaRangeID: q.PlotAreaRangeID,
		Pricing:         FromQuotationPricing(q.Pricing),
		Status:          string(q.Status),
		ApprovedBy:      q.ApprovedBy,
		ApprovedAt:      q.ApprovedAt,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

// FromQuotationWithHistory attaches the approval trail to the quotation
// payload for detail endpoints.
func FromQuotationWithHistory(q entities.Quotation, history []entities.ApprovalRecord) QuotationResponse {
	resp := FromQuotation(q)
	if len(history) > 0 {
		resp.Approvals = FromApprovalRecords(history)
	}
	return resp
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q))
	}
	return out
}
