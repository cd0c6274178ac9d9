package documents

import (
	"bytes"
	"context"
	"testing"
	"time"

	"rera_quotation/internal/domain/entities"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "INR 0"},
		{999, "INR 999"},
		{1000, "INR 1,000"},
		{63250, "INR 63,250"},
		{215400, "INR 2,15,400"},
		{12345678, "INR 1,23,45,678"},
		{-75000, "-INR 75,000"},
	}
	for _, tc := range cases {
		if got := formatINR(tc.amount); got != tc.want {
			t.Errorf("formatINR(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestPDFRenderer_RenderQuotation(t *testing.T) {
	decidedAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	q := entities.Quotation{
		ID:              "q-1",
		Number:          "QT-2026-1A2B3C",
		ProjectName:     "Skyline Towers",
		ProjectLocation: "Mumbai",
		ClientName:      "Acme Estates",
		Status:          entities.QuotationStatusApproved,
		CreatedAt:       decidedAt.Add(-48 * time.Hour),
		Pricing: entities.QuotationPricing{
			Services: []entities.ServicePricing{
				{
					ServiceID:          "svc-reg",
					ServiceName:        "RERA Registration",
					BasePrice:          10000,
					CalculatedPrice:    13200,
					FinalPrice:         13200,
					PricingFactors:     entities.PricingFactors{DeveloperTypeMultiplier: 1.2, RegionalMultiplier: 1.1, PlotAreaMultiplier: 1, ServiceComplexityFactor: 1},
				},
				{
					ServiceID:          "svc-compliance",
					ServiceName:        "Quarterly Compliance",
					BasePrice:          100000,
					CalculatedPrice:    100000,
					FinalPrice:         75000,
					DiscountAmount:     25000,
					DiscountPercentage: 25,
					DiscountReason:     "repeat client",
				},
			},
			Subtotal:                88200,
			TotalDiscountAmount:     25000,
			TotalDiscountPercentage: 22.1,
			FinalTotal:              88200,
			RoundedTotal:            88200,
			ApprovalLevel:           entities.ApprovalLevelSeniorManager,
			NeedsApproval:           true,
		},
	}
	history := []entities.ApprovalRecord{
		{
			ID:           "ap-1",
			QuotationID:  "q-1",
			ApproverName: "Arjun",
			Decision:     entities.ApprovalDecisionApproved,
			DecidedAt:    decidedAt,
			Comments:     "within delegation",
		},
	}

	doc, err := NewPDFRenderer().RenderQuotation(context.Background(), q, history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("expected a PDF document, got %q", doc[:min(len(doc), 8)])
	}
}
