package pricing

import (
	"strings"
	"testing"

	"rera_quotation/internal/domain/entities"
)

func TestValidate_NegativePrice(t *testing.T) {
	p := entities.QuotationPricing{
		Services: []entities.ServicePricing{
			{ServiceName: "RERA Registration", CalculatedPrice: 10000, FinalPrice: -50},
		},
		FinalTotal: 10000,
	}

	res := Validate(p)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "negative price") {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
}

func TestValidate_ExcessiveDiscount(t *testing.T) {
	p := entities.QuotationPricing{
		Services: []entities.ServicePricing{
			{ServiceName: "Quarterly Compliance", CalculatedPrice: 100000, FinalPrice: 40000, DiscountPercentage: 60},
		},
		FinalTotal: 40000,
	}

	res := Validate(p)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "excessive discount") {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
}

func TestValidate_MinimumTotal(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		valid bool
	}{
		{"just below floor", 999, false},
		{"exactly at floor", 1000, true},
		{"above floor", 5000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(entities.QuotationPricing{FinalTotal: tt.total})
			if res.IsValid != tt.valid {
				t.Errorf("Validate(total=%d).IsValid = %v, want %v (errors: %v)", tt.total, res.IsValid, tt.valid, res.Errors)
			}
		})
	}
}

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	p := entities.QuotationPricing{
		Services: []entities.ServicePricing{
			{ServiceName: "A", CalculatedPrice: 1000, FinalPrice: -10, DiscountPercentage: 101},
			{ServiceName: "B", CalculatedPrice: 1000, FinalPrice: 400, DiscountPercentage: 60},
		},
		FinalTotal: 390,
	}

	res := Validate(p)
	if len(res.Errors) != 4 {
		t.Errorf("expected 4 accumulated violations, got %d: %v", len(res.Errors), res.Errors)
	}
}
