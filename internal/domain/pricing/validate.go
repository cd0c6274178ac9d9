package pricing

import (
	"fmt"

	"rera_quotation/internal/domain/entities"
)

const minimumQuotationTotal = 1000

// ValidationResult lists every business-rule violation found in an
// aggregate. It is advisory: the engine never auto-corrects a price, callers
// decide whether to block on it.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// Validate checks the aggregate against pricing constraints, accumulating
// all violations rather than stopping at the first.
func Validate(p entities.QuotationPricing) ValidationResult {
	var errs []string

	for _, line := range p.Services {
		if line.FinalPrice < 0 {
			errs = append(errs, fmt.Sprintf("Service %q cannot have negative price", line.ServiceName))
		}
	}

	for _, line := range p.Services {
		if line.DiscountPercentage > 50 {
			errs = append(errs, fmt.Sprintf("Service %q has excessive discount (%.1f%%)", line.ServiceName, line.DiscountPercentage))
		}
	}

	if p.FinalTotal < minimumQuotationTotal {
		errs = append(errs, fmt.Sprintf("Quotation total is below minimum threshold of %d", minimumQuotationTotal))
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
