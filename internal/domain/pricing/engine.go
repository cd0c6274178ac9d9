package pricing

import (
	"errors"

	"rera_quotation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrUnknownDeveloperType = errors.New("unknown developer type")

// PriceOverride is a manual per-service price supplied by the consultant.
// Presence in the overrides map is what matters: an override of 0 is a valid
// (if unusual) final price.
type PriceOverride struct {
	ModifiedPrice  int64
	DiscountReason string
}

// Engine computes quotation pricing against a fixed reference-data snapshot.
// It is pure: every method is a side-effect-free transformation, safe to call
// concurrently.
type Engine struct {
	developerTypes    map[string]entities.DeveloperType
	regions           map[string]entities.Region
	plotAreaRanges    map[string]entities.PlotAreaRange
	serviceCategories map[string]entities.ServiceCategory
	services          map[string]entities.Service
}

func NewEngine(catalog entities.Catalog) *Engine {
	e := &Engine{
		developerTypes:    make(map[string]entities.DeveloperType, len(catalog.DeveloperTypes)),
		regions:           make(map[string]entities.Region, len(catalog.Regions)),
		plotAreaRanges:    make(map[string]entities.PlotAreaRange, len(catalog.PlotAreaRanges)),
		serviceCategories: make(map[string]entities.ServiceCategory, len(catalog.ServiceCategories)),
		services:          make(map[string]entities.Service, len(catalog.Services)),
	}
	for _, dt := range catalog.DeveloperTypes {
		e.developerTypes[dt.ID] = dt
	}
	for _, r := range catalog.Regions {
		e.regions[r.ID] = r
	}
	for _, par := range catalog.PlotAreaRanges {
		e.plotAreaRanges[par.ID] = par
	}
	for _, sc := range catalog.ServiceCategories {
		e.serviceCategories[sc.ID] = sc
	}
	for _, s := range catalog.Services {
		e.services[s.ID] = s
	}
	return e
}

// CalculateQuotationPricing prices the selected services and derives totals,
// discount and the required approval level.
//
// The developer type must resolve; region and plot area are optional axes
// that default to a neutral 1.0 multiplier so pricing stays computable
// mid-wizard. Selected service ids that no longer resolve are skipped
// silently: selections may be edited concurrently with catalog changes.
func (e *Engine) CalculateQuotationPricing(
	developerTypeID string,
	regionID string,
	plotAreaRangeID string,
	selectedServiceIDs []string,
	existingOverrides map[string]PriceOverride,
) (entities.QuotationPricing, error) {
	if _, ok := e.developerTypes[developerTypeID]; !ok {
		return entities.QuotationPricing{}, ErrUnknownDeveloperType
	}

	developerTypeMultiplier := e.developerTypeMultiplier(developerTypeID)
	regionalMultiplier := e.regionalMultiplier(regionID)
	plotAreaMultiplier := e.plotAreaMultiplier(plotAreaRangeID)

	lines := make([]entities.ServicePricing, 0, len(selectedServiceIDs))
	for _, serviceID := range selectedServiceIDs {
		service, ok := e.services[serviceID]
		if !ok {
			continue
		}

		factors := entities.PricingFactors{
			DeveloperTypeMultiplier: developerTypeMultiplier,
			RegionalMultiplier:      regionalMultiplier,
			PlotAreaMultiplier:      plotAreaMultiplier,
			ServiceComplexityFactor: e.complexityFactor(service.CategoryID),
		}

		calculatedPrice := CalculateServicePrice(service.BasePrice, factors)

		finalPrice := calculatedPrice
		discountReason := ""
		if override, ok := existingOverrides[serviceID]; ok {
			finalPrice = override.ModifiedPrice
			discountReason = override.DiscountReason
		}

		discountAmount := calculatedPrice - finalPrice
		lines = append(lines, entities.ServicePricing{
			ServiceID:          serviceID,
			ServiceName:        service.Name,
			BasePrice:          service.BasePrice,
			CalculatedPrice:    calculatedPrice,
			FinalPrice:         finalPrice,
			DiscountAmount:     discountAmount,
			DiscountPercentage: percentageOf(discountAmount, calculatedPrice),
			DiscountReason:     discountReason,
			PricingFactors:     factors,
		})
	}

	return aggregate(lines), nil
}

// UpdateServicePrice returns a new aggregate with the named line's final
// price replaced and every total recomputed. The line's calculated price is
// untouched; the discount fields are re-derived from it. An unknown
// serviceID returns the aggregate unchanged.
func UpdateServicePrice(p entities.QuotationPricing, serviceID string, newPrice int64, discountReason string) entities.QuotationPricing {
	lines := make([]entities.ServicePricing, len(p.Services))
	copy(lines, p.Services)

	for i, line := range lines {
		if line.ServiceID != serviceID {
			continue
		}
		discountAmount := line.CalculatedPrice - newPrice
		line.FinalPrice = newPrice
		line.DiscountAmount = discountAmount
		line.DiscountPercentage = percentageOf(discountAmount, line.CalculatedPrice)
		line.DiscountReason = discountReason
		lines[i] = line
		return aggregate(lines)
	}

	return p
}

// CalculateServicePrice multiplies the base price by all four factors and
// rounds to the nearest whole currency unit, halves away from zero. The
// product is taken in decimal arithmetic so no binary-float drift can reach
// a stored price.
func CalculateServicePrice(basePrice int64, factors entities.PricingFactors) int64 {
	return decimal.NewFromInt(basePrice).
		Mul(decimal.NewFromFloat(factors.DeveloperTypeMultiplier)).
		Mul(decimal.NewFromFloat(factors.RegionalMultiplier)).
		Mul(decimal.NewFromFloat(factors.PlotAreaMultiplier)).
		Mul(decimal.NewFromFloat(factors.ServiceComplexityFactor)).
		Round(0).
		IntPart()
}

// Breakdown itemizes how a line's calculated price was built up axis by
// axis, for documents and audits. Each adjustment is the delta the axis
// contributes when applied after the preceding ones.
type Breakdown struct {
	BasePrice               int64 `json:"base_price"`
	DeveloperTypeAdjustment int64 `json:"developer_type_adjustment"`
	RegionalAdjustment      int64 `json:"regional_adjustment"`
	PlotAreaAdjustment      int64 `json:"plot_area_adjustment"`
	ComplexityAdjustment    int64 `json:"complexity_adjustment"`
	CalculatedPrice         int64 `json:"calculated_price"`
	Discount                int64 `json:"discount"`
	FinalPrice              int64 `json:"final_price"`
}

func PricingBreakdown(line entities.ServicePricing) Breakdown {
	base := decimal.NewFromInt(line.BasePrice)
	f := line.PricingFactors

	afterDeveloper := base.Mul(decimal.NewFromFloat(f.DeveloperTypeMultiplier))
	afterRegion := afterDeveloper.Mul(decimal.NewFromFloat(f.RegionalMultiplier))
	afterPlotArea := afterRegion.Mul(decimal.NewFromFloat(f.PlotAreaMultiplier))

	return Breakdown{
		BasePrice:               line.BasePrice,
		DeveloperTypeAdjustment: afterDeveloper.Sub(base).Round(0).IntPart(),
		RegionalAdjustment:      afterRegion.Sub(afterDeveloper).Round(0).IntPart(),
		PlotAreaAdjustment:      afterPlotArea.Sub(afterRegion).Round(0).IntPart(),
		ComplexityAdjustment:    afterPlotArea.Mul(decimal.NewFromFloat(f.ServiceComplexityFactor)).Sub(afterPlotArea).Round(0).IntPart(),
		CalculatedPrice:         line.CalculatedPrice,
		Discount:                line.DiscountAmount,
		FinalPrice:              line.FinalPrice,
	}
}

// aggregate sums lines into totals and derives the approval decision. The
// totals are never stored independently of the lines that produced them.
func aggregate(lines []entities.ServicePricing) entities.QuotationPricing {
	var subtotal, totalOriginal int64
	for _, line := range lines {
		subtotal += line.FinalPrice
		totalOriginal += line.CalculatedPrice
	}

	totalDiscountAmount := totalOriginal - subtotal
	totalDiscountPercentage := percentageOf(totalDiscountAmount, totalOriginal)
	approvalLevel := RequiredApprovalLevel(totalDiscountPercentage)

	return entities.QuotationPricing{
		Services:                lines,
		Subtotal:                subtotal,
		TotalDiscountAmount:     totalDiscountAmount,
		TotalDiscountPercentage: totalDiscountPercentage,
		FinalTotal:              subtotal,
		RoundedTotal:            ApplyRounding(subtotal),
		ApprovalLevel:           approvalLevel,
		NeedsApproval:           approvalLevel != entities.ApprovalLevelAuto,
	}
}

// percentageOf returns part/whole as a percentage, 0 when whole is 0.
func percentageOf(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func (e *Engine) developerTypeMultiplier(id string) float64 {
	if dt, ok := e.developerTypes[id]; ok && dt.Multiplier > 0 {
		return dt.Multiplier
	}
	return 1.0
}

func (e *Engine) regionalMultiplier(id string) float64 {
	if r, ok := e.regions[id]; ok && r.Multiplier > 0 {
		return r.Multiplier
	}
	return 1.0
}

func (e *Engine) plotAreaMultiplier(id string) float64 {
	if par, ok := e.plotAreaRanges[id]; ok && par.Multiplier > 0 {
		return par.Multiplier
	}
	return 1.0
}

func (e *Engine) complexityFactor(categoryID string) float64 {
	if sc, ok := e.serviceCategories[categoryID]; ok && sc.ComplexityFactor > 0 {
		return sc.ComplexityFactor
	}
	return 1.0
}
