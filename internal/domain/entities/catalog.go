package entities

// Reference data driving quotation pricing. Each axis carries a multiplier
// applied on top of a service's base price: 1.0 is neutral, above 1.0 is a
// surcharge, below 1.0 is a rate-table discount (distinct from the manual
// per-line discounts tracked on ServicePricing).
//
// Records are read-only snapshots: the pricing engine never mutates or
// refreshes them, the catalog provider owns caching.

type DeveloperType struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type Region struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type PlotAreaRange struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

type ServiceCategory struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ComplexityFactor float64 `json:"complexity_factor"`
}

// Service is a sellable consultancy service. BasePrice is in whole currency
// units (rupees); all derived prices stay integral.
type Service struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	BasePrice  int64  `json:"base_price"`
	Mandatory  bool   `json:"mandatory"`
}

// Catalog is the full reference-data snapshot used for one calculation.
type Catalog struct {
	DeveloperTypes    []DeveloperType   `json:"developer_types"`
	Regions           []Region          `json:"regions"`
	PlotAreaRanges    []PlotAreaRange   `json:"plot_area_ranges"`
	ServiceCategories []ServiceCategory `json:"service_categories"`
	Services          []Service         `json:"services"`
}
