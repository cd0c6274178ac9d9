package response

import "rera_quotation/internal/domain/entities"

type DeveloperTypeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type RegionResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type PlotAreaRangeResponse struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

type ServiceCategoryResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ComplexityFactor float64 `json:"complexity_factor"`
}

type ServiceResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	BasePrice  int64  `json:"base_price"`
	Mandatory  bool   `json:"mandatory"`
}

type CatalogResponse struct {
	DeveloperTypes    []DeveloperTypeResponse   `json:"developer_types"`
	Regions           []RegionResponse          `json:"regions"`
	PlotAreaRanges    []PlotAreaRangeResponse   `json:"plot_area_ranges"`
	ServiceCategories []ServiceCategoryResponse `json:"service_categories"`
	Services          []ServiceResponse         `json:"services"`
}

func FromCatalog(c entities.Catalog) CatalogResponse {
	resp := CatalogResponse{
		DeveloperTypes:    make([]DeveloperTypeResponse, 0, len(c.DeveloperTypes)),
		Regions:           make([]RegionResponse, 0, len(c.Regions)),
		PlotAreaRanges:    make([]PlotAreaRangeResponse, 0, len(c.PlotAreaRanges)),
		ServiceCategories: make([]ServiceCategoryResponse, 0, len(c.ServiceCategories)),
		Services:          make([]ServiceResponse, 0, len(c.Services)),
	}
	for _, dt := range c.DeveloperTypes {
		resp.DeveloperTypes = append(resp.DeveloperTypes, DeveloperTypeResponse{ID: dt.ID, Name: dt.Name, Multiplier: dt.Multiplier})
	}
	for _, r := range c.Regions {
		resp.Regions = append(resp.Regions, RegionResponse{ID: r.ID, Name: r.Name, Multiplier: r.Multiplier})
	}
	for _, pr := range c.PlotAreaRanges {
		resp.PlotAreaRanges = append(resp.PlotAreaRanges, PlotAreaRangeResponse{ID: pr.ID, Label: pr.Label, Multiplier: pr.Multiplier})
	}
	for _, sc := range c.ServiceCategories {
		resp.ServiceCategories = append(resp.ServiceCategories, ServiceCategoryResponse{ID: sc.ID, Name: sc.Name, ComplexityFactor: sc.ComplexityFactor})
	}
	for _, s := range c.Services {
		resp.Services = append(resp.Services, ServiceResponse{ID: s.ID, Name: s.Name, CategoryID: s.CategoryID, BasePrice: s.BasePrice, Mandatory: s.Mandatory})
	}
	return resp
}
