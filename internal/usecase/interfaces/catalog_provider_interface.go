package interfaces

import (
	"context"

	"rera_quotation/internal/domain/entities"
)

// ICatalogProvider returns the current reference-data snapshot (developer
// types, regions, plot-area ranges, service categories, services). The
// pricing engine treats the snapshot as read-only for one calculation;
// caching and refresh belong to the implementation.
type ICatalogProvider interface {
	GetCatalog(ctx context.Context) (entities.Catalog, error)
}
