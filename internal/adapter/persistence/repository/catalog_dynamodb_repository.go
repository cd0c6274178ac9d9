package repository

import (
	"context"

	"rera_quotation/internal/domain/entities"
	"rera_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "pricing_catalog"

// One table holds every reference-data kind; the kind attribute partitions
// them and id sorts within a kind.
const (
	catalogKindDeveloperType   = "developer_type"
	catalogKindRegion          = "region"
	catalogKindPlotAreaRange   = "plot_area_range"
	catalogKindServiceCategory = "service_category"
	catalogKindService         = "service"
)

type catalogItem struct {
	Kind             string  `dynamodbav:"kind"`
	ID               string  `dynamodbav:"id"`
	Name             string  `dynamodbav:"name,omitempty"`
	Label            string  `dynamodbav:"label,omitempty"`
	Multiplier       float64 `dynamodbav:"multiplier,omitempty"`
	ComplexityFactor float64 `dynamodbav:"complexity_factor,omitempty"`
	CategoryID       string  `dynamodbav:"category_id,omitempty"`
	BasePrice        int64   `dynamodbav:"base_price,omitempty"`
	Mandatory        bool    `dynamodbav:"mandatory,omitempty"`
}

// CatalogDynamoRepository reads pricing reference data from DynamoDB.
//
// Table requirements:
//   - PK: kind (string)
//   - SK: id (string)
//
// GetCatalog issues one Query per kind and assembles the snapshot. The
// catalog is small (tens of items per kind) so no caching layer sits in
// front of it yet.
type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogProvider = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) GetCatalog(ctx context.Context) (entities.Catalog, error) {
	var catalog entities.Catalog

	developerTypes, err := r.queryKind(ctx, catalogKindDeveloperType)
	if err != nil {
		return entities.Catalog{}, err
	}
	for _, it := range developerTypes {
		catalog.DeveloperTypes = append(catalog.DeveloperTypes, entities.DeveloperType{
			ID: it.ID, Name: it.Name, Multiplier: it.Multiplier,
		})
	}

	regions, err := r.queryKind(ctx, catalogKindRegion)
	if err != nil {
		return entities.Catalog{}, err
	}
	for _, it := range regions {
		catalog.Regions = append(catalog.Regions, entities.Region{
			ID: it.ID, Name: it.Name, Multiplier: it.Multiplier,
		})
	}

	ranges, err := r.queryKind(ctx, catalogKindPlotAreaRange)
	if err != nil {
		return entities.Catalog{}, err
	}
	for _, it := range ranges {
		catalog.PlotAreaRanges = append(catalog.PlotAreaRanges, entities.PlotAreaRange{
			ID: it.ID, Label: it.Label, Multiplier: it.Multiplier,
		})
	}

	categories, err := r.queryKind(ctx, catalogKindServiceCategory)
	if err != nil {
		return entities.Catalog{}, err
	}
	for _, it := range categories {
		catalog.ServiceCategories = append(catalog.ServiceCategories, entities.ServiceCategory{
			ID: it.ID, Name: it.Name, ComplexityFactor: it.ComplexityFactor,
		})
	}

	services, err := r.queryKind(ctx, catalogKindService)
	if err != nil {
		return entities.Catalog{}, err
	}
	for _, it := range services {
		catalog.Services = append(catalog.Services, entities.Service{
			ID: it.ID, Name: it.Name, CategoryID: it.CategoryID, BasePrice: it.BasePrice, Mandatory: it.Mandatory,
		})
	}

	return catalog, nil
}

func (r *CatalogDynamoRepository) queryKind(ctx context.Context, kind string) ([]catalogItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#kind = :kind"),
		ExpressionAttributeNames: map[string]string{
			"#kind": "kind",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: kind},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]catalogItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it catalogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
