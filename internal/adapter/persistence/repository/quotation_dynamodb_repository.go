package repository

import (
	"context"
	"errors"
	"time"

	"rera_quotation/internal/domain/entities"
	"rera_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "quotations"

type pricingFactorsItem struct {
	DeveloperTypeMultiplier float64 `dynamodbav:"developer_type_multiplier"`
	RegionalMultiplier      float64 `dynamodbav:"regional_multiplier"`
	PlotAreaMultiplier      float64 `dynamodbav:"plot_area_multiplier"`
	ServiceComplexityFactor float64 `dynamodbav:"service_complexity_factor"`
}

type servicePricingItem struct {
	ServiceID          string             `dynamodbav:"service_id"`
	ServiceName        string             `dynamodbav:"service_name"`
	BasePrice          int64              `dynamodbav:"base_price"`
	CalculatedPrice    int64              `dynamodbav:"calculated_price"`
	FinalPrice         int64              `dynamodbav:"final_price"`
	DiscountAmount     int64              `dynamodbav:"discount_amount"`
	DiscountPercentage float64            `dynamodbav:"discount_percentage"`
	DiscountReason     string             `dynamodbav:"discount_reason,omitempty"`
	PricingFactors     pricingFactorsItem `dynamodbav:"pricing_factors"`
}

type quotationPricingItem struct {
	Services                []servicePricingItem `dynamodbav:"services"`
	Subtotal                int64                `dynamodbav:"subtotal"`
	TotalDiscountAmount     int64                `dynamodbav:"total_discount_amount"`
	TotalDiscountPercentage float64              `dynamodbav:"total_discount_percentage"`
	FinalTotal              int64                `dynamodbav:"final_total"`
	RoundedTotal            int64                `dynamodbav:"rounded_total"`
	ApprovalLevel           string               `dynamodbav:"approval_level"`
	NeedsApproval           bool                 `dynamodbav:"needs_approval"`
}

type quotationItem struct {
	ID              string               `dynamodbav:"id"`
	Number          string               `dynamodbav:"number"`
	ProjectName     string               `dynamodbav:"project_name"`
	ProjectLocation string               `dynamodbav:"project_location,omitempty"`
	ClientName      string               `dynamodbav:"client_name"`
	ClientEmail     string               `dynamodbav:"client_email,omitempty"`
	CreatedBy       string               `dynamodbav:"created_by"`
	CreatedByName   string               `dynamodbav:"created_by_name,omitempty"`
	CreatedByEmail  string               `dynamodbav:"created_by_email,omitempty"`
	DeveloperTypeID string               `dynamodbav:"developer_type_id"`
	RegionID        string               `dynamodbav:"region_id,omitempty"`
	PlotAreaRangeID string               `dynamodbav:"plot_area_range_id,omitempty"`
	Pricing         quotationPricingItem `dynamodbav:"pricing"`
	Status          string               `dynamodbav:"status"`
	ApprovedBy      string               `dynamodbav:"approved_by,omitempty"`
	ApprovedAt      string               `dynamodbav:"approved_at,omitempty"`
	CreatedAt       string               `dynamodbav:"created_at"`
	UpdatedAt       string               `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Pricing lines are stored inline with the item, so one GetItem hydrates the
// whole aggregate. Status transitions are guarded by a ConditionExpression
// on the current status: when two decisions race, exactly one write passes
// and the loser observes a zero-value Quotation.
type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it := toQuotationItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

// UpdatePricing replaces the whole pricing block of a draft. The usecase has
// already recomputed the aggregate, so the write is a plain SET guarded only
// by item existence.
func (r *QuotationDynamoRepository) UpdatePricing(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	pricingAV, err := attributevalue.Marshal(toQuotationPricingItem(q.Pricing))
	if err != nil {
		return entities.Quotation{}, err
	}

	return r.update(ctx, q.ID, nil, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #pricing = :pricing, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":pricing":    pricingAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#pricing":    "pricing",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// TransitionStatus moves a quotation between workflow states. The write is
// conditional on the status still being `from`; a failed condition is
// reported as a zero-value Quotation, not an error.
func (r *QuotationDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.QuotationStatus, approvedBy string, approvedAt *time.Time) (entities.Quotation, error) {
	condition := aws.String("attribute_exists(#id) AND #status = :from")

	return r.update(ctx, id, condition, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if approvedBy != "" {
			expr += ", #approved_by = :approved_by"
			vals[":approved_by"] = &types.AttributeValueMemberS{Value: approvedBy}
			names["#approved_by"] = "approved_by"
		}
		if approvedAt != nil {
			expr += ", #approved_at = :approved_at"
			vals[":approved_at"] = &types.AttributeValueMemberS{Value: approvedAt.UTC().Format(time.RFC3339Nano)}
			names["#approved_at"] = "approved_at"
		}
		return expr, vals, names
	})
}

// List scans the table with optional status / minimum-discount filters.
// Quotation volume for a consultancy stays small enough that a filtered
// Scan beats maintaining extra indexes.
func (r *QuotationDynamoRepository) List(ctx context.Context, filter interfaces.QuotationFilter) ([]entities.Quotation, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	expr := ""
	vals := map[string]types.AttributeValue{}
	names := map[string]string{}
	if filter.Status != "" {
		expr = "#status = :status"
		vals[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		names["#status"] = "status"
	}
	if filter.MinDiscountPercentage > 0 {
		if expr != "" {
			expr += " AND "
		}
		expr += "#pricing.#tdp >= :min_discount"
		vals[":min_discount"] = &types.AttributeValueMemberN{Value: floatToString(filter.MinDiscountPercentage)}
		names["#pricing"] = "pricing"
		names["#tdp"] = "total_discount_percentage"
	}
	if expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeValues = vals
		input.ExpressionAttributeNames = names
	}

	quotations := make([]entities.Quotation, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quotationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotations = append(quotations, fromQuotationItem(it))
		}
	}
	return quotations, nil
}

func (r *QuotationDynamoRepository) update(
	ctx context.Context,
	id string,
	condition *string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	if condition == nil {
		condition = aws.String("attribute_exists(#id)")
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       condition,
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
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
		Pricing:         toQuotationPricingItem(q.Pricing),
		Status:          string(q.Status),
		ApprovedBy:      q.ApprovedBy,
		CreatedAt:       q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.ApprovedAt != nil {
		it.ApprovedAt = q.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	q := entities.Quotation{
		ID:              it.ID,
		Number:          it.Number,
		ProjectName:     it.ProjectName,
		ProjectLocation: it.ProjectLocation,
		ClientName:      it.ClientName,
		ClientEmail:     it.ClientEmail,
		CreatedBy:       it.CreatedBy,
		CreatedByName:   it.CreatedByName,
		CreatedByEmail:  it.CreatedByEmail,
		DeveloperTypeID: it.DeveloperTypeID,
		RegionID:        it.RegionID,
		PlotAreaRangeID: it.PlotAreaRangeID,
		Pricing:         fromQuotationPricingItem(it.Pricing),
		Status:          entities.QuotationStatus(it.Status),
		ApprovedBy:      it.ApprovedBy,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.ApprovedAt != "" {
		if approvedAt, err := time.Parse(time.RFC3339Nano, it.ApprovedAt); err == nil {
			q.ApprovedAt = &approvedAt
		}
	}
	return q
}

func toQuotationPricingItem(p entities.QuotationPricing) quotationPricingItem {
	services := make([]servicePricingItem, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, servicePricingItem{
			ServiceID:          s.ServiceID,
			ServiceName:        s.ServiceName,
			BasePrice:          s.BasePrice,
			CalculatedPrice:    s.CalculatedPrice,
			FinalPrice:         s.FinalPrice,
			DiscountAmount:     s.DiscountAmount,
			DiscountPercentage: s.DiscountPercentage,
			DiscountReason:     s.DiscountReason,
			PricingFactors: pricingFactorsItem{
				DeveloperTypeMultiplier: s.PricingFactors.DeveloperTypeMultiplier,
				RegionalMultiplier:      s.PricingFactors.RegionalMultiplier,
				PlotAreaMultiplier:      s.PricingFactors.PlotAreaMultiplier,
				ServiceComplexityFactor: s.PricingFactors.ServiceComplexityFactor,
			},
		})
	}
	return quotationPricingItem{
		Services:                services,
		Subtotal:                p.Subtotal,
		TotalDiscountAmount:     p.TotalDiscountAmount,
		TotalDiscountPercentage: p.TotalDiscountPercentage,
		FinalTotal:              p.FinalTotal,
		RoundedTotal:            p.RoundedTotal,
		ApprovalLevel:           p.ApprovalLevel.String(),
		NeedsApproval:           p.NeedsApproval,
	}
}

func fromQuotationPricingItem(it quotationPricingItem) entities.QuotationPricing {
	services := make([]entities.ServicePricing, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, entities.ServicePricing{
			ServiceID:          s.ServiceID,
			ServiceName:        s.ServiceName,
			BasePrice:          s.BasePrice,
			CalculatedPrice:    s.CalculatedPrice,
			FinalPrice:         s.FinalPrice,
			DiscountAmount:     s.DiscountAmount,
			DiscountPercentage: s.DiscountPercentage,
			DiscountReason:     s.DiscountReason,
			PricingFactors: entities.PricingFactors{
				DeveloperTypeMultiplier: s.PricingFactors.DeveloperTypeMultiplier,
				RegionalMultiplier:      s.PricingFactors.RegionalMultiplier,
				PlotAreaMultiplier:      s.PricingFactors.PlotAreaMultiplier,
				ServiceComplexityFactor: s.PricingFactors.ServiceComplexityFactor,
			},
		})
	}
	level, _ := entities.ParseApprovalLevel(it.ApprovalLevel)
	return entities.QuotationPricing{
		Services:                services,
		Subtotal:                it.Subtotal,
		TotalDiscountAmount:     it.TotalDiscountAmount,
		TotalDiscountPercentage: it.TotalDiscountPercentage,
		FinalTotal:              it.FinalTotal,
		RoundedTotal:            it.RoundedTotal,
		ApprovalLevel:           level,
		NeedsApproval:           it.NeedsApproval,
	}
}
