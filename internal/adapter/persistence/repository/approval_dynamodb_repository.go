package repository

import (
	"context"
	"time"

	"rera_quotation/internal/domain/entities"
	"rera_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApprovalsTableName = "quotation_approvals"
	approvalsQuotationIDIndex = "quotation_id-index"
)

type approvalRecordItem struct {
	ID                 string  `dynamodbav:"id"`
	QuotationID        string  `dynamodbav:"quotation_id"`
	ApproverID         string  `dynamodbav:"approver_id"`
	ApproverName       string  `dynamodbav:"approver_name,omitempty"`
	Decision           string  `dynamodbav:"decision"`
	DecidedAt          string  `dynamodbav:"decided_at"`
	Comments           string  `dynamodbav:"comments,omitempty"`
	RequiredLevel      string  `dynamodbav:"required_level"`
	OriginalAmount     int64   `dynamodbav:"original_amount"`
	DiscountedAmount   int64   `dynamodbav:"discounted_amount"`
	DiscountPercentage float64 `dynamodbav:"discount_percentage"`
}

// ApprovalDynamoRepository persists ApprovalRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_id-index (PK: quotation_id, SK: decided_at)
//
// Records are append-only: Create refuses to overwrite an existing id and
// nothing here issues updates or deletes.
type ApprovalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApprovalRepository = (*ApprovalDynamoRepository)(nil)

func NewApprovalDynamoRepository(ddb *dynamodb.Client) *ApprovalDynamoRepository {
	return &ApprovalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPROVALS_TABLE", defaultApprovalsTableName),
	}
}

func (r *ApprovalDynamoRepository) Create(ctx context.Context, rec entities.ApprovalRecord) (entities.ApprovalRecord, error) {
	it := toApprovalRecordItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ApprovalRecord{}, err
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
		return entities.ApprovalRecord{}, err
	}
	return rec, nil
}

// ListByQuotationID returns a quotation's decision history in decision
// order, oldest first.
func (r *ApprovalDynamoRepository) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.ApprovalRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(approvalsQuotationIDIndex),
		KeyConditionExpression: aws.String("quotation_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quotationID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.ApprovalRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it approvalRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromApprovalRecordItem(it))
	}
	return records, nil
}

func toApprovalRecordItem(rec entities.ApprovalRecord) approvalRecordItem {
	return approvalRecordItem{
		ID:                 rec.ID,
		QuotationID:        rec.QuotationID,
		ApproverID:         rec.ApproverID,
		ApproverName:       rec.ApproverName,
		Decision:           string(rec.Decision),
		DecidedAt:          rec.DecidedAt.UTC().Format(time.RFC3339Nano),
		Comments:           rec.Comments,
		RequiredLevel:      rec.RequiredLevel.String(),
		OriginalAmount:     rec.OriginalAmount,
		DiscountedAmount:   rec.DiscountedAmount,
		DiscountPercentage: rec.DiscountPercentage,
	}
}

func fromApprovalRecordItem(it approvalRecordItem) entities.ApprovalRecord {
	decidedAt, _ := time.Parse(time.RFC3339Nano, it.DecidedAt)
	level, _ := entities.ParseApprovalLevel(it.RequiredLevel)
	return entities.ApprovalRecord{
		ID:                 it.ID,
		QuotationID:        it.QuotationID,
		ApproverID:         it.ApproverID,
		ApproverName:       it.ApproverName,
		Decision:           entities.ApprovalDecision(it.Decision),
		DecidedAt:          decidedAt,
		Comments:           it.Comments,
		RequiredLevel:      level,
		OriginalAmount:     it.OriginalAmount,
		DiscountedAmount:   it.DiscountedAmount,
		DiscountPercentage: it.DiscountPercentage,
	}
}
