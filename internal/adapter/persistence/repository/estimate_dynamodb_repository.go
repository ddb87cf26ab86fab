package repository

import (
	"context"
	"errors"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimateWorkspaceIndex    = "workspace_id-index"
	estimateProjectIndex      = "project_id-index"
)

type estimateItemRecord struct {
	Description string  `dynamodbav:"description"`
	Quantity    int     `dynamodbav:"quantity"`
	BaseCost    float64 `dynamodbav:"base_cost"`
	MarginPct   float64 `dynamodbav:"margin_pct"`
	SellPrice   float64 `dynamodbav:"sell_price"`
	Taxable     bool    `dynamodbav:"taxable"`
}

type estimateItem struct {
	ID             string               `dynamodbav:"id"`
	Number         string               `dynamodbav:"number"`
	WorkspaceID    string               `dynamodbav:"workspace_id"`
	ClientID       string               `dynamodbav:"client_id,omitempty"`
	ProjectID      string               `dynamodbav:"project_id,omitempty"`
	InvoiceID      string               `dynamodbav:"invoice_id,omitempty"`
	Status         string               `dynamodbav:"status"`
	Items          []estimateItemRecord `dynamodbav:"items"`
	SubtotalCost   float64              `dynamodbav:"subtotal_cost"`
	SubtotalSell   float64              `dynamodbav:"subtotal_sell"`
	DiscountType   string               `dynamodbav:"discount_type"`
	DiscountValue  float64              `dynamodbav:"discount_value"`
	DiscountAmount float64              `dynamodbav:"discount_amount"`
	TaxRate        float64              `dynamodbav:"tax_rate"`
	TaxAmount      float64              `dynamodbav:"tax_amount"`
	Total          float64              `dynamodbav:"total"`
	CreatedAt      string               `dynamodbav:"created_at"`
	UpdatedAt      string               `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI workspace_id-index: workspace_id (string)
//   - GSI project_id-index: project_id (string)

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Estimate, error) {
	return r.queryIndex(ctx, estimateWorkspaceIndex, "workspace_id", workspaceID)
}

func (r *EstimateDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error) {
	return r.queryIndex(ctx, estimateProjectIndex, "project_id", projectID)
}

// Save overwrites the full record. Status transitions and recalculations go
// through the use case, which always writes back the whole estimate.
func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *EstimateDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	estimates := make([]entities.Estimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		estimates = append(estimates, fromEstimateItem(it))
	}
	return estimates, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	items := make([]estimateItemRecord, len(e.Items))
	for i, li := range e.Items {
		items[i] = estimateItemRecord{
			Description: li.Description,
			Quantity:    li.Quantity,
			BaseCost:    li.BaseCost,
			MarginPct:   li.MarginPct,
			SellPrice:   li.SellPrice,
			Taxable:     li.Taxable,
		}
	}
	return estimateItem{
		ID:             e.ID,
		Number:         e.Number,
		WorkspaceID:    e.WorkspaceID,
		ClientID:       e.ClientID,
		ProjectID:      e.ProjectID,
		InvoiceID:      e.InvoiceID,
		Status:         string(e.Status),
		Items:          items,
		SubtotalCost:   e.SubtotalCost,
		SubtotalSell:   e.SubtotalSell,
		DiscountType:   string(e.DiscountType),
		DiscountValue:  e.DiscountValue,
		DiscountAmount: e.DiscountAmount,
		TaxRate:        e.TaxRate,
		TaxAmount:      e.TaxAmount,
		Total:          e.Total,
		CreatedAt:      formatTime(e.CreatedAt),
		UpdatedAt:      formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	items := make([]entities.EstimateItem, len(it.Items))
	for i, li := range it.Items {
		items[i] = entities.EstimateItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			BaseCost:    li.BaseCost,
			MarginPct:   li.MarginPct,
			SellPrice:   li.SellPrice,
			Taxable:     li.Taxable,
		}
	}
	return entities.Estimate{
		ID:             it.ID,
		Number:         it.Number,
		WorkspaceID:    it.WorkspaceID,
		ClientID:       it.ClientID,
		ProjectID:      it.ProjectID,
		InvoiceID:      it.InvoiceID,
		Status:         entities.EstimateStatus(it.Status),
		Items:          items,
		SubtotalCost:   it.SubtotalCost,
		SubtotalSell:   it.SubtotalSell,
		DiscountType:   entities.DiscountType(it.DiscountType),
		DiscountValue:  it.DiscountValue,
		DiscountAmount: it.DiscountAmount,
		TaxRate:        it.TaxRate,
		TaxAmount:      it.TaxAmount,
		Total:          it.Total,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
