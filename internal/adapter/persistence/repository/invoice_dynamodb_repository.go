package repository

import (
	"context"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoiceWorkspaceIndex    = "workspace_id-index"
	invoiceEstimateIndex     = "estimate_id-index"
)

type invoiceItem struct {
	ID          string               `dynamodbav:"id"`
	Number      string               `dynamodbav:"number"`
	WorkspaceID string               `dynamodbav:"workspace_id"`
	EstimateID  string               `dynamodbav:"estimate_id"`
	ClientID    string               `dynamodbav:"client_id,omitempty"`
	ProjectID   string               `dynamodbav:"project_id,omitempty"`
	Status      string               `dynamodbav:"status"`
	Items       []estimateItemRecord `dynamodbav:"items"`
	Subtotal    float64              `dynamodbav:"subtotal"`
	Discount    float64              `dynamodbav:"discount"`
	Tax         float64              `dynamodbav:"tax"`
	Total       float64              `dynamodbav:"total"`
	CreatedAt   string               `dynamodbav:"created_at"`
	UpdatedAt   string               `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI workspace_id-index: workspace_id (string)
//   - GSI estimate_id-index: estimate_id (string)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByEstimateID(ctx context.Context, estimateID string) (entities.Invoice, error) {
	list, err := r.queryIndex(ctx, invoiceEstimateIndex, "estimate_id", estimateID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(list) == 0 {
		return entities.Invoice{}, nil
	}
	return list[0], nil
}

func (r *InvoiceDynamoRepository) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Invoice, error) {
	return r.queryIndex(ctx, invoiceWorkspaceIndex, "workspace_id", workspaceID)
}

func (r *InvoiceDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Invoice, error) {
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

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	items := make([]estimateItemRecord, len(inv.Items))
	for i, li := range inv.Items {
		items[i] = estimateItemRecord{
			Description: li.Description,
			Quantity:    li.Quantity,
			BaseCost:    li.BaseCost,
			MarginPct:   li.MarginPct,
			SellPrice:   li.SellPrice,
			Taxable:     li.Taxable,
		}
	}
	return invoiceItem{
		ID:          inv.ID,
		Number:      inv.Number,
		WorkspaceID: inv.WorkspaceID,
		EstimateID:  inv.EstimateID,
		ClientID:    inv.ClientID,
		ProjectID:   inv.ProjectID,
		Status:      string(inv.Status),
		Items:       items,
		Subtotal:    inv.Subtotal,
		Discount:    inv.Discount,
		Tax:         inv.Tax,
		Total:       inv.Total,
		CreatedAt:   formatTime(inv.CreatedAt),
		UpdatedAt:   formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
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
	return entities.Invoice{
		ID:          it.ID,
		Number:      it.Number,
		WorkspaceID: it.WorkspaceID,
		EstimateID:  it.EstimateID,
		ClientID:    it.ClientID,
		ProjectID:   it.ProjectID,
		Status:      entities.InvoiceStatus(it.Status),
		Items:       items,
		Subtotal:    it.Subtotal,
		Discount:    it.Discount,
		Tax:         it.Tax,
		Total:       it.Total,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
