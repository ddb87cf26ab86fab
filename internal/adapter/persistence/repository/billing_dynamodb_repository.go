package repository

import (
	"context"
	"encoding/json"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubscriptionsTableName   = "subscriptions"
	defaultBillingPaymentsTableName = "billing_payments"
	billingPaymentWorkspaceIndex    = "workspace_id-index"
)

type subscriptionItem struct {
	WorkspaceID string  `dynamodbav:"workspace_id"`
	PlanID      string  `dynamodbav:"plan_id"`
	ProviderRef string  `dynamodbav:"provider_ref,omitempty"`
	Status      string  `dynamodbav:"status"`
	Amount      float64 `dynamodbav:"amount"`
	Currency    string  `dynamodbav:"currency"`
	RenewsAt    string  `dynamodbav:"renews_at,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

type billingPaymentItem struct {
	ID              string  `dynamodbav:"id"`
	WorkspaceID     string  `dynamodbav:"workspace_id"`
	Date            string  `dynamodbav:"date"`
	Amount          float64 `dynamodbav:"amount"`
	Status          string  `dynamodbav:"status"`
	ProviderPayload string  `dynamodbav:"provider_payload,omitempty"`
}

// SubscriptionDynamoRepository persists the workspace subscription record,
// one item per workspace (PK: workspace_id).

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) GetByWorkspaceID(ctx context.Context, workspaceID string) (entities.Subscription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"workspace_id": &types.AttributeValueMemberS{Value: workspaceID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) Save(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionItem(s))
	if err != nil {
		return entities.Subscription{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

// BillingPaymentDynamoRepository persists provider payments mirrored into
// the workspace billing history.
//
// Table requirements:
//   - PK: id (string)
//   - GSI workspace_id-index: workspace_id (string)

type BillingPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(ddb *dynamodb.Client) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLING_PAYMENTS_TABLE", defaultBillingPaymentsTableName),
	}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	av, err := attributevalue.MarshalMap(toBillingPaymentItem(p))
	if err != nil {
		return entities.BillingPayment{}, err
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
		return entities.BillingPayment{}, err
	}
	return p, nil
}

func (r *BillingPaymentDynamoRepository) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.BillingPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(billingPaymentWorkspaceIndex),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": "workspace_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: workspaceID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.BillingPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billingPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromBillingPaymentItem(it))
	}
	return payments, nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	it := subscriptionItem{
		WorkspaceID: s.WorkspaceID,
		PlanID:      s.PlanID,
		ProviderRef: s.ProviderRef,
		Status:      string(s.Status),
		Amount:      s.Amount,
		Currency:    s.Currency,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
	if !s.RenewsAt.IsZero() {
		it.RenewsAt = formatTime(s.RenewsAt)
	}
	return it
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	return entities.Subscription{
		WorkspaceID: it.WorkspaceID,
		PlanID:      it.PlanID,
		ProviderRef: it.ProviderRef,
		Status:      entities.SubscriptionStatus(it.Status),
		Amount:      it.Amount,
		Currency:    it.Currency,
		RenewsAt:    parseTime(it.RenewsAt),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

// Provider payloads are stored as the raw JSON string the provider sent;
// the parsed map is rebuilt on read so audit data stays byte-exact.
func toBillingPaymentItem(p entities.BillingPayment) billingPaymentItem {
	return billingPaymentItem{
		ID:              p.ID,
		WorkspaceID:     p.WorkspaceID,
		Date:            formatTime(p.Date),
		Amount:          p.Amount,
		Status:          p.Status,
		ProviderPayload: string(p.ProviderPayloadRaw),
	}
}

func fromBillingPaymentItem(it billingPaymentItem) entities.BillingPayment {
	p := entities.BillingPayment{
		ID:          it.ID,
		WorkspaceID: it.WorkspaceID,
		Date:        parseTime(it.Date),
		Amount:      it.Amount,
		Status:      it.Status,
	}
	if it.ProviderPayload != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayload)
		var parsed map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
			p.ProviderPayload = parsed
		}
	}
	return p
}
