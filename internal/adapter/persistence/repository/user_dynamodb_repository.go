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

const defaultUsersTableName = "users"

type userItem struct {
	ID                  string `dynamodbav:"id"`
	WorkspaceID         string `dynamodbav:"workspace_id"`
	Email               string `dynamodbav:"email,omitempty"`
	FirstName           string `dynamodbav:"first_name,omitempty"`
	LastName            string `dynamodbav:"last_name,omitempty"`
	Company             string `dynamodbav:"company,omitempty"`
	Phone               string `dynamodbav:"phone,omitempty"`
	OnboardingStep      int    `dynamodbav:"onboarding_step"`
	OnboardingCompleted bool   `dynamodbav:"onboarding_completed"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists User entities in DynamoDB, keyed by the
// bearer-token subject. Profile fields are flattened into the item.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

// Save upserts the user record. Onboarding creates the record lazily on the
// first touch, so there is no existence precondition here.
func (r *UserDynamoRepository) Save(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:                  u.ID,
		WorkspaceID:         u.WorkspaceID,
		Email:               u.Email,
		FirstName:           u.Profile.FirstName,
		LastName:            u.Profile.LastName,
		Company:             u.Profile.Company,
		Phone:               u.Profile.Phone,
		OnboardingStep:      u.OnboardingStep,
		OnboardingCompleted: u.OnboardingCompleted,
		CreatedAt:           formatTime(u.CreatedAt),
		UpdatedAt:           formatTime(u.UpdatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:          it.ID,
		WorkspaceID: it.WorkspaceID,
		Email:       it.Email,
		Profile: entities.UserProfile{
			FirstName: it.FirstName,
			LastName:  it.LastName,
			Company:   it.Company,
			Phone:     it.Phone,
		},
		OnboardingStep:      it.OnboardingStep,
		OnboardingCompleted: it.OnboardingCompleted,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
