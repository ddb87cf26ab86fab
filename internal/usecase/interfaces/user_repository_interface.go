package interfaces

import (
	"context"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User (profile and
// onboarding progress keyed by the bearer-token subject).

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	Save(ctx context.Context, u entities.User) (entities.User, error)
}
