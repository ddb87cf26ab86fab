package interfaces

import (
	"context"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

// IContactRepository abstracts DynamoDB persistence for ContactInquiry.

type IContactRepository interface {
	Create(ctx context.Context, inquiry entities.ContactInquiry) (entities.ContactInquiry, error)
}
