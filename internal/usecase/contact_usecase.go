package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidInquiry = errors.New("name, email and message are required")

// IContactUseCase records marketing/legal inquiries from the public site.

type IContactUseCase interface {
	Submit(ctx context.Context, name, email, subject, message string) (entities.ContactInquiry, error)
}

type ContactUseCase struct {
	repo interfaces.IContactRepository
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

func (u *ContactUseCase) Submit(ctx context.Context, name, email, subject, message string) (entities.ContactInquiry, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return entities.ContactInquiry{}, ErrInvalidInquiry
	}

	inquiry := entities.ContactInquiry{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   strings.TrimSpace(subject),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, inquiry)
}
