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

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
)

// INotificationUseCase exposes the inbox operations.

type INotificationUseCase interface {
	Create(ctx context.Context, userID, title, body string, urgent bool) (entities.Notification, error)
	List(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, id string) error
	InboxStats(ctx context.Context, userID string) (entities.InboxStats, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) Create(ctx context.Context, userID, title, body string, urgent bool) (entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Notification{}, ErrInvalidUserID
	}
	n := entities.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		Body:      strings.TrimSpace(body),
		Urgent:    urgent,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, n)
}

func (u *NotificationUseCase) List(ctx context.Context, userID string) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}
	n, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, ErrInvalidUserID
	}
	return u.repo.MarkAllRead(ctx, userID)
}

func (u *NotificationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidNotificationID
	}
	return u.repo.Delete(ctx, id)
}

// InboxStats folds the user's notifications into the badge counters shown
// in the navigation.
func (u *NotificationUseCase) InboxStats(ctx context.Context, userID string) (entities.InboxStats, error) {
	list, err := u.List(ctx, userID)
	if err != nil {
		return entities.InboxStats{}, err
	}
	return entities.ComputeInboxStats(list, time.Now().UTC()), nil
}
