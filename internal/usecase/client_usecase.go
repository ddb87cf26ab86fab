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
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidClientName = errors.New("client first and last name required")
)

// ClientInput carries the sparse create payload. Optional fields left empty
// are simply never set on the record; no deduplication is attempted, so
// creating an exact duplicate is possible.
type ClientInput struct {
	FirstName string
	LastName  string
	Company   string
	Email     string
	Phone     string
	Address   string
}

// IClientUseCase exposes client record operations, including the picker
// search and the create-from-query flow.

type IClientUseCase interface {
	Create(ctx context.Context, workspaceID string, input ClientInput) (entities.Client, error)
	CreateFromQuery(ctx context.Context, workspaceID, query string) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Search(ctx context.Context, workspaceID, query string) ([]entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, workspaceID string, input ClientInput) (entities.Client, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.Client{}, ErrInvalidWorkspaceID
	}
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:          uuid.NewString(),
		PortalToken: uuid.NewString(),
		WorkspaceID: workspaceID,
		FirstName:   firstName,
		LastName:    lastName,
		Company:     strings.TrimSpace(input.Company),
		Email:       strings.TrimSpace(input.Email),
		Phone:       strings.TrimSpace(input.Phone),
		Address:     strings.TrimSpace(input.Address),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, c)
}

// CreateFromQuery backs the picker's "Add '<query>'" affordance: the query
// is split on whitespace into first/last name and the record created with
// nothing else set.
func (u *ClientUseCase) CreateFromQuery(ctx context.Context, workspaceID, query string) (entities.Client, error) {
	firstName, lastName := entities.SplitQueryName(query)
	return u.Create(ctx, workspaceID, ClientInput{FirstName: firstName, LastName: lastName})
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

// Search lists workspace clients matching the query (case-insensitive
// substring over first name, last name and company). An empty query returns
// everything.
func (u *ClientUseCase) Search(ctx context.Context, workspaceID, query string) ([]entities.Client, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}
	all, err := u.repo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	matched := make([]entities.Client, 0, len(all))
	for _, c := range all {
		if c.MatchesQuery(query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	return u.repo.Delete(ctx, id)
}
