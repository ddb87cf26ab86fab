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
	ErrEstimateNotFound     = errors.New("estimate not found")
	ErrEstimateConverted    = errors.New("estimate already converted")
	ErrInvalidWorkspaceID   = errors.New("invalid workspace id")
	ErrInvalidEstimateID    = errors.New("invalid estimate id")
	ErrInvalidEstimateItems = errors.New("invalid estimate items")
	ErrInvalidDiscount      = errors.New("invalid discount")
	ErrInvalidTaxRate       = errors.New("invalid tax rate")
)

// EstimateInput is the domain command for creating an estimate.
type EstimateInput struct {
	ClientID      string
	ProjectID     string
	Items         []entities.EstimateItem
	DiscountType  entities.DiscountType
	DiscountValue float64
	TaxRate       float64
}

// IEstimateUseCase exposes estimate operations.
//
// Action endpoints map 1:1:
//   - POST /estimates               => Create()
//   - POST /estimates/:id/recalc    => Recalc()
//   - POST /estimates/:id/send      => Send()
//   - POST /estimates/:id/convert   => Convert()

type IEstimateUseCase interface {
	Create(ctx context.Context, workspaceID string, input EstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context, workspaceID string) ([]entities.Estimate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	Recalc(ctx context.Context, id string) (entities.Estimate, error)
	Send(ctx context.Context, id string) (entities.Estimate, error)
	Convert(ctx context.Context, id string) (entities.Invoice, error)
	MarkViewed(ctx context.Context, id string) (entities.Estimate, error)
	Decide(ctx context.Context, id string, accepted bool) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo        interfaces.IEstimateRepository
	invoiceRepo interfaces.IInvoiceRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, invoiceRepo interfaces.IInvoiceRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, invoiceRepo: invoiceRepo}
}

func (u *EstimateUseCase) Create(ctx context.Context, workspaceID string, input EstimateInput) (entities.Estimate, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return entities.Estimate{}, ErrInvalidWorkspaceID
	}
	if err := validateItems(input.Items); err != nil {
		return entities.Estimate{}, err
	}
	if input.DiscountValue < 0 {
		return entities.Estimate{}, ErrInvalidDiscount
	}
	if input.TaxRate < 0 {
		return entities.Estimate{}, ErrInvalidTaxRate
	}
	discountType := input.DiscountType
	if discountType == "" {
		discountType = entities.DiscountTypePercent
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:            uuid.NewString(),
		WorkspaceID:   workspaceID,
		ClientID:      strings.TrimSpace(input.ClientID),
		ProjectID:     strings.TrimSpace(input.ProjectID),
		Status:        entities.EstimateStatusDraft,
		Items:         input.Items,
		DiscountType:  discountType,
		DiscountValue: input.DiscountValue,
		TaxRate:       input.TaxRate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	e.Number = newDocumentNumber("EST", e.ID)
	e.Recalculate()
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	return u.load(ctx, id)
}

func (u *EstimateUseCase) List(ctx context.Context, workspaceID string) ([]entities.Estimate, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}
	return u.repo.ListByWorkspaceID(ctx, workspaceID)
}

func (u *EstimateUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidEstimateID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}
	return u.repo.Delete(ctx, id)
}

// Recalc recomputes totals from the stored line items. Allowed from any
// status; never changes the status.
func (u *EstimateUseCase) Recalc(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	e.Recalculate()
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, e)
}

// Send marks a draft as sent. Re-sending an estimate in a later status keeps
// that status; only converted estimates are blocked.
func (u *EstimateUseCase) Send(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !e.Status.CanSend() {
		return entities.Estimate{}, ErrEstimateConverted
	}
	if e.Status == entities.EstimateStatusDraft {
		e.Status = entities.EstimateStatusSent
	}
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, e)
}

// Convert produces the invoice for an estimate and marks the estimate
// converted. Converted is terminal: a second convert is rejected.
func (u *EstimateUseCase) Convert(ctx context.Context, id string) (entities.Invoice, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !e.Status.CanConvert() {
		return entities.Invoice{}, ErrEstimateConverted
	}

	now := time.Now().UTC()
	inv := entities.InvoiceFromEstimate(e, now)
	inv.ID = uuid.NewString()
	inv.Number = newDocumentNumber("INV", inv.ID)

	created, err := u.invoiceRepo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}

	e.Status = entities.EstimateStatusConverted
	e.InvoiceID = created.ID
	e.UpdatedAt = now
	if _, err := u.repo.Save(ctx, e); err != nil {
		return entities.Invoice{}, err
	}
	return created, nil
}

// MarkViewed records the implicit portal transition. Only a sent estimate
// becomes viewed; every other status is left as-is.
func (u *EstimateUseCase) MarkViewed(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.Status != entities.EstimateStatusSent {
		return e, nil
	}
	e.Status = entities.EstimateStatusViewed
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, e)
}

// Decide records the client's portal decision.
func (u *EstimateUseCase) Decide(ctx context.Context, id string, accepted bool) (entities.Estimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.Status == entities.EstimateStatusConverted {
		return entities.Estimate{}, ErrEstimateConverted
	}
	if accepted {
		e.Status = entities.EstimateStatusAccepted
	} else {
		e.Status = entities.EstimateStatusRejected
	}
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, e)
}

func (u *EstimateUseCase) load(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func validateItems(items []entities.EstimateItem) error {
	if len(items) == 0 {
		return ErrInvalidEstimateItems
	}
	for _, it := range items {
		if it.Quantity <= 0 || it.BaseCost < 0 || it.SellPrice < 0 {
			return ErrInvalidEstimateItems
		}
	}
	return nil
}

// newDocumentNumber derives a short display number from the entity id.
// Numbers are immutable after creation and unique within a workspace.
func newDocumentNumber(prefix, id string) string {
	frag := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(frag) > 8 {
		frag = frag[:8]
	}
	return prefix + "-" + frag
}
