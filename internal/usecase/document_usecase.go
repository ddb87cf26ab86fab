package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvalidInvoiceID   = errors.New("invalid invoice id")
	ErrInvalidDocumentKey = errors.New("invalid document key")
	ErrEmptyDocument      = errors.New("empty document")
)

// IDocumentUseCase renders estimate/invoice documents as bytes and manages
// stored document objects. Rendering is pure data-in/bytes-out; nothing here
// depends on a browser or print dialog.

type IDocumentUseCase interface {
	EstimatePDF(ctx context.Context, estimateID string) ([]byte, error)
	InvoicePDF(ctx context.Context, invoiceID string) ([]byte, error)
	EstimateBookXLSX(ctx context.Context, workspaceID string) ([]byte, error)
	Store(ctx context.Context, name, contentType string, data []byte) (string, error)
	DownloadURL(ctx context.Context, key string) (string, error)
}

type DocumentUseCase struct {
	estimates interfaces.IEstimateRepository
	invoices  interfaces.IInvoiceRepository
	clients   interfaces.IClientRepository
	renderer  interfaces.IDocumentRenderer
	storage   interfaces.IDocumentStorage
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	estimates interfaces.IEstimateRepository,
	invoices interfaces.IInvoiceRepository,
	clients interfaces.IClientRepository,
	renderer interfaces.IDocumentRenderer,
	storage interfaces.IDocumentStorage,
) *DocumentUseCase {
	return &DocumentUseCase{estimates: estimates, invoices: invoices, clients: clients, renderer: renderer, storage: storage}
}

func (u *DocumentUseCase) EstimatePDF(ctx context.Context, estimateID string) ([]byte, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}
	e, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	if e.ID == "" {
		return nil, ErrEstimateNotFound
	}
	client, err := u.clientFor(ctx, e.ClientID)
	if err != nil {
		return nil, err
	}
	return u.renderer.RenderEstimatePDF(e, client)
}

func (u *DocumentUseCase) InvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.ID == "" {
		return nil, ErrInvoiceNotFound
	}
	client, err := u.clientFor(ctx, inv.ClientID)
	if err != nil {
		return nil, err
	}
	return u.renderer.RenderInvoicePDF(inv, client)
}

func (u *DocumentUseCase) EstimateBookXLSX(ctx context.Context, workspaceID string) ([]byte, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}
	estimates, err := u.estimates.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return u.renderer.RenderEstimateBookXLSX(estimates)
}

// Store uploads a document and returns its storage key.
func (u *DocumentUseCase) Store(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "document"
	}
	key := fmt.Sprintf("documents/%d-%s", time.Now().UTC().UnixNano(), name)
	return u.storage.Upload(ctx, key, contentType, data)
}

func (u *DocumentUseCase) DownloadURL(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrInvalidDocumentKey
	}
	return u.storage.PresignedURL(ctx, key)
}

func (u *DocumentUseCase) clientFor(ctx context.Context, clientID string) (entities.Client, error) {
	if clientID == "" {
		return entities.Client{}, nil
	}
	c, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}
