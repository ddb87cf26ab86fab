package interfaces

import (
	"context"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

// IDocumentRenderer produces printable document bytes from domain data,
// decoupled from any browser or print dialog.

type IDocumentRenderer interface {
	RenderEstimatePDF(e entities.Estimate, client entities.Client) ([]byte, error)
	RenderInvoicePDF(inv entities.Invoice, client entities.Client) ([]byte, error)
	RenderEstimateBookXLSX(estimates []entities.Estimate) ([]byte, error)
}

// IDocumentStorage abstracts the object store holding uploaded and generated
// documents.

type IDocumentStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	PresignedURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
