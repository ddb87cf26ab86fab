package response

import (
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

type DocumentUploadResponse struct {
	Key string `json:"key"`
}

type DocumentURLResponse struct {
	URL string `json:"url"`
}

type ContactInquiryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromContactInquiry(i entities.ContactInquiry) ContactInquiryResponse {
	return ContactInquiryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Subject:   i.Subject,
		Message:   i.Message,
		CreatedAt: i.CreatedAt,
	}
}
