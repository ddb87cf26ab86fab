package response

import (
	"time"

	"github.com/SGK112/crm-backend/internal/usecase"
)

type PortalSessionResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Client    ClientResponse `json:"client"`
}

func FromPortalSession(s usecase.PortalSession) PortalSessionResponse {
	return PortalSessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		Client:    FromClient(s.Client),
	}
}
