package request

import "github.com/SGK112/crm-backend/internal/usecase"

// ClientRequest is the sparse client-create payload: only first and last
// name are required, everything else is stored only when provided.
type ClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Company:   r.Company,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

// ClientFromQueryRequest creates a client straight from an unmatched picker
// query string.
type ClientFromQueryRequest struct {
	Query string `json:"query" binding:"required"`
}
