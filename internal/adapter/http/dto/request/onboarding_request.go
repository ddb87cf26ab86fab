package request

import "github.com/SGK112/crm-backend/internal/domain/entities"

// OnboardingProfileRequest carries the profile fields collected by the
// wizard. All fields are optional; empty values never erase stored data.
type OnboardingProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
}

func (r OnboardingProfileRequest) ToProfile() entities.UserProfile {
	return entities.UserProfile{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Company:   r.Company,
		Phone:     r.Phone,
	}
}
