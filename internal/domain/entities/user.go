package entities

import "time"

// UserProfile holds the staff user's identity fields collected during
// onboarding. Updates are PATCH-style: empty inputs leave fields untouched.
type UserProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Phone     string `json:"phone,omitempty"`
}

// User is a staff account. Authentication is external; this service only
// stores the profile and onboarding progress keyed by the token subject.
type User struct {
	ID                  string      `json:"id"`
	WorkspaceID         string      `json:"workspace_id"`
	Email               string      `json:"email,omitempty"`
	Profile             UserProfile `json:"profile"`
	OnboardingStep      int         `json:"onboarding_step"`
	OnboardingCompleted bool        `json:"onboarding_completed"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}
