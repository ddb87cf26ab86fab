package response

import "github.com/SGK112/crm-backend/internal/domain/entities"

type OnboardingStateResponse struct {
	Step       int                  `json:"step"`
	StepName   string               `json:"step_name"`
	Completed  bool                 `json:"completed"`
	CanAdvance bool                 `json:"can_advance"`
	Profile    entities.UserProfile `json:"profile"`
}

func FromOnboardingState(s entities.OnboardingState) OnboardingStateResponse {
	return OnboardingStateResponse{
		Step:       int(s.Step),
		StepName:   s.Step.Name(),
		Completed:  s.Completed,
		CanAdvance: s.CanAdvance(),
		Profile:    s.Profile,
	}
}
