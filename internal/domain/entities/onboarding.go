package entities

// Onboarding wizard: a linear, non-branching step sequence. Step ordinals
// are stable and persisted; names are only used for display.

type OnboardingStep int

const (
	OnboardingStepProfile OnboardingStep = iota
	OnboardingStepTeam
	OnboardingStepClients
	OnboardingStepProject

	onboardingStepCount
)

var onboardingStepNames = map[OnboardingStep]string{
	OnboardingStepProfile: "profile",
	OnboardingStepTeam:    "team",
	OnboardingStepClients: "clients",
	OnboardingStepProject: "project",
}

func (s OnboardingStep) Name() string {
	if name, ok := onboardingStepNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsLast reports whether the step is the final one in the sequence.
func (s OnboardingStep) IsLast() bool {
	return s >= onboardingStepCount-1
}

// OnboardingState is the wizard position plus the profile collected so far.
type OnboardingState struct {
	Step      OnboardingStep `json:"step"`
	Profile   UserProfile    `json:"profile"`
	Completed bool           `json:"completed"`
}

// CanAdvance gates the Next action. Step 0 is the only step with a hard
// gate: first name, last name and company must all be non-empty. The last
// step cannot advance further.
func (s OnboardingState) CanAdvance() bool {
	if s.Step.IsLast() {
		return false
	}
	if s.Step == OnboardingStepProfile {
		return s.Profile.FirstName != "" && s.Profile.LastName != "" && s.Profile.Company != ""
	}
	return true
}

// Next advances by exactly one step when allowed; otherwise the state is
// returned unchanged.
func (s OnboardingState) Next() OnboardingState {
	if !s.CanAdvance() {
		return s
	}
	s.Step++
	return s
}

// Previous retreats by exactly one step, floored at the first step.
func (s OnboardingState) Previous() OnboardingState {
	if s.Step > 0 {
		s.Step--
	}
	return s
}

// Skip advances past the current step without its gate; skipping the last
// step ends the wizard.
func (s OnboardingState) Skip() OnboardingState {
	if s.Step.IsLast() {
		s.Completed = true
		return s
	}
	s.Step++
	return s
}

// Complete marks the wizard finished. Nothing prevents re-entry; the flag
// records that the user finished at least once.
func (s OnboardingState) Complete() OnboardingState {
	s.Completed = true
	return s
}
