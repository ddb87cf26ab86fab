package entities

import "testing"

func TestOnboardingState_CanAdvance(t *testing.T) {
	t.Run("profile step gated on required fields", func(t *testing.T) {
		s := OnboardingState{Step: OnboardingStepProfile}
		if s.CanAdvance() {
			t.Fatalf("expected empty profile to block advance")
		}

		s.Profile = UserProfile{FirstName: "Ann", LastName: "Lee"}
		if s.CanAdvance() {
			t.Fatalf("expected missing company to block advance")
		}

		s.Profile.Company = "Acme"
		if !s.CanAdvance() {
			t.Fatalf("expected complete profile to advance")
		}
	})

	t.Run("middle steps are ungated", func(t *testing.T) {
		s := OnboardingState{Step: OnboardingStepTeam}
		if !s.CanAdvance() {
			t.Fatalf("expected team step to advance")
		}
	})

	t.Run("last step cannot advance", func(t *testing.T) {
		s := OnboardingState{Step: OnboardingStepProject}
		if s.CanAdvance() {
			t.Fatalf("expected last step to block advance")
		}
	})
}

func TestOnboardingState_Next(t *testing.T) {
	t.Run("advances by exactly one step", func(t *testing.T) {
		s := OnboardingState{Step: OnboardingStepTeam}
		if got := s.Next().Step; got != OnboardingStepClients {
			t.Fatalf("expected clients step, got %v", got)
		}
	})

	t.Run("gated step stays put", func(t *testing.T) {
		s := OnboardingState{Step: OnboardingStepProfile}
		if got := s.Next(); got != s {
			t.Fatalf("expected state unchanged, got %+v", got)
		}
	})
}

func TestOnboardingState_Previous(t *testing.T) {
	s := OnboardingState{Step: OnboardingStepClients}
	if got := s.Previous().Step; got != OnboardingStepTeam {
		t.Fatalf("expected team step, got %v", got)
	}

	s = OnboardingState{Step: OnboardingStepProfile}
	if got := s.Previous().Step; got != OnboardingStepProfile {
		t.Fatalf("expected floor at first step, got %v", got)
	}
}

func TestOnboardingState_Skip(t *testing.T) {
	t.Run("skips the profile gate", func(t *testing.T) {
		s := OnboardingState{Step: OnboardingStepProfile}
		if got := s.Skip().Step; got != OnboardingStepTeam {
			t.Fatalf("expected team step, got %v", got)
		}
	})

	t.Run("skipping the last step completes", func(t *testing.T) {
		s := OnboardingState{Step: OnboardingStepProject}
		got := s.Skip()
		if !got.Completed {
			t.Fatalf("expected completed")
		}
		if got.Step != OnboardingStepProject {
			t.Fatalf("expected step untouched, got %v", got.Step)
		}
	})
}

func TestOnboardingStep_Name(t *testing.T) {
	cases := map[OnboardingStep]string{
		OnboardingStepProfile: "profile",
		OnboardingStepTeam:    "team",
		OnboardingStepClients: "clients",
		OnboardingStepProject: "project",
		OnboardingStep(99):    "unknown",
	}
	for step, want := range cases {
		if got := step.Name(); got != want {
			t.Fatalf("Name(%d) = %q, want %q", step, got, want)
		}
	}
}
