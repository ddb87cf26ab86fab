package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"
)

var (
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrOnboardingStepGated = errors.New("onboarding step requirements not met")
	ErrIncompleteProfile   = errors.New("first name, last name and company are required")
)

// IOnboardingUseCase drives the linear onboarding wizard. The state lives on
// the user record; nothing server-side prevents re-entering a completed
// wizard.

type IOnboardingUseCase interface {
	State(ctx context.Context, userID string) (entities.OnboardingState, error)
	Next(ctx context.Context, userID string, profile entities.UserProfile) (entities.OnboardingState, error)
	Previous(ctx context.Context, userID string) (entities.OnboardingState, error)
	Skip(ctx context.Context, userID string) (entities.OnboardingState, error)
	Complete(ctx context.Context, userID string, profile entities.UserProfile) (entities.OnboardingState, error)
}

type OnboardingUseCase struct {
	users interfaces.IUserRepository
}

var _ IOnboardingUseCase = (*OnboardingUseCase)(nil)

func NewOnboardingUseCase(users interfaces.IUserRepository) *OnboardingUseCase {
	return &OnboardingUseCase{users: users}
}

func (u *OnboardingUseCase) State(ctx context.Context, userID string) (entities.OnboardingState, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return entities.OnboardingState{}, err
	}
	return stateOf(user), nil
}

// Next merges any profile fields sent with the step and advances by exactly
// one. Step 0 refuses to advance until first name, last name and company are
// all non-empty.
func (u *OnboardingUseCase) Next(ctx context.Context, userID string, profile entities.UserProfile) (entities.OnboardingState, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return entities.OnboardingState{}, err
	}
	user.Profile = mergeProfile(user.Profile, profile)

	state := stateOf(user)
	if !state.CanAdvance() {
		return state, ErrOnboardingStepGated
	}
	state = state.Next()
	return u.saveState(ctx, user, state)
}

func (u *OnboardingUseCase) Previous(ctx context.Context, userID string) (entities.OnboardingState, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return entities.OnboardingState{}, err
	}
	state := stateOf(user).Previous()
	return u.saveState(ctx, user, state)
}

func (u *OnboardingUseCase) Skip(ctx context.Context, userID string) (entities.OnboardingState, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return entities.OnboardingState{}, err
	}
	state := stateOf(user).Skip()
	return u.saveState(ctx, user, state)
}

// Complete persists the profile PATCH-style and flags the wizard finished.
func (u *OnboardingUseCase) Complete(ctx context.Context, userID string, profile entities.UserProfile) (entities.OnboardingState, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return entities.OnboardingState{}, err
	}
	user.Profile = mergeProfile(user.Profile, profile)
	if user.Profile.FirstName == "" || user.Profile.LastName == "" || user.Profile.Company == "" {
		return stateOf(user), ErrIncompleteProfile
	}
	state := stateOf(user).Complete()
	return u.saveState(ctx, user, state)
}

func (u *OnboardingUseCase) loadUser(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrInvalidUserID
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		// First touch: the wizard starts at step 0 for a fresh user.
		now := time.Now().UTC()
		user = entities.User{ID: userID, CreatedAt: now, UpdatedAt: now}
	}
	return user, nil
}

func (u *OnboardingUseCase) saveState(ctx context.Context, user entities.User, state entities.OnboardingState) (entities.OnboardingState, error) {
	user.OnboardingStep = int(state.Step)
	user.OnboardingCompleted = state.Completed
	user.Profile = state.Profile
	user.UpdatedAt = time.Now().UTC()
	saved, err := u.users.Save(ctx, user)
	if err != nil {
		return entities.OnboardingState{}, err
	}
	return stateOf(saved), nil
}

func stateOf(user entities.User) entities.OnboardingState {
	return entities.OnboardingState{
		Step:      entities.OnboardingStep(user.OnboardingStep),
		Profile:   user.Profile,
		Completed: user.OnboardingCompleted,
	}
}

// mergeProfile applies PATCH semantics: empty incoming fields leave the
// stored value untouched.
func mergeProfile(current, incoming entities.UserProfile) entities.UserProfile {
	if v := strings.TrimSpace(incoming.FirstName); v != "" {
		current.FirstName = v
	}
	if v := strings.TrimSpace(incoming.LastName); v != "" {
		current.LastName = v
	}
	if v := strings.TrimSpace(incoming.Company); v != "" {
		current.Company = v
	}
	if v := strings.TrimSpace(incoming.Phone); v != "" {
		current.Phone = v
	}
	return current
}
