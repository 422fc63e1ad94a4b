package types

import (
	"context"
	"time"
)

type User struct {
	ID                     string    `json:"id"`
	Email                  string    `json:"email"`
	FullName               string    `json:"full_name"`
	SubscriptionStatus     string    `json:"subscription_status"`
	QuestionnaireCompleted bool      `json:"questionnaire_completed"`
	OnboardingCompleted    bool      `json:"onboarding_completed"`
	PlatformConnected      bool      `json:"platform_connected"`
	CreatedAt              time.Time `json:"-"`
}

type CreateUserParams struct {
	Email                  string `json:"email"`
	FullName               string `json:"full_name"`
	SubscriptionStatus     string `json:"subscription_status"`
	QuestionnaireCompleted bool   `json:"questionnaire_completed"`
	OnboardingCompleted    bool   `json:"onboarding_completed"`
	PlatformConnected      bool   `json:"platform_connected"`
}

type GoogleUserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UserDirectory is the user-management backend the callback provisions into.
type UserDirectory interface {
	// FindUsersByEmail returns matches in the backend's own order.
	FindUsersByEmail(ctx context.Context, email string) ([]User, error)
	CreateUser(ctx context.Context, params CreateUserParams) (*User, error)
	GenerateSessionToken(ctx context.Context, userID string) (string, error)
}
