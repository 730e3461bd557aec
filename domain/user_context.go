package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UserContext represents the authenticated user context for requests
type UserContext struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	SessionID string    `json:"session_id"`
}

// IsValid checks if the user context carries a real user ID
func (uc *UserContext) IsValid() bool {
	return uc.UserID != uuid.Nil
}

type contextKey string

const UserContextKey contextKey = "user_context"

// GetUserFromContext extracts the authenticated user from the request context
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found")
	}

	if !user.IsValid() {
		return nil, fmt.Errorf("invalid user context")
	}

	return user, nil
}

// SetUserContext attaches the authenticated user to the request context
func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
