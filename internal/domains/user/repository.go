package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the user data access contract
type Repository interface {
	// Create creates a new account
	// Returns ErrEmailAlreadyExists when the email is taken
	Create(ctx context.Context, user *User) error

	// FindByID finds an account by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds an account by email (login path)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Exists checks account presence without loading the row
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// UpdateRole changes an account role
	UpdateRole(ctx context.Context, id uuid.UUID, role Role) error

	// UpdateLastLogin stamps last_login_at
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
