package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the user business logic contract
type Service interface {
	// Authentication
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)

	// Admin
	UpdateUserRole(ctx context.Context, userID uuid.UUID, req UpdateRoleRequest) error

	// Exists checks account presence. Consumed by the verification
	// workflow as its reviewer lookup.
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}
