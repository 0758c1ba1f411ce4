package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"greenmarket-backend/internal/domains/user"
	"greenmarket-backend/pkg/jwt"
)

// bcrypt cost 12: balance between security and login latency
const bcryptCost = 12

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// =====================================================
// REGISTER
// =====================================================

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Build entity
	role := req.Role
	if role == "" {
		role = user.RoleBuyer
	}

	var phone *string
	if req.Phone != "" {
		phone = &req.Phone
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		FullName:     req.FullName,
		Phone:        phone,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Step 4: Persist
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, user.NewEmailAlreadyExistsError(req.Email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user.NewUserDTO(u), nil
}

// =====================================================
// LOGIN
// =====================================================

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find account
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a wrong password so the email cannot be probed
			return nil, user.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Step 3: Verify password (constant-time comparison)
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.NewInvalidCredentialsError()
	}

	// Step 4: Reject disabled accounts
	if !u.IsActive {
		return nil, user.NewAccountDisabledError()
	}

	// Step 5: Issue tokens
	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Step 6: Stamp last login (best effort)
	_ = s.repo.UpdateLastLogin(ctx, u.ID)

	return &user.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user.NewUserDTO(u),
	}, nil
}

// =====================================================
// PROFILE
// =====================================================

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.NewUserNotFoundError()
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user.NewUserDTO(u), nil
}

// =====================================================
// ADMIN
// =====================================================

func (s *userService) UpdateUserRole(ctx context.Context, userID uuid.UUID, req user.UpdateRoleRequest) error {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return err
	}

	// Step 2: Apply
	if err := s.repo.UpdateRole(ctx, userID, req.Role); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.NewUserNotFoundError()
		}
		return fmt.Errorf("failed to update role: %w", err)
	}

	return nil
}

// =====================================================
// LOOKUP
// =====================================================

func (s *userService) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, userID)
}
