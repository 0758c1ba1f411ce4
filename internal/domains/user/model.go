package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity shared by buyers, sellers and admins
type User struct {
	// Identity
	ID    uuid.UUID `db:"id" json:"id"`
	Email string    `db:"email" json:"email"`

	// Authentication
	PasswordHash string `db:"password_hash" json:"-"` // Never expose in JSON

	// Profile
	FullName string  `db:"full_name" json:"full_name"`
	Phone    *string `db:"phone" json:"phone,omitempty"`

	// Authorization
	Role     Role `db:"role" json:"role"`
	IsActive bool `db:"is_active" json:"is_active"`

	// Activity
	LastLoginAt *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`

	// Timestamps
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Role enum
type Role string

const (
	RoleBuyer  Role = "buyer"  // Regular customer
	RoleSeller Role = "seller" // Lists products, submits them for verification
	RoleAdmin  Role = "admin"  // Reviews verifications, manages accounts
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{RoleBuyer, RoleSeller, RoleAdmin}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
