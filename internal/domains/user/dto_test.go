package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	base := RegisterRequest{
		Email:    "seller@example.com",
		Password: "Sunflower42",
		FullName: "Alex Chen",
	}

	t.Run("valid with default role", func(t *testing.T) {
		assert.NoError(t, base.Validate())
	})

	t.Run("seller self-registration allowed", func(t *testing.T) {
		req := base
		req.Role = RoleSeller
		assert.NoError(t, req.Validate())
	})

	t.Run("admin self-registration refused", func(t *testing.T) {
		req := base
		req.Role = RoleAdmin
		assert.Error(t, req.Validate())
	})

	t.Run("weak passwords refused", func(t *testing.T) {
		for _, pw := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
			req := base
			req.Password = pw
			assert.Error(t, req.Validate(), pw)
		}
	})

	t.Run("invalid email refused", func(t *testing.T) {
		req := base
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})
}

func TestUpdateRoleRequest_Validate(t *testing.T) {
	assert.NoError(t, UpdateRoleRequest{Role: RoleAdmin}.Validate())
	assert.Error(t, UpdateRoleRequest{Role: Role("superuser")}.Validate())
}

func TestRole_IsValid(t *testing.T) {
	for _, r := range AllRoles() {
		assert.True(t, r.IsValid())
	}
	assert.False(t, Role("").IsValid())
}
