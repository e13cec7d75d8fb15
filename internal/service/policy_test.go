package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/markethub/catalog-server/internal/model"
)

func TestPolicy_IsSelfOrAdmin(t *testing.T) {
	p := NewPolicy("admin@example.com")
	selfID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name      string
		principal model.User
		targetID  uuid.UUID
		want      bool
	}{
		{"user on self", model.User{ID: selfID, Role: model.RoleUser}, selfID, true},
		{"user on other", model.User{ID: selfID, Role: model.RoleUser}, otherID, false},
		{"admin on other", model.User{ID: selfID, Role: model.RoleAdmin}, otherID, true},
		{"admin on self", model.User{ID: selfID, Role: model.RoleAdmin}, selfID, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsSelfOrAdmin(tt.principal, tt.targetID))
		})
	}
}

func TestPolicy_IsOwnerOrAdmin(t *testing.T) {
	p := NewPolicy("admin@example.com")
	ownerID := uuid.New()

	assert.True(t, p.IsOwnerOrAdmin(model.User{ID: ownerID, Role: model.RoleUser}, ownerID))
	assert.False(t, p.IsOwnerOrAdmin(model.User{ID: uuid.New(), Role: model.RoleUser}, ownerID))
	assert.True(t, p.IsOwnerOrAdmin(model.User{ID: uuid.New(), Role: model.RoleAdmin}, ownerID))
}

func TestPolicy_CanChangeRole(t *testing.T) {
	p := NewPolicy("admin@example.com")

	assert.False(t, p.CanChangeRole(model.User{Role: model.RoleUser}))
	assert.True(t, p.CanChangeRole(model.User{Role: model.RoleAdmin}))
}

func TestPolicy_IsDefaultAdmin(t *testing.T) {
	p := NewPolicy(" Admin@Example.COM ")

	assert.True(t, p.IsDefaultAdmin(model.User{Email: "admin@example.com"}))
	assert.False(t, p.IsDefaultAdmin(model.User{Email: "other@example.com"}))
}

func TestPolicy_IsDefaultAdmin_Unconfigured(t *testing.T) {
	p := NewPolicy("")

	// Nobody matches when no default admin is configured.
	assert.False(t, p.IsDefaultAdmin(model.User{Email: ""}))
}
