package services

import (
	"testing"

	"pos-backend/entity"

	"github.com/stretchr/testify/assert"
)

func TestScopeForRole(t *testing.T) {
	sc, ok := ScopeForRole(entity.RolePreparer)
	assert.True(t, ok)
	assert.Equal(t, []entity.OrderStatus{entity.OrderStatusPrepared}, sc.Statuses)

	sc, ok = ScopeForRole(entity.RoleAdmin)
	assert.True(t, ok)
	assert.ElementsMatch(t, []entity.OrderStatus{
		entity.OrderStatusFinished, entity.OrderStatusDelivered, entity.OrderStatusNew,
	}, sc.Statuses)

	for _, r := range []entity.Role{entity.RoleUser, "", "root"} {
		_, ok := ScopeForRole(r)
		assert.False(t, ok, "role %q", r)
	}
}

func TestScopeForRole_IsDeterministic(t *testing.T) {
	a, _ := ScopeForRole(entity.RoleAdmin)
	b, _ := ScopeForRole(entity.RoleAdmin)
	assert.Equal(t, a, b)

	a.Statuses[0] = "tampered"
	c, _ := ScopeForRole(entity.RoleAdmin)
	assert.Equal(t, entity.OrderStatusFinished, c.Statuses[0])
}

func TestOrderScope_Allows(t *testing.T) {
	sc, _ := ScopeForRole(entity.RoleAdmin)
	assert.True(t, sc.Allows(entity.OrderStatusNew))
	assert.False(t, sc.Allows(entity.OrderStatusPrepared))
}
