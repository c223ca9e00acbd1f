package services

import "pos-backend/entity"

// OrderScope is the status filter applied to order listings.
type OrderScope struct {
	Statuses []entity.OrderStatus
}

// ScopeForRole derives the listing filter from the caller's role. Roles without a
// scope get ok=false and see nothing.
func ScopeForRole(role entity.Role) (OrderScope, bool) {
	switch role {
	case entity.RolePreparer:
		return OrderScope{Statuses: []entity.OrderStatus{entity.OrderStatusPrepared}}, true
	case entity.RoleAdmin:
		return OrderScope{Statuses: []entity.OrderStatus{
			entity.OrderStatusFinished,
			entity.OrderStatusDelivered,
			entity.OrderStatusNew,
		}}, true
	}
	return OrderScope{}, false
}

// Allows reports whether an order in status s falls inside the scope.
func (sc OrderScope) Allows(s entity.OrderStatus) bool {
	for _, st := range sc.Statuses {
		if st == s {
			return true
		}
	}
	return false
}
