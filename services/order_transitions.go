// services/order_transitions.go
package services

import (
	"context"

	"pos-backend/entity"
)

// predecessor of each reachable status in the fulfillment pipeline
var transitionFrom = map[entity.OrderStatus]entity.OrderStatus{
	entity.OrderStatusPrepared:  entity.OrderStatusNew,
	entity.OrderStatusFinished:  entity.OrderStatusPrepared,
	entity.OrderStatusDelivered: entity.OrderStatusFinished,
}

// CanTransition reports whether the strict pipeline allows from -> to.
func CanTransition(from, to entity.OrderStatus) bool {
	want, ok := transitionFrom[to]
	return ok && want == from
}

// ----- Fulfillment actions -----
func (s *OrderService) Prepare(ctx context.Context, id string) (*entity.Order, error) {
	return s.Transition(ctx, id, entity.OrderStatusPrepared)
}
func (s *OrderService) Finish(ctx context.Context, id string) (*entity.Order, error) {
	return s.Transition(ctx, id, entity.OrderStatusFinished)
}
func (s *OrderService) Deliver(ctx context.Context, id string) (*entity.Order, error) {
	return s.Transition(ctx, id, entity.OrderStatusDelivered)
}

// Transition sets the order status to `to`. Without strict mode the status is
// overwritten whatever it was; with it, only the next stage of the pipeline is
// accepted and the write is guarded against concurrent changes.
func (s *OrderService) Transition(ctx context.Context, id string, to entity.OrderStatus) (*entity.Order, error) {
	if _, ok := transitionFrom[to]; !ok {
		return nil, ErrValidation
	}
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.Strict {
		o.Status = to
		if err := s.Repo.SaveOrder(ctx, o); err != nil {
			return nil, storeErr("save order", err)
		}
		s.Events.Publish(EventStatusChanged, *o)
		return o, nil
	}

	if !CanTransition(o.Status, to) {
		return nil, &TransitionError{From: o.Status, To: to}
	}
	affected, err := s.Repo.UpdateStatusGuard(ctx, o.ID, o.Status, to)
	if err != nil {
		return nil, storeErr("update order status", err)
	}
	if affected == 0 {
		return nil, &TransitionError{From: o.Status, To: to}
	}
	o, err = s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Events.Publish(EventStatusChanged, *o)
	return o, nil
}
