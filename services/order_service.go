package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pos-backend/entity"
	"pos-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceSource decides where a line item's snapshot price comes from.
type PriceSource string

const (
	PriceFromClient  PriceSource = "client"
	PriceFromCatalog PriceSource = "catalog"
)

const (
	EventOrderCreated  = "created"
	EventStatusChanged = "status"
)

// OrderPublisher receives every order creation and status change.
type OrderPublisher interface {
	Publish(event string, order entity.Order)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, entity.Order) {}

type OrderOptions struct {
	Prices            PriceSource
	StrictTransitions bool
	Events            OrderPublisher
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Menus    *repository.MenuRepository
	Products *repository.ProductRepository

	Prices PriceSource
	Strict bool
	Events OrderPublisher
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menus *repository.MenuRepository,
	products *repository.ProductRepository,
	opts OrderOptions,
) *OrderService {
	s := &OrderService{
		DB: db, Repo: repo, Menus: menus, Products: products,
		Prices: opts.Prices, Strict: opts.StrictTransitions, Events: opts.Events,
	}
	if s.Prices == "" {
		s.Prices = PriceFromClient
	}
	if s.Events == nil {
		s.Events = nopPublisher{}
	}
	return s
}

// ----- DTOs from Controller -----

// CartLine is one selection in a submitted cart.
type CartLine struct {
	ID    string           `json:"_id"`
	Price *decimal.Decimal `json:"price"`
}

type CreateOrderReq struct {
	Menus []CartLine `json:"menus"`
	Items []CartLine `json:"items"`
}

// ----- Create -----

// Create materializes the cart into line items and stores the order referencing
// them. Items and order are written in one transaction: a failure anywhere leaves
// nothing behind.
func (s *OrderService) Create(ctx context.Context, userID string, req *CreateOrderReq) (*entity.Order, error) {
	lines, err := s.PlanLines(ctx, req.Menus, req.Items)
	if err != nil {
		return nil, err
	}

	var order entity.Order
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids, err := s.Materialize(tx, lines)
		if err != nil {
			return err
		}
		order = entity.Order{Status: entity.OrderStatusNew, Items: ids, UserID: userID}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return storeErr("create order", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(EventOrderCreated, order)
	return &order, nil
}

// PlanLines validates the cart and prices every selection: menus first, then
// products, each group in submitted order. Nothing is written.
func (s *OrderService) PlanLines(ctx context.Context, menus, items []CartLine) ([]entity.OrderItem, error) {
	if len(menus) == 0 && len(items) == 0 {
		return nil, ErrValidation
	}

	lines := make([]entity.OrderItem, 0, len(menus)+len(items))
	for _, l := range menus {
		price, err := s.linePrice(ctx, entity.ItemKindMenu, l)
		if err != nil {
			return nil, err
		}
		lines = append(lines, entity.OrderItem{Type: entity.ItemKindMenu, Item: strings.TrimSpace(l.ID), Price: price})
	}
	for _, l := range items {
		price, err := s.linePrice(ctx, entity.ItemKindProduct, l)
		if err != nil {
			return nil, err
		}
		lines = append(lines, entity.OrderItem{Type: entity.ItemKindProduct, Item: strings.TrimSpace(l.ID), Price: price})
	}
	return lines, nil
}

// Materialize persists the planned lines one after the other and returns their ids
// in the same order.
func (s *OrderService) Materialize(tx *gorm.DB, lines []entity.OrderItem) ([]string, error) {
	if len(lines) == 0 {
		return nil, ErrValidation
	}
	ids := make([]string, 0, len(lines))
	for i := range lines {
		if err := s.Repo.CreateOrderItem(tx, &lines[i]); err != nil {
			return nil, storeErr("create order item", err)
		}
		ids = append(ids, lines[i].ID)
	}
	return ids, nil
}

func (s *OrderService) linePrice(ctx context.Context, kind entity.ItemKind, l CartLine) (decimal.Decimal, error) {
	ref := strings.TrimSpace(l.ID)
	if ref == "" {
		return decimal.Zero, ErrValidation
	}

	if s.Prices != PriceFromCatalog {
		if l.Price == nil || !entity.ValidPrice(*l.Price) {
			return decimal.Zero, ErrValidation
		}
		return *l.Price, nil
	}

	if !entity.IsValidID(ref) {
		return decimal.Zero, ErrInvalidID
	}
	var (
		price decimal.Decimal
		err   error
	)
	switch kind {
	case entity.ItemKindMenu:
		var m *entity.Menu
		if m, err = s.Menus.FindByID(ctx, ref); err == nil {
			price = m.Price
		}
	default:
		var p *entity.Product
		if p, err = s.Products.FindByID(ctx, ref); err == nil {
			price = p.Price
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, &CatalogMissError{Kind: kind, ID: ref}
	}
	if err != nil {
		return decimal.Zero, storeErr("lookup "+string(kind), err)
	}
	return price, nil
}

// CatalogMissError is returned in catalog pricing mode when a cart line points at
// a menu or product that does not exist.
type CatalogMissError struct {
	Kind entity.ItemKind
	ID   string
}

func (e *CatalogMissError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *CatalogMissError) Unwrap() error { return ErrNotFound }

// ----- Read -----

func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	if !entity.IsValidID(id) {
		return nil, ErrInvalidID
	}
	o, err := s.Repo.GetOrder(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get order", err)
	}
	return o, nil
}

// Items returns the line items of an order in the order they were recorded.
func (s *OrderService) Items(ctx context.Context, id string) ([]entity.OrderItem, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	found, err := s.Repo.GetOrderItems(ctx, o.Items)
	if err != nil {
		return nil, storeErr("get order items", err)
	}
	byID := make(map[string]entity.OrderItem, len(found))
	for _, it := range found {
		byID[it.ID] = it
	}
	out := make([]entity.OrderItem, 0, len(o.Items))
	for _, ref := range o.Items {
		if it, ok := byID[ref]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

// List returns the orders visible to role.
func (s *OrderService) List(ctx context.Context, role entity.Role) ([]entity.Order, error) {
	scope, ok := ScopeForRole(role)
	if !ok {
		return []entity.Order{}, nil
	}
	orders, err := s.Repo.ListOrders(ctx, scope.Statuses)
	if err != nil {
		return nil, storeErr("list orders", err)
	}
	return orders, nil
}
