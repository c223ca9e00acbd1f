// services/menu_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"pos-backend/entity"
	"pos-backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Products    []string         `json:"products"`
	Price       *decimal.Decimal `json:"price"`
}

func (in *MenuInput) validate(creating bool) error {
	if creating && in.Name == nil {
		return ErrValidation
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return ErrValidation
	}
	if in.Price != nil && !entity.ValidPrice(*in.Price) {
		return ErrValidation
	}
	for _, id := range in.Products {
		if !entity.IsValidID(id) {
			return ErrInvalidID
		}
	}
	return nil
}

func (in *MenuInput) apply(m *entity.Menu) {
	if in.Name != nil {
		m.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Products != nil {
		m.Products = append([]string{}, in.Products...)
	}
	if in.Price != nil {
		m.Price = *in.Price
	}
}

func (s *MenuService) List(ctx context.Context) ([]entity.Menu, error) {
	menus, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, storeErr("list menus", err)
	}
	return menus, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*entity.Menu, error) {
	if !entity.IsValidID(id) {
		return nil, ErrInvalidID
	}
	m, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get menu", err)
	}
	return m, nil
}

func (s *MenuService) Create(ctx context.Context, in *MenuInput) (*entity.Menu, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}
	m := &entity.Menu{Price: entity.DefaultPrice, Products: []string{}}
	in.apply(m)
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, storeErr("create menu", err)
	}
	return m, nil
}

func (s *MenuService) Update(ctx context.Context, id string, in *MenuInput) (*entity.Menu, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(false); err != nil {
		return nil, err
	}
	in.apply(m)
	if err := s.Repo.Save(ctx, m); err != nil {
		return nil, storeErr("save menu", err)
	}
	return m, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr("delete menu", err)
	}
	return nil
}
