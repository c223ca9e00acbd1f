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

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

// ProductInput carries create/update fields. Nil means "not sent".
type ProductInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Quantity    *int             `json:"quantity"`
}

func (in *ProductInput) validate(creating bool) error {
	if creating && in.Name == nil {
		return ErrValidation
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return ErrValidation
	}
	if in.Price != nil && !entity.ValidPrice(*in.Price) {
		return ErrValidation
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return ErrValidation
	}
	return nil
}

func (in *ProductInput) apply(p *entity.Product) {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	products, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, storeErr("list products", err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	if !entity.IsValidID(id) {
		return nil, ErrInvalidID
	}
	p, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get product", err)
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, in *ProductInput) (*entity.Product, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}
	p := &entity.Product{Price: entity.DefaultPrice, Quantity: entity.DefaultProductQuantity}
	in.apply(p)
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, storeErr("create product", err)
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in *ProductInput) (*entity.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(false); err != nil {
		return nil, err
	}
	in.apply(p)
	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, storeErr("save product", err)
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr("delete product", err)
	}
	return nil
}
