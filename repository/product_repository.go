package repository

import (
	"context"

	"pos-backend/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	products := []entity.Product{}
	err := r.DB.WithContext(ctx).Order("created_at ASC, id ASC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) Save(ctx context.Context, p *entity.Product) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}
