package repository

import (
	"context"

	"pos-backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]entity.Menu, error) {
	menus := []entity.Menu{}
	err := r.DB.WithContext(ctx).Order("created_at ASC, id ASC").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(ctx context.Context, id string) (*entity.Menu, error) {
	var menu entity.Menu
	if err := r.DB.WithContext(ctx).First(&menu, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Create(ctx context.Context, menu *entity.Menu) error {
	return r.DB.WithContext(ctx).Create(menu).Error
}

func (r *MenuRepository) Save(ctx context.Context, menu *entity.Menu) error {
	return r.DB.WithContext(ctx).Save(menu).Error
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&entity.Menu{}, "id = ?", id).Error
}
