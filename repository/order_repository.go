package repository

import (
	"context"

	"pos-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns orders in creation order. A nil statuses slice means no filter.
func (r *OrderRepository) ListOrders(ctx context.Context, statuses []entity.OrderStatus) ([]entity.Order, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Order{})
	if statuses != nil {
		in := make([]string, 0, len(statuses))
		for _, s := range statuses {
			in = append(in, string(s))
		}
		q = q.Where("status IN ?", in)
	}
	out := []entity.Order{}
	err := q.Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

// SaveOrder writes the whole order back, status included.
func (r *OrderRepository) SaveOrder(ctx context.Context, o *entity.Order) error {
	return r.DB.WithContext(ctx).Save(o).Error
}

// UpdateStatusGuard moves the order from one status to another only if it is still
// in the expected one. Zero rows affected means somebody else got there first.
func (r *OrderRepository) UpdateStatusGuard(ctx context.Context, orderID string, from, to entity.OrderStatus) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(ctx context.Context, ids []string) ([]entity.OrderItem, error) {
	items := []entity.OrderItem{}
	if len(ids) == 0 {
		return items, nil
	}
	err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *OrderRepository) CountOrderItems(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.OrderItem{}).Count(&n).Error
	return n, err
}
