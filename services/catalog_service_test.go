package services

import (
	"context"
	"testing"

	"pos-backend/entity"
	"pos-backend/pkg/testdb"
	"pos-backend/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestProductService_CreateAppliesDefaults(t *testing.T) {
	svc := NewProductService(repository.NewProductRepository(testdb.New(t)))

	p, err := svc.Create(context.Background(), &ProductInput{Name: strPtr("Burger")})
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(entity.DefaultPrice))
	assert.Equal(t, entity.DefaultProductQuantity, p.Quantity)
	assert.Equal(t, "", p.Description)

	// explicit zero is kept, not replaced by the default
	zero := decimal.Zero
	p, err = svc.Create(context.Background(), &ProductInput{Name: strPtr("Water"), Price: &zero, Quantity: intPtr(0)})
	require.NoError(t, err)
	assert.True(t, p.Price.IsZero())
	assert.Equal(t, 0, p.Quantity)
}

func TestProductService_Validation(t *testing.T) {
	svc := NewProductService(repository.NewProductRepository(testdb.New(t)))
	ctx := context.Background()

	_, err := svc.Create(ctx, &ProductInput{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, &ProductInput{Name: strPtr("  ")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, &ProductInput{Name: strPtr("x"), Price: price("-0.01")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, &ProductInput{Name: strPtr("x"), Quantity: intPtr(-1)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, &ProductInput{Name: strPtr("x"), Price: price("12.999")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProductService_UpdateAndDelete(t *testing.T) {
	svc := NewProductService(repository.NewProductRepository(testdb.New(t)))
	ctx := context.Background()

	p, err := svc.Create(ctx, &ProductInput{Name: strPtr("Burger"), Description: strPtr("beef")})
	require.NoError(t, err)

	up, err := svc.Update(ctx, p.ID, &ProductInput{Price: price("9.99"), Image: strPtr("burger.png")})
	require.NoError(t, err)
	assert.Equal(t, "Burger", up.Name)
	assert.Equal(t, "beef", up.Description)
	assert.Equal(t, "burger.png", up.Image)
	assert.True(t, up.Price.Equal(decimal.RequireFromString("9.99")))

	_, err = svc.Update(ctx, "1", &ProductInput{})
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = svc.Update(ctx, entity.NewID(), &ProductInput{})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, p.ID), ErrNotFound)
}

func TestMenuService_CRUD(t *testing.T) {
	svc := NewMenuService(repository.NewMenuRepository(testdb.New(t)))
	ctx := context.Background()

	m, err := svc.Create(ctx, &MenuInput{Name: strPtr("Menu 1"), Description: strPtr("Description")})
	require.NoError(t, err)
	assert.Equal(t, []string{}, m.Products)
	assert.True(t, m.Price.Equal(entity.DefaultPrice))

	pid := entity.NewID()
	m, err = svc.Update(ctx, m.ID, &MenuInput{Name: strPtr("Menu 1 changed"), Products: []string{pid}})
	require.NoError(t, err)

	got, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Menu 1 changed", got.Name)
	assert.Equal(t, "Description", got.Description)
	assert.Equal(t, []string{pid}, got.Products)

	_, err = svc.Update(ctx, m.ID, &MenuInput{Products: []string{"1"}})
	assert.ErrorIs(t, err, ErrInvalidID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, m.ID))
	_, err = svc.Get(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMenuService_CreateRequiresName(t *testing.T) {
	svc := NewMenuService(repository.NewMenuRepository(testdb.New(t)))
	_, err := svc.Create(context.Background(), &MenuInput{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMenuService_PriceMustFitColumn(t *testing.T) {
	svc := NewMenuService(repository.NewMenuRepository(testdb.New(t)))
	ctx := context.Background()

	_, err := svc.Create(ctx, &MenuInput{Name: strPtr("Lunch"), Price: price("9.995")})
	assert.ErrorIs(t, err, ErrValidation)

	m, err := svc.Create(ctx, &MenuInput{Name: strPtr("Lunch"), Price: price("9.990")})
	require.NoError(t, err)
	assert.True(t, price("9.99").Equal(m.Price))
}
