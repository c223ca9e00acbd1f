package routes

import (
	"net/http"
	"testing"

	"pos-backend/configs"
	"pos-backend/entity"
	"pos-backend/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cart() map[string]any {
	return map[string]any{
		"menus": []map[string]any{{"_id": "m1", "price": 10}},
		"items": []map[string]any{{"_id": "i1", "price": 3}},
	}
}

func (s *server) placeOrder() entity.Order {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/orders", cart(), entity.RoleUser)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	return decode[entity.Order](s.t, w)
}

func TestCreateOrder(t *testing.T) {
	s := newServer(t)

	o := s.placeOrder()
	assert.Len(t, o.ID, 24)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, entity.OrderStatusNew, o.Status)
	assert.NotEmpty(t, o.UserID)

	w := s.do(http.MethodGet, "/api/orders/"+o.ID+"/items", nil, entity.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	items := decode[[]entity.OrderItem](t, w)
	require.Len(t, items, 2)

	assert.Equal(t, o.Items[0], items[0].ID)
	assert.Equal(t, entity.ItemKindMenu, items[0].Type)
	assert.Equal(t, "m1", items[0].Item)
	assert.True(t, decimal.NewFromInt(10).Equal(items[0].Price))

	assert.Equal(t, entity.ItemKindProduct, items[1].Type)
	assert.Equal(t, "i1", items[1].Item)
	assert.True(t, decimal.NewFromInt(3).Equal(items[1].Price))
}

func TestCreateOrder_BadRequests(t *testing.T) {
	s := newServer(t)

	cases := map[string]any{
		"empty object":   map[string]any{},
		"empty lists":    map[string]any{"menus": []any{}, "items": []any{}},
		"missing price":  map[string]any{"items": []map[string]any{{"_id": "i1"}}},
		"negative price": map[string]any{"items": []map[string]any{{"_id": "i1", "price": -1}}},
		"sub-cent price": map[string]any{"menus": []map[string]any{{"_id": "m1", "price": 12.999}}},
		"not json":       "{oops",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/api/orders", body, entity.RoleUser)
			assertError(t, w, http.StatusBadRequest, "Please fill in the required fields")
		})
	}

	var n int64
	require.NoError(t, s.db.Model(&entity.OrderItem{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateOrder_StoreFailureLeavesNoItems(t *testing.T) {
	s := newServer(t)
	testdb.FailCreatesOn(t, s.db, "orders")

	w := s.do(http.MethodPost, "/api/orders", cart(), entity.RoleUser)
	assertError(t, w, http.StatusInternalServerError, "An error occurred while create the order")

	var n int64
	require.NoError(t, s.db.Model(&entity.OrderItem{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateOrder_CatalogPrices(t *testing.T) {
	s := newServer(t, func(c *configs.Config) { c.PriceSource = "catalog" })

	w := s.do(http.MethodPost, "/api/products", map[string]any{"name": "Fries", "price": 2.5}, entity.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	fries := decode[entity.Product](t, w)

	// the submitted price is ignored in catalog mode
	w = s.do(http.MethodPost, "/api/orders", map[string]any{
		"items": []map[string]any{{"_id": fries.ID, "price": 99}},
	}, entity.RoleUser)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	o := decode[entity.Order](t, w)

	w = s.do(http.MethodGet, "/api/orders/"+o.ID+"/items", nil, entity.RoleAdmin)
	items := decode[[]entity.OrderItem](t, w)
	require.Len(t, items, 1)
	assert.True(t, decimal.RequireFromString("2.5").Equal(items[0].Price))

	w = s.do(http.MethodPost, "/api/orders", map[string]any{
		"menus": []map[string]any{{"_id": entity.NewID()}},
	}, entity.RoleUser)
	assertError(t, w, http.StatusNotFound, "Menu not find")

	w = s.do(http.MethodPost, "/api/orders", map[string]any{
		"items": []map[string]any{{"_id": "i1"}},
	}, entity.RoleUser)
	assertError(t, w, http.StatusBadRequest, "ID not valid")
}

func TestGetOrder(t *testing.T) {
	s := newServer(t)
	o := s.placeOrder()

	w := s.do(http.MethodGet, "/api/orders/"+o.ID, nil, entity.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[entity.Order](t, w)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, o.Items, got.Items)

	w = s.do(http.MethodGet, "/api/orders/1", nil, entity.RoleAdmin)
	assertError(t, w, http.StatusBadRequest, "ID not valid")

	w = s.do(http.MethodGet, "/api/orders/"+entity.NewID(), nil, entity.RoleAdmin)
	assertError(t, w, http.StatusNotFound, "Order not find")

	w = s.do(http.MethodGet, "/api/orders/"+entity.NewID()+"/items", nil, entity.RoleAdmin)
	assertError(t, w, http.StatusNotFound, "Order not find")
}

func TestTransitions(t *testing.T) {
	s := newServer(t)
	o := s.placeOrder()

	steps := []struct {
		action string
		role   entity.Role
		want   entity.OrderStatus
	}{
		{"prepare", entity.RoleAdmin, entity.OrderStatusPrepared},
		{"finish", entity.RolePreparer, entity.OrderStatusFinished},
		{"deliver", entity.RolePreparer, entity.OrderStatusDelivered},
	}
	for _, st := range steps {
		w := s.do(http.MethodPut, "/api/orders/"+o.ID+"/"+st.action, nil, st.role)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decode[entity.Order](t, w)
		assert.Equal(t, st.want, got.Status)
		assert.Equal(t, o.Items, got.Items, "items are fixed at creation")
	}
}

func TestTransitions_Unconditional(t *testing.T) {
	s := newServer(t)
	o := s.placeOrder()

	w := s.do(http.MethodPut, "/api/orders/"+o.ID+"/finish", nil, entity.RolePreparer)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, entity.OrderStatusFinished, decode[entity.Order](t, w).Status)
}

func TestTransitions_Errors(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPut, "/api/orders/1/finish", nil, entity.RolePreparer)
	assertError(t, w, http.StatusBadRequest, "ID not valid")

	w = s.do(http.MethodPut, "/api/orders/"+entity.NewID()+"/deliver", nil, entity.RolePreparer)
	assertError(t, w, http.StatusNotFound, "Order not find")

	o := s.placeOrder()
	testdb.Break(t, s.db)
	w = s.do(http.MethodPut, "/api/orders/"+o.ID+"/prepare", nil, entity.RoleAdmin)
	assertError(t, w, http.StatusInternalServerError, "An error occurred while preparing the order")
}

func TestTransitions_Strict(t *testing.T) {
	s := newServer(t, func(c *configs.Config) { c.StrictTransitions = true })
	o := s.placeOrder()

	w := s.do(http.MethodPut, "/api/orders/"+o.ID+"/finish", nil, entity.RolePreparer)
	assertError(t, w, http.StatusConflict, "Cannot finish an order with status new")

	w = s.do(http.MethodPut, "/api/orders/"+o.ID+"/prepare", nil, entity.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPut, "/api/orders/"+o.ID+"/prepare", nil, entity.RoleAdmin)
	assertError(t, w, http.StatusConflict, "Cannot prepare an order with status prepared")

	w = s.do(http.MethodPut, "/api/orders/"+o.ID+"/deliver", nil, entity.RolePreparer)
	assertError(t, w, http.StatusConflict, "Cannot deliver an order with status prepared")
}

func TestListOrders_ScopedByRole(t *testing.T) {
	s := newServer(t)
	fresh := s.placeOrder()
	prepared := s.placeOrder()
	finished := s.placeOrder()

	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/orders/"+prepared.ID+"/prepare", nil, entity.RoleAdmin).Code)
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/orders/"+finished.ID+"/finish", nil, entity.RolePreparer).Code)

	ids := func(role entity.Role) []string {
		w := s.do(http.MethodGet, "/api/orders", nil, role)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var out []string
		for _, o := range decode[[]entity.Order](t, w) {
			out = append(out, o.ID)
		}
		return out
	}

	assert.Equal(t, []string{prepared.ID}, ids(entity.RolePreparer))
	assert.ElementsMatch(t, []string{fresh.ID, finished.ID}, ids(entity.RoleAdmin))
}

func TestListOrders_StoreDown(t *testing.T) {
	s := newServer(t)
	testdb.Break(t, s.db)

	w := s.do(http.MethodGet, "/api/orders", nil, entity.RoleAdmin)
	assertError(t, w, http.StatusInternalServerError, "An error occurred while fetching the orders")

	w = s.do(http.MethodGet, "/api/orders/"+entity.NewID(), nil, entity.RoleAdmin)
	assertError(t, w, http.StatusInternalServerError, "An error occurred while fetching the order")
}
