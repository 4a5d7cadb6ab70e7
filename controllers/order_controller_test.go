package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lankipolo123/styleHive-server/models"
	"github.com/lankipolo123/styleHive-server/repositories"
)

func newOrderTestApp(t *testing.T) (*fiber.App, *repositories.InMemoryOrderStore, *repositories.InMemoryProductStore) {
	t.Helper()

	orders := repositories.NewInMemoryOrderStore()
	products := repositories.NewInMemoryProductStore()
	ctrl := NewOrderController(orders, products)

	app := fiber.New()
	app.Get("/orders", ctrl.GetOrders)
	app.Get("/orders/get/totalsales", ctrl.GetTotalSales)
	app.Get("/orders/get/count", ctrl.GetOrderCount)
	app.Get("/orders/get/userorders/:userid", ctrl.GetUserOrders)
	app.Get("/orders/:id", ctrl.GetOrder)
	app.Post("/orders", ctrl.CreateOrder)
	app.Put("/orders/:id", ctrl.UpdateOrder)
	app.Delete("/orders/:id", ctrl.DeleteOrder)

	return app, orders, products
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestPriceLines(t *testing.T) {
	products := repositories.NewInMemoryProductStore()
	p := models.Product{Name: "Mug", Price: 10}
	require.NoError(t, products.Create(&p))

	items := []models.OrderItem{
		{ProductID: p.ID, Quantity: 2},
		{ProductID: 999, Quantity: 5},
	}

	lines, total := priceLines(products, items)
	require.Len(t, lines, 2)

	assert.True(t, lines[0].Resolved)
	assert.Equal(t, 20.0, lines[0].Amount)
	assert.False(t, lines[1].Resolved)
	assert.Equal(t, 0.0, lines[1].Amount)
	assert.Equal(t, 20.0, total)
}

func TestCreateOrderComputesTotal(t *testing.T) {
	app, orders, products := newOrderTestApp(t)

	p := models.Product{Name: "Scarf", Price: 10}
	require.NoError(t, products.Create(&p))

	resp := postJSON(t, app, "/orders", fiber.Map{
		"orderItems":       []fiber.Map{{"product": p.ID, "quantity": 2}},
		"shippingAddress1": "1 Main St",
		"city":             "Springfield",
		"zip":              "12345",
		"country":          "US",
		"phone":            "555-0100",
		"user":             1,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, 20.0, created.TotalPrice)
	assert.Equal(t, models.OrderStatusPending, created.Status)
	require.Len(t, created.Items, 1)
	assert.Equal(t, p.ID, created.Items[0].ProductID)
	assert.Equal(t, 2, created.Items[0].Quantity)

	stored, err := orders.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, stored.TotalPrice)
}

func TestCreateOrderUnknownProductContributesZero(t *testing.T) {
	app, _, products := newOrderTestApp(t)

	p := models.Product{Name: "Hat", Price: 7.5}
	require.NoError(t, products.Create(&p))

	resp := postJSON(t, app, "/orders", fiber.Map{
		"orderItems": []fiber.Map{
			{"product": p.ID, "quantity": 2},
			{"product": 12345, "quantity": 3},
		},
		"shippingAddress1": "1 Main St",
		"city":             "Springfield",
		"zip":              "12345",
		"country":          "US",
		"phone":            "555-0100",
		"user":             1,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, 15.0, created.TotalPrice)
	assert.Len(t, created.Items, 2)
}

func TestDeleteOrderCascades(t *testing.T) {
	app, orders, products := newOrderTestApp(t)

	p := models.Product{Name: "Socks", Price: 3}
	require.NoError(t, products.Create(&p))

	order := models.Order{
		Items: []models.OrderItem{
			{ProductID: p.ID, Quantity: 1},
			{ProductID: p.ID, Quantity: 2},
		},
		TotalPrice: 9,
	}
	require.NoError(t, orders.Create(&order))

	req := httptest.NewRequest(http.MethodDelete, "/orders/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, err = orders.Get(order.ID)
	assert.Error(t, err)
}

func TestDeleteOrderNotFound(t *testing.T) {
	app, _, _ := newOrderTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/orders/999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateOrderStatusOnly(t *testing.T) {
	app, orders, _ := newOrderTestApp(t)

	order := models.Order{Status: models.OrderStatusPending, TotalPrice: 50}
	require.NoError(t, orders.Create(&order))

	payload, _ := json.Marshal(fiber.Map{"status": "Shipped", "totalPrice": 9999})
	req := httptest.NewRequest(http.MethodPut, "/orders/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shipped", stored.Status)
	assert.Equal(t, 50.0, stored.TotalPrice)
}

// A PUT without a status keeps the stored one.
func TestUpdateOrderEmptyStatusKeepsStored(t *testing.T) {
	app, orders, _ := newOrderTestApp(t)

	order := models.Order{Status: "Shipped", TotalPrice: 12}
	require.NoError(t, orders.Create(&order))

	payload, _ := json.Marshal(fiber.Map{})
	req := httptest.NewRequest(http.MethodPut, "/orders/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shipped", stored.Status)
}

func TestTotalSalesAndCount(t *testing.T) {
	app, orders, _ := newOrderTestApp(t)

	require.NoError(t, orders.Create(&models.Order{TotalPrice: 20}))
	require.NoError(t, orders.Create(&models.Order{TotalPrice: 35}))

	req := httptest.NewRequest(http.MethodGet, "/orders/get/totalsales", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var sales struct {
		TotalSales float64 `json:"totalsales"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sales))
	assert.Equal(t, 55.0, sales.TotalSales)

	req = httptest.NewRequest(http.MethodGet, "/orders/get/count", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)

	var count struct {
		OrderCount int64 `json:"orderCount"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&count))
	assert.Equal(t, int64(2), count.OrderCount)
}

func TestGetUserOrders(t *testing.T) {
	app, orders, _ := newOrderTestApp(t)

	require.NoError(t, orders.Create(&models.Order{UserID: 1, TotalPrice: 10}))
	require.NoError(t, orders.Create(&models.Order{UserID: 2, TotalPrice: 20}))
	require.NoError(t, orders.Create(&models.Order{UserID: 1, TotalPrice: 30}))

	req := httptest.NewRequest(http.MethodGet, "/orders/get/userorders/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list []models.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 2)
	for _, o := range list {
		assert.Equal(t, uint(1), o.UserID)
	}
}
