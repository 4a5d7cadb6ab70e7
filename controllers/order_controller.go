package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lankipolo123/styleHive-server/models"
	"github.com/lankipolo123/styleHive-server/repositories"
)

// OrderController handles HTTP operations for orders, including the
// composition workflow that assembles an order from a submitted cart.
type OrderController struct {
	Store    repositories.OrderStore
	Products repositories.ProductStore
}

func NewOrderController(store repositories.OrderStore, products repositories.ProductStore) *OrderController {
	return &OrderController{Store: store, Products: products}
}

// LineTotal is the priced outcome of a single cart line. A line whose
// product reference does not resolve contributes zero to the order total;
// the Resolved flag keeps that degradation visible instead of hiding it in
// a branch.
type LineTotal struct {
	ProductID uint
	Quantity  int
	Resolved  bool
	Amount    float64
}

// priceLines looks up each line's product price. Missing products yield an
// unresolved line with a zero amount.
func priceLines(products repositories.ProductStore, items []models.OrderItem) ([]LineTotal, float64) {
	lines := make([]LineTotal, 0, len(items))
	var total float64
	for _, item := range items {
		line := LineTotal{ProductID: item.ProductID, Quantity: item.Quantity}
		if product, err := products.Get(item.ProductID); err == nil {
			line.Resolved = true
			line.Amount = product.Price * float64(item.Quantity)
		}
		total += line.Amount
		lines = append(lines, line)
	}
	return lines, total
}

type createOrderRequest struct {
	OrderItems []struct {
		ProductID uint `json:"product"`
		Quantity  int  `json:"quantity"`
	} `json:"orderItems"`
	ShippingAddress1 string `json:"shippingAddress1"`
	ShippingAddress2 string `json:"shippingAddress2"`
	City             string `json:"city"`
	Zip              string `json:"zip"`
	Country          string `json:"country"`
	Phone            string `json:"phone"`
	Status           string `json:"status"`
	UserID           uint   `json:"user"`
}

// GetOrders handles GET /orders, newest first.
func (ctrl *OrderController) GetOrders(c *fiber.Ctx) error {
	orders, err := ctrl.Store.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}

// GetOrder handles GET /orders/:id with items, products and categories
// resolved.
func (ctrl *OrderController) GetOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid order ID"})
	}

	order, err := ctrl.Store.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Order not found!"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(order)
}

// CreateOrder handles POST /orders. The cart lines become order items, each
// line is priced through the product store (an unresolvable product counts
// as zero), the totals are summed, and the order is persisted together with
// its items in one transaction.
func (ctrl *OrderController) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse request body"})
	}

	items := make([]models.OrderItem, 0, len(req.OrderItems))
	for _, line := range req.OrderItems {
		items = append(items, models.OrderItem{
			Quantity:  line.Quantity,
			ProductID: line.ProductID,
		})
	}

	_, totalPrice := priceLines(ctrl.Products, items)

	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	order := models.Order{
		Items:            items,
		ShippingAddress1: req.ShippingAddress1,
		ShippingAddress2: req.ShippingAddress2,
		City:             req.City,
		Zip:              req.Zip,
		Country:          req.Country,
		Phone:            req.Phone,
		Status:           status,
		TotalPrice:       totalPrice,
		UserID:           req.UserID,
	}

	if err := ctrl.Store.Create(&order); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// UpdateOrder handles PUT /orders/:id; only the status may change.
func (ctrl *OrderController) UpdateOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid order ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse request body"})
	}

	order, err := ctrl.Store.UpdateStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).SendString("The order cannot be updated!")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(order)
}

// DeleteOrder handles DELETE /orders/:id; the order's items are removed
// with it.
func (ctrl *OrderController) DeleteOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid order ID"})
	}

	if err := ctrl.Store.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Order not found!"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "The order is deleted!"})
}

// GetTotalSales handles GET /orders/get/totalsales
func (ctrl *OrderController) GetTotalSales(c *fiber.Ctx) error {
	total, err := ctrl.Store.TotalSales()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("The order sales cannot be generated")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"totalsales": total})
}

// GetOrderCount handles GET /orders/get/count
func (ctrl *OrderController) GetOrderCount(c *fiber.Ctx) error {
	count, err := ctrl.Store.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"orderCount": count})
}

// GetUserOrders handles GET /orders/get/userorders/:userid
func (ctrl *OrderController) GetUserOrders(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userid")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user ID"})
	}

	orders, err := ctrl.Store.ListByUser(uint(userID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}
