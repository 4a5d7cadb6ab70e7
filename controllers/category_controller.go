package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lankipolo123/styleHive-server/models"
	"github.com/lankipolo123/styleHive-server/repositories"
)

// CategoryController handles HTTP operations for categories.
type CategoryController struct {
	Store repositories.CategoryStore
}

func NewCategoryController(store repositories.CategoryStore) *CategoryController {
	return &CategoryController{Store: store}
}

// GetCategories handles GET /categories
func (ctrl *CategoryController) GetCategories(c *fiber.Ctx) error {
	categories, err := ctrl.Store.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	return c.Status(fiber.StatusOK).JSON(categories)
}

// GetCategory handles GET /categories/:id
func (ctrl *CategoryController) GetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid category ID"})
	}

	category, err := ctrl.Store.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "The category with the given ID was not found."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// CreateCategory handles POST /categories
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse request body"})
	}

	if err := ctrl.Store.Create(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "the category cannot be created!"})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory handles PUT /categories/:id
func (ctrl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid category ID"})
	}

	var upd models.CategoryUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse request body"})
	}

	category, err := ctrl.Store.Update(uint(id), upd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "category not found!"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "the category cannot be updated!"})
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// DeleteCategory handles DELETE /categories/:id
func (ctrl *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid category ID"})
	}

	if err := ctrl.Store.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "category not found!"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "the category is deleted!"})
}
