package controllers

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/lankipolo123/styleHive-server/models"
	"github.com/lankipolo123/styleHive-server/repositories"
)

const maxGalleryImages = 10

// ProductController handles HTTP operations for products, including image
// uploads. Stored files live under UploadDir and are served statically;
// responses carry absolute URLs built from the request's scheme and host.
type ProductController struct {
	Store      repositories.ProductStore
	Categories repositories.CategoryStore
	UploadDir  string
}

func NewProductController(store repositories.ProductStore, categories repositories.CategoryStore, uploadDir string) *ProductController {
	return &ProductController{Store: store, Categories: categories, UploadDir: uploadDir}
}

// GetProducts handles GET /products with an optional ?categories=1,2 filter.
func (ctrl *ProductController) GetProducts(c *fiber.Ctx) error {
	var categoryIDs []uint
	if raw := c.Query("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid category filter"})
			}
			categoryIDs = append(categoryIDs, uint(id))
		}
	}

	products, err := ctrl.Store.List(categoryIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// GetProduct handles GET /products/:id
func (ctrl *ProductController) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Product ID"})
	}

	product, err := ctrl.Store.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// CreateProduct handles POST /products. The request is multipart with a
// single required image field; the category reference must resolve.
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	categoryID, err := strconv.ParseUint(c.FormValue("category"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid Category")
	}
	if _, err := ctrl.Categories.Get(uint(categoryID)); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid Category")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No image in the request"})
	}

	imageURL, err := ctrl.saveUpload(c, file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to store image"})
	}

	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	countInStock, _ := strconv.Atoi(c.FormValue("countInStock"))
	rating, _ := strconv.ParseFloat(c.FormValue("rating"), 64)
	numReviews, _ := strconv.Atoi(c.FormValue("numReviews"))
	isFeatured, _ := strconv.ParseBool(c.FormValue("isFeatured"))

	product := models.Product{
		Name:             c.FormValue("name"),
		Descriptions:     c.FormValue("descriptions"),
		RichDescriptions: c.FormValue("richDescriptions"),
		Image:            imageURL,
		Brand:            c.FormValue("brand"),
		Price:            price,
		CategoryID:       uint(categoryID),
		CountInStock:     countInStock,
		Rating:           rating,
		NumReviews:       numReviews,
		IsFeatured:       isFeatured,
	}

	if err := ctrl.Store.Create(&product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal Server Error"})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct handles PUT /products/:id
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid Product ID")
	}

	var upd models.ProductUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse request body"})
	}

	product, err := ctrl.Store.Update(uint(id), upd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Product not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// DeleteProduct handles DELETE /products/:id
func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid Product ID")
	}

	if err := ctrl.Store.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product is deleted"})
}

// UpdateGallery handles PUT /products/gallery-images/:id with up to ten
// multipart images appended to the gallery.
func (ctrl *ProductController) UpdateGallery(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid Product ID")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse multipart form"})
	}

	files := form.File["images"]
	if len(files) > maxGalleryImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "A maximum of 10 images is allowed"})
	}

	var imageURLs []string
	for _, file := range files {
		url, err := ctrl.saveUpload(c, file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to store image"})
		}
		imageURLs = append(imageURLs, url)
	}

	product, err := ctrl.Store.AppendImages(uint(id), imageURLs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Product not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// GetProductCount handles GET /products/get/count
func (ctrl *ProductController) GetProductCount(c *fiber.Ctx) error {
	count, err := ctrl.Store.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"productCount": count})
}

// GetFeaturedProducts handles GET /products/get/featured/:count
func (ctrl *ProductController) GetFeaturedProducts(c *fiber.Ctx) error {
	count, err := c.ParamsInt("count")
	if err != nil || count < 0 {
		count = 0
	}

	products, err := ctrl.Store.Featured(count)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// saveUpload writes an uploaded file under UploadDir with a sanitized,
// collision-free name and returns the absolute URL it will be served from.
func (ctrl *ProductController) saveUpload(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(file.Filename, ext)
	storedName := slug.Make(base) + "-" + uuid.NewString() + ext

	if err := c.SaveFile(file, filepath.Join(ctrl.UploadDir, storedName)); err != nil {
		return "", err
	}
	return c.BaseURL() + "/public/uploads/" + storedName, nil
}
