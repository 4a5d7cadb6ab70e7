package repositories

import (
	"gorm.io/gorm"

	"github.com/lankipolo123/styleHive-server/models"
)

type ProductStore interface {
	List(categoryIDs []uint) ([]models.Product, error)
	Get(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(id uint, upd models.ProductUpdate) (*models.Product, error)
	AppendImages(id uint, urls []string) (*models.Product, error)
	Delete(id uint) error
	Count() (int64, error)
	// Featured returns featured products. A limit of zero or less means no
	// limit.
	Featured(limit int) ([]models.Product, error)
}

type GormProductStore struct {
	db *gorm.DB
}

func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

// List returns products with their category preloaded, optionally filtered
// to the given category ids.
func (s *GormProductStore) List(categoryIDs []uint) ([]models.Product, error) {
	var products []models.Product
	query := s.db.Preload("Category")
	if len(categoryIDs) > 0 {
		query = query.Where("category_id IN ?", categoryIDs)
	}
	result := query.Find(&products)
	return products, result.Error
}

func (s *GormProductStore) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormProductStore) Create(product *models.Product) error {
	return s.db.Create(product).Error
}

// Update applies the allow-listed fields; omitted ones keep their stored
// values.
func (s *GormProductStore) Update(id uint, upd models.ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, err
	}

	applyProductUpdate(&product, upd)

	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// applyProductUpdate copies the non-nil update fields onto the product.
// Shared by the gorm and in-memory stores so partial-update semantics cannot
// drift between them.
func applyProductUpdate(product *models.Product, upd models.ProductUpdate) {
	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.Descriptions != nil {
		product.Descriptions = *upd.Descriptions
	}
	if upd.RichDescriptions != nil {
		product.RichDescriptions = *upd.RichDescriptions
	}
	if upd.Brand != nil {
		product.Brand = *upd.Brand
	}
	if upd.Price != nil {
		product.Price = *upd.Price
	}
	if upd.CategoryID != nil {
		product.CategoryID = *upd.CategoryID
	}
	if upd.CountInStock != nil {
		product.CountInStock = *upd.CountInStock
	}
	if upd.Rating != nil {
		product.Rating = *upd.Rating
	}
	if upd.NumReviews != nil {
		product.NumReviews = *upd.NumReviews
	}
	if upd.IsFeatured != nil {
		product.IsFeatured = *upd.IsFeatured
	}
}

// AppendImages adds gallery URLs to the existing array.
func (s *GormProductStore) AppendImages(id uint, urls []string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, err
	}

	product.Images = append(product.Images, urls...)

	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormProductStore) Delete(id uint) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GormProductStore) Count() (int64, error) {
	var count int64
	result := s.db.Model(&models.Product{}).Count(&count)
	return count, result.Error
}

func (s *GormProductStore) Featured(limit int) ([]models.Product, error) {
	var products []models.Product
	query := s.db.Preload("Category").Where("is_featured = ?", true)
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&products)
	return products, result.Error
}
