package repositories

import (
	"gorm.io/gorm"

	"github.com/lankipolo123/styleHive-server/models"
)

type CategoryStore interface {
	List() ([]models.Category, error)
	Get(id uint) (*models.Category, error)
	Create(category *models.Category) error
	Update(id uint, upd models.CategoryUpdate) (*models.Category, error)
	Delete(id uint) error
}

type GormCategoryStore struct {
	db *gorm.DB
}

func NewGormCategoryStore(db *gorm.DB) *GormCategoryStore {
	return &GormCategoryStore{db: db}
}

func (s *GormCategoryStore) List() ([]models.Category, error) {
	var categories []models.Category
	result := s.db.Find(&categories)
	return categories, result.Error
}

func (s *GormCategoryStore) Get(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormCategoryStore) Create(category *models.Category) error {
	return s.db.Create(category).Error
}

// Update applies the allow-listed fields; omitted ones keep their stored
// values.
func (s *GormCategoryStore) Update(id uint, upd models.CategoryUpdate) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, err
	}

	if upd.Name != nil {
		category.Name = *upd.Name
	}
	if upd.Icon != nil {
		category.Icon = *upd.Icon
	}
	if upd.Color != nil {
		category.Color = *upd.Color
	}

	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormCategoryStore) Delete(id uint) error {
	result := s.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
