package repositories

import (
	"gorm.io/gorm"

	"github.com/lankipolo123/styleHive-server/models"
)

type OrderStore interface {
	List() ([]models.Order, error)
	Get(id uint) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id uint, status string) (*models.Order, error)
	Delete(id uint) error
	ListByUser(userID uint) ([]models.Order, error)
	TotalSales() (float64, error)
	Count() (int64, error)
}

type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) List() ([]models.Order, error) {
	var orders []models.Order
	result := s.db.Preload("User").Order("created_at DESC").Find(&orders)
	return orders, result.Error
}

func (s *GormOrderStore) Get(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Create persists the order together with its items. gorm wraps the
// association create in a single transaction, so a failure leaves no
// orphaned items behind.
func (s *GormOrderStore) Create(order *models.Order) error {
	return s.db.Create(order).Error
}

// UpdateStatus sets the order status; an empty status keeps the stored one.
func (s *GormOrderStore) UpdateStatus(id uint, status string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, err
	}

	if status != "" {
		order.Status = status
	}

	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes the order and cascades to its items in one transaction.
func (s *GormOrderStore) Delete(id uint) error {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

func (s *GormOrderStore) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// TotalSales sums total_price across all orders; no orders means zero.
func (s *GormOrderStore) TotalSales() (float64, error) {
	var total float64
	err := s.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}

func (s *GormOrderStore) Count() (int64, error) {
	var count int64
	result := s.db.Model(&models.Order{}).Count(&count)
	return count, result.Error
}
