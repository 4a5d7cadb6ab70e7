package repositories

import (
	"gorm.io/gorm"

	"github.com/lankipolo123/styleHive-server/models"
)

type UserStore interface {
	List() ([]models.User, error)
	Get(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(id uint, upd models.UserUpdate, passwordHash string) (*models.User, error)
	Delete(id uint) error
	Count() (int64, error)
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) List() ([]models.User, error) {
	var users []models.User
	result := s.db.Find(&users)
	return users, result.Error
}

func (s *GormUserStore) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

// Update applies the allow-listed profile fields; omitted ones keep their
// stored values. passwordHash is the hash decided by the caller: a fresh one
// when the request carried a new password, otherwise the stored one,
// unchanged.
func (s *GormUserStore) Update(id uint, upd models.UserUpdate, passwordHash string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	applyUserUpdate(&user, upd, passwordHash)

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// applyUserUpdate copies the non-nil update fields onto the user. Shared by
// the gorm and in-memory stores so partial-update semantics cannot drift
// between them.
func applyUserUpdate(user *models.User, upd models.UserUpdate, passwordHash string) {
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	user.PasswordHash = passwordHash
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.IsAdmin != nil {
		user.IsAdmin = *upd.IsAdmin
	}
	if upd.Street != nil {
		user.Street = *upd.Street
	}
	if upd.Apartment != nil {
		user.Apartment = *upd.Apartment
	}
	if upd.Zip != nil {
		user.Zip = *upd.Zip
	}
	if upd.City != nil {
		user.City = *upd.City
	}
	if upd.Country != nil {
		user.Country = *upd.Country
	}
}

func (s *GormUserStore) Delete(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GormUserStore) Count() (int64, error) {
	var count int64
	result := s.db.Model(&models.User{}).Count(&count)
	return count, result.Error
}
