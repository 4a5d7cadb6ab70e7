package repositories

import (
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/lankipolo123/styleHive-server/models"
)

// In-memory store implementations guarded by RWMutex. They mirror the gorm
// stores' semantics (including gorm.ErrRecordNotFound on misses) and back
// the handler tests without a database.

type InMemoryCategoryStore struct {
	mu         sync.RWMutex
	categories map[uint]models.Category
	nextID     uint
}

func NewInMemoryCategoryStore() *InMemoryCategoryStore {
	return &InMemoryCategoryStore{categories: make(map[uint]models.Category), nextID: 1}
}

func (s *InMemoryCategoryStore) List() ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryCategoryStore) Get(id uint) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, exists := s.categories[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (s *InMemoryCategoryStore) Create(category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	category.ID = s.nextID
	s.nextID++
	s.categories[category.ID] = *category
	return nil
}

func (s *InMemoryCategoryStore) Update(id uint, upd models.CategoryUpdate) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, exists := s.categories[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Icon != nil {
		c.Icon = *upd.Icon
	}
	if upd.Color != nil {
		c.Color = *upd.Color
	}
	s.categories[id] = c
	return &c, nil
}

func (s *InMemoryCategoryStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.categories[id]; !exists {
		return gorm.ErrRecordNotFound
	}
	delete(s.categories, id)
	return nil
}

type InMemoryProductStore struct {
	mu       sync.RWMutex
	products map[uint]models.Product
	nextID   uint
}

func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{products: make(map[uint]models.Product), nextID: 1}
}

func (s *InMemoryProductStore) List(categoryIDs []uint) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[uint]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}
	var out []models.Product
	for _, p := range s.products {
		if len(wanted) > 0 && !wanted[p.CategoryID] {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryProductStore) Get(id uint) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, exists := s.products[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (s *InMemoryProductStore) Create(product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product.ID = s.nextID
	s.nextID++
	s.products[product.ID] = *product
	return nil
}

func (s *InMemoryProductStore) Update(id uint, upd models.ProductUpdate) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, exists := s.products[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	applyProductUpdate(&p, upd)
	s.products[id] = p
	return &p, nil
}

func (s *InMemoryProductStore) AppendImages(id uint, urls []string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, exists := s.products[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	p.Images = append(p.Images, urls...)
	s.products[id] = p
	return &p, nil
}

func (s *InMemoryProductStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.products[id]; !exists {
		return gorm.ErrRecordNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *InMemoryProductStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.products)), nil
}

func (s *InMemoryProductStore) Featured(limit int) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type InMemoryUserStore struct {
	mu     sync.RWMutex
	users  map[uint]models.User
	nextID uint
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[uint]models.User), nextID: 1}
}

func (s *InMemoryUserStore) List() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryUserStore) Get(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, exists := s.users[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (s *InMemoryUserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *InMemoryUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *InMemoryUserStore) Update(id uint, upd models.UserUpdate, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, exists := s.users[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	applyUserUpdate(&u, upd, passwordHash)
	s.users[id] = u
	return &u, nil
}

func (s *InMemoryUserStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[id]; !exists {
		return gorm.ErrRecordNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *InMemoryUserStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

type InMemoryOrderStore struct {
	mu         sync.RWMutex
	orders     map[uint]models.Order
	nextID     uint
	nextItemID uint
}

func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{orders: make(map[uint]models.Order), nextID: 1, nextItemID: 1}
}

func (s *InMemoryOrderStore) List() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *InMemoryOrderStore) Get(id uint) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, exists := s.orders[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return &o, nil
}

func (s *InMemoryOrderStore) Create(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = s.nextID
	s.nextID++
	for i := range order.Items {
		order.Items[i].ID = s.nextItemID
		s.nextItemID++
		order.Items[i].OrderID = order.ID
	}
	s.orders[order.ID] = *order
	return nil
}

func (s *InMemoryOrderStore) UpdateStatus(id uint, status string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, exists := s.orders[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	if status != "" {
		o.Status = status
	}
	s.orders[id] = o
	return &o, nil
}

func (s *InMemoryOrderStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.orders[id]; !exists {
		return gorm.ErrRecordNotFound
	}
	delete(s.orders, id)
	return nil
}

func (s *InMemoryOrderStore) ListByUser(userID uint) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *InMemoryOrderStore) TotalSales() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, o := range s.orders {
		total += o.TotalPrice
	}
	return total, nil
}

func (s *InMemoryOrderStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.orders)), nil
}
