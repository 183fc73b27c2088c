package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
)

// MemoryStorage implements ProductStore and UserStore in memory. Used
// by tests and as a local-dev fallback when no database is configured.
type MemoryStorage struct {
	mu       sync.RWMutex
	products map[int64]*models.Product
	users    map[string]*models.User
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		products: make(map[int64]*models.Product),
		users:    make(map[string]*models.User),
	}
}

func (s *MemoryStorage) AddProduct(product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.ID]; exists {
		return fmt.Errorf("product with id %d already exists", product.ID)
	}

	s.products[product.ID] = product
	return nil
}

func (s *MemoryStorage) AddUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return fmt.Errorf("user %s already exists", user.Username)
	}

	s.users[user.Username] = user
	return nil
}

func (s *MemoryStorage) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[id]
	if !exists {
		return nil, nil
	}

	return product, nil
}

func (s *MemoryStorage) SearchByName(ctx context.Context, term string, limit int) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	needle := strings.ToLower(term)

	var products []models.Product
	for _, id := range ids {
		if len(products) >= limit {
			break
		}
		product := s.products[id]
		if strings.Contains(strings.ToLower(product.Name), needle) {
			products = append(products, *product)
		}
	}

	return products, nil
}

func (s *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[username]
	if !exists {
		return nil, nil
	}

	return user, nil
}
