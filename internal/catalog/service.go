package catalog

import (
	"context"
	"fmt"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/cache"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/logger"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/storage"
)

// MaxSearchResults caps how many products a chat search returns.
const MaxSearchResults = 5

// Service is the catalog lookup layer: a ProductStore fronted by an
// optional multi-tier cache for by-id lookups. Search always hits the
// store since terms are unbounded.
type Service struct {
	store storage.ProductStore
	cache *cache.Cache
	log   *logger.Logger
}

func NewService(productStore storage.ProductStore, productCache *cache.Cache) *Service {
	return &Service{
		store: productStore,
		cache: productCache,
		log:   logger.New("catalog"),
	}
}

// FindByID returns (nil, nil) when no product has the given id.
func (s *Service) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	cacheKey := fmt.Sprintf("product:%d", id)

	if s.cache != nil {
		var cached models.Product
		found, err := s.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			s.log.Warn("Failed to read product cache: %v", err)
		} else if found {
			return &cached, nil
		}
	}

	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, product); err != nil {
			s.log.Warn("Failed to cache product %d: %v", id, err)
		}
	}

	return product, nil
}

func (s *Service) Search(ctx context.Context, term string) ([]models.Product, error) {
	return s.store.SearchByName(ctx, term, MaxSearchResults)
}
