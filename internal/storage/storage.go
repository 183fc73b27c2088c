package storage

import (
	"context"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
)

// ProductStore is the catalog lookup contract. Implementations return
// (nil, nil) when a product does not exist; errors mean the store
// itself failed.
type ProductStore interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	SearchByName(ctx context.Context, term string, limit int) ([]models.Product, error)
}

// UserStore resolves identities during login. (nil, nil) means the
// username is unknown.
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
