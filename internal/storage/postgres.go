package storage

import (
	"context"
	"fmt"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/database"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
	"github.com/jackc/pgx/v5"
)

type PostgresStorage struct {
	db *database.DBManager
}

func NewPostgresStorage(db *database.DBManager) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `
		SELECT id, name, price, category, COALESCE(description, '')
		FROM products
		WHERE id = $1
	`

	var product models.Product
	err := s.db.Read().QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Category,
		&product.Description,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (s *PostgresStorage) SearchByName(ctx context.Context, term string, limit int) ([]models.Product, error) {
	query := `
		SELECT id, name, price, category, COALESCE(description, '')
		FROM products
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT $2
	`

	rows, err := s.db.Read().Query(ctx, query, term, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Category,
			&product.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}
