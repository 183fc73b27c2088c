package main

import (
	"context"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/auth"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/config"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/database"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/logger"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/storage"
)

var products = []models.Product{
	{ID: 1, Name: "Slim Fit Jeans", Price: 49.99, Category: "clothing", Description: "Classic five-pocket slim fit jeans"},
	{ID: 2, Name: "Relaxed Denim Jeans", Price: 59.99, Category: "clothing", Description: "Relaxed cut, mid-wash denim"},
	{ID: 3, Name: "Cotton T-Shirt", Price: 19.99, Category: "clothing", Description: "Plain crew-neck tee"},
	{ID: 4, Name: "Hooded Sweatshirt", Price: 39.99, Category: "clothing", Description: "Fleece-lined hoodie"},
	{ID: 5, Name: "Leather Boots", Price: 129.99, Category: "footwear", Description: "Full-grain leather ankle boots"},
	{ID: 6, Name: "Running Sneakers", Price: 89.99, Category: "footwear", Description: "Lightweight mesh runners"},
	{ID: 7, Name: "Canvas Backpack", Price: 44.5, Category: "accessories", Description: "20L daily carry backpack"},
	{ID: 8, Name: "Wool Scarf", Price: 24.99, Category: "accessories"},
	{ID: 9, Name: "Denim Jacket", Price: 89.5, Category: "clothing", Description: "Sherpa-lined trucker jacket"},
	{ID: 10, Name: "Baseball Cap", Price: 14.99, Category: "accessories"},
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS products (
	id BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	category TEXT NOT NULL,
	description TEXT
);
`

func main() {
	log := logger.New("seed")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	dbManager, err := database.NewDBManager(ctx, database.Config{
		PrimaryDSN:      cfg.Database.PrimaryDSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbManager.Close()

	if _, err := dbManager.Write().Exec(ctx, schema); err != nil {
		log.Fatal("Failed to create schema: %v", err)
	}

	for _, p := range products {
		_, err := dbManager.Write().Exec(ctx, `
			INSERT INTO products (id, name, price, category, description)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''))
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				price = EXCLUDED.price,
				category = EXCLUDED.category,
				description = EXCLUDED.description
		`, p.ID, p.Name, p.Price, p.Category, p.Description)
		if err != nil {
			log.Fatal("Failed to seed product %d: %v", p.ID, err)
		}
	}
	log.Info("Seeded %d products", len(products))

	// Demo account. The stored secret is hashed even though login does
	// not check it yet.
	passwordHash, err := auth.HashPassword("pass1")
	if err != nil {
		log.Fatal("Failed to hash password: %v", err)
	}

	userStore := storage.NewUserStorage(dbManager)
	user, err := userStore.CreateUser(ctx, "user1", passwordHash)
	if err != nil {
		log.Fatal("Failed to seed user: %v", err)
	}
	log.Info("Seeded user %s (%s)", user.Username, user.ID)

	log.Info("Database seeded successfully")
}
