package models

import "encoding/json"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries either a plain reply or a product list, never both.
type ChatResponse struct {
	Reply    string    `json:"reply,omitempty"`
	Products []Product `json:"products,omitempty"`
}

type PurchaseRequest struct {
	// ProductID is kept raw so both numeric and numeric-string
	// payloads are accepted; the handler coerces it.
	ProductID json.RawMessage `json:"productId"`
}

type PurchaseResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Product *PurchasedItem `json:"product"`
}

type PurchasedItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type PurchaseErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
