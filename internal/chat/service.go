package chat

import (
	"context"
	"fmt"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/catalog"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
)

// Fixed bot replies. The exact wording is part of the API contract.
const (
	ReplyClarifySearch = "Please specify what you're searching for"
	ReplyNoResults     = "No products found matching your search"
	ReplyGenericHelp   = "How can I help you today?"
)

// Service turns a classified chat message into a reply or a product
// list. It never formats HTTP responses.
type Service struct {
	catalog *catalog.Service
}

func NewService(catalogService *catalog.Service) *Service {
	return &Service{catalog: catalogService}
}

// Respond handles an already-validated chat message. Exactly one of
// Reply and Products is set in the result.
func (s *Service) Respond(ctx context.Context, message string) (*models.ChatResponse, error) {
	intent := Interpret(message)

	if intent.Kind == KindGeneric {
		return &models.ChatResponse{Reply: ReplyGenericHelp}, nil
	}

	if intent.Term == "" {
		return &models.ChatResponse{Reply: ReplyClarifySearch}, nil
	}

	products, err := s.catalog.Search(ctx, intent.Term)
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}

	if len(products) == 0 {
		return &models.ChatResponse{Reply: ReplyNoResults}, nil
	}

	return &models.ChatResponse{Products: products}, nil
}
