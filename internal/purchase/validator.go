package purchase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/catalog"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/idgen"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
)

var (
	ErrInvalidProductID = errors.New("invalid product ID format")
	ErrProductNotFound  = errors.New("product not found in database")
)

// Receipt is the confirmation payload for a validated purchase. No
// payment happens and nothing is persisted.
type Receipt struct {
	ProductID   int64
	ProductName string
	Price       float64
	OrderID     string
	Timestamp   time.Time
}

// Message renders the confirmation text shown in the chat window.
// Price is always formatted to two decimals.
func (r *Receipt) Message() string {
	return fmt.Sprintf("Purchased: %s\n$%s\nOrder ID: %s",
		r.ProductName, FormatPrice(r.Price), r.OrderID)
}

// FormatPrice renders a price with exactly two decimal places,
// rounding half away from zero.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

// Validator confirms a product exists and produces a receipt. It never
// mutates catalog state.
type Validator struct {
	catalog *catalog.Service
	orderID *idgen.Generator
}

func NewValidator(catalogService *catalog.Service, orderIDGen *idgen.Generator) *Validator {
	return &Validator{
		catalog: catalogService,
		orderID: orderIDGen,
	}
}

// ParseProductID coerces a raw product reference to an integer id.
// Returns ErrInvalidProductID for anything non-numeric.
func ParseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidProductID
	}
	return id, nil
}

// Validate looks up the product and, when present, builds a receipt
// with a fresh order id. Every call that finds the product succeeds:
// there is no inventory check and no idempotency key.
func (v *Validator) Validate(ctx context.Context, productID int64) (*Receipt, *models.Product, error) {
	product, err := v.catalog.FindByID(ctx, productID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, nil, ErrProductNotFound
	}

	orderID, err := v.orderID.NextID()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate order id: %w", err)
	}

	receipt := &Receipt{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		OrderID:     "ORD-" + idgen.Encode(orderID),
		Timestamp:   time.Now(),
	}

	return receipt, product, nil
}
