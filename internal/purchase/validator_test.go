package purchase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/catalog"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/idgen"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/storage"
)

func newTestValidator(t *testing.T, products ...*models.Product) *Validator {
	t.Helper()

	store := storage.NewMemoryStorage()
	for _, p := range products {
		if err := store.AddProduct(p); err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}

	gen, err := idgen.NewGenerator(1, 1)
	if err != nil {
		t.Fatalf("failed to create id generator: %v", err)
	}

	return NewValidator(catalog.NewService(store, nil), gen)
}

func TestParseProductID(t *testing.T) {
	id, err := ParseProductID("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("expected 42, got %d", id)
	}
}

func TestParseProductID_Invalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "4.5", "NaN", "1e3"} {
		if _, err := ParseProductID(raw); !errors.Is(err, ErrInvalidProductID) {
			t.Errorf("ParseProductID(%q): expected ErrInvalidProductID, got %v", raw, err)
		}
	}
}

func TestValidate_Found(t *testing.T) {
	v := newTestValidator(t,
		&models.Product{ID: 7, Name: "Denim Jacket", Price: 89.5, Category: "clothing"},
	)

	receipt, product, err := v.Validate(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if receipt.ProductID != 7 || receipt.ProductName != "Denim Jacket" {
		t.Errorf("receipt does not match product: %+v", receipt)
	}
	if product == nil || product.ID != 7 {
		t.Errorf("expected product 7 back, got %+v", product)
	}
	if !strings.HasPrefix(receipt.OrderID, "ORD-") {
		t.Errorf("expected ORD- prefixed order id, got %q", receipt.OrderID)
	}
	if receipt.Timestamp.IsZero() {
		t.Error("expected receipt timestamp to be set")
	}
}

func TestValidate_NotFound(t *testing.T) {
	v := newTestValidator(t)

	_, _, err := v.Validate(context.Background(), 42)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestValidate_UniqueOrderIDs(t *testing.T) {
	v := newTestValidator(t,
		&models.Product{ID: 1, Name: "Socks", Price: 4.99, Category: "clothing"},
	)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		receipt, _, err := v.Validate(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[receipt.OrderID] {
			t.Fatalf("duplicate order id: %s", receipt.OrderID)
		}
		seen[receipt.OrderID] = true
	}
}

func TestReceiptMessage(t *testing.T) {
	receipt := &Receipt{
		ProductID:   1,
		ProductName: "Denim Jacket",
		Price:       89.5,
		OrderID:     "ORD-abc123",
	}

	want := "Purchased: Denim Jacket\n$89.50\nOrder ID: ORD-abc123"
	if got := receipt.Message(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		price float64
		want  string
	}{
		{19.99, "19.99"},
		{5, "5.00"},
		{0, "0.00"},
		{19.999, "20.00"},
		{0.1, "0.10"},
	}

	for _, c := range cases {
		if got := FormatPrice(c.price); got != c.want {
			t.Errorf("FormatPrice(%v): expected %q, got %q", c.price, c.want, got)
		}
	}
}
