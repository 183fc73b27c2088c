package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/enrichment"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/events"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/logger"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/middleware"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/purchase"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	validator *purchase.Validator
	producer  *events.ChatProducer
	log       *logger.Logger
}

func NewPurchaseHandler(validator *purchase.Validator, producer *events.ChatProducer) *PurchaseHandler {
	return &PurchaseHandler{
		validator: validator,
		producer:  producer,
		log:       logger.New("purchase-handler"),
	}
}

func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondPurchaseError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	// Accept both 42 and "42" on the wire.
	raw := strings.Trim(strings.TrimSpace(string(req.ProductID)), `"`)
	productID, err := purchase.ParseProductID(raw)
	if err != nil {
		respondPurchaseError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	receipt, product, err := h.validator.Validate(r.Context(), productID)
	if err != nil {
		if errors.Is(err, purchase.ErrProductNotFound) {
			respondPurchaseError(w, http.StatusNotFound, "Product not found in database")
			return
		}
		h.log.Error("Purchase error: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.publishEvent(r, receipt)

	respondJSON(w, http.StatusOK, models.PurchaseResponse{
		Success: true,
		Message: receipt.Message(),
		Product: &models.PurchasedItem{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
		},
	})
}

// respondPurchaseError mirrors the purchase contract: non-2xx status
// plus a success:false body flag, so clients checking either signal
// agree.
func respondPurchaseError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.PurchaseErrorResponse{
		Success: false,
		Error:   message,
	})
}

func (h *PurchaseHandler) publishEvent(r *http.Request, receipt *purchase.Receipt) {
	if h.producer == nil {
		return
	}

	ua := enrichment.ParseUserAgent(r.UserAgent())
	event := &events.ChatEvent{
		EventID:    uuid.New().String(),
		UserID:     middleware.GetUserID(r.Context()),
		Kind:       events.KindPurchase,
		ProductID:  receipt.ProductID,
		OrderID:    receipt.OrderID,
		Timestamp:  time.Now().Unix(),
		IP:         middleware.GetClientIP(r),
		UserAgent:  r.UserAgent(),
		Browser:    ua.Browser,
		OS:         ua.OS,
		DeviceType: ua.DeviceType,
	}

	if err := h.producer.Publish(r.Context(), event); err != nil {
		h.log.Warn("Failed to publish purchase event: %v", err)
	}
}
