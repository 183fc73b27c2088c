package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/chat"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/enrichment"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/events"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/logger"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/middleware"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/models"
	"github.com/SangwanNishant/Ecommerce-Chat-Bot--Internship-Assign/internal/validation"
	"github.com/google/uuid"
)

type ChatHandler struct {
	chatService *chat.Service
	producer    *events.ChatProducer
	log         *logger.Logger
}

// NewChatHandler builds the chat endpoint handler. producer may be nil
// when the event pipeline is not configured.
func NewChatHandler(chatService *chat.Service, producer *events.ChatProducer) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		producer:    producer,
		log:         logger.New("chat-handler"),
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid message format")
		return
	}

	if err := validation.ValidateMessage(req.Message); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid message format")
		return
	}

	resp, err := h.chatService.Respond(r.Context(), req.Message)
	if err != nil {
		h.log.Error("Chat error: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.publishEvent(r, req.Message)

	respondJSON(w, http.StatusOK, resp)
}

func (h *ChatHandler) publishEvent(r *http.Request, message string) {
	if h.producer == nil {
		return
	}

	intent := chat.Interpret(message)
	kind := events.KindGeneric
	if intent.Kind == chat.KindSearch {
		kind = events.KindSearch
	}

	ua := enrichment.ParseUserAgent(r.UserAgent())
	event := &events.ChatEvent{
		EventID:    uuid.New().String(),
		UserID:     middleware.GetUserID(r.Context()),
		Kind:       kind,
		Term:       intent.Term,
		Timestamp:  time.Now().Unix(),
		IP:         middleware.GetClientIP(r),
		UserAgent:  r.UserAgent(),
		Browser:    ua.Browser,
		OS:         ua.OS,
		DeviceType: ua.DeviceType,
	}

	if err := h.producer.Publish(r.Context(), event); err != nil {
		h.log.Warn("Failed to publish chat event: %v", err)
	}
}
