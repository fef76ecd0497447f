package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mcoot/triviaquiz/internal/api/response"
)

// ClientHandler issues client ids
type ClientHandler struct {
	logger *slog.Logger
}

// NewClientHandler creates a new client handler
func NewClientHandler(logger *slog.Logger) *ClientHandler {
	return &ClientHandler{logger: logger}
}

// Create handles POST /api/v1/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	h.logger.Info("client issued", slog.String("client_id", id))
	response.JSON(w, http.StatusCreated, response.Client{ClientID: id})
}

// Health handles GET /api/v1/health
func Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
