package handler

import (
	"net/http"

	"github.com/mcoot/triviaquiz/internal/api/middleware"
	"github.com/mcoot/triviaquiz/internal/api/response"
	"github.com/mcoot/triviaquiz/internal/services/identity"
	"github.com/mcoot/triviaquiz/internal/services/quiz"
	"github.com/mcoot/triviaquiz/internal/services/scoreboard"
)

// PlayerHandler handles the remembered identity and the leaderboard
type PlayerHandler struct {
	controller *quiz.Controller
	identities *identity.Service
	scores     *scoreboard.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller *quiz.Controller, identities *identity.Service, scores *scoreboard.Service) *PlayerHandler {
	return &PlayerHandler{
		controller: controller,
		identities: identities,
		scores:     scores,
	}
}

// GetIdentity handles GET /api/v1/identity
func (h *PlayerHandler) GetIdentity(w http.ResponseWriter, r *http.Request) {
	name, err := h.identities.Recall(r.Context(), middleware.MustGetClientID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Identity{Username: name, Locked: name != ""})
}

// DeleteIdentity handles DELETE /api/v1/identity
func (h *PlayerHandler) DeleteIdentity(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.NewPlayer(r.Context(), middleware.MustGetClientID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// GetScores handles GET /api/v1/scores
func (h *PlayerHandler) GetScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.scores.All(r.Context(), middleware.MustGetClientID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Scores{Scores: scores})
}
