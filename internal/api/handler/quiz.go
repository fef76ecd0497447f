package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/triviaquiz/internal/api/middleware"
	"github.com/mcoot/triviaquiz/internal/api/request"
	"github.com/mcoot/triviaquiz/internal/api/response"
	"github.com/mcoot/triviaquiz/internal/model"
	"github.com/mcoot/triviaquiz/internal/services/quiz"
)

// QuizHandler handles quiz endpoints
type QuizHandler struct {
	controller *quiz.Controller
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(controller *quiz.Controller) *QuizHandler {
	return &QuizHandler{controller: controller}
}

// Get handles GET /api/v1/quiz
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.MustGetClientID(r)

	round, err := h.controller.Current(r.Context(), clientID)
	if err != nil && !errors.Is(err, model.ErrRoundNotFound) {
		WriteError(w, err)
		return
	}

	state := model.QuizStateIdle
	if round != nil {
		state = round.State
	}

	view, err := h.controller.View(r.Context(), clientID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.QuizFromModel(state, round, view))
}

// Start handles POST /api/v1/quiz
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.MustGetClientID(r)

	round, err := h.controller.Start(r.Context(), clientID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoundFromModel(round))
}

// Submit handles POST /api/v1/quiz/submit
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.MustGetClientID(r)

	var req request.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.controller.Submit(r.Context(), clientID, req.Name, req.Answers)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitResultFromModel(result))
}
