package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/mcoot/triviaquiz/internal/model"
	"github.com/mcoot/triviaquiz/internal/services/quiz"
	"github.com/mcoot/triviaquiz/internal/web/middleware"
	"github.com/mcoot/triviaquiz/internal/web/templates/components"
	"github.com/mcoot/triviaquiz/internal/web/templates/layout"
	"github.com/mcoot/triviaquiz/internal/web/templates/pages"
)

const answerFieldPrefix = "answer-"

// QuizHandler serves the quiz page and its actions
type QuizHandler struct {
	controller *quiz.Controller
	logger     *slog.Logger
}

// NewQuizHandler creates a new QuizHandler
func NewQuizHandler(controller *quiz.Controller, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{
		controller: controller,
		logger:     logger,
	}
}

// Home renders the quiz page. Questions are rendered inline when a round is
// ready; otherwise the page shows the loading indicator and htmx fetches them.
func (h *QuizHandler) Home(w http.ResponseWriter, r *http.Request) {
	view, err := h.controller.View(r.Context(), middleware.GetClientID(r))
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	data := pages.HomeData{
		PageData: layout.PageData{
			Flash: middleware.GetFlash(r.Context()),
		},
		View: *view,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Home(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Questions returns the question list fragment, starting a round if needed
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	round, err := h.controller.CurrentOrStart(r.Context(), middleware.GetClientID(r))
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	view := quiz.Describe(round, "", nil)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.QuestionList(view).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Submit scores the form and redirects back to the page with the result
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form submission")
		h.redirectHome(w, r)
		return
	}

	result, err := h.controller.Submit(r.Context(), middleware.GetClientID(r), r.FormValue("name"), parseSelections(r))
	switch {
	case err == nil:
		middleware.SetFlash(w, "success", model.GameOverMessage(result.Entry.Score))
	case errors.Is(err, model.ErrNameRequired):
		middleware.SetFlash(w, "error", "Please enter your name.")
	case errors.Is(err, model.ErrRoundNotFound), errors.Is(err, model.ErrRoundNotReady):
		middleware.SetFlash(w, "error", "Questions are still loading.")
	default:
		h.serverError(w, r, err)
		return
	}

	h.redirectHome(w, r)
}

// NewPlayer forgets the remembered name
func (h *QuizHandler) NewPlayer(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.NewPlayer(r.Context(), middleware.GetClientID(r)); err != nil {
		h.serverError(w, r, err)
		return
	}
	h.redirectHome(w, r)
}

// redirectHome redirects to the quiz page, using HX-Redirect for htmx requests
func (h *QuizHandler) redirectHome(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *QuizHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// parseSelections reads answer-<index> form fields
func parseSelections(r *http.Request) map[int]string {
	selections := make(map[int]string)
	for key, values := range r.Form {
		if !strings.HasPrefix(key, answerFieldPrefix) || len(values) == 0 {
			continue
		}
		index, err := strconv.Atoi(strings.TrimPrefix(key, answerFieldPrefix))
		if err != nil {
			continue
		}
		selections[index] = values[0]
	}
	return selections
}
