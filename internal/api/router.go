package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/triviaquiz/internal/api/handler"
	apimiddleware "github.com/mcoot/triviaquiz/internal/api/middleware"
	"github.com/mcoot/triviaquiz/internal/middleware"
	"github.com/mcoot/triviaquiz/internal/services/identity"
	"github.com/mcoot/triviaquiz/internal/services/quiz"
	"github.com/mcoot/triviaquiz/internal/services/scoreboard"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	QuizController    *quiz.Controller
	IdentityService   *identity.Service
	ScoreboardService *scoreboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	clientHandler := handler.NewClientHandler(cfg.Logger)
	quizHandler := handler.NewQuizHandler(cfg.QuizController)
	playerHandler := handler.NewPlayerHandler(cfg.QuizController, cfg.IdentityService, cfg.ScoreboardService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))

	// Routes that need no client id
	open := api.NewRoute().Subrouter()
	open.Use(middleware.Logging(cfg.Logger))
	open.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	open.HandleFunc("/clients", clientHandler.Create).Methods(http.MethodPost)

	// Client-scoped routes; logging runs inside so client_id is logged
	scoped := api.NewRoute().Subrouter()
	scoped.Use(apimiddleware.RequireClient())
	scoped.Use(middleware.Logging(cfg.Logger))

	scoped.HandleFunc("/quiz", quizHandler.Get).Methods(http.MethodGet)
	scoped.HandleFunc("/quiz", quizHandler.Start).Methods(http.MethodPost)
	scoped.HandleFunc("/quiz/submit", quizHandler.Submit).Methods(http.MethodPost)

	scoped.HandleFunc("/identity", playerHandler.GetIdentity).Methods(http.MethodGet)
	scoped.HandleFunc("/identity", playerHandler.DeleteIdentity).Methods(http.MethodDelete)

	scoped.HandleFunc("/scores", playerHandler.GetScores).Methods(http.MethodGet)

	return r
}
