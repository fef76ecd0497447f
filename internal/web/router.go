package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/triviaquiz/internal/services/quiz"
	"github.com/mcoot/triviaquiz/internal/web/handler"
	"github.com/mcoot/triviaquiz/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	QuizController *quiz.Controller
	StaticDir      string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	clientMiddleware := middleware.Client()

	r.Use(recoveryMiddleware)

	quizHandler := handler.NewQuizHandler(cfg.QuizController, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(loggingMiddleware(staticHandler))
	}

	// Every page is scoped to the browser's client id
	pages := r.NewRoute().Subrouter()
	pages.Use(clientMiddleware)
	pages.Use(loggingMiddleware)
	pages.Use(flashMiddleware)

	pages.HandleFunc("/", quizHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/quiz/questions", quizHandler.Questions).Methods(http.MethodGet)
	pages.HandleFunc("/quiz/submit", quizHandler.Submit).Methods(http.MethodPost)
	pages.HandleFunc("/player/new", quizHandler.NewPlayer).Methods(http.MethodPost)

	return r
}
