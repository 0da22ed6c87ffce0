package adapthttp

import (
	"net/http"

	"nutrilog/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	accounts *app.AccountService
	catalog  *app.CatalogService
	meals    *app.MealService
	logs     *app.LogService
}

// New creates a Server wired to the given application services.
func New(ac *app.AccountService, cs *app.CatalogService, ms *app.MealService, ls *app.LogService) *Server {
	return &Server{accounts: ac, catalog: cs, meals: ms, logs: ls}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/users", s.handleUsers)
	api.HandleFunc("/login", s.handleLogin)
	api.HandleFunc("/products", s.handleProducts)
	api.HandleFunc("/meals", s.handleMeals)
	api.HandleFunc("/logs", s.handleLogs)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(root)
}
