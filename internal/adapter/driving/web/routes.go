package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all web GUI routes on the provided mux.
// Pages are served at /, /about and /privacy; form actions post to /app/*.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Static assets (embedded via go:embed).
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Page routes.
	mux.HandleFunc("GET /{$}", h.Dashboard)
	mux.HandleFunc("GET /about", h.About)
	mux.HandleFunc("GET /privacy", h.Privacy)

	// Form actions.
	mux.HandleFunc("POST /app/generate", requireCSRF(h.Generate))
	mux.HandleFunc("POST /app/results/clear", requireCSRF(h.ClearResults))
	mux.HandleFunc("POST /app/results/select-all", requireCSRF(h.SelectAll))
	mux.HandleFunc("POST /app/results/{id}/select", requireCSRF(h.ToggleSelected))
	mux.HandleFunc("POST /app/results/{id}/favorite", requireCSRF(h.ToggleFavorite))
	mux.HandleFunc("POST /app/history/clear", requireCSRF(h.ClearHistory))
	mux.HandleFunc("POST /app/favorites/clear", requireCSRF(h.ClearFavorites))
	mux.HandleFunc("POST /app/favorites/{id}/remove", requireCSRF(h.RemoveFavorite))
	mux.HandleFunc("POST /app/settings", requireCSRF(h.UpdateSettings))
}
