package httphandler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ericfisherdev/genpass/internal/application"
	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	svc    *application.CredentialService
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(svc *application.CredentialService, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
		now:    time.Now,
	}
}

// RegisterAPIRoutes registers all JSON API routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)

	mux.HandleFunc("POST /api/v1/generate", h.Generate)
	mux.HandleFunc("GET /api/v1/results", h.ListResults)
	mux.HandleFunc("DELETE /api/v1/results", h.ClearResults)
	mux.HandleFunc("POST /api/v1/results/select-all", h.SelectAll)
	mux.HandleFunc("POST /api/v1/results/{id}/select", h.ToggleSelected)
	mux.HandleFunc("POST /api/v1/results/{id}/favorite", h.ToggleFavorite)

	mux.HandleFunc("GET /api/v1/history", h.ListHistory)
	mux.HandleFunc("DELETE /api/v1/history", h.ClearHistory)

	mux.HandleFunc("GET /api/v1/favorites", h.ListFavorites)
	mux.HandleFunc("DELETE /api/v1/favorites", h.ClearFavorites)
	mux.HandleFunc("DELETE /api/v1/favorites/{id}", h.RemoveFavorite)

	mux.HandleFunc("GET /api/v1/export", h.Export)
	mux.HandleFunc("POST /api/v1/strength", h.Strength)
	mux.HandleFunc("GET /api/v1/settings", h.GetSettings)
	mux.HandleFunc("PUT /api/v1/settings", h.UpdateSettings)
	mux.HandleFunc("GET /api/v1/stats", h.Stats)
	mux.HandleFunc("GET /api/v1/styles", h.ListStyles)
}

// NewServeMux creates an http.Handler with the API routes registered and
// wrapped with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, logger)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   h.now().UTC().Format(time.RFC3339),
	})
}

// Generate produces a new batch. Fields omitted from the body keep the
// defaults derived from the current settings.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	req := newGenerateRequest(h.svc.Settings())
	if !decodeBody(w, r, &req) {
		return
	}

	results, err := h.svc.Generate(r.Context(), req.toGenerationRequest())
	if err != nil {
		h.writeServiceError(w, "generate credentials", err)
		return
	}

	writeJSON(w, http.StatusOK, toResultResponses(results))
}

// ListResults returns the live batch.
func (h *Handler) ListResults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toResultResponses(h.svc.Results()))
}

// ClearResults discards the live batch.
func (h *Handler) ClearResults(w http.ResponseWriter, _ *http.Request) {
	h.svc.ClearResults()
	w.WriteHeader(http.StatusNoContent)
}

// ToggleSelected flips the selection of one live result.
func (h *Handler) ToggleSelected(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.svc.ToggleSelected(id) {
		writeError(w, http.StatusNotFound, "result not found")
		return
	}

	selected := false
	for _, res := range h.svc.Selected() {
		if res.ID == id {
			selected = true
			break
		}
	}
	writeJSON(w, http.StatusOK, SelectResponse{ID: id, Selected: selected})
}

// SelectAll selects every live result.
func (h *Handler) SelectAll(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, SelectAllResponse{Selected: h.svc.SelectAll()})
}

// ToggleFavorite flips the favorite flag of one live result.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	favorite, found, err := h.svc.ToggleFavorite(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, "result not found")
		return
	}
	if err != nil {
		h.writeServiceError(w, "toggle favorite", err)
		return
	}
	writeJSON(w, http.StatusOK, FavoriteToggleResponse{ID: id, Favorite: favorite})
}

// ListHistory returns the generation history, newest first.
func (h *Handler) ListHistory(w http.ResponseWriter, _ *http.Request) {
	history := h.svc.History()
	resp := make([]HistoryResponse, 0, len(history))
	for _, e := range history {
		resp = append(resp, toHistoryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ClearHistory deletes all history entries.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearHistory(r.Context()); err != nil {
		h.writeServiceError(w, "clear history", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListFavorites returns all favorites.
func (h *Handler) ListFavorites(w http.ResponseWriter, _ *http.Request) {
	favorites := h.svc.Favorites()
	resp := make([]FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		resp = append(resp, toFavoriteResponse(f))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ClearFavorites deletes all favorites.
func (h *Handler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearFavorites(r.Context()); err != nil {
		h.writeServiceError(w, "clear favorites", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFavorite deletes a single favorite.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	removed, err := h.svc.RemoveFavorite(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "remove favorite", err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "favorite not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export downloads the live batch as txt, csv or json. With selected=true
// only the selected results are exported.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	formatName := q.Get("format")
	if formatName == "" {
		formatName = string(application.FormatJSON)
	}
	format, err := application.ParseExportFormat(formatName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	onlySelected := false
	if v := q.Get("selected"); v != "" {
		onlySelected, err = strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid selected flag")
			return
		}
	}

	now := h.now()
	data, n, err := h.svc.Export(format, onlySelected, now)
	if err != nil {
		h.writeServiceError(w, "export results", err)
		return
	}

	h.logger.Info("results exported", "format", format, "count", n, "selected_only", onlySelected)

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+application.ExportFilename(format, now)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Strength rates an arbitrary password.
func (h *Handler) Strength(w http.ResponseWriter, r *http.Request) {
	var req StrengthRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, toStrengthResponse(h.svc.ScoreStrength(req.Password)))
}

// GetSettings returns the current settings.
func (h *Handler) GetSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toSettingsResponse(h.svc.Settings()))
}

// UpdateSettings replaces the settings. Omitted fields keep their current value.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	req := toSettingsResponse(h.svc.Settings())
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.UpdateSettings(r.Context(), req.toSettings()); err != nil {
		h.writeServiceError(w, "update settings", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(h.svc.Settings()))
}

// Stats returns the status counters.
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toStatsResponse(h.svc.Stats()))
}

// ListStyles returns the supported username styles.
func (h *Handler) ListStyles(w http.ResponseWriter, _ *http.Request) {
	styles := model.Styles()
	resp := make([]string, 0, len(styles))
	for _, s := range styles {
		resp = append(resp, string(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeBody decodes a JSON request body into v, writing a 400 on failure.
// An empty body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeServiceError maps application errors onto HTTP responses: caller
// mistakes become 400 with their message, everything else a logged 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	if application.IsUserError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error("failed to "+op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
