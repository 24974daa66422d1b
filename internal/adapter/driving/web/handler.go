// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ericfisherdev/genpass/internal/adapter/driving/web/templates"
	vm "github.com/ericfisherdev/genpass/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/genpass/internal/application"
	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	svc     *application.CredentialService
	printer *message.Printer
	logger  *slog.Logger

	// lastRequest holds the most recent form submission so the form keeps
	// its values across the post/redirect/get cycle.
	mu          sync.Mutex
	lastRequest *model.GenerationRequest
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(svc *application.CredentialService, logger *slog.Logger) *Handler {
	return &Handler{
		svc:     svc,
		printer: message.NewPrinter(language.English),
		logger:  logger,
	}
}

// Dashboard renders the generator page with the full HTML layout.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, r, http.StatusOK, h.formRequest(), "")
}

// Generate handles the generator form.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := parseGenerateForm(r, h.svc.Settings())
	if err != nil {
		h.renderDashboard(w, r, http.StatusBadRequest, req, err.Error())
		return
	}

	h.mu.Lock()
	h.lastRequest = &req
	h.mu.Unlock()

	if _, err := h.svc.Generate(r.Context(), req); err != nil {
		if application.IsUserError(err) {
			h.renderDashboard(w, r, http.StatusBadRequest, req, err.Error())
			return
		}
		h.logger.Error("failed to generate credentials", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	redirectHome(w, r)
}

// ToggleSelected flips the selection of one live result.
func (h *Handler) ToggleSelected(w http.ResponseWriter, r *http.Request) {
	if !h.svc.ToggleSelected(r.PathValue("id")) {
		http.NotFound(w, r)
		return
	}
	redirectHome(w, r)
}

// SelectAll selects every live result.
func (h *Handler) SelectAll(w http.ResponseWriter, r *http.Request) {
	h.svc.SelectAll()
	redirectHome(w, r)
}

// ToggleFavorite flips the favorite flag of one live result.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	_, found, err := h.svc.ToggleFavorite(r.Context(), r.PathValue("id"))
	if !found {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("failed to toggle favorite", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

// ClearResults discards the live batch.
func (h *Handler) ClearResults(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearResults()
	redirectHome(w, r)
}

// ClearHistory deletes all history entries.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearHistory(r.Context()); err != nil {
		h.logger.Error("failed to clear history", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

// ClearFavorites deletes all favorites.
func (h *Handler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearFavorites(r.Context()); err != nil {
		h.logger.Error("failed to clear favorites", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

// RemoveFavorite deletes one favorite.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.RemoveFavorite(r.Context(), r.PathValue("id"))
	if err != nil {
		h.logger.Error("failed to remove favorite", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !removed {
		http.NotFound(w, r)
		return
	}
	redirectHome(w, r)
}

// UpdateSettings handles the settings form.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	next := h.svc.Settings()
	next.Theme = model.ThemeLight
	if r.FormValue("dark_theme") == "on" {
		next.Theme = model.ThemeDark
	}
	next.Animations = r.FormValue("animations") == "on"
	next.Notifications = r.FormValue("notifications") == "on"
	next.AutoSave = r.FormValue("auto_save") == "on"
	if v := r.FormValue("max_history"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.renderDashboard(w, r, http.StatusBadRequest, h.formRequest(), "history size must be a number")
			return
		}
		next.MaxHistory = n
	}

	if err := h.svc.UpdateSettings(r.Context(), next); err != nil {
		if application.IsUserError(err) {
			h.renderDashboard(w, r, http.StatusBadRequest, h.formRequest(), err.Error())
			return
		}
		h.logger.Error("failed to update settings", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

// About renders the about page.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.renderDocument(w, r, "about")
}

// Privacy renders the privacy page.
func (h *Handler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.renderDocument(w, r, "privacy")
}

func (h *Handler) renderDocument(w http.ResponseWriter, r *http.Request, name string) {
	title, html, err := renderDocument(name)
	if err != nil {
		h.logger.Error("failed to render document", "document", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page := templates.Document(vm.DocumentViewModel{
		Title: title,
		Theme: string(h.svc.Settings().Theme),
		HTML:  html,
	})
	h.render(w, r, http.StatusOK, page)
}

// formRequest returns the values the generator form should show: the last
// submission, or the defaults derived from the settings.
func (h *Handler) formRequest() model.GenerationRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.lastRequest != nil {
		return *h.lastRequest
	}
	return model.DefaultGenerationRequest(h.svc.Settings())
}

func (h *Handler) renderDashboard(w http.ResponseWriter, r *http.Request, status int, form model.GenerationRequest, errMsg string) {
	settings := h.svc.Settings()
	data := vm.DashboardViewModel{
		CSRFToken: csrfToken(w, r),
		Theme:     string(settings.Theme),
		Animated:  settings.Animations,
		Error:     errMsg,
		Form:      toFormViewModel(form),
		Results:   toResultViewModels(h.svc.Results()),
		History:   toHistoryViewModels(h.printer, h.svc.History()),
		Favorites: toFavoriteViewModels(h.svc.Favorites()),
		Stats:     toStatsViewModel(h.printer, h.svc.Stats()),
		Settings: vm.SettingsViewModel{
			DarkTheme:     settings.Theme == model.ThemeDark,
			Animations:    settings.Animations,
			Notifications: settings.Notifications,
			AutoSave:      settings.AutoSave,
			MaxHistory:    settings.MaxHistory,
			HistoryLimit:  application.MaxHistoryLimit,
		},
	}
	h.render(w, r, status, templates.Dashboard(data))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseGenerateForm reads the generator form. Unchecked boxes are absent
// from the submission, so every flag defaults to false. The returned request
// is usable for re-rendering the form even when err is non-nil.
func parseGenerateForm(r *http.Request, settings model.Settings) (model.GenerationRequest, error) {
	req := model.DefaultGenerationRequest(settings)
	if err := r.ParseForm(); err != nil {
		return req, errors.New("invalid form submission")
	}

	on := func(name string) bool { return r.PostForm.Get(name) == "on" }
	var errs []error
	number := func(name string, fallback int) int {
		v := strings.TrimSpace(r.PostForm.Get(name))
		if v == "" {
			return fallback
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be a number", strings.ReplaceAll(name, "_", " ")))
			return fallback
		}
		return n
	}

	req.UsernameEnabled = on("username_enabled")
	req.PasswordEnabled = on("password_enabled")
	req.Count = number("count", req.Count)
	req.Username = model.UsernameConfig{
		Length: number("username_length", req.Username.Length),
		Style:  model.ParseStyle(r.PostForm.Get("style")),
		Prefix: r.PostForm.Get("prefix"),
		Suffix: r.PostForm.Get("suffix"),
	}
	req.Password = model.PasswordConfig{
		Length:           number("password_length", req.Password.Length),
		IncludeUppercase: on("uppercase"),
		IncludeLowercase: on("lowercase"),
		IncludeNumbers:   on("numbers"),
		IncludeSymbols:   on("symbols"),
		ExcludeSimilar:   on("exclude_similar"),
		ExcludeAmbiguous: on("exclude_ambiguous"),
	}

	return req, errors.Join(errs...)
}
