package httphandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/ericfisherdev/genpass/internal/adapter/driving/http"
	"github.com/ericfisherdev/genpass/internal/application"
	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// --- Mock implementations ---

type mockHistoryStore struct{}

func (m *mockHistoryStore) Add(_ context.Context, _ model.HistoryEntry) (int64, error) { return 1, nil }
func (m *mockHistoryStore) List(_ context.Context) ([]model.HistoryEntry, error)     { return nil, nil }
func (m *mockHistoryStore) Trim(_ context.Context, _ int) error                       { return nil }
func (m *mockHistoryStore) Clear(_ context.Context) error                             { return nil }

type mockFavoriteStore struct {
	err error
}

func (m *mockFavoriteStore) Add(_ context.Context, _ model.FavoriteEntry) error { return m.err }
func (m *mockFavoriteStore) Remove(_ context.Context, _ string) error           { return m.err }
func (m *mockFavoriteStore) List(_ context.Context) ([]model.FavoriteEntry, error) {
	return nil, nil
}
func (m *mockFavoriteStore) Clear(_ context.Context) error { return m.err }

type mockSettingsStore struct {
	saved *model.Settings
	total int64
}

func (m *mockSettingsStore) GetSettings(_ context.Context, defaults model.Settings) (model.Settings, error) {
	return defaults, nil
}
func (m *mockSettingsStore) SetSettings(_ context.Context, s model.Settings) error {
	m.saved = &s
	return nil
}
func (m *mockSettingsStore) TotalGenerated(_ context.Context) (int64, error) { return m.total, nil }
func (m *mockSettingsStore) AddGenerated(_ context.Context, n int) (int64, error) {
	m.total += int64(n)
	return m.total, nil
}

func newTestService(t *testing.T, favorites *mockFavoriteStore) *application.CredentialService {
	t.Helper()
	rnd := application.NewRandom(nil)
	store := application.NewResultStore(
		application.NewUsernameGenerator(rnd, nil),
		application.NewPasswordGenerator(rnd),
		model.DefaultSettings().MaxHistory,
	)
	settings := &mockSettingsStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := application.NewCredentialService(store, &mockHistoryStore{}, favorites, settings, settings, model.DefaultSettings(), logger)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func setupMux(t *testing.T) (http.Handler, *application.CredentialService) {
	t.Helper()
	svc := newTestService(t, &mockFavoriteStore{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return httphandler.NewServeMux(httphandler.NewHandler(svc, logger), logger), svc
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func do(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func generate(t *testing.T, mux http.Handler, body string) []httphandler.ResultResponse {
	t.Helper()
	rec := do(mux, http.MethodPost, "/api/v1/generate", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var results []httphandler.ResultResponse
	decodeJSON(t, rec, &results)
	return results
}

func TestHealth(t *testing.T) {
	mux, _ := setupMux(t)

	rec := do(mux, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["time"])
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantCount    int
		wantUsername bool
		wantPassword bool
		passwordLen  int
	}{
		{
			name:         "defaults from settings",
			body:         "",
			wantCount:    1,
			wantUsername: true,
			wantPassword: true,
			passwordLen:  12,
		},
		{
			name:         "batch with explicit options",
			body:         `{"count":3,"username":{"length":8,"style":"gamer"},"password":{"length":16,"include_symbols":false}}`,
			wantCount:    3,
			wantUsername: true,
			wantPassword: true,
			passwordLen:  16,
		},
		{
			name:         "password only",
			body:         `{"username_enabled":false,"count":2}`,
			wantCount:    2,
			wantUsername: false,
			wantPassword: true,
			passwordLen:  12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := setupMux(t)

			results := generate(t, mux, tt.body)

			require.Len(t, results, tt.wantCount)
			for _, r := range results {
				assert.NotEmpty(t, r.ID)
				assert.Equal(t, tt.wantUsername, r.Username != nil)
				require.Equal(t, tt.wantPassword, r.Password != nil)
				if tt.wantPassword {
					assert.Len(t, *r.Password, tt.passwordLen)
					require.NotNil(t, r.Strength)
					assert.Equal(t, model.MaxStrengthScore, r.Strength.Max)
				}
			}
		})
	}
}

func TestGenerate_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "malformed json", body: `{"count":`, wantMsg: "invalid request body"},
		{name: "unknown field", body: `{"bogus":true}`, wantMsg: "invalid request body"},
		{name: "no generator", body: `{"username_enabled":false,"password_enabled":false}`, wantMsg: "enable at least one generator"},
		{name: "no character class", body: `{"password":{"include_uppercase":false,"include_lowercase":false,"include_numbers":false,"include_symbols":false}}`, wantMsg: "character type"},
		{name: "count too large", body: `{"count":1000}`, wantMsg: "invalid credential count"},
		{name: "username length zero", body: `{"username":{"length":0}}`, wantMsg: "invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := setupMux(t)

			rec := do(mux, http.MethodPost, "/api/v1/generate", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp map[string]string
			decodeJSON(t, rec, &resp)
			assert.Contains(t, resp["error"], tt.wantMsg)
		})
	}
}

func TestResultsSelectionAndClear(t *testing.T) {
	mux, _ := setupMux(t)
	results := generate(t, mux, `{"count":3}`)

	rec := do(mux, http.MethodPost, "/api/v1/results/"+results[1].ID+"/select", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var sel httphandler.SelectResponse
	decodeJSON(t, rec, &sel)
	assert.True(t, sel.Selected)

	rec = do(mux, http.MethodPost, "/api/v1/results/missing/select", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(mux, http.MethodPost, "/api/v1/results/select-all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all httphandler.SelectAllResponse
	decodeJSON(t, rec, &all)
	assert.Equal(t, 3, all.Selected)

	rec = do(mux, http.MethodGet, "/api/v1/results", "")
	var listed []httphandler.ResultResponse
	decodeJSON(t, rec, &listed)
	require.Len(t, listed, 3)
	for _, r := range listed {
		assert.True(t, r.Selected)
	}

	rec = do(mux, http.MethodDelete, "/api/v1/results", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(mux, http.MethodGet, "/api/v1/results", "")
	decodeJSON(t, rec, &listed)
	assert.Empty(t, listed)
}

func TestFavorites(t *testing.T) {
	mux, _ := setupMux(t)
	results := generate(t, mux, `{"count":2}`)

	rec := do(mux, http.MethodPost, "/api/v1/results/"+results[0].ID+"/favorite", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var toggled httphandler.FavoriteToggleResponse
	decodeJSON(t, rec, &toggled)
	assert.True(t, toggled.Favorite)

	rec = do(mux, http.MethodGet, "/api/v1/favorites", "")
	var favs []httphandler.FavoriteResponse
	decodeJSON(t, rec, &favs)
	require.Len(t, favs, 1)
	assert.Equal(t, results[0].ID, favs[0].ID)

	rec = do(mux, http.MethodDelete, "/api/v1/favorites/"+results[0].ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(mux, http.MethodDelete, "/api/v1/favorites/"+results[0].ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(mux, http.MethodPost, "/api/v1/results/nope/favorite", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(mux, http.MethodDelete, "/api/v1/favorites", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestToggleFavorite_StoreError(t *testing.T) {
	svc := newTestService(t, &mockFavoriteStore{err: errors.New("database is locked")})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := httphandler.NewServeMux(httphandler.NewHandler(svc, logger), logger)
	results := generate(t, mux, "")

	rec := do(mux, http.MethodPost, "/api/v1/results/"+results[0].ID+"/favorite", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "internal server error", resp["error"])
}

func TestHistory(t *testing.T) {
	mux, _ := setupMux(t)
	generate(t, mux, `{"count":2}`)
	generate(t, mux, `{"count":1}`)

	rec := do(mux, http.MethodGet, "/api/v1/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var history []httphandler.HistoryResponse
	decodeJSON(t, rec, &history)
	require.Len(t, history, 2)
	assert.Equal(t, 1, history[0].Count, "newest first")
	assert.Len(t, history[1].Results, 2)

	rec = do(mux, http.MethodDelete, "/api/v1/history", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(mux, http.MethodGet, "/api/v1/history", "")
	decodeJSON(t, rec, &history)
	assert.Empty(t, history)
}

func TestExport(t *testing.T) {
	mux, _ := setupMux(t)

	rec := do(mux, http.MethodGet, "/api/v1/export?format=csv", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "nothing to export yet")

	results := generate(t, mux, `{"count":3}`)

	rec = do(mux, http.MethodGet, "/api/v1/export?format=csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "genpass-export-")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 4, "header plus one row per result")

	do(mux, http.MethodPost, "/api/v1/results/"+results[2].ID+"/select", "")
	rec = do(mux, http.MethodGet, "/api/v1/export?format=json&selected=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := application.ParseExportJSON(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, doc.Results, 1)
	assert.Equal(t, results[2].ID, doc.Results[0].ID)

	rec = do(mux, http.MethodGet, "/api/v1/export?format=txt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "GenPass Pro")

	rec = do(mux, http.MethodGet, "/api/v1/export?format=xml", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(mux, http.MethodGet, "/api/v1/export?selected=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStrength(t *testing.T) {
	tests := []struct {
		password  string
		wantScore int
		wantLabel string
	}{
		{password: "", wantScore: 0, wantLabel: "No Password"},
		{password: "abc", wantScore: 2, wantLabel: "Weak"},
		{password: "Ab3!Ab3!Ab3!Ab3!", wantScore: 7, wantLabel: "Strong"},
	}

	for _, tt := range tests {
		t.Run(tt.wantLabel, func(t *testing.T) {
			mux, _ := setupMux(t)
			body, err := json.Marshal(httphandler.StrengthRequest{Password: tt.password})
			require.NoError(t, err)

			rec := do(mux, http.MethodPost, "/api/v1/strength", string(body))

			require.Equal(t, http.StatusOK, rec.Code)
			var resp httphandler.StrengthResponse
			decodeJSON(t, rec, &resp)
			assert.Equal(t, tt.wantScore, resp.Score)
			assert.Equal(t, tt.wantLabel, resp.Label)
			assert.Equal(t, 9, resp.Max)
		})
	}
}

func TestSettings(t *testing.T) {
	mux, svc := setupMux(t)

	rec := do(mux, http.MethodGet, "/api/v1/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got httphandler.SettingsRequest
	decodeJSON(t, rec, &got)
	assert.Equal(t, "light", got.Theme)
	assert.Equal(t, 50, got.MaxHistory)

	rec = do(mux, http.MethodPut, "/api/v1/settings", `{"theme":"dark","max_history":10}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &got)
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, 10, got.MaxHistory)
	assert.Equal(t, 12, got.DefaultPasswordLength, "omitted fields keep their value")
	assert.Equal(t, model.ThemeDark, svc.Settings().Theme)

	rec = do(mux, http.MethodPut, "/api/v1/settings", `{"theme":"neon"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, model.ThemeDark, svc.Settings().Theme)
}

func TestStats(t *testing.T) {
	mux, _ := setupMux(t)
	generate(t, mux, `{"count":4}`)

	rec := do(mux, http.MethodGet, "/api/v1/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var stats httphandler.StatsResponse
	decodeJSON(t, rec, &stats)
	assert.Equal(t, int64(4), stats.TotalGenerated)
	assert.Equal(t, 4, stats.LiveResults)
	assert.Equal(t, 1, stats.HistoryEntries)
}

func TestListStyles(t *testing.T) {
	mux, _ := setupMux(t)

	rec := do(mux, http.MethodGet, "/api/v1/styles", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var styles []string
	decodeJSON(t, rec, &styles)
	assert.Contains(t, styles, "gamer")
	assert.Contains(t, styles, "random")
	assert.Len(t, styles, len(model.Styles()))
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := http.NewServeMux()
	mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	handler := httphandler.ApplyMiddleware(mux, logger)

	rec := do(handler, http.MethodGet, "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestMiddleware_NoStoreHeaders(t *testing.T) {
	mux, _ := setupMux(t)

	rec := do(mux, http.MethodPost, "/api/v1/generate", `{"count":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestLoggingMiddleware_OmitsQueryString(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mux := http.NewServeMux()
	mux.HandleFunc("GET /echo", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
	handler := httphandler.ApplyMiddleware(mux, logger)

	rec := do(handler, http.MethodGet, "/echo?password=hunter2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "/echo", entry["path"])
	assert.InDelta(t, 5, entry["bytes"], 0)
	assert.NotContains(t, buf.String(), "hunter2")
}
