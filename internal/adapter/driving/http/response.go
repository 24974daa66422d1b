package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/genpass/internal/application"
	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// UsernameOptions is the JSON form of model.UsernameConfig.
type UsernameOptions struct {
	Length int    `json:"length"`
	Style  string `json:"style"`
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

// PasswordOptions is the JSON form of model.PasswordConfig.
type PasswordOptions struct {
	Length           int  `json:"length"`
	IncludeUppercase bool `json:"include_uppercase"`
	IncludeLowercase bool `json:"include_lowercase"`
	IncludeNumbers   bool `json:"include_numbers"`
	IncludeSymbols   bool `json:"include_symbols"`
	ExcludeSimilar   bool `json:"exclude_similar"`
	ExcludeAmbiguous bool `json:"exclude_ambiguous"`
}

// GenerateRequest is the JSON body for the generate endpoint. Omitted fields
// keep the defaults derived from the current settings.
type GenerateRequest struct {
	UsernameEnabled bool            `json:"username_enabled"`
	PasswordEnabled bool            `json:"password_enabled"`
	Count           int             `json:"count"`
	Username        UsernameOptions `json:"username"`
	Password        PasswordOptions `json:"password"`
}

// StrengthRequest is the JSON body for the strength endpoint.
type StrengthRequest struct {
	Password string `json:"password"`
}

// SettingsRequest is the JSON body for the settings update endpoint, and the
// response of the settings read endpoint.
type SettingsRequest struct {
	Theme                 string `json:"theme"`
	Animations            bool   `json:"animations"`
	Notifications         bool   `json:"notifications"`
	AutoSave              bool   `json:"auto_save"`
	MaxHistory            int    `json:"max_history"`
	DefaultUsernameLength int    `json:"default_username_length"`
	DefaultPasswordLength int    `json:"default_password_length"`
}

// StrengthResponse is the JSON representation of a password strength rating.
type StrengthResponse struct {
	Score int    `json:"score"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}

// ResultResponse is the JSON representation of a live credential result.
// Absent values are null.
type ResultResponse struct {
	ID        string            `json:"id"`
	CreatedAt string            `json:"created_at"`
	Username  *string           `json:"username"`
	Password  *string           `json:"password"`
	Strength  *StrengthResponse `json:"strength"`
	Selected  bool              `json:"selected"`
	Favorite  bool              `json:"favorite"`
}

// HistoryResponse is the JSON representation of a history entry.
type HistoryResponse struct {
	ID              int64            `json:"id"`
	CreatedAt       string           `json:"created_at"`
	Count           int              `json:"count"`
	UsernameEnabled bool             `json:"username_enabled"`
	PasswordEnabled bool             `json:"password_enabled"`
	Results         []ResultResponse `json:"results"`
}

// FavoriteResponse is the JSON representation of a favorite.
type FavoriteResponse struct {
	ID        string            `json:"id"`
	CreatedAt string            `json:"created_at"`
	Username  *string           `json:"username"`
	Password  *string           `json:"password"`
	Strength  *StrengthResponse `json:"strength"`
}

// SelectResponse reports the selection flag of a result.
type SelectResponse struct {
	ID       string `json:"id"`
	Selected bool   `json:"selected"`
}

// SelectAllResponse reports how many results are selected.
type SelectAllResponse struct {
	Selected int `json:"selected"`
}

// FavoriteToggleResponse reports the favorite flag of a result.
type FavoriteToggleResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

// StatsResponse is the JSON representation of the status counters.
type StatsResponse struct {
	TotalGenerated int64 `json:"total_generated"`
	Favorites      int   `json:"favorites"`
	HistoryEntries int   `json:"history_entries"`
	LiveResults    int   `json:"live_results"`
	Selected       int   `json:"selected"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toGenerationRequest applies the decoded body onto a model request.
func (g GenerateRequest) toGenerationRequest() model.GenerationRequest {
	return model.GenerationRequest{
		UsernameEnabled: g.UsernameEnabled,
		PasswordEnabled: g.PasswordEnabled,
		Count:           g.Count,
		Username: model.UsernameConfig{
			Length: g.Username.Length,
			Style:  model.ParseStyle(g.Username.Style),
			Prefix: g.Username.Prefix,
			Suffix: g.Username.Suffix,
		},
		Password: model.PasswordConfig{
			Length:           g.Password.Length,
			IncludeUppercase: g.Password.IncludeUppercase,
			IncludeLowercase: g.Password.IncludeLowercase,
			IncludeNumbers:   g.Password.IncludeNumbers,
			IncludeSymbols:   g.Password.IncludeSymbols,
			ExcludeSimilar:   g.Password.ExcludeSimilar,
			ExcludeAmbiguous: g.Password.ExcludeAmbiguous,
		},
	}
}

// newGenerateRequest returns the body defaults for the given settings.
func newGenerateRequest(s model.Settings) GenerateRequest {
	def := model.DefaultGenerationRequest(s)
	return GenerateRequest{
		UsernameEnabled: def.UsernameEnabled,
		PasswordEnabled: def.PasswordEnabled,
		Count:           def.Count,
		Username: UsernameOptions{
			Length: def.Username.Length,
			Style:  string(def.Username.Style),
		},
		Password: PasswordOptions{
			Length:           def.Password.Length,
			IncludeUppercase: def.Password.IncludeUppercase,
			IncludeLowercase: def.Password.IncludeLowercase,
			IncludeNumbers:   def.Password.IncludeNumbers,
			IncludeSymbols:   def.Password.IncludeSymbols,
		},
	}
}

func (s SettingsRequest) toSettings() model.Settings {
	return model.Settings{
		Theme:                 model.Theme(s.Theme),
		Animations:            s.Animations,
		Notifications:         s.Notifications,
		AutoSave:              s.AutoSave,
		MaxHistory:            s.MaxHistory,
		DefaultUsernameLength: s.DefaultUsernameLength,
		DefaultPasswordLength: s.DefaultPasswordLength,
	}
}

func toSettingsResponse(s model.Settings) SettingsRequest {
	return SettingsRequest{
		Theme:                 string(s.Theme),
		Animations:            s.Animations,
		Notifications:         s.Notifications,
		AutoSave:              s.AutoSave,
		MaxHistory:            s.MaxHistory,
		DefaultUsernameLength: s.DefaultUsernameLength,
		DefaultPasswordLength: s.DefaultPasswordLength,
	}
}

func toStrengthResponse(s model.Strength) StrengthResponse {
	return StrengthResponse{Score: s.Score, Max: model.MaxStrengthScore, Label: string(s.Label)}
}

// optional returns nil for an empty value so absent fields encode as null.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func passwordStrength(password string) *StrengthResponse {
	if password == "" {
		return nil
	}
	s := toStrengthResponse(application.ScoreStrength(password))
	return &s
}

func toResultResponse(r model.CredentialResult) ResultResponse {
	return ResultResponse{
		ID:        r.ID,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
		Username:  optional(r.Username),
		Password:  optional(r.Password),
		Strength:  passwordStrength(r.Password),
		Selected:  r.Selected,
		Favorite:  r.Favorite,
	}
}

func toResultResponses(results []model.CredentialResult) []ResultResponse {
	resp := make([]ResultResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, toResultResponse(r))
	}
	return resp
}

func toHistoryResponse(e model.HistoryEntry) HistoryResponse {
	return HistoryResponse{
		ID:              e.ID,
		CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339Nano),
		Count:           e.Count,
		UsernameEnabled: e.UsernameEnabled,
		PasswordEnabled: e.PasswordEnabled,
		Results:         toResultResponses(e.Results),
	}
}

func toFavoriteResponse(f model.FavoriteEntry) FavoriteResponse {
	return FavoriteResponse{
		ID:        f.ID,
		CreatedAt: f.CreatedAt.UTC().Format(time.RFC3339Nano),
		Username:  optional(f.Username),
		Password:  optional(f.Password),
		Strength:  passwordStrength(f.Password),
	}
}

func toStatsResponse(s application.Stats) StatsResponse {
	return StatsResponse{
		TotalGenerated: s.TotalGenerated,
		Favorites:      s.Favorites,
		HistoryEntries: s.HistoryEntries,
		LiveResults:    s.LiveResults,
		Selected:       s.Selected,
	}
}
