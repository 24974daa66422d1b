package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ericfisherdev/genpass/internal/application"
	"github.com/ericfisherdev/genpass/internal/domain/model"
)

func TestToStrengthViewModel(t *testing.T) {
	tests := []struct {
		strength    model.Strength
		wantPercent int
		wantClass   string
	}{
		{model.Strength{Score: 0, Label: model.StrengthNone}, 0, "strength-no-password"},
		{model.Strength{Score: 3, Label: model.StrengthWeak}, 33, "strength-weak"},
		{model.Strength{Score: 7, Label: model.StrengthStrong}, 77, "strength-strong"},
		{model.Strength{Score: 9, Label: model.StrengthVeryStrong}, 100, "strength-very-strong"},
	}

	for _, tt := range tests {
		t.Run(string(tt.strength.Label), func(t *testing.T) {
			got := toStrengthViewModel(tt.strength)
			assert.Equal(t, tt.wantPercent, got.Percent)
			assert.Equal(t, tt.wantClass, got.Class)
			assert.Equal(t, model.MaxStrengthScore, got.Max)
		})
	}
}

func TestToStatsViewModel_GroupsDigits(t *testing.T) {
	p := message.NewPrinter(language.English)

	got := toStatsViewModel(p, application.Stats{TotalGenerated: 1234567, Favorites: 3, HistoryEntries: 1000})

	assert.Equal(t, "1,234,567", got.TotalGenerated)
	assert.Equal(t, "3", got.Favorites)
	assert.Equal(t, "1,000", got.HistoryEntries)
}

func TestHistorySummary(t *testing.T) {
	p := message.NewPrinter(language.English)
	tests := []struct {
		entry model.HistoryEntry
		want  string
	}{
		{model.HistoryEntry{Count: 1, UsernameEnabled: true, PasswordEnabled: true}, "1 username & password"},
		{model.HistoryEntry{Count: 3, UsernameEnabled: true, PasswordEnabled: true}, "3 usernames & passwords"},
		{model.HistoryEntry{Count: 2, UsernameEnabled: true}, "2 usernames"},
		{model.HistoryEntry{Count: 1, PasswordEnabled: true}, "1 password"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, historySummary(p, tt.entry))
		})
	}
}

func TestToFormViewModel_MarksSelectedStyle(t *testing.T) {
	req := model.DefaultGenerationRequest(model.DefaultSettings())
	req.Username.Style = model.StyleFantasy

	got := toFormViewModel(req)

	assert.Len(t, got.Styles, len(model.Styles()))
	for _, opt := range got.Styles {
		assert.Equal(t, opt.Value == "fantasy", opt.Selected, opt.Value)
	}
	assert.Equal(t, "Fantasy", got.Styles[4].Label)
	assert.Equal(t, application.MaxBatchCount, got.MaxCount)
}

func TestToResultViewModels(t *testing.T) {
	created := time.Date(2026, 2, 10, 15, 4, 0, 0, time.UTC)
	results := []model.CredentialResult{
		{ID: "a", CreatedAt: created, Password: "Ab3!Ab3!Ab3!Ab3!", Selected: true},
		{ID: "b", CreatedAt: created, Username: "ShadowNinja"},
	}

	got := toResultViewModels(results)

	assert.Equal(t, 1, got[0].Index)
	assert.False(t, got[0].HasUsername)
	assert.True(t, got[0].Selected)
	assert.Equal(t, "Strong", got[0].Strength.Label)
	assert.Equal(t, "03:04 PM", got[0].Time)
	assert.Equal(t, 2, got[1].Index)
	assert.False(t, got[1].HasPassword)
}
