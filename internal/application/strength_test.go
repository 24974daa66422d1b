package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

func TestScoreStrength(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantScore int
		wantLabel model.StrengthLabel
	}{
		{name: "empty", password: "", wantScore: 0, wantLabel: model.StrengthNone},
		{name: "short lowercase", password: "abc", wantScore: 2, wantLabel: model.StrengthWeak},
		{name: "repeated lowercase", password: "aaaaaaaa", wantScore: 2, wantLabel: model.StrengthWeak},
		{name: "eight mixed", password: "Abcdefg1", wantScore: 5, wantLabel: model.StrengthMedium},
		{name: "twelve mixed", password: "Abcdefgh1234", wantScore: 6, wantLabel: model.StrengthStrong},
		// 16 characters but only 4 distinct: variety fails and the 20-char bonus is out of reach.
		{name: "sixteen low variety", password: "Ab3!Ab3!Ab3!Ab3!", wantScore: 7, wantLabel: model.StrengthStrong},
		{name: "sixteen high variety", password: "Ab3!Cd4@Ef5#Gh6$", wantScore: 8, wantLabel: model.StrengthVeryStrong},
		{name: "twenty high variety", password: "Ab3!Cd4@Ef5#Gh6$Ij7%", wantScore: 9, wantLabel: model.StrengthVeryStrong},
		{name: "unicode symbol counts as symbol", password: "Abcdefg1é", wantScore: 6, wantLabel: model.StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreStrength(tt.password)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestScoreStrength_NeverExceedsMax(t *testing.T) {
	got := ScoreStrength("Ab3!Cd4@Ef5#Gh6$Ij7%Kl8^Mn9&")
	assert.Equal(t, model.MaxStrengthScore, got.Score)
}

func TestStrengthLabel_Thresholds(t *testing.T) {
	assert.Equal(t, model.StrengthWeak, strengthLabel(3))
	assert.Equal(t, model.StrengthMedium, strengthLabel(4))
	assert.Equal(t, model.StrengthMedium, strengthLabel(5))
	assert.Equal(t, model.StrengthStrong, strengthLabel(6))
	assert.Equal(t, model.StrengthStrong, strengthLabel(7))
	assert.Equal(t, model.StrengthVeryStrong, strengthLabel(8))
}
