package web

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	vm "github.com/ericfisherdev/genpass/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/genpass/internal/application"
	"github.com/ericfisherdev/genpass/internal/domain/model"
)

var styleTitle = cases.Title(language.English)

// toFormViewModel converts a generation request into form values.
func toFormViewModel(req model.GenerationRequest) vm.FormViewModel {
	styles := model.Styles()
	options := make([]vm.StyleOption, 0, len(styles))
	for _, s := range styles {
		options = append(options, vm.StyleOption{
			Value:    string(s),
			Label:    styleTitle.String(string(s)),
			Selected: s == req.Username.Style,
		})
	}

	return vm.FormViewModel{
		UsernameEnabled:  req.UsernameEnabled,
		PasswordEnabled:  req.PasswordEnabled,
		Count:            req.Count,
		MaxCount:         application.MaxBatchCount,
		UsernameLength:   req.Username.Length,
		MaxUsername:      application.MaxUsernameLength,
		Style:            string(req.Username.Style),
		Styles:           options,
		Prefix:           req.Username.Prefix,
		Suffix:           req.Username.Suffix,
		PasswordLength:   req.Password.Length,
		MaxPassword:      application.MaxPasswordLength,
		IncludeUppercase: req.Password.IncludeUppercase,
		IncludeLowercase: req.Password.IncludeLowercase,
		IncludeNumbers:   req.Password.IncludeNumbers,
		IncludeSymbols:   req.Password.IncludeSymbols,
		ExcludeSimilar:   req.Password.ExcludeSimilar,
		ExcludeAmbiguous: req.Password.ExcludeAmbiguous,
	}
}

// toStrengthViewModel converts a strength rating into meter values.
func toStrengthViewModel(s model.Strength) vm.StrengthViewModel {
	return vm.StrengthViewModel{
		Score:   s.Score,
		Max:     model.MaxStrengthScore,
		Label:   string(s.Label),
		Percent: s.Score * 100 / model.MaxStrengthScore,
		Class:   "strength-" + strings.ReplaceAll(strings.ToLower(string(s.Label)), " ", "-"),
	}
}

func toResultViewModels(results []model.CredentialResult) []vm.ResultViewModel {
	vms := make([]vm.ResultViewModel, 0, len(results))
	for i, r := range results {
		vms = append(vms, vm.ResultViewModel{
			ID:          r.ID,
			Index:       i + 1,
			Time:        application.FormatClock(r.CreatedAt),
			Username:    r.Username,
			Password:    r.Password,
			HasUsername: r.HasUsername(),
			HasPassword: r.HasPassword(),
			Strength:    toStrengthViewModel(application.ScoreStrength(r.Password)),
			Selected:    r.Selected,
			Favorite:    r.Favorite,
		})
	}
	return vms
}

func toHistoryViewModels(p *message.Printer, entries []model.HistoryEntry) []vm.HistoryViewModel {
	vms := make([]vm.HistoryViewModel, 0, len(entries))
	for _, e := range entries {
		vms = append(vms, vm.HistoryViewModel{
			Time:    e.CreatedAt.Local().Format("Jan 2, 03:04 PM"),
			Summary: historySummary(p, e),
			Results: toResultViewModels(e.Results),
		})
	}
	return vms
}

// historySummary describes an entry, e.g. "3 usernames & passwords".
func historySummary(p *message.Printer, e model.HistoryEntry) string {
	var kind string
	switch {
	case e.UsernameEnabled && e.PasswordEnabled:
		kind = "username & password"
		if e.Count != 1 {
			kind = "usernames & passwords"
		}
	case e.UsernameEnabled:
		kind = "username"
		if e.Count != 1 {
			kind = "usernames"
		}
	default:
		kind = "password"
		if e.Count != 1 {
			kind = "passwords"
		}
	}
	return p.Sprintf("%d %s", e.Count, kind)
}

func toFavoriteViewModels(favorites []model.FavoriteEntry) []vm.FavoriteViewModel {
	vms := make([]vm.FavoriteViewModel, 0, len(favorites))
	for _, f := range favorites {
		vms = append(vms, vm.FavoriteViewModel{
			ID:          f.ID,
			Time:        application.FormatClock(f.CreatedAt),
			Username:    f.Username,
			Password:    f.Password,
			HasUsername: f.Username != "",
			HasPassword: f.Password != "",
			Strength:    toStrengthViewModel(application.ScoreStrength(f.Password)),
		})
	}
	return vms
}

// toStatsViewModel formats the counters with locale digit grouping.
func toStatsViewModel(p *message.Printer, s application.Stats) vm.StatsViewModel {
	return vm.StatsViewModel{
		TotalGenerated: p.Sprintf("%d", s.TotalGenerated),
		Favorites:      p.Sprintf("%d", s.Favorites),
		HistoryEntries: p.Sprintf("%d", s.HistoryEntries),
		Selected:       s.Selected,
		LiveResults:    s.LiveResults,
	}
}
