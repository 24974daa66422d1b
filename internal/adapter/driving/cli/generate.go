package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/genpass/internal/application"
	"github.com/ericfisherdev/genpass/internal/domain/model"
)

type generateOptions struct {
	count            int
	usernames        bool
	passwords        bool
	usernameLength   int
	style            string
	prefix           string
	suffix           string
	passwordLength   int
	upper            bool
	lower            bool
	numbers          bool
	symbols          bool
	excludeSimilar   bool
	excludeAmbiguous bool
	format           string
	copy             bool
	favorite         bool
}

func newGenerateCmd(d Deps) *cobra.Command {
	var o generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of usernames and/or passwords",
		Long: `Generate a batch of credentials. Lengths default to the stored settings.
Results are recorded in the history exactly as in the web interface.`,
		Example: `  genpassctl generate -n 5 --style gamer
  genpassctl generate --usernames=false -l 24 --symbols=false --copy
  genpassctl generate -n 3 --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var format application.ExportFormat
			if o.format != "" {
				f, err := application.ParseExportFormat(o.format)
				if err != nil {
					return err
				}
				format = f
			}

			settings := d.Service.Settings()
			if !cmd.Flags().Changed("username-length") {
				o.usernameLength = settings.DefaultUsernameLength
			}
			if !cmd.Flags().Changed("length") {
				o.passwordLength = settings.DefaultPasswordLength
			}

			results, err := d.Service.Generate(cmd.Context(), o.request())
			if err != nil {
				return err
			}

			if o.favorite {
				for i, r := range results {
					favorite, _, err := d.Service.ToggleFavorite(cmd.Context(), r.ID)
					if err != nil {
						return err
					}
					results[i].Favorite = favorite
				}
			}

			if format == "" {
				printResults(cmd.OutOrStdout(), results)
			} else {
				out, err := application.Export(format, results, d.Now())
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(out); err != nil {
					return err
				}
			}

			if o.copy {
				if err := d.Clipboard(application.ClipboardText(results)); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Copied %d result(s) to the clipboard.\n", len(results))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&o.count, "count", "n", 1, fmt.Sprintf("Number of results (1-%d)", application.MaxBatchCount))
	f.BoolVar(&o.usernames, "usernames", true, "Generate usernames")
	f.BoolVar(&o.passwords, "passwords", true, "Generate passwords")
	f.IntVar(&o.usernameLength, "username-length", 0, "Username length (default from settings)")
	f.StringVar(&o.style, "style", string(model.DefaultStyle), "Username style: professional, gamer, creative, tech, fantasy, cool, cute, random")
	f.StringVar(&o.prefix, "prefix", "", "Custom username prefix")
	f.StringVar(&o.suffix, "suffix", "", "Custom username suffix")
	f.IntVarP(&o.passwordLength, "length", "l", 0, "Password length (default from settings)")
	f.BoolVar(&o.upper, "upper", true, "Include uppercase letters")
	f.BoolVar(&o.lower, "lower", true, "Include lowercase letters")
	f.BoolVar(&o.numbers, "numbers", true, "Include digits")
	f.BoolVar(&o.symbols, "symbols", true, "Include symbols")
	f.BoolVar(&o.excludeSimilar, "exclude-similar", false, "Exclude look-alike characters (0O1lI)")
	f.BoolVar(&o.excludeAmbiguous, "exclude-ambiguous", false, "Exclude ambiguous symbols")
	f.StringVar(&o.format, "format", "", "Print as txt, csv or json instead of a table")
	f.BoolVar(&o.copy, "copy", false, "Copy the results to the clipboard")
	f.BoolVar(&o.favorite, "favorite", false, "Add every result to the favorites")
	return cmd
}

func (o generateOptions) request() model.GenerationRequest {
	return model.GenerationRequest{
		UsernameEnabled: o.usernames,
		PasswordEnabled: o.passwords,
		Count:           o.count,
		Username: model.UsernameConfig{
			Length: o.usernameLength,
			Style:  model.ParseStyle(o.style),
			Prefix: o.prefix,
			Suffix: o.suffix,
		},
		Password: model.PasswordConfig{
			Length:           o.passwordLength,
			IncludeUppercase: o.upper,
			IncludeLowercase: o.lower,
			IncludeNumbers:   o.numbers,
			IncludeSymbols:   o.symbols,
			ExcludeSimilar:   o.excludeSimilar,
			ExcludeAmbiguous: o.excludeAmbiguous,
		},
	}
}

// printResults writes results as an aligned table. Absent parts print as "-".
func printResults(out io.Writer, results []model.CredentialResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tUSERNAME\tPASSWORD\tSTRENGTH")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, orDash(r.Username), orDash(r.Password), strengthText(r.Password))
	}
	w.Flush()
}

func strengthText(password string) string {
	if password == "" {
		return "-"
	}
	s := application.ScoreStrength(password)
	return fmt.Sprintf("%s (%d/%d)", s.Label, s.Score, model.MaxStrengthScore)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
