package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/genpass/internal/application"
	"github.com/ericfisherdev/genpass/internal/domain/model"
)

const (
	sourceLatest    = "latest"
	sourceFavorites = "favorites"
)

func newExportCmd(d Deps) *cobra.Command {
	var (
		source string
		format string
		output string
		copyTo bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the latest batch or the favorites",
		Long: `Export the most recent history entry or the favorites as txt, csv or json.
With --output the export is written to a file; "auto" picks a timestamped name.`,
		Example: `  genpassctl export --format csv
  genpassctl export --from favorites --format json -o auto`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := application.ParseExportFormat(format)
			if err != nil {
				return err
			}

			results, err := exportSource(d, source)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return application.ErrNothingToExport
			}

			now := d.Now()
			data, err := application.Export(f, results, now)
			if err != nil {
				return err
			}

			switch output {
			case "", "-":
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
			default:
				if output == "auto" {
					output = application.ExportFilename(f, now)
				}
				if err := os.WriteFile(output, data, 0o600); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d result(s) to %s.\n", len(results), output)
			}

			if copyTo {
				if err := d.Clipboard(string(data)); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "from", sourceLatest, "What to export: latest or favorites")
	cmd.Flags().StringVar(&format, "format", string(application.FormatJSON), "Export format: txt, csv or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", `Write to a file instead of stdout ("auto" for a timestamped name)`)
	cmd.Flags().BoolVar(&copyTo, "copy", false, "Also copy the export to the clipboard")
	return cmd
}

func exportSource(d Deps, source string) ([]model.CredentialResult, error) {
	switch source {
	case sourceLatest:
		history := d.Service.History()
		if len(history) == 0 {
			return nil, nil
		}
		return history[0].Results, nil
	case sourceFavorites:
		favorites := d.Service.Favorites()
		results := make([]model.CredentialResult, 0, len(favorites))
		for _, f := range favorites {
			results = append(results, model.CredentialResult{
				ID:        f.ID,
				CreatedAt: f.CreatedAt,
				Username:  f.Username,
				Password:  f.Password,
				Favorite:  true,
			})
		}
		return results, nil
	}
	return nil, fmt.Errorf("%w: unknown export source %q", application.ErrInvalidInput, source)
}
