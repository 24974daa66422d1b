// Package cli implements the genpassctl command-line driving adapter using
// Cobra. Every command works on the same state as the web server through the
// CredentialService.
package cli

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/genpass/internal/application"
)

// Deps wires the commands to the application layer.
type Deps struct {
	Service *application.CredentialService

	// LogLevel is lowered to debug when --verbose is given. Optional.
	LogLevel *slog.LevelVar

	// Clipboard receives the text of --copy. Defaults to the system clipboard.
	Clipboard func(text string) error

	// Now defaults to time.Now.
	Now func() time.Time
}

// NewRootCmd builds the genpassctl command tree.
func NewRootCmd(d Deps) *cobra.Command {
	if d.Clipboard == nil {
		d.Clipboard = clipboard.WriteAll
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	var verbose bool
	root := &cobra.Command{
		Use:   "genpassctl",
		Short: "Generate usernames and passwords from the command line",
		Long: `genpassctl generates themed usernames and random passwords, scores password
strength, and manages the history, favorites and settings shared with the
GenPass Pro web interface.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verbose && d.LogLevel != nil {
				d.LogLevel.Set(slog.LevelDebug)
			}
			return d.Service.Load(cmd.Context())
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	root.AddCommand(
		newGenerateCmd(d),
		newStrengthCmd(d),
		newHistoryCmd(d),
		newFavoritesCmd(d),
		newExportCmd(d),
		newSettingsCmd(d),
	)
	return root
}
