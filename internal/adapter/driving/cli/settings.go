package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

func newSettingsCmd(d Deps) *cobra.Command {
	var next model.Settings
	var theme string
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the stored settings",
		Example: `  genpassctl settings
  genpassctl settings --theme dark --max-history 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current := d.Service.Settings()
			f := cmd.Flags()
			if anyChanged(f, "theme", "animations", "notifications", "auto-save", "max-history", "username-length", "password-length") {
				merged := current
				if f.Changed("theme") {
					merged.Theme = model.Theme(theme)
				}
				if f.Changed("animations") {
					merged.Animations = next.Animations
				}
				if f.Changed("notifications") {
					merged.Notifications = next.Notifications
				}
				if f.Changed("auto-save") {
					merged.AutoSave = next.AutoSave
				}
				if f.Changed("max-history") {
					merged.MaxHistory = next.MaxHistory
				}
				if f.Changed("username-length") {
					merged.DefaultUsernameLength = next.DefaultUsernameLength
				}
				if f.Changed("password-length") {
					merged.DefaultPasswordLength = next.DefaultPasswordLength
				}
				if err := d.Service.UpdateSettings(cmd.Context(), merged); err != nil {
					return err
				}
				current = merged
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "theme\t%s\n", current.Theme)
			fmt.Fprintf(w, "animations\t%t\n", current.Animations)
			fmt.Fprintf(w, "notifications\t%t\n", current.Notifications)
			fmt.Fprintf(w, "auto-save\t%t\n", current.AutoSave)
			fmt.Fprintf(w, "max-history\t%d\n", current.MaxHistory)
			fmt.Fprintf(w, "username-length\t%d\n", current.DefaultUsernameLength)
			fmt.Fprintf(w, "password-length\t%d\n", current.DefaultPasswordLength)
			return w.Flush()
		},
	}

	f := cmd.Flags()
	f.StringVar(&theme, "theme", "", "Theme: light or dark")
	f.BoolVar(&next.Animations, "animations", false, "Enable animations")
	f.BoolVar(&next.Notifications, "notifications", false, "Enable notifications")
	f.BoolVar(&next.AutoSave, "auto-save", false, "Remember the last lengths as defaults")
	f.IntVar(&next.MaxHistory, "max-history", 0, "Number of history entries to keep")
	f.IntVar(&next.DefaultUsernameLength, "username-length", 0, "Default username length")
	f.IntVar(&next.DefaultPasswordLength, "password-length", 0, "Default password length")
	return cmd
}

func anyChanged(f *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if f.Changed(name) {
			return true
		}
	}
	return false
}
