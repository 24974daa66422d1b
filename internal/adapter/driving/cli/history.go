package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

const historyTimeLayout = "2006-01-02 15:04:05"

func newHistoryCmd(d Deps) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent generations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := d.Service.History()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t\t\n", e.CreatedAt.Local().Format(historyTimeLayout), describeEntry(e))
				for i, r := range e.Results {
					fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", i+1, orDash(r.Username), orDash(r.Password), strengthText(r.Password))
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Show at most this many entries (0 for all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the whole history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := d.Service.ClearHistory(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})
	return cmd
}

// describeEntry summarizes an entry, e.g. "3 usernames + passwords".
func describeEntry(e model.HistoryEntry) string {
	var kind string
	switch {
	case e.UsernameEnabled && e.PasswordEnabled:
		kind = "username + password"
	case e.UsernameEnabled:
		kind = "username"
	default:
		kind = "password"
	}
	if e.Count != 1 {
		kind = pluralize(kind)
	}
	return fmt.Sprintf("%d %s", e.Count, kind)
}

func pluralize(kind string) string {
	if kind == "username + password" {
		return "usernames + passwords"
	}
	return kind + "s"
}
