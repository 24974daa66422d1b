package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFavoritesCmd(d Deps) *cobra.Command {
	list := func(cmd *cobra.Command, _ []string) error {
		favorites := d.Service.Favorites()
		if len(favorites) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tPASSWORD\tCREATED")
		for _, f := range favorites {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, orDash(f.Username), orDash(f.Password), f.CreatedAt.Local().Format(historyTimeLayout))
		}
		return w.Flush()
	}

	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "List and manage favorites",
		Args:    cobra.NoArgs,
		RunE:    list,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all favorites",
			Args:  cobra.NoArgs,
			RunE:  list,
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove one favorite",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				removed, err := d.Service.RemoveFavorite(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("favorite %q not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed favorite %s.\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete all favorites",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := d.Service.ClearFavorites(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Favorites cleared.")
				return nil
			},
		},
	)
	return cmd
}
