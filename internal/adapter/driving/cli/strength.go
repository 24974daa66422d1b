package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

func newStrengthCmd(d Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "strength [password]",
		Short: "Score the strength of a password",
		Long: `Score a password from 0 to 9. Without an argument, or with "-", the password
is read from the first line of standard input so it stays out of the shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 && args[0] != "-" {
				password = args[0]
			} else {
				sc := bufio.NewScanner(cmd.InOrStdin())
				if sc.Scan() {
					password = strings.TrimRight(sc.Text(), "\r")
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			s := d.Service.ScoreStrength(password)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d/%d)\n", s.Label, s.Score, model.MaxStrengthScore)
			return nil
		},
	}
}
