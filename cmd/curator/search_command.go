package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"curator/internal/search"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var domainFlag string
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Run a ranked search for a game",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, category, err := parseScope(domainFlag, categoryFlag)
			if err != nil {
				return err
			}
			session, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer session.Close()

			engine := search.NewEngine(session.provider, session.ledger, session.models, session.cfg.Search, session.logger)
			results, err := engine.Search(cmd.Context(), strings.Join(args, " "), domain, category)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No results.")
				return nil
			}
			fmt.Fprintln(out, resultsTable(results))
			status := session.ledger.Status()
			fmt.Fprintf(out, "Quota used this session: %d of %d points\n", status.Used, status.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&domainFlag, "domain", "d", "board", "Content domain (board or video)")
	cmd.Flags().StringVarP(&categoryFlag, "category", "k", "reviews", "Intent category (how_to_play, reviews, playthroughs)")
	return cmd
}
