package main

import (
	"strings"

	"github.com/spf13/cobra"

	"curator/internal/search"
	"curator/internal/training"
)

func newTrainCommand(ctx *commandContext) *cobra.Command {
	var domainFlag string
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "train <name>",
		Short: "Search and interactively teach the relevance model",
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
			loop := training.NewLoop(engine, session.models, session.console, session.logger)
			return loop.Run(cmd.Context(), strings.Join(args, " "), domain, category)
		},
	}

	cmd.Flags().StringVarP(&domainFlag, "domain", "d", "board", "Content domain (board or video)")
	cmd.Flags().StringVarP(&categoryFlag, "category", "k", "reviews", "Intent category (how_to_play, reviews, playthroughs)")
	return cmd
}
