package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"curator/internal/console"
	"curator/internal/patterns"
	"curator/internal/playlist"
	"curator/internal/search"
	"curator/internal/training"
	"curator/internal/ytapi"
)

func newGuideCommand(ctx *commandContext) *cobra.Command {
	var domainFlag string

	cmd := &cobra.Command{
		Use:   "guide <name>",
		Short: "Build a complete guide playlist from all three search sections",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := patterns.ParseDomain(domainFlag)
			if err != nil {
				return err
			}
			session, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer session.Close()

			target := strings.Join(args, " ")
			engine := search.NewEngine(session.provider, session.ledger, session.models, session.cfg.Search, session.logger)
			selection, err := collectGuideSelection(cmd.Context(), engine, session.console, target, domain)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(selection) == 0 {
				fmt.Fprintln(out, "Nothing selected, no playlist created.")
				return nil
			}

			history := playlist.NewHistory(session.store, session.logger)
			builder := playlist.NewBuilder(session.provider, session.ledger, history, session.logger)
			result, err := builder.Build(cmd.Context(), target, domain, selection)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Created %q with %d videos", result.Title, result.Inserted)
			if result.Failed > 0 {
				fmt.Fprintf(out, " (%d inserts failed, see log)", result.Failed)
			}
			fmt.Fprintf(out, "\nhttps://www.youtube.com/playlist?list=%s\n", result.PlaylistID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&domainFlag, "domain", "d", "board", "Content domain (board or video)")
	return cmd
}

// collectGuideSelection runs one search per intent category and lets the
// operator pick results section by section. An empty answer skips the
// section; duplicates across sections collapse later in the builder.
func collectGuideSelection(ctx context.Context, searcher training.Searcher, cons *console.Console, target string, domain patterns.Domain) ([]ytapi.Candidate, error) {
	var selection []ytapi.Candidate
	for _, category := range patterns.Categories() {
		results, err := searcher.Search(ctx, target, domain, category)
		if err != nil {
			return nil, err
		}
		cons.Printf("\n== %s ==\n", category)
		if len(results) == 0 {
			cons.Println("No results for this section.")
			continue
		}
		cons.Println(resultsTable(results))

		answer, err := cons.Prompt("Select results for this section (e.g. 1,3-5), Enter to skip:")
		if err != nil {
			return nil, err
		}
		if answer == "" {
			continue
		}
		indices, err := console.ParseSelection(answer, len(results))
		if err != nil {
			cons.Printf("%v; skipping section.\n", err)
			continue
		}
		for _, index := range indices {
			selection = append(selection, results[index-1].Candidate)
		}
	}
	return selection, nil
}
