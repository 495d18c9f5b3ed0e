package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"curator/internal/ytapi"
)

func newVideoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "video <video-id-or-url>",
		Short: "Show full details for a single video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.ledger.EstimateAndCharge(session.ledger.DetailCost(), "fetching video details"); err != nil {
				return err
			}
			videoID := ytapi.ExtractVideoID(args[0])
			candidate, err := session.provider.GetVideoDetails(cmd.Context(), videoID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if candidate == nil {
				fmt.Fprintf(out, "No video found for %s.\n", videoID)
				return nil
			}

			duration := "unknown"
			if candidate.HasDuration {
				duration = candidate.Duration
			}
			views, likes := "unknown", "unknown"
			if candidate.HasStats {
				views = formatCount(candidate.ViewCount)
				likes = formatCount(candidate.LikeCount)
			}
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, [][]string{
				{"Title", candidate.Title},
				{"Channel", candidate.ChannelTitle},
				{"Published", candidate.PublishedAt},
				{"Duration", duration},
				{"Views", views},
				{"Likes", likes},
				{"URL", candidate.URL()},
			}))
			return nil
		},
	}
}
