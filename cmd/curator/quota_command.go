package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"curator/internal/patterns"
)

func newQuotaCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the quota budget and operation costs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			rows := [][]string{
				{"Daily budget", strconv.Itoa(cfg.Quota.DailyBudget)},
				{"Confirm threshold", strconv.Itoa(cfg.Quota.ConfirmThreshold)},
				{"Warning floor", strconv.Itoa(cfg.Quota.WarnFloor)},
				{"Search call", strconv.Itoa(cfg.Quota.SearchCost)},
				{"Detail call", strconv.Itoa(cfg.Quota.DetailCost)},
				{"Write call", strconv.Itoa(cfg.Quota.WriteCost)},
			}
			fmt.Fprintln(out, renderTable([]string{"Setting", "Points"}, rows, 1))

			// A full cycle hits every pattern once plus one detail batch each.
			patternCount := len(patterns.Templates(patterns.DomainBoard, patterns.CategoryReview))
			cycleCost := patternCount * (cfg.Quota.SearchCost + cfg.Quota.DetailCost)
			if cycleCost > 0 {
				fmt.Fprintf(out, "One search cycle costs about %d points (%d cycles per daily budget).\n",
					cycleCost, cfg.Quota.DailyBudget/cycleCost)
			}
			fmt.Fprintln(out, "The ledger tracks usage per session only; the provider enforces the real daily budget.")
			return nil
		},
	}
}
