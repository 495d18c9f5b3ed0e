package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"curator/internal/patterns"
)

func newModelCommand(ctx *commandContext) *cobra.Command {
	modelCmd := &cobra.Command{
		Use:   "model",
		Short: "Inspect and edit the learned relevance models",
	}
	modelCmd.AddCommand(newModelShowCommand(ctx))
	modelCmd.AddCommand(newModelBanCommand(ctx))
	modelCmd.AddCommand(newModelUnbanCommand(ctx))
	return modelCmd
}

func newModelShowCommand(ctx *commandContext) *cobra.Command {
	var domainFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the learned model for a domain",
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

			mdl := session.models.Model(cmd.Context(), domain)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Model for domain %q\n\n", domain)
			fmt.Fprintln(out, renderTable([]string{"Set", "Entries"}, [][]string{
				{"Trusted channels", joinOrNone(mdl.TrustedChannels())},
				{"Noise channels", joinOrNone(mdl.NoiseChannels())},
				{"Persistent exclusions", joinOrNone(mdl.PersistentExclusions())},
				{"Session exclusions", joinOrNone(mdl.SessionExclusions())},
			}))

			weights := mdl.Weights()
			fmt.Fprintln(out, renderTable([]string{"Weight", "Points"}, [][]string{
				{"Title match", fmt.Sprint(weights.TitleMatch)},
				{"View count (cap)", fmt.Sprint(weights.ViewCount)},
				{"Like ratio (cap)", fmt.Sprint(weights.LikeRatio)},
				{"Trusted channel", fmt.Sprint(weights.TrustedChannel)},
				{"Noise channel", fmt.Sprint(weights.NoiseChannel)},
				{"Duration fit", fmt.Sprint(weights.DurationMatch)},
				{"Context match", fmt.Sprint(weights.ContextMatch)},
				{"Recency (cap)", fmt.Sprint(weights.Recency)},
			}, 1))
			return nil
		},
	}

	cmd.Flags().StringVarP(&domainFlag, "domain", "d", "board", "Content domain (board or video)")
	return cmd
}

func newModelBanCommand(ctx *commandContext) *cobra.Command {
	var domainFlag string

	cmd := &cobra.Command{
		Use:   "ban <phrase>",
		Short: "Add a persistent exclusion phrase",
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

			phrase := strings.Join(args, " ")
			session.models.AddExclusion(cmd.Context(), domain, phrase, true)
			fmt.Fprintf(cmd.OutOrStdout(), "Banned %q for domain %q.\n", strings.ToLower(phrase), domain)
			return nil
		},
	}

	cmd.Flags().StringVarP(&domainFlag, "domain", "d", "board", "Content domain (board or video)")
	return cmd
}

func newModelUnbanCommand(ctx *commandContext) *cobra.Command {
	var domainFlag string

	cmd := &cobra.Command{
		Use:   "unban <phrase>",
		Short: "Remove a persistent exclusion phrase",
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

			phrase := strings.Join(args, " ")
			session.models.RemoveExclusion(cmd.Context(), domain, phrase, true)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q for domain %q.\n", strings.ToLower(phrase), domain)
			return nil
		},
	}

	cmd.Flags().StringVarP(&domainFlag, "domain", "d", "board", "Content domain (board or video)")
	return cmd
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
