package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"curator/internal/playlist"
	"curator/internal/ytapi"
)

func newPlaylistsCommand(ctx *commandContext) *cobra.Command {
	playlistsCmd := &cobra.Command{
		Use:   "playlists",
		Short: "Manage created guide playlists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaylistsList(ctx, cmd, false)
		},
	}

	var remote bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List guide playlists from local history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaylistsList(ctx, cmd, remote)
		},
	}
	listCmd.Flags().BoolVar(&remote, "remote", false, "List playlists from the account instead of local history")

	deleteCmd := &cobra.Command{
		Use:   "delete <playlist-id-or-url>",
		Short: "Delete a guide playlist from the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer session.Close()

			ok, err := session.console.Confirm(fmt.Sprintf("Delete playlist %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Kept.")
				return nil
			}

			history := playlist.NewHistory(session.store, session.logger)
			builder := playlist.NewBuilder(session.provider, session.ledger, history, session.logger)
			if err := builder.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <playlist-id-or-url>",
		Short: "List the videos in a playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer session.Close()

			history := playlist.NewHistory(session.store, session.logger)
			builder := playlist.NewBuilder(session.provider, session.ledger, history, session.logger)
			items, err := builder.Items(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "Playlist is empty.")
				return nil
			}
			rows := make([][]string, 0, len(items))
			for i, item := range items {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					truncate(item.Title, 60),
					truncate(item.ChannelTitle, 24),
					item.ID,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Title", "Channel", "Video ID"}, rows, 0))
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <playlist-id-or-url> <video-id-or-url>",
		Short: "Remove a video from a playlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer session.Close()

			videoID := ytapi.ExtractVideoID(args[1])
			ok, err := session.console.Confirm(fmt.Sprintf("Remove video %s from the playlist?", videoID))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Kept.")
				return nil
			}

			history := playlist.NewHistory(session.store, session.logger)
			builder := playlist.NewBuilder(session.provider, session.ledger, history, session.logger)
			if err := builder.RemoveVideo(cmd.Context(), args[0], videoID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
			return nil
		},
	}

	playlistsCmd.AddCommand(listCmd)
	playlistsCmd.AddCommand(showCmd)
	playlistsCmd.AddCommand(removeCmd)
	playlistsCmd.AddCommand(deleteCmd)
	return playlistsCmd
}

func runPlaylistsList(ctx *commandContext, cmd *cobra.Command, remote bool) error {
	session, err := ctx.openSession()
	if err != nil {
		return err
	}
	defer session.Close()
	out := cmd.OutOrStdout()

	if remote {
		if err := session.ledger.EstimateAndCharge(session.ledger.DetailCost(), "listing account playlists"); err != nil {
			return err
		}
		items, err := ytapi.ListAllMyPlaylists(cmd.Context(), session.provider)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(out, "No playlists on the account.")
			return nil
		}
		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, []string{
				item.ID,
				truncate(item.Title, 50),
				strconv.Itoa(item.ItemCount),
			})
		}
		fmt.Fprintln(out, renderTable([]string{"ID", "Title", "Videos"}, rows, 2))
		return nil
	}

	history := playlist.NewHistory(session.store, session.logger)
	entries := history.List(cmd.Context())
	if len(entries) == 0 {
		fmt.Fprintln(out, "No guides created yet.")
		return nil
	}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.CreatedAt.Format("2006-01-02"),
			truncate(entry.Title, 40),
			string(entry.Domain),
			strconv.Itoa(entry.VideoCount),
			"https://www.youtube.com/playlist?list=" + entry.PlaylistID,
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Created", "Title", "Domain", "Videos", "URL"}, rows, 3))
	return nil
}
