package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDataCmd(a *app) *cobra.Command {
	var atLeast, apiKey string
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Search wallhaven and print five random images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.svc.GetData(cmd.Context(), atLeast, apiKey)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), records)
		},
	}
	cmd.Flags().StringVar(&atLeast, "atleast", "", `minimum resolution such as 2560x1440, or "auto"`)
	cmd.Flags().StringVar(&apiKey, "apikey", "", "wallhaven API key")
	return cmd
}

func newDownloadCmd(a *app) *cobra.Command {
	var fromClipboard bool
	cmd := &cobra.Command{
		Use:   "download [url]",
		Short: "Download an image into the configured directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := urlArg(args, fromClipboard)
			if err != nil {
				return err
			}
			path, err := a.svc.DownloadImage(cmd.Context(), url)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "read the url from the clipboard")
	return cmd
}

func newLoadCmd(a *app) *cobra.Command {
	var fromClipboard bool
	cmd := &cobra.Command{
		Use:   "load [url]",
		Short: "Download an image and set it as the wallpaper",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := urlArg(args, fromClipboard)
			if err != nil {
				return err
			}
			_, ok, err := a.svc.LoadAndSetWallpaper(cmd.Context(), url)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(ok))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "read the url from the clipboard")
	return cmd
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <path>",
		Short: "Set a local image as the wallpaper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(a.svc.SetWallpaper(args[0])))
			return nil
		},
	}
}

func newDirCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir",
		Short: "Show or change the download directory",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the download directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dir, err := a.svc.GetDirectory()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <path>",
			Short: "Change the download directory",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.svc.SetDirectory(args[0])
			},
		},
	)
	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently set wallpapers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of entries to show")
	return cmd
}
