package main

import (
	"encoding/json"
	"io"

	"github.com/dixieflatline76/Wallfetch/config"
	"github.com/dixieflatline76/Wallfetch/pkg/history"
	"github.com/dixieflatline76/Wallfetch/pkg/sysinfo"
	"github.com/dixieflatline76/Wallfetch/pkg/wallhaven"
	"github.com/dixieflatline76/Wallfetch/pkg/wallpaper"
	"github.com/dixieflatline76/Wallfetch/util/log"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs, built once per invocation.
type app struct {
	configFile string

	settings  *config.Settings
	installer *wallpaper.Installer
	history   *history.Store
	svc       *wallpaper.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "wallfetch",
		Short:         "Fetch wallpapers from wallhaven and set them on the desktop",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", config.GetFilename(), "config file")

	rootCmd.AddCommand(
		newDataCmd(a),
		newDownloadCmd(a),
		newLoadCmd(a),
		newSetCmd(a),
		newDirCmd(a),
		newHistoryCmd(a),
		newServeCmd(a),
	)

	return rootCmd
}

func (a *app) init() error {
	settings, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.settings = settings

	client := wallhaven.NewClient(wallhaven.Options{
		UserAgent:         settings.API.UserAgent,
		Timeout:           settings.API.Timeout,
		RequestsPerMinute: settings.API.RequestsPerMinute,
	})

	search := searchPolicy(settings.Search)

	a.installer = wallpaper.NewInstaller()

	opts := wallpaper.ServiceOptions{
		Client:      client,
		Directories: wallpaper.NewDirectoryStore(settings.DirectoryFile),
		Installer:   a.installer,
		SearchURL:   settings.API.BaseURL,
		Search:      &search,
		Screen:      sysinfo.Resolution,
	}

	if !settings.History.Disabled {
		store, err := history.Open(settings.History.Path)
		if err != nil {
			log.Printf("History disabled: %v", err)
		} else {
			a.history = store
			opts.History = store
		}
	}

	a.svc, err = wallpaper.NewService(opts)
	return err
}

// searchPolicy lays the configured overrides over the wallhaven defaults.
func searchPolicy(s config.SearchSettings) wallhaven.SearchParameters {
	p := wallhaven.DefaultSearchParameters()
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&p.Sorting, s.Sorting},
		{&p.Order, s.Order},
		{&p.Seed, s.Seed},
		{&p.Categories, s.Categories},
		{&p.Purity, s.Purity},
		{&p.AtLeast, s.AtLeast},
		{&p.Ratios, s.Ratios},
		{&p.Colors, s.Colors},
		{&p.TopRange, s.TopRange},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	if s.Page > 0 {
		p.Page = s.Page
	}
	return p
}

func (a *app) close() {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			log.Printf("Failed to close history: %v", err)
		}
		a.history = nil
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
