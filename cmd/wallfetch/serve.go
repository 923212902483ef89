package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dixieflatline76/Wallfetch/config"
	"github.com/dixieflatline76/Wallfetch/pkg/api"
	"github.com/dixieflatline76/Wallfetch/pkg/wallpaper"
	"github.com/dixieflatline76/Wallfetch/util/log"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP and WebSocket API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = a.settings.Server.Port
			}
			return a.serve(cmd.Context(), port)
		},
	}
	cmd.Flags().IntVar(&port, "port", config.DefaultServerPort, "port to listen on (127.0.0.1 only)")
	return cmd
}

func (a *app) serve(ctx context.Context, port int) error {
	locked, err := acquireLock()
	if err != nil {
		return err
	}
	if !locked {
		return errors.New("another instance of " + config.AppName + " is already serving")
	}
	defer releaseLock()

	server := api.NewServer(a.svc, port)
	a.svc.OnWallpaperSet(server.NotifyWallpaperSet)

	// Crostini has no desktop of its own; the browser extension applies the
	// image it fetches back from this server.
	if bridge, ok := a.installer.Platform().(wallpaper.Bridge); ok {
		log.Println("Routing wallpaper changes through the browser extension")
		bridge.RegisterBridge(func(path string) error {
			return server.BroadcastWallpaper(server.ImageURL(path))
		})
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Stop(shutdownCtx)
}
