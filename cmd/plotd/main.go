package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"chartleap/internal/app"
	"chartleap/internal/logging"
	"chartleap/internal/server"
	"chartleap/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr    string
		home    string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:          "plotd",
		Short:        "Serve the chartleap plotting engine over HTTP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.SetLogger(logging.New(cmd.ErrOrStderr(), verbose))
			log := logging.Logger()

			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			settings, err := store.NewSettingsFileStore(home).LoadSettings()
			if err != nil {
				return err
			}
			engine, err := app.NewEngine(settings)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(engine.Plots, engine.Classifier),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			log.Info("plotd listening", "addr", addr, "home", home)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			log.Info("plotd stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&home, "home", "", "settings dir (default ~/.chartleap)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-equation details")
	return cmd
}
