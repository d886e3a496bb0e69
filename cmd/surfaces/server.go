package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/surfaces/internal/config"
	"github.com/thatcatcamp/surfaces/internal/handlers"
)

var portFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated stylesheet over HTTP",
	Long: `Start a preview server. Every request re-reads the palette file, and
config file edits are picked up by a watcher, so changes show up on reload.

Routes: /surfaces.css, /palette.json, /classes.json, /health`,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		port := s.Server.Port
		if cmd.Flags().Changed("port") {
			port = portFlag
		}

		snap := config.NewSnapshot(s)
		config.Watch(func(next *config.Settings, err error) {
			if err != nil {
				logrus.WithError(err).Warn("config changed but is invalid")
				return
			}
			applyPaletteFlags(next)
			snap.Store(next)
			logrus.Info("config reloaded")
		})

		gin.SetMode(gin.ReleaseMode)
		h := handlers.NewStylesHandler(appFs, snap.Current)

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           handlers.NewRouter(h),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			logrus.WithField("addr", srv.Addr).Info("serving surfaces")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.WithError(err).Fatal("server failed")
			}
		}()

		<-ctx.Done()
		logrus.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("shutdown failed")
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&portFlag, "port", "8080", "listen port")
	rootCmd.AddCommand(serveCmd)
}
