package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/username/prazo-calc/internal/api"
	"github.com/username/prazo-calc/internal/daemon"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if cfg.Log.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			engine, cal, err := initializeEngine(cfg)
			if err != nil {
				return err
			}

			d := daemon.NewDaemon(addr, cfg.Server.GetShutdownTimeout(), logger)

			handler := api.NewHandler(engine, cal, api.Options{
				DefaultBusinessDays: cfg.Deadline.DefaultBusinessDays,
				DefaultRecess:       cfg.Deadline.RecessEnabled,
				Office:              cfg.Report.Office,
				Credit:              cfg.Report.Footer,
				Status:              d,
			}, logger)
			router := api.NewRouter(handler, cfg.Server.GetRequestTimeout(), logger)

			logger.Info("Starting HTTP API",
				zap.String("addr", addr),
				zap.String("calendar", cfg.Calendar.Type),
				zap.Bool("recess_default", cfg.Deadline.RecessEnabled))

			return d.Start(router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, e.g. :8080)")

	return cmd
}
