package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"FadaMonitor/internal/app"
	"FadaMonitor/internal/config"
	"FadaMonitor/internal/logging"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the monitor on a recurring interval",
	Long: `Watch executes a monitoring pass immediately and then on every configured
interval (default 24h) until interrupted. Runs are strictly serialized; a
failed pass is logged and retried on the next tick.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(flagConfig)
		logger := logging.New(cfg.Logging.Level)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info("watching for new reports", "interval", cfg.Watch.Interval().String())
		application := app.New(cfg, logger)
		return application.Watch(ctx)
	},
}

func init() {
	watchCmd.SilenceUsage = true
	watchCmd.SilenceErrors = true
	rootCmd.AddCommand(watchCmd)
}
