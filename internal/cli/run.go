package cli

import (
	"github.com/spf13/cobra"

	"FadaMonitor/internal/app"
	"FadaMonitor/internal/config"
	"FadaMonitor/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a single monitoring pass",
	Long: `Run fetches the press-release listing once, processes every report not
yet in the processed set, and exits. Exit code is non-zero only when the
listing fetch itself fails; "no new reports" is a successful run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(flagConfig)
		logger := logging.New(cfg.Logging.Level)

		application := app.New(cfg, logger)
		if err := application.Run(cmd.Context()); err != nil {
			logger.Error("monitor run failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	runCmd.SilenceUsage = true
	runCmd.SilenceErrors = true
	rootCmd.AddCommand(runCmd)
}
