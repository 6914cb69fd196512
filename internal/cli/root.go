// Package cli implements the monitor's command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "fadamonitor",
	Short: "Monitor FADA press releases for new vehicle retail data reports",
	Long: `fadamonitor checks the FADA press-release listing for newly published
monthly vehicle retail data reports, downloads any not previously seen,
summarizes them, and delivers console and email notifications.

Usage:
  fadamonitor run
  fadamonitor watch`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file (default: $FADA_MONITOR_CONFIG)")
}

// Execute runs the root command; any command error exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
