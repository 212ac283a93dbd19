package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhytomyr-tourism/internal/config"
	"github.com/zhytomyr-tourism/internal/pkg/logger"
)

var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "statsctl",
	Short:         "Offline tools for the tourism statistics dataset",
	Long:          "Validates the district and attraction datasets and prints the aggregate the API would serve.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if path, _ := cmd.Flags().GetString("districts"); path != "" {
			c.Data.DistrictsPath = path
		}
		if path, _ := cmd.Flags().GetString("attractions"); path != "" {
			c.Data.Source = config.DataSourceFile
			c.Data.AttractionsPath = path
		}
		cfg = c

		level, _ := cmd.Flags().GetString("log-level")
		l, err := logger.NewStderr(level)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log = l

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("districts", "", "districts GeoJSON path (overrides DATA_DISTRICTS_PATH)")
	rootCmd.PersistentFlags().String("attractions", "", "attractions JSON path (forces the file data source)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
