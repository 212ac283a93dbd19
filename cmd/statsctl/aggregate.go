package main

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zhytomyr-tourism/internal/aggregation"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Print the analytics bundle as JSON",
	Long:  "Builds the same analytics bundle the API serves from /api/v1/statistics/analytics and prints it to stdout.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		bundle := aggregation.Bundle(aggregation.Aggregate(ds.attractions, ds.resolver, ds.visits))
		bundle.Version = uuid.New()
		bundle.ComputedAt = time.Now().UTC()

		enc := json.NewEncoder(cmd.OutOrStdout())
		if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(bundle)
	},
}

func init() {
	aggregateCmd.Flags().Bool("pretty", false, "indent JSON output")
	rootCmd.AddCommand(aggregateCmd)
}
