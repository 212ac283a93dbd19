package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhytomyr-tourism/internal/domain"
)

var resolveCmd = &cobra.Command{
	Use:     "resolve",
	Short:   "Resolve the district containing a point",
	Example: "  statsctl resolve --lat 50.2547 --lng 28.6587",
	RunE: func(cmd *cobra.Command, _ []string) error {
		lat, _ := cmd.Flags().GetFloat64("lat")
		lng, _ := cmd.Flags().GetFloat64("lng")

		resolver, err := loadResolver(cmd.Context())
		if err != nil {
			return err
		}

		id, found, err := resolver.ResolveDistrict(domain.Point{Lat: lat, Lng: lng})
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintln(cmd.OutOrStdout(), "none")
			return nil
		}

		d, _ := resolver.District(id)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.ID, d.Name)
		return nil
	},
}

func init() {
	resolveCmd.Flags().Float64("lat", 0, "latitude")
	resolveCmd.Flags().Float64("lng", 0, "longitude")
	_ = resolveCmd.MarkFlagRequired("lat")
	_ = resolveCmd.MarkFlagRequired("lng")
	rootCmd.AddCommand(resolveCmd)
}
