package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/zhytomyr-tourism/internal/aggregation"
	"github.com/zhytomyr-tourism/internal/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate districts and attractions",
	Long:  "Loads the district boundaries and the attraction set, reports excluded objects and unknown categories. Exits non-zero on configuration errors or, with --strict, on any excluded object.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		placed := aggregation.Place(ds.attractions, ds.resolver)
		agg := aggregation.FromPlaced(placed, ds.resolver.Districts(), ds.visits)
		t := agg.Totals

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "districts:           %d\n", len(ds.resolver.Districts()))
		fmt.Fprintf(out, "total objects:       %d\n", t.TotalObjects)
		fmt.Fprintf(out, "located:             %d\n", t.LocatedCount)
		fmt.Fprintf(out, "outside districts:   %d\n", t.OutsideDistricts)
		fmt.Fprintf(out, "invalid coordinates: %d\n", t.InvalidCoordinates)
		fmt.Fprintf(out, "missing coordinates: %d\n", t.MissingCoordinates)
		fmt.Fprintf(out, "unknown category:    %d\n", t.UnknownCount)

		for _, p := range placed {
			switch p.Placement {
			case domain.PlacementOutsideDistricts, domain.PlacementInvalidCoordinates, domain.PlacementNoCoordinates:
				fmt.Fprintf(out, "  %s %q: %s\n", p.ID, p.Name, p.Placement)
			}
		}
		for _, raw := range slices.Sorted(maps.Keys(agg.UnknownCategories)) {
			fmt.Fprintf(out, "  category %q: %d object(s)\n", raw, agg.UnknownCategories[raw])
		}

		strict, _ := cmd.Flags().GetBool("strict")
		if strict && (t.ExcludedCount > 0 || t.UnknownCount > 0) {
			return fmt.Errorf("dataset has %d excluded and %d unclassified objects", t.ExcludedCount, t.UnknownCount)
		}

		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("strict", false, "fail on excluded or unclassified objects")
	rootCmd.AddCommand(validateCmd)
}
