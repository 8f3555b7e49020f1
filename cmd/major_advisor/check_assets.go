package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var checkAssetsCmd = &cobra.Command{
	Use:   "check-assets",
	Short: "Load the asset snapshot and report its contents",
	Long:  `Build the full asset snapshot exactly as serve would, print the resulting counts and exit. A non-zero exit means the service would refuse readiness.`,
	RunE:  runCheckAssets,
}

func init() {
	rootCmd.AddCommand(checkAssetsCmd)
}

func runCheckAssets(cmd *cobra.Command, _ []string) error {
	_, _, store, cleanup, err := bootstrap(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	snap, err := store.Snapshot()
	if err != nil {
		return err
	}

	fmt.Printf("aliases:           %d\n", len(snap.Aliases))
	fmt.Printf("skill index:       %d\n", len(snap.SkillIndex))
	fmt.Printf("occupation labels: %d\n", len(snap.OccupationLabels))
	fmt.Printf("mapped occupations: %d\n", len(snap.OccupationMajors))
	fmt.Printf("majors:            %d\n", len(snap.MajorDegree))
	fmt.Printf("model classes:     %d\n", len(snap.Model.Classes()))
	return nil
}
