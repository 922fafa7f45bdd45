package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/floorplan/pkg/loader"
	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

var (
	// Global flags
	verbose    bool
	formatName string
)

var rootCmd = &cobra.Command{
	Use:   "floorplan",
	Short: "Floor plan viewer and converter",
	Long: `floorplan loads wall, door and window layouts and shows them on a
pannable, zoomable canvas. Doors and windows are snapped onto their nearest wall.

Supported inputs: JSON (.json), s-expression (.fplan, .sexp), text DSL (.plan)
and raw detector output (--format raster).

Examples:
  floorplan view house.json             # Interactive viewer
  floorplan info house.plan             # Wall and fixture summary
  floorplan export house.json -o a.png  # Render to PNG
  floorplan ui                          # Open the viewer and pick a file`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "auto", "input format: auto, json, raster, sexp, plan")
}

// inputFormat resolves the --format flag.
func inputFormat() (loader.Format, error) {
	return loader.ParseFormat(formatName)
}

// loadPlan reads the plan named on the command line.
func loadPlan(path string) (*plan.Plan, error) {
	format, err := inputFormat()
	if err != nil {
		return nil, err
	}
	return loader.Load(path, format)
}
