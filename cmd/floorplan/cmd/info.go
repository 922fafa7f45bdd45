package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/floorplan/pkg/report"
)

var infoCmd = &cobra.Command{
	Use:   "info <plan_file>",
	Short: "Show floor plan information",
	Long: `Display walls with their lengths, and doors and windows with the wall
they snap to, their distance from it and their rotation.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, err := loadPlan(args[0])
	if err != nil {
		return err
	}
	return report.Write(os.Stdout, report.Summarize(p))
}
