package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/floorplan/pkg/scene"
)

// Style flags shared by view and export.
var (
	themeName      string
	noLabels       bool
	showDimensions bool
)

func addStyleFlags(c *cobra.Command) {
	c.Flags().StringVar(&themeName, "theme", "", "color theme: light or dark")
	c.Flags().BoolVar(&noLabels, "no-labels", false, "hide wall length labels")
	c.Flags().BoolVar(&showDimensions, "dimensions", false, "draw overall dimension lines")
}

// applyStyleFlags changes only what was given on the command line.
func applyStyleFlags(c *cobra.Command, style *scene.Style) error {
	if c.Flags().Changed("theme") {
		t, err := scene.ParseTheme(themeName)
		if err != nil {
			return err
		}
		style.Theme = t
	}
	if c.Flags().Changed("no-labels") {
		style.ShowLabels = !noLabels
	}
	if c.Flags().Changed("dimensions") {
		style.ShowDimensions = showDimensions
	}
	return nil
}
