package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	appui "github.com/OpenTraceLab/floorplan/internal/ui"
	"github.com/OpenTraceLab/floorplan/pkg/scene"
)

var noFit bool

var viewCmd = &cobra.Command{
	Use:   "view <plan_file>",
	Short: "View a floor plan in the interactive viewer",
	Long: `Opens a floor plan in a Gio-based viewer with pan and zoom.

Controls:
  Left Drag         - Pan
  Scroll Wheel      - Zoom about the pointer
  Space             - Fit plan to window
  R                 - Reset view
  L                 - Toggle wall length labels
  D                 - Toggle dimension lines
  T                 - Switch color theme
  + / -             - Zoom about the center
  Ctrl+O            - Open another plan
  Q / Escape        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViewer(cmd, args[0])
	},
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the viewer without a plan",
	Long:  `Launch the viewer and pick a floor plan with the toolbar or Ctrl+O.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViewer(cmd, "")
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(uiCmd)
	for _, c := range []*cobra.Command{viewCmd, uiCmd} {
		addStyleFlags(c)
		c.Flags().BoolVar(&noFit, "no-fit", false, "keep scale 1 instead of fitting the plan on load")
	}
}

func runViewer(cmd *cobra.Command, path string) error {
	format, err := inputFormat()
	if err != nil {
		return err
	}
	// Validate style flags before the window opens.
	if err := applyStyleFlags(cmd, &scene.Style{}); err != nil {
		return err
	}

	if path != "" && verbose {
		fmt.Printf("Loading plan: %s\n", path)
	}
	return appui.Run(appui.Options{
		Path:    path,
		Format:  format,
		NoFit:   noFit,
		Verbose: verbose,
		Adjust: func(style *scene.Style) {
			_ = applyStyleFlags(cmd, style)
		},
	})
}
