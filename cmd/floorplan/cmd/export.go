package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/floorplan/pkg/loader"
	"github.com/OpenTraceLab/floorplan/pkg/plan"
	"github.com/OpenTraceLab/floorplan/pkg/renderer"
	"github.com/OpenTraceLab/floorplan/pkg/scene"
	"github.com/OpenTraceLab/floorplan/pkg/viewport"
)

// exportMargin is the border around a fitted PNG, in pixels.
const exportMargin = 40

var (
	outputPath   string
	exportWidth  int
	exportHeight int
)

var exportCmd = &cobra.Command{
	Use:   "export <plan_file> -o <output>",
	Short: "Render a floor plan to PNG or convert it",
	Long: `Writes the plan to the output file. The output extension picks the
result: .png renders the fitted canvas, .json, .fplan, .sexp and .plan convert
the plan to that format.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (.png, .json, .fplan, .sexp, .plan)")
	exportCmd.Flags().IntVar(&exportWidth, "width", 1024, "PNG width in pixels")
	exportCmd.Flags().IntVar(&exportHeight, "height", 768, "PNG height in pixels")
	addStyleFlags(exportCmd)
	_ = exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := loadPlan(args[0])
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(outputPath), ".png") {
		style := scene.DefaultStyle()
		if err := applyStyleFlags(cmd, &style); err != nil {
			return err
		}
		if err := exportPNG(outputPath, p, style, exportWidth, exportHeight); err != nil {
			return err
		}
		if verbose {
			log.Printf("[EXPORT] %dx%d PNG, theme %s, %d walls, %d doors, %d windows",
				exportWidth, exportHeight, style.Theme, len(p.Walls), len(p.Doors), len(p.Windows))
		}
	} else if err := loader.Save(outputPath, p, loader.FormatAuto); err != nil {
		return err
	}

	fmt.Printf("✓ Wrote %s\n", outputPath)
	return nil
}

func exportPNG(path string, p *plan.Plan, style scene.Style, width, height int) error {
	vp := viewport.New()
	vp.Fit(p.Bounds(), float64(width), float64(height), exportMargin)

	var buf bytes.Buffer
	if err := renderer.WritePNG(&buf, vp, scene.Build(p, style), width, height); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
