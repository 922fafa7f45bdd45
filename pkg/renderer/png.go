package renderer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpenTraceLab/floorplan/pkg/scene"
	"github.com/OpenTraceLab/floorplan/pkg/viewport"
)

var (
	regularOnce sync.Once
	regularFont *truetype.Font
	regularErr  error
)

func loadRegular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regularFont, regularErr = truetype.Parse(goregular.TTF)
	})
	return regularFont, regularErr
}

// Image rasterizes a scene into a width x height image using the same
// viewport transform as the interactive canvas.
func Image(vp *viewport.Viewport, sc *scene.Scene, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(sc.Palette.Background)
	dc.Clear()

	for _, l := range sc.Lines {
		x1, y1 := vp.WorldToScreen(l.From)
		x2, y2 := vp.WorldToScreen(l.To)
		dc.SetLineWidth(l.Width * vp.Scale)
		dc.SetColor(l.Color)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	for _, r := range sc.Rects {
		corners := r.Corners()
		for i, c := range corners {
			x, y := vp.WorldToScreen(c)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetColor(r.Fill)
		if r.StrokeWidth > 0 {
			dc.FillPreserve()
			dc.SetColor(r.Stroke)
			dc.SetLineWidth(r.StrokeWidth * vp.Scale)
			dc.Stroke()
		} else {
			dc.Fill()
		}
	}

	if len(sc.Labels) > 0 {
		ttf, err := loadRegular()
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		faces := make(map[float64]font.Face)
		for _, lb := range sc.Labels {
			size := lb.Size * vp.Scale
			if size < minLabelPx || lb.Text == "" {
				continue
			}
			face, ok := faces[size]
			if !ok {
				face = truetype.NewFace(ttf, &truetype.Options{
					Size:    size,
					DPI:     72,
					Hinting: font.HintingFull,
				})
				faces[size] = face
			}
			dc.SetFontFace(face)
			dc.SetColor(lb.Color)
			x, y := vp.WorldToScreen(lb.At)
			dc.DrawStringAnchored(lb.Text, x, y, 0, 1)
		}
	}

	return dc.Image(), nil
}

// WritePNG rasterizes a scene and encodes it as PNG.
func WritePNG(w io.Writer, vp *viewport.Viewport, sc *scene.Scene, width, height int) error {
	img, err := Image(vp, sc, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
