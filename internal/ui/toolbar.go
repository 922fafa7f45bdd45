package ui

import (
	"fmt"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/floorplan/pkg/scene"
)

var errorColor = color.NRGBA{R: 200, G: 40, B: 40, A: 255}

type toolbarIcons struct {
	open    *widget.Icon
	zoomIn  *widget.Icon
	zoomOut *widget.Icon
	fit     *widget.Icon
	layers  *widget.Icon
	theme   *widget.Icon
}

func loadToolbarIcons() toolbarIcons {
	var ic toolbarIcons
	if icon, err := widget.NewIcon(icons.FileFolderOpen); err == nil {
		ic.open = icon
	}
	if icon, err := widget.NewIcon(icons.ActionZoomIn); err == nil {
		ic.zoomIn = icon
	}
	if icon, err := widget.NewIcon(icons.ActionZoomOut); err == nil {
		ic.zoomOut = icon
	}
	if icon, err := widget.NewIcon(icons.NavigationFullscreen); err == nil {
		ic.fit = icon
	}
	if icon, err := widget.NewIcon(icons.MapsLayers); err == nil {
		ic.layers = icon
	}
	if icon, err := widget.NewIcon(icons.ImageBrightness6); err == nil {
		ic.theme = icon
	}
	return ic
}

func (a *App) buildLayersMenu() *menu.DropdownMenu {
	opts := make([]menu.MenuOption, 0, len(layerNames))
	for i, name := range layerNames {
		l := layer(i)
		label := name
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.toggleLayer(l)
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				mark := "   "
				if a.layerVisible(l) {
					mark = "✓ "
				}
				lbl := material.Body1(th.Theme, mark+label)
				if a.layerVisible(l) {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(180)
	return drop
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	a.drainLoads()
	a.handleKeys(gtx)

	paint.Fill(gtx.Ops, a.Theme.Palette.Bg)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Flexed(1, a.layoutCanvas),
		layout.Rigid(a.layoutStatusBar),
	)
}

func (a *App) handleToolbar(gtx layout.Context) {
	if a.openBtn.Clicked(gtx) {
		a.openFilePicker()
	}
	if a.zoomInBtn.Clicked(gtx) {
		a.zoomCenter(zoomStep)
	}
	if a.zoomOutBtn.Clicked(gtx) {
		a.zoomCenter(1 / zoomStep)
	}
	if a.fitBtn.Clicked(gtx) {
		a.fit()
	}
	if a.themeBtn.Clicked(gtx) {
		a.toggleTheme()
	}
	if a.layersBtn.Clicked(gtx) {
		a.layersMenu.ToggleVisibility(gtx)
	}
}

func (a *App) toolButton(gtx layout.Context, btn *widget.Clickable, icon *widget.Icon, desc string) layout.Dimensions {
	return layout.Inset{Right: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if icon == nil {
			return material.Button(a.Theme.Theme, btn, desc).Layout(gtx)
		}
		b := material.IconButton(a.Theme.Theme, btn, icon, desc)
		b.Size = unit.Dp(20)
		b.Inset = layout.UniformInset(unit.Dp(6))
		return b.Layout(gtx)
	})
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	a.handleToolbar(gtx)

	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8), Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.toolButton(gtx, &a.openBtn, a.icons.open, "Open")
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.toolButton(gtx, &a.zoomInBtn, a.icons.zoomIn, "Zoom in")
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.toolButton(gtx, &a.zoomOutBtn, a.icons.zoomOut, "Zoom out")
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.toolButton(gtx, &a.fitBtn, a.icons.fit, "Fit")
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				dims := a.toolButton(gtx, &a.layersBtn, a.icons.layers, "Layers")
				a.layersMenu.Layout(gtx, a.Theme)
				return dims
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.toolButton(gtx, &a.themeBtn, a.icons.theme, "Theme")
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(70))
				return material.Body2(a.Theme.Theme, fmt.Sprintf("%.0f%%", a.vp.Scale*100)).Layout(gtx)
			}),
		)
	})
}

func (a *App) layoutCanvas(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	a.canvasSize = size
	a.handlePointer(gtx)

	if a.pendingFit {
		a.fit()
	}
	a.ensureScene()

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, a)

	if a.scene == nil {
		return a.layoutWelcome(gtx)
	}
	a.gio.Render(gtx, a.vp, a.scene)
	return layout.Dimensions{Size: size}
}

func (a *App) layoutWelcome(gtx layout.Context) layout.Dimensions {
	palette := scene.GetPalette(a.style.Theme)
	paint.Fill(gtx.Ops, palette.Background)

	snap := a.State.Snapshot()
	msg := "Open a floor plan with Ctrl+O or the toolbar"
	if snap.Loading {
		msg = "Loading..."
	}
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.H5(a.Theme.Theme, "Floor Plan Viewer")
				lbl.Color = palette.Label
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body1(a.Theme.Theme, msg)
				lbl.Color = palette.Label
				return lbl.Layout(gtx)
			}),
		)
	})
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (a *App) layoutStatusBar(gtx layout.Context) layout.Dimensions {
	snap := a.State.Snapshot()

	return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if snap.LastError != nil {
					lbl := material.Body2(a.Theme.Theme, "Error: "+snap.LastError.Error())
					lbl.Color = errorColor
					return lbl.Layout(gtx)
				}
				msg := snap.Status
				if snap.Loading {
					msg = "Loading..."
				}
				return material.Body2(a.Theme.Theme, msg).Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.scene == nil || a.scene.Unaligned() == 0 {
					return layout.Dimensions{}
				}
				return layout.Inset{Left: unit.Dp(16)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return material.Body2(a.Theme.Theme, fmt.Sprintf("%d fixtures not on a wall", a.scene.Unaligned())).Layout(gtx)
				})
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !a.hasPointer {
					return layout.Dimensions{}
				}
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(160))
				return material.Body2(a.Theme.Theme, fmt.Sprintf("x %.1f  y %.1f", a.pointer.X, a.pointer.Y)).Layout(gtx)
			}),
		)
	})
}
