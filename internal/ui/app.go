package ui

import (
	"fmt"
	"image"
	"log"
	"strings"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/widget"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"

	"github.com/OpenTraceLab/floorplan/pkg/loader"
	"github.com/OpenTraceLab/floorplan/pkg/plan"
	"github.com/OpenTraceLab/floorplan/pkg/renderer"
	"github.com/OpenTraceLab/floorplan/pkg/scene"
	"github.com/OpenTraceLab/floorplan/pkg/viewport"
)

// fitMargin is the free border around a fitted plan, in pixels.
const fitMargin = 40

// Options configure a viewer instance.
type Options struct {
	// Path is loaded on startup when set.
	Path   string
	Format loader.Format

	// Config overrides the stored preferences. When nil they are loaded from
	// the config file and saved back on exit.
	Config *Config
	// Adjust runs on the style after the preferences are applied.
	Adjust func(*scene.Style)
	// NoFit keeps the initial scale 1 view instead of fitting on load.
	NoFit   bool
	Verbose bool
}

type loadResult struct {
	path string
	plan *plan.Plan
	err  error
}

// App is the interactive floor plan viewer.
type App struct {
	Window *app.Window
	Theme  *theme.Theme
	State  *State

	ops      op.Ops
	explorer *explorer.Explorer
	gio      *renderer.Gio

	opts       Options
	config     *Config
	saveConfig bool

	plan       *plan.Plan
	scene      *scene.Scene
	style      scene.Style
	dirty      bool
	vp         *viewport.Viewport
	canvasSize image.Point
	pendingFit bool

	pointer    plan.Point
	hasPointer bool
	lastDrag   f32.Point

	// loaded hands plans from the picker goroutine to the event loop.
	loaded chan loadResult

	openBtn    widget.Clickable
	zoomInBtn  widget.Clickable
	zoomOutBtn widget.Clickable
	fitBtn     widget.Clickable
	themeBtn   widget.Clickable
	layersBtn  widget.Clickable

	icons      toolbarIcons
	layersMenu *menu.DropdownMenu
}

// New wires the Gio window, theme and viewer state together. window may be
// nil for headless use.
func New(window *app.Window, opts Options) *App {
	a := &App{
		Window: window,
		Theme:  theme.NewTheme("", nil, true),
		State:  NewState(),
		gio:    renderer.NewGio(),
		opts:   opts,
		style:  scene.DefaultStyle(),
		vp:     viewport.New(),
		loaded: make(chan loadResult, 1),
		dirty:  true,
	}

	a.config = opts.Config
	if a.config == nil {
		cfg, err := LoadConfig()
		if err != nil {
			a.Logf("[ERROR] Failed to load config: %v", err)
		}
		a.config = cfg
		a.saveConfig = true
	}
	a.config.Apply(&a.style)
	if opts.Adjust != nil {
		opts.Adjust(&a.style)
	}

	if window != nil {
		a.explorer = explorer.NewExplorer(window)
	}
	a.icons = loadToolbarIcons()
	a.layersMenu = a.buildLayersMenu()
	return a
}

// Run processes Gio events until the window is closed.
func (a *App) Run() error {
	if a.opts.Path != "" {
		a.loadAsync(a.opts.Path)
	}

	for {
		switch ev := a.Window.Event().(type) {
		case app.DestroyEvent:
			a.persistConfig()
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// Logf records a tagged message for the status bar. Errors always reach the
// process log; everything else only with --verbose.
func (a *App) Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.State.AppendLog(msg)
	if a.opts.Verbose || strings.HasPrefix(msg, "[ERROR]") {
		log.Print(msg)
	}
	a.invalidate()
}

// SetPlan replaces the displayed plan. It must run on the event loop.
func (a *App) SetPlan(path string, p *plan.Plan) {
	a.plan = p
	a.dirty = true
	a.vp.Reset()
	a.pendingFit = !a.opts.NoFit

	a.State.SetPath(path)
	a.State.SetStatus(fmt.Sprintf("%d walls, %d doors, %d windows", len(p.Walls), len(p.Doors), len(p.Windows)))
	if a.Window != nil {
		a.Window.Option(app.Title("Floor Plan Viewer - " + path))
	}
	a.Logf("[LOAD] %s: %d walls, %d doors, %d windows", path, len(p.Walls), len(p.Doors), len(p.Windows))
}

// Plan returns the plan on screen, or nil.
func (a *App) Plan() *plan.Plan { return a.plan }

// Viewport returns the view state of the canvas.
func (a *App) Viewport() *viewport.Viewport { return a.vp }

// Style returns the current scene style.
func (a *App) Style() scene.Style { return a.style }

// loadAsync reads a plan off the event loop and posts the result to loaded.
func (a *App) loadAsync(path string) {
	a.State.SetLoading(true)
	go func() {
		p, err := loader.Load(path, a.opts.Format)
		a.loaded <- loadResult{path: path, plan: p, err: err}
		a.invalidate()
	}()
}

// drainLoads applies at most one finished load per frame.
func (a *App) drainLoads() {
	select {
	case res := <-a.loaded:
		a.applyLoad(res)
	default:
	}
}

func (a *App) applyLoad(res loadResult) {
	a.State.SetLoading(false)
	if res.err != nil {
		a.State.SetError(res.err)
		a.Logf("[ERROR] Failed to load plan: %v", res.err)
		return
	}
	a.SetPlan(res.path, res.plan)
}

func (a *App) openFilePicker() {
	if a.explorer == nil {
		return
	}
	go func() {
		file, err := a.explorer.ChooseFile("json", "fplan", "sexp", "plan")
		if err != nil {
			if err != explorer.ErrUserDecline {
				a.Logf("[ERROR] File picker failed: %v", err)
			}
			return
		}
		defer file.Close()

		named, ok := file.(interface{ Name() string })
		if !ok {
			a.Logf("[ERROR] Unable to get file path from picker")
			return
		}
		a.loadAsync(named.Name())
	}()
}

// ensureScene rebuilds the scene after the plan or style changed.
func (a *App) ensureScene() {
	if !a.dirty {
		return
	}
	a.dirty = false
	if a.plan == nil {
		a.scene = nil
		return
	}
	a.scene = scene.Build(a.plan, a.style)
}

// fit scales the plan into the canvas, or defers until the canvas has a size.
func (a *App) fit() {
	if a.plan == nil {
		return
	}
	if a.canvasSize.X == 0 || a.canvasSize.Y == 0 {
		a.pendingFit = true
		return
	}
	a.pendingFit = false

	bbox := a.plan.Bounds()
	if bbox.IsEmpty() {
		a.Logf("[VIEW] Plan has no walls to fit")
		return
	}
	a.vp.Fit(bbox, float64(a.canvasSize.X), float64(a.canvasSize.Y), fitMargin)
	a.Logf("[VIEW] Fit to view: bbox (%.1f, %.1f) to (%.1f, %.1f), scale %.3f",
		bbox.Min.X, bbox.Min.Y, bbox.Max.X, bbox.Max.Y, a.vp.Scale)
	a.invalidate()
}

func (a *App) zoomCenter(factor float64) {
	a.vp.ZoomAt(float64(a.canvasSize.X)/2, float64(a.canvasSize.Y)/2, factor)
	a.invalidate()
}

func (a *App) resetView() {
	a.vp.Reset()
	a.Logf("[VIEW] View reset")
	a.invalidate()
}

func (a *App) toggleTheme() {
	a.style.Theme = a.style.Theme.Next()
	a.dirty = true
	a.Logf("[VIEW] Theme switched to: %s", a.style.Theme)
	a.invalidate()
}

func (a *App) quit() {
	if a.Window != nil {
		a.Window.Perform(system.ActionClose)
	}
}

func (a *App) persistConfig() {
	if !a.saveConfig {
		return
	}
	a.config.Capture(a.style)
	if err := SaveConfig(a.config); err != nil {
		a.Logf("[ERROR] Failed to save config: %v", err)
	}
}

// invalidate requests a new frame.
func (a *App) invalidate() {
	if a.Window != nil {
		a.Window.Invalidate()
	}
}
