package ui

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
)

// Run opens the viewer window and blocks until it closes.
func Run(opts Options) error {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Floor Plan Viewer"), app.Size(unit.Dp(1024), unit.Dp(720)))
		viewer := New(w, opts)
		if err := viewer.Run(); err != nil {
			log.Printf("ui: %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
