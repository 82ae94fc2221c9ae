package main

import (
	"github.com/spf13/cobra"

	"portfolio/internal/debug"
	"portfolio/internal/fonts"
	"portfolio/internal/graphics"
	"portfolio/internal/scene"
	"portfolio/internal/starfield"
	"portfolio/internal/ui"
)

func runWindow(cmd *cobra.Command, flags *rootFlags) error {
	s, err := flags.open(cmd)
	if err != nil {
		return err
	}
	prefs := s.Prefs

	engine := ui.New()
	if prefs.Stylesheet != "" {
		if err := engine.LoadCSS(prefs.Stylesheet); err != nil {
			return err
		}
	}
	panel := ui.NewPanel(engine, s.Log)
	dbg := debug.New(s.Log)
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowState = prefs.ShowDebug

	loop := s.Loop(panel, nil)
	loop.Renderer = scene.New(loop.World, s.Catalog, scene.Options{
		Stars:       starfield.Generate(prefs.StarCount, prefs.StarSeed),
		GridVisible: prefs.ShowDebug,
		Bounds:      prefs.World.Bounds,
		Overlays:    []scene.Overlay{panel, dbg},
	})

	// Fonts need the GL context, so they load after the window opens.
	setup := func() {
		if prefs.Font == "" {
			return
		}
		path, err := fonts.Find(fonts.BaseDirs(), prefs.Font)
		if err == nil {
			err = engine.LoadFont(path)
		}
		if err != nil {
			s.Log.Warnf("font %q: %v; using the default font", prefs.Font, err)
			return
		}
		s.Log.Infof("font %s", path)
	}

	keys := graphics.NewKeyboard(s.Bindings)
	graphics.Run(prefs.Window, s.Log, setup, func(dt float32) {
		keys.Poll(&loop.World.Input)
		panel.Update()
		loop.Frame(dt)
	})
	return nil
}
