// Package app loads everything a host needs before its loop starts: preferences, the
// log, the project catalog and the key bindings.
package app

import (
	"fmt"

	"portfolio/internal/catalog"
	"portfolio/internal/config"
	"portfolio/internal/input"
	"portfolio/internal/logger"
	"portfolio/internal/world"
)

// Options are the command-line overrides applied on top of the config file.
type Options struct {
	ConfigPath  string
	CatalogPath string // overrides prefs.CatalogPath when set
	Fullscreen  *bool  // overrides prefs.Window.Fullscreen when non-nil
	LogPath     *string
}

// Session is the loaded startup state shared by every host.
type Session struct {
	Prefs    config.Prefs
	Log      *logger.Logger
	Catalog  *catalog.Catalog
	Bindings *input.Bindings
}

// Open loads the session. Binding problems are logged as warnings, not returned.
func Open(opts Options) (*Session, error) {
	prefs, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.CatalogPath != "" {
		prefs.CatalogPath = opts.CatalogPath
	}
	if opts.Fullscreen != nil {
		prefs.Window.Fullscreen = *opts.Fullscreen
	}
	if opts.LogPath != nil {
		prefs.LogPath = *opts.LogPath
	}

	log := logger.New(prefs.LogPath)

	var cat *catalog.Catalog
	if prefs.CatalogPath == "" {
		cat = catalog.Default()
	} else if cat, err = catalog.Load(prefs.CatalogPath); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Infof("catalog: %d projects", cat.Len())

	bindings, warnings := input.NewBindings(prefs.Keys)
	for _, w := range warnings {
		log.Warnf("bindings: %s", w)
	}

	return &Session{Prefs: prefs, Log: log, Catalog: cat, Bindings: bindings}, nil
}

// Loop builds the world on display and pairs it with renderer.
func (s *Session) Loop(display world.Display, renderer world.Renderer) *world.Loop {
	w := world.Build(s.Catalog, s.Prefs.WorldConfig(), display, s.Log)
	return &world.Loop{World: w, Renderer: renderer}
}
