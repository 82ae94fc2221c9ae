package world

import (
	"portfolio/internal/catalog"
	"portfolio/internal/logger"
)

// Mode is the interaction mode.
type Mode int

const (
	ModeExploring Mode = iota
	ModePanelOpen
)

func (m Mode) String() string {
	switch m {
	case ModeExploring:
		return "exploring"
	case ModePanelOpen:
		return "panel-open"
	default:
		return "unknown"
	}
}

// Gate decides whether movement applies and whether confirm may open a panel.
type Gate struct {
	mode    Mode
	catalog *catalog.Catalog
	display Display
	log     *logger.Logger
}

// NewGate returns a gate in ModeExploring.
func NewGate(cat *catalog.Catalog, display Display, log *logger.Logger) *Gate {
	return &Gate{mode: ModeExploring, catalog: cat, display: display, log: log}
}

// Mode returns the current mode.
func (g *Gate) Mode() Mode {
	return g.mode
}

// Confirm opens the panel for active. It only acts while exploring with a non-nil active
// portal. A portal whose project cannot be resolved leaves the gate exploring.
func (g *Gate) Confirm(active *Portal) bool {
	if g.mode != ModeExploring || active == nil {
		return false
	}
	p, ok := g.catalog.FindByID(active.ProjectID)
	if !ok {
		g.log.Warnf("portal references unknown project %q", active.ProjectID)
		return false
	}
	g.display.ShowProject(p)
	g.mode = ModePanelOpen
	g.log.Infof("opened project %s", p.ID)
	return true
}

// Close returns the gate to ModeExploring. It is the display's close callback.
func (g *Gate) Close() {
	if g.mode == ModePanelOpen {
		g.log.Infof("panel closed")
	}
	g.mode = ModeExploring
}
