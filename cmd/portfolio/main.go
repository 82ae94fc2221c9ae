// portfolio - 3D project showcase
//
// Walk an avatar through a star field and open the projects behind glowing portals.
//
// Controls (default bindings):
//
//	W/S or Up/Down     - Move forward/backward
//	A/D or Left/Right  - Turn
//	E                  - Open the project of the nearest portal
//	Esc                - Close the project panel
package main

import (
	"os"

	"github.com/spf13/cobra"

	"portfolio/internal/app"
	"portfolio/internal/config"
)

type rootFlags struct {
	configPath  string
	catalogPath string
	fullscreen  bool
}

func (f *rootFlags) open(cmd *cobra.Command) (*app.Session, error) {
	opts := app.Options{ConfigPath: f.configPath, CatalogPath: f.catalogPath}
	if cmd.Flags().Changed("fullscreen") {
		opts.Fullscreen = &f.fullscreen
	}
	return app.Open(opts)
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "3D project showcase",
		Long: `portfolio - 3D project showcase

Walk an avatar through a star field. Stand near a portal and press E to open its
project; Esc closes the panel. The window is the default host; tui and headless
run the same world in a terminal or without any display.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultPath, "Path to the JSON preferences file")
	root.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "Path to a YAML project catalog (default: built in)")
	root.PersistentFlags().BoolVar(&flags.fullscreen, "fullscreen", false, "Open the window fullscreen")

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Open the 3D window (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runWindow(cmd, flags)
			},
		},
		newTUICmd(flags),
		newHeadlessCmd(flags),
		newProjectsCmd(flags),
		newConfigCmd(flags),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
