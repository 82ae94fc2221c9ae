package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"portfolio/internal/headless"
	"portfolio/internal/tui"
	"portfolio/internal/world"
)

func newTUICmd(flags *rootFlags) *cobra.Command {
	var hz int
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Explore from a top-down map in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}
			scr, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("terminal: %w", err)
			}
			if err := scr.Init(); err != nil {
				return fmt.Errorf("terminal: %w", err)
			}
			defer scr.Fini()

			screen := tui.New(scr, s.Catalog, s.Bindings, s.Prefs.World.Bounds, s.Log)
			loop := s.Loop(screen, screen)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return ignoreCanceled(tui.Run(ctx, screen, loop, hz))
		},
	}
	cmd.Flags().IntVar(&hz, "hz", 30, "Frames per second")
	return cmd
}

func newHeadlessCmd(flags *rootFlags) *cobra.Command {
	var (
		cfg  headless.Config
		hold []string
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the world without a display and print what a screen would show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}
			rec := headless.NewRecorder(s.Log)
			loop := s.Loop(rec, rec)
			for _, name := range hold {
				a, ok := world.ParseAction(name)
				if !ok {
					return fmt.Errorf("unknown action %q", name)
				}
				loop.World.Input.Press(a)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := ignoreCanceled(headless.Run(ctx, loop, cfg)); err != nil {
				return err
			}

			w := loop.World
			out := cmd.OutOrStdout()
			for _, line := range s.Log.Lines() {
				fmt.Fprintln(out, line)
			}
			p := w.Avatar.Position
			fmt.Fprintf(out, "frames=%d mode=%s pos=(%.2f, %.2f, %.2f) yaw=%.2f\n",
				rec.Frames(), w.Mode(), p[0], p[1], p[2], w.Avatar.Yaw)
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Hz, "hz", 60, "Ticks per second")
	cmd.Flags().Uint64Var(&cfg.Ticks, "ticks", 600, "Stop after this many ticks (0 runs until interrupted)")
	cmd.Flags().StringSliceVar(&hold, "hold", nil, "Actions held for the whole run (forward, turn_left, ...)")
	return cmd
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
