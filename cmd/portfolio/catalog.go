package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"portfolio/internal/config"
)

func newProjectsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List the projects in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tPOSITION\tCOLOR\tTAGS\tURL")
			for _, p := range s.Catalog.All() {
				fmt.Fprintf(tw, "%s\t%s\t%.0f,%.0f,%.0f\t%s\t%s\t%s\n",
					p.ID, p.Title, p.Position[0], p.Position[1], p.Position[2],
					p.Color.Hex(), strings.Join(p.Tags, ","), p.URL)
			}
			return tw.Flush()
		},
	}
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the preferences file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default preferences to --config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configPath
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("config: %w", err)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return fmt.Errorf("config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}
