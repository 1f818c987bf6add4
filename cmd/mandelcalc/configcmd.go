// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/mandelcalc/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "mandelcalc.yaml"

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefaultFile(path, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(a.out, "wrote %s\n", path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			return config.WriteYAML(a.out, a.cfg)
		},
	}

	cmd.AddCommand(initCmd, showCmd)

	return cmd
}
