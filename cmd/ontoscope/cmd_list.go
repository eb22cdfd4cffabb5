package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ontoscope/internal/engine"
)

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the output kinds accepted by --kinds, in canonical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range engine.AllOutputKinds() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), k); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func langsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List the languages with a bundled grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range engine.SupportedLangs() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), l); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
