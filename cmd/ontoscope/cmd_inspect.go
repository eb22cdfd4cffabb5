package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ontoscope/internal/engine"
	"ontoscope/internal/inspect"
	"ontoscope/internal/logging"
)

var errEmptyKinds = errors.New("--kinds needs at least one kind (see 'ontoscope kinds')")

func newInspectCmd(use, short string, run func(*cobra.Command, inspect.Request) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [--kinds k1,k2] <sentence>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("kinds") && len(kindNames) == 0 {
				return errEmptyKinds
			}
			kinds, err := engine.ParseOutputKinds(kindNames)
			if err != nil {
				return err
			}
			req := inspect.Request{
				Lang:     lang,
				Sentence: args[0],
				Kinds:    kinds,
				Strict:   strict,
			}
			logger.Get(logging.CategoryCLI).Debug("dispatch",
				zap.String("command", use),
				zap.Stringers("kinds", kinds),
				zap.Bool("strict", strict))
			return run(cmd, req)
		},
	}
	cmd.Flags().StringSliceVarP(&kindNames, "kinds", "k", nil, "Output kinds in priority order, later kinds win (see 'ontoscope kinds')")
	cmd.Flags().BoolVar(&strict, "strict", false, "Only return entities of the given kinds")
	return cmd
}

func newInspector() *inspect.Inspector {
	return inspect.New(newEngine(),
		inspect.WithStyles(styles),
		inspect.WithLogger(logger),
		inspect.WithTitle(cfg.Display.Title))
}

func runParse(cmd *cobra.Command, req inspect.Request) error {
	return newInspector().Parse(cmd.OutOrStdout(), req)
}

func runPlay(cmd *cobra.Command, req inspect.Request) error {
	return newInspector().Play(cmd.OutOrStdout(), req)
}
