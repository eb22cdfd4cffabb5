// Command ontoscope inspects what the entity extraction engine makes of a
// sentence.
//
//	ontoscope parse "in 3 days"
//	ontoscope --lang fr play --kinds number,amount-of-money "vingt et un euros"
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ontoscope/internal/config"
	"ontoscope/internal/engine"
	"ontoscope/internal/inspect"
	"ontoscope/internal/logging"
	"ontoscope/internal/ui"
)

var (
	// Global flags
	langCode   string
	configPath string
	themeName  string
	verbose    bool

	// Subcommand flags
	kindNames []string
	strict    bool

	// Set up by PersistentPreRunE
	cfg    *config.Config
	lang   engine.Lang
	styles ui.Styles
	logger *logging.Logger

	// newEngine builds the engine inspected by parse and play.
	newEngine = func() inspect.Engine { return inspect.Bundled{} }
)

var errMissingCommand = errors.New("missing command: use parse or play")

func newRootCmd() *cobra.Command {
	langCode, configPath, themeName, verbose = "", "", "", false
	kindNames, strict = nil, false
	cfg, lang, styles, logger = nil, "", ui.DefaultStyles(), logging.Nop()

	rootCmd := &cobra.Command{
		Use:   "ontoscope",
		Short: "Inspect the entities an extraction engine finds in a sentence",
		Long: `ontoscope runs the entity extraction engine on one sentence and prints
what it found as a table.

  parse  shows the resolved entities
  play   shows every scored candidate, with its rule and children`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errMissingCommand
		},
	}

	rootCmd.PersistentFlags().StringVarP(&langCode, "lang", "l", "en", "2-letter language code")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "plain", "Table theme: plain, light, dark or auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	parseCmd := newInspectCmd("parse", "Show the resolved entities of a sentence", runParse)
	playCmd := newInspectCmd("play", "Show every scored candidate of a sentence", runPlay)

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(kindsCmd())
	rootCmd.AddCommand(langsCmd())
	rootCmd.AddCommand(configCmd())

	return rootCmd
}

// setup resolves configuration with the precedence flag > env > file > default.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Lang = langCode
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = themeName
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	lang, err = engine.ParseLang(cfg.Lang)
	if err != nil {
		return err
	}

	theme, err := ui.ParseTheme(cfg.Display.Theme)
	if err != nil {
		return err
	}
	styles = ui.NewStyles(theme)

	logger, err = logging.New(logging.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		Categories: cfg.Logging.Categories,
	})
	if err != nil {
		return err
	}

	logger.Get(logging.CategoryCLI).Debug("configured",
		zap.String("command", cmd.Name()),
		zap.String("config", configPath),
		zap.String("lang", lang.String()),
		zap.String("theme", string(theme.Name)))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
