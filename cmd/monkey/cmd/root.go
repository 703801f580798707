package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iZarrios/monkey-front/config"
)

var (
	cfgFile string
	verbose bool
	trace   bool

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "monkey",
	Short: "Lexer and parser for the Monkey language",
	Long: `monkey turns Monkey source into tokens and syntax trees.

Without a subcommand it starts an interactive REPL.

Commands:
  repl     - interactive read loop (lex or parse each line)
  lex      - print the tokens of a file or stdin
  parse    - print the syntax tree of a file or stdin`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRepl,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./monkey.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "trace the parser's grammar rules (implies --verbose)")
}

// setup loads the configuration and builds the logger every command uses.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if trace {
		cfg.Log.Trace = true
	}
	if verbose || cfg.Log.Trace {
		cfg.Log.Level = "debug"
	}

	logger, err = newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "mode", cfg.REPL.Mode, "trace", cfg.Log.Trace)
	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "monkey",
	}), nil
}

// openInput returns the named file, or stdin when no file is given or the
// name is "-".
func openInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	return string(b), nil
}
