package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/iZarrios/monkey-front/config"
	"github.com/iZarrios/monkey-front/repl"
)

var replMode string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive read loop",
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().StringVar(&replMode, "mode", "", "what to do with each line: lex or parse (default from config)")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	if replMode != "" {
		cfg.REPL.Mode = config.Mode(replMode)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	r := repl.New(cfg, repl.WithLogger(logger, cfg.Log.Trace))

	// liner needs a real terminal; anything else goes through the plain loop
	if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return r.RunInteractive(cmd.OutOrStdout())
	}
	r.Start(cmd.InOrStdin(), cmd.OutOrStdout())
	return nil
}
