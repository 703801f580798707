package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iZarrios/monkey-front/ast/dump"
	"github.com/iZarrios/monkey-front/lexer"
	"github.com/iZarrios/monkey-front/parser"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the syntax tree of a source file",
	Long: `parse prints the program as canonical source (text), or as a
YAML or JSON tree. Diagnostics go to stderr and make the command fail,
but the statements that did parse are still printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openInput(cmd, args)
		if err != nil {
			return err
		}

		var opts []parser.Option
		if cfg.Log.Trace {
			opts = append(opts, parser.WithTracer(logger))
		}
		p, err := parser.NewParser(lexer.NewLexer(src), opts...)
		if err != nil {
			return err
		}
		program := p.ParseProgram()

		out := cmd.OutOrStdout()
		switch parseFormat {
		case "text", "":
			fmt.Fprintln(out, program.String())
		case "yaml":
			err = dump.YAML(out, program)
		case "json":
			err = dump.JSON(out, program)
		default:
			return fmt.Errorf("unknown format %q (want text, yaml or json)", parseFormat)
		}
		if err != nil {
			return err
		}

		for _, d := range p.Diagnostics() {
			logger.Error(d.Message, "kind", d.Kind, "token", d.Token.Literal)
		}
		if err := p.Err(); err != nil {
			return fmt.Errorf("%d parse error(s)", len(p.Diagnostics()))
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format: text, yaml or json")
	rootCmd.AddCommand(parseCmd)
}
