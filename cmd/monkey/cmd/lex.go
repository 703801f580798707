package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iZarrios/monkey-front/lexer"
	"github.com/iZarrios/monkey-front/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print the tokens of a source file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openInput(cmd, args)
		if err != nil {
			return err
		}

		illegal := 0
		for _, tok := range lexer.NewLexer(src).Tokens() {
			if tok.Type == token.ILLEGAL {
				illegal++
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}
		logger.Debug("lexed", "bytes", len(src), "illegal", illegal)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
