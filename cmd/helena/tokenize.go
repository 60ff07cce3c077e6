package main

import (
	"fmt"

	"github.com/helena-lang/helena/token"
	"github.com/spf13/cobra"
)

var tokenizeEval string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize source and print the resulting tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizeEval, "eval", "e", "", "tokenize inline source instead of reading a file")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	src, err := loadInput(path, tokenizeEval)
	if err != nil {
		return err
	}

	for _, tok := range token.Tokenize(src) {
		fmt.Printf("[%-18s] %q @%d:%d\n", tok.Kind.String(), tok.Literal, tok.Line, tok.Column)
	}
	return nil
}
