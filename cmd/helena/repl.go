package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/helena-lang/helena/helena"
	"github.com/helena-lang/helena/value"
	"github.com/spf13/cobra"
)

const (
	primaryPrompt = "helena> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start a line-mode REPL against the demo command set",
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runREPL implements a minimal read-eval-print loop: one line in, one
// compiled-and-executed sentence out. Unlike the teacher's REPL, there
// is no multi-line continuation detection, history persistence beyond
// the session, or debug mode — spec.md §1 scopes the embedding host's
// REPL/file-loader/exit semantics out of the core, so this exists only
// to drive the pipeline interactively.
func runREPL(cmd *cobra.Command, args []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          primaryPrompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	ex := newExecutor()
	defer func() {
		if ex.Trace != nil {
			ex.Trace.Close()
		}
	}()

	fmt.Println("helena repl — type 'exit' or Ctrl+D to leave")

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if line == "exit" || line == "quit" {
			return nil
		}
		if line == "" {
			continue
		}

		result, err := helena.Run(context.Background(), line, ex)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if !value.AsNilValue(result) {
			fmt.Println(formatValue(result))
		}
	}
}
