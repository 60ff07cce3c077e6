package main

import (
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"

	traceFile string
	traceOn   bool
)

var rootCmd = &cobra.Command{
	Use:     "helena",
	Short:   "A minimal host for the Helena scripting core",
	Version: version,
	Long: `helena drives the Helena core pipeline (tokenizer, parser,
syntax classifier, compiler, stack executor) from the command line.

It exists to exercise the pipeline end to end, not to define a real
command library: "run" and "repl" only wire up a handful of demo
commands (set, puts, list, dict, + - * /) over the core, enough to
drive spec.md's example scripts. A real embedding host supplies its
own commands through the same CommandResolver seam.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceFile, "trace-file", "", "write execution trace events to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&traceOn, "trace", false, "enable execution tracing")
}
