package main

import (
	"fmt"

	"github.com/helena-lang/helena/helena"
	"github.com/spf13/cobra"
)

var compileEval string

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Parse and compile source and print the resulting program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&compileEval, "eval", "e", "", "compile inline source instead of reading a file")
}

func runCompile(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	src, err := loadInput(path, compileEval)
	if err != nil {
		return err
	}

	script, err := helena.Parse(src)
	if err != nil {
		return err
	}
	prog, err := helena.Compile(script)
	if err != nil {
		return err
	}

	for i, instr := range prog {
		if instr.Value != nil {
			fmt.Printf("%4d  %-18s %s\n", i, instr.Kind, formatValue(instr.Value))
		} else {
			fmt.Printf("%4d  %s\n", i, instr.Kind)
		}
	}
	return nil
}
