package main

import (
	"fmt"
	"sort"

	"github.com/helena-lang/helena/docmodel"
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Print documentation for the demo command set",
	RunE:  printDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

// demoCommandDocs documents the commands demoCommands wires up. This is
// documentation about the demo host's own built-ins, not the core
// (which defines no commands of its own).
func demoCommandDocs() map[string]*docmodel.CommandDoc {
	return map[string]*docmodel.CommandDoc{
		"set": docmodel.NewCommandDoc(
			"variables", "Bind a variable", "Binds name to value and returns value.", "the bound value",
			[]docmodel.ParamDoc{
				{Name: "name", Type: "string", Description: "variable name"},
				{Name: "value", Type: "any", Description: "value to bind"},
			},
			[]string{"set greeting hello"}, nil,
		),
		"puts": docmodel.NewCommandDoc(
			"io", "Print values", "Prints its arguments space-joined, followed by a newline.", "nil",
			[]docmodel.ParamDoc{{Name: "values", Type: "any...", Description: "values to print"}},
			[]string{"puts hello world"}, nil,
		),
		"list": docmodel.NewCommandDoc(
			"collections", "Build a list", "Wraps its arguments into a List value.", "a list",
			[]docmodel.ParamDoc{{Name: "elements", Type: "any...", Description: "list elements"}},
			[]string{"list 1 2 3"}, nil,
		),
		"dict": docmodel.NewCommandDoc(
			"collections", "Build a dictionary", "Pairs its arguments into a Dictionary value.", "a dictionary",
			[]docmodel.ParamDoc{{Name: "pairs", Type: "string any ...", Description: "alternating key/value arguments"}},
			[]string{"dict a 1 b 2"}, nil,
		),
		"+": docmodel.NewCommandDoc(
			"arithmetic", "Add integers", "Sums its integer arguments.", "an integer",
			[]docmodel.ParamDoc{{Name: "operands", Type: "integer...", Description: "integers to add"}},
			[]string{"+ 1 2 3"}, []string{"-", "*", "/"},
		),
		"-": docmodel.NewCommandDoc(
			"arithmetic", "Subtract integers", "Subtracts arguments left to right; negates a single argument.", "an integer",
			[]docmodel.ParamDoc{{Name: "operands", Type: "integer...", Description: "integers to subtract"}},
			[]string{"- 5 2"}, []string{"+", "*", "/"},
		),
		"*": docmodel.NewCommandDoc(
			"arithmetic", "Multiply integers", "Multiplies its integer arguments.", "an integer",
			[]docmodel.ParamDoc{{Name: "operands", Type: "integer...", Description: "integers to multiply"}},
			[]string{"* 2 3 4"}, []string{"+", "-", "/"},
		),
		"/": docmodel.NewCommandDoc(
			"arithmetic", "Divide integers", "Divides arguments left to right; fails on division by zero.", "an integer",
			[]docmodel.ParamDoc{{Name: "operands", Type: "integer...", Description: "integers to divide"}},
			[]string{"/ 10 2"}, []string{"+", "-", "*"},
		),
	}
}

func printDocs(cmd *cobra.Command, args []string) error {
	docs := demoCommandDocs()
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		d := docs[name]
		if msg := d.Validate(name); msg != "" {
			fmt.Printf("%s: incomplete documentation (%s)\n\n", name, msg)
			continue
		}
		fmt.Printf("%s — %s\n", name, d.Summary)
		fmt.Printf("  %s\n", d.Description)
		for _, p := range d.Parameters {
			fmt.Printf("  %s (%s): %s\n", p.Name, p.Type, p.Description)
		}
		fmt.Printf("  returns: %s\n", d.Returns)
		for _, ex := range d.Examples {
			fmt.Printf("  > %s\n", ex)
		}
		if len(d.SeeAlso) > 0 {
			fmt.Printf("  see also: %v\n", d.SeeAlso)
		}
		fmt.Println()
	}
	return nil
}
