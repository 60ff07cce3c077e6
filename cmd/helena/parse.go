package main

import (
	"fmt"
	"strings"

	"github.com/helena-lang/helena/helena"
	"github.com/helena-lang/helena/syntax"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source and print the resulting syntax tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline source instead of reading a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	src, err := loadInput(path, parseEval)
	if err != nil {
		return err
	}

	script, err := helena.Parse(src)
	if err != nil {
		return err
	}
	dumpScript(script, 0)
	return nil
}

func dumpScript(s *syntax.Script, depth int) {
	indent := strings.Repeat("  ", depth)
	for i, sent := range s.Sentences {
		fmt.Printf("%ssentence %d\n", indent, i)
		for j, w := range sent.Words {
			fmt.Printf("%s  word %d\n", indent, j)
			for _, m := range w.Morphemes {
				dumpMorpheme(m, depth+2)
			}
		}
	}
}

func dumpMorpheme(m syntax.Morpheme, depth int) {
	indent := strings.Repeat("  ", depth)
	switch m.Kind {
	case syntax.Literal, syntax.HereString, syntax.TaggedString, syntax.LineComment, syntax.BlockComment:
		fmt.Printf("%s%s %q\n", indent, m.Kind, m.Text)
	case syntax.Tuple, syntax.Expression:
		fmt.Printf("%s%s\n", indent, m.Kind)
		dumpScript(m.Nested, depth+1)
	case syntax.Block:
		fmt.Printf("%s%s %q\n", indent, m.Kind, m.Source)
		dumpScript(m.Nested, depth+1)
	case syntax.String:
		fmt.Printf("%s%s\n", indent, m.Kind)
		for _, stem := range m.Stems {
			dumpMorpheme(stem, depth+1)
		}
	case syntax.SubstituteNext:
		fmt.Printf("%ssubstitute-next levels=%d expansion=%t\n", indent, m.Levels, m.Expansion)
	default:
		fmt.Printf("%s%s\n", indent, m.Kind)
	}
}
