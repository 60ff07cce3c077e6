package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/helena-lang/helena/core"
	"github.com/helena-lang/helena/helena"
	"github.com/helena-lang/helena/value"
	"github.com/helena-lang/helena/verror"
)

// demoVariables is a mutable, map-backed core.VariableResolver: the
// only state the demo host keeps between EvaluateSentence calls, so
// "set" can have an effect visible to the rest of the script.
type demoVariables struct {
	vars helena.MapVariables
}

func newDemoVariables() *demoVariables {
	return &demoVariables{vars: helena.MapVariables{}}
}

func (d *demoVariables) Resolve(name string) (core.Value, bool) {
	return d.vars.Resolve(name)
}

func (d *demoVariables) Set(name string, v core.Value) {
	d.vars[name] = v
}

// demoCommands builds the handful of trivial built-in commands the
// cmd/helena host exercises the EvaluateSentence/CommandResolver
// surface with: set, puts, list, dict, and the four arithmetic
// operators. None of these are a dialect — they exist only to give
// spec.md §8's scenarios something to call.
func demoCommands(vars *demoVariables) helena.MapCommands {
	cmds := helena.MapCommands{}

	cmds["set"] = helena.CommandFunc(func(ctx context.Context, arguments core.Value) (core.Value, error) {
		args, err := sentenceArgs(arguments)
		if err != nil {
			return nil, err
		}
		if len(args) != 3 {
			return nil, verror.Executionf("wrong number of arguments to set: %d", len(args)-1)
		}
		name, err := args[1].AsString()
		if err != nil {
			return nil, err
		}
		vars.Set(name, args[2])
		return args[2], nil
	})

	cmds["puts"] = helena.CommandFunc(func(ctx context.Context, arguments core.Value) (core.Value, error) {
		args, err := sentenceArgs(arguments)
		if err != nil {
			return nil, err
		}
		for i, a := range args[1:] {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(formatValue(a))
		}
		fmt.Println()
		return value.NewNil(), nil
	})

	cmds["list"] = helena.CommandFunc(func(ctx context.Context, arguments core.Value) (core.Value, error) {
		args, err := sentenceArgs(arguments)
		if err != nil {
			return nil, err
		}
		return value.NewList(args[1:]), nil
	})

	cmds["dict"] = helena.CommandFunc(func(ctx context.Context, arguments core.Value) (core.Value, error) {
		args, err := sentenceArgs(arguments)
		if err != nil {
			return nil, err
		}
		rest := args[1:]
		if len(rest)%2 != 0 {
			return nil, verror.Execution("dict requires an even number of key/value arguments")
		}
		pairs := make([]value.DictPair, 0, len(rest)/2)
		for i := 0; i < len(rest); i += 2 {
			key, err := rest[i].AsString()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, value.DictPair{Key: key, Value: rest[i+1]})
		}
		return value.NewDictionary(pairs), nil
	})

	for _, op := range []string{"+", "-", "*", "/"} {
		cmds[op] = arithmeticCommand(op)
	}

	return cmds
}

func arithmeticCommand(op string) core.Command {
	return helena.CommandFunc(func(ctx context.Context, arguments core.Value) (core.Value, error) {
		args, err := sentenceArgs(arguments)
		if err != nil {
			return nil, err
		}
		operands := args[1:]
		if len(operands) == 0 {
			return nil, verror.Executionf("wrong number of arguments to %s", op)
		}
		ints := make([]int64, len(operands))
		for i, a := range operands {
			if n, ok := value.AsIntegerValue(a); ok {
				ints[i] = n.Int64()
				continue
			}
			s, err := a.AsString()
			if err != nil {
				return nil, verror.Execution("invalid integer")
			}
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, verror.Execution("invalid integer")
			}
			ints[i] = n
		}
		result := ints[0]
		if len(ints) == 1 {
			switch op {
			case "-":
				result = -result
			case "/":
				return nil, verror.Executionf("wrong number of arguments to %s", op)
			}
			return value.NewInteger(result), nil
		}
		for _, n := range ints[1:] {
			switch op {
			case "+":
				result += n
			case "-":
				result -= n
			case "*":
				result *= n
			case "/":
				if n == 0 {
					return nil, verror.Execution("division by zero")
				}
				result /= n
			}
		}
		return value.NewInteger(result), nil
	})
}

// sentenceArgs unpacks the Tuple an EvaluateSentence passes to a
// Command: its first element is always the command name itself.
func sentenceArgs(arguments core.Value) ([]core.Value, error) {
	tup, ok := value.AsTupleValue(arguments)
	if !ok {
		return nil, verror.Internal("expected a tuple")
	}
	return tup.Elements(), nil
}
