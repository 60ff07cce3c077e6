// Package exec implements the Executor of spec.md §4.5: a
// deterministic stack machine running a compile.Program against the
// three resolver collaborators of spec.md §4.6.
//
// Grounded on the teacher's internal/stack/stack.go (an explicit
// growable-slice value stack) for the frame model, and
// internal/frame for the notion of a LIFO stack of such frames with an
// enclosing/current distinction — generalized here from Rebol's single
// evaluation stack into the frame-per-OpenFrame accumulator model
// spec.md's compiler emits against.
package exec

import (
	"context"
	"strings"
	"time"

	"github.com/helena-lang/helena/compile"
	"github.com/helena-lang/helena/core"
	"github.com/helena-lang/helena/selector"
	"github.com/helena-lang/helena/value"
	"github.com/helena-lang/helena/verror"
	"github.com/helena-lang/helena/vlog"
)

// Executor runs a compiled Program against its three resolver
// collaborators. It carries no state of its own beyond the resolvers:
// every frame and the last-result register are local to a single Run
// call (spec.md §5 "frames are owned exclusively by a single executor
// invocation"). Trace is optional; a nil Session disables tracing
// entirely.
type Executor struct {
	Variables core.VariableResolver
	Commands  core.CommandResolver
	Selectors core.SelectorResolver
	Trace     *vlog.Session
}

// New creates an Executor over the given resolvers.
func New(variables core.VariableResolver, commands core.CommandResolver, selectors core.SelectorResolver) *Executor {
	return &Executor{Variables: variables, Commands: commands, Selectors: selectors}
}

type execFrame struct {
	values []core.Value
}

// Run executes prog from an empty state and returns the final value:
// the last-result register if nothing was left on the outermost frame,
// otherwise the top of that frame (spec.md §4.5).
func (e *Executor) Run(ctx context.Context, prog compile.Program) (core.Value, error) {
	frames := []execFrame{{}}
	lastResult := core.Value(value.NewNil())

	top := func() *execFrame { return &frames[len(frames)-1] }

	push := func(v core.Value) { f := top(); f.values = append(f.values, v) }

	pop := func() (core.Value, error) {
		f := top()
		if len(f.values) == 0 {
			return nil, verror.Internal("stack underflow")
		}
		v := f.values[len(f.values)-1]
		f.values = f.values[:len(f.values)-1]
		return v, nil
	}

	for _, instr := range prog {
		opStart := time.Now()
		stepErr := e.runOp(ctx, instr, &frames, push, pop, top, &lastResult)
		e.Trace.Emit(instr.Kind.String(), traceValue(instr), stepErr, time.Since(opStart))
		if stepErr != nil {
			return nil, stepErr
		}
	}

	if f := top(); len(f.values) > 0 {
		return f.values[len(f.values)-1], nil
	}
	return lastResult, nil
}

func traceValue(instr compile.Op) string {
	if instr.Kind != compile.PushValue || instr.Value == nil {
		return ""
	}
	s, err := instr.Value.AsString()
	if err != nil {
		return ""
	}
	return s
}

// runOp executes a single operation. Split out from Run so every
// operation can be wrapped uniformly for tracing.
func (e *Executor) runOp(
	ctx context.Context,
	instr compile.Op,
	framesPtr *[]execFrame,
	push func(core.Value),
	pop func() (core.Value, error),
	top func() *execFrame,
	lastResult *core.Value,
) error {
	switch instr.Kind {
	case compile.PushValue:
		push(instr.Value)

	case compile.OpenFrame:
		*framesPtr = append(*framesPtr, execFrame{})

	case compile.CloseFrame:
		frames := *framesPtr
		if len(frames) < 2 {
			return verror.Internal("frame underflow")
		}
		closed := frames[len(frames)-1]
		*framesPtr = frames[:len(frames)-1]
		push(value.NewTuple(closed.values))

	case compile.ResolveValue:
		v, err := pop()
		if err != nil {
			return err
		}
		rv, err := e.resolveValue(v)
		if err != nil {
			return err
		}
		push(rv)

	case compile.ExpandValue:
		f := top()
		if len(f.values) == 0 {
			return verror.Internal("expand on empty frame")
		}
		last := f.values[len(f.values)-1]
		if tup, ok := value.AsTupleValue(last); ok {
			f.values = append(f.values[:len(f.values)-1], tup.Elements()...)
		}

	case compile.SetSource:
		src, err := pop()
		if err != nil {
			return err
		}
		push(value.NewQualified(src))

	case compile.SelectIndex:
		idx, err := pop()
		if err != nil {
			return err
		}
		target, err := pop()
		if err != nil {
			return err
		}
		sel, err := selector.NewIndexed(idx)
		if err != nil {
			return err
		}
		result, err := sel.Apply(target)
		if err != nil {
			return err
		}
		push(result)

	case compile.SelectKeys:
		keysVal, err := pop()
		if err != nil {
			return err
		}
		target, err := pop()
		if err != nil {
			return err
		}
		keys, err := elementsOf(keysVal)
		if err != nil {
			return err
		}
		sel, err := selector.NewKeyed(keys)
		if err != nil {
			return err
		}
		result, err := sel.Apply(target)
		if err != nil {
			return err
		}
		push(result)

	case compile.SelectRules:
		rulesVal, err := pop()
		if err != nil {
			return err
		}
		target, err := pop()
		if err != nil {
			return err
		}
		rules, err := elementsOf(rulesVal)
		if err != nil {
			return err
		}
		sel, err := e.Selectors.Resolve(rules)
		if err != nil {
			return err
		}
		result, err := sel.Apply(target)
		if err != nil {
			return err
		}
		push(result)

	case compile.EvaluateSentence:
		argsVal, err := pop()
		if err != nil {
			return err
		}
		args, err := elementsOf(argsVal)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return nil
		}
		name, err := args[0].AsString()
		if err != nil {
			return err
		}
		cmd, ok := e.Commands.Resolve(name)
		if !ok {
			return verror.Executionf("cannot resolve command %s", name)
		}
		result, err := cmd.Evaluate(ctx, argsVal)
		if err != nil {
			return err
		}
		*lastResult = result

	case compile.SubstituteResult:
		push(*lastResult)

	case compile.JoinStrings:
		tupVal, err := pop()
		if err != nil {
			return err
		}
		elems, err := elementsOf(tupVal)
		if err != nil {
			return err
		}
		var b strings.Builder
		for _, el := range elems {
			s, err := el.AsString()
			if err != nil {
				return err
			}
			b.WriteString(s)
		}
		push(value.NewString(b.String()))

	default:
		return verror.Internal("unknown operation")
	}
	return nil
}

// resolveValue implements the ResolveValue operation: a Tuple maps
// resolve recursively over its elements; anything else is coerced to a
// string and looked up.
func (e *Executor) resolveValue(v core.Value) (core.Value, error) {
	if tup, ok := value.AsTupleValue(v); ok {
		elems := tup.Elements()
		resolved := make([]core.Value, len(elems))
		for i, el := range elems {
			r, err := e.resolveValue(el)
			if err != nil {
				return nil, err
			}
			resolved[i] = r
		}
		return value.NewTuple(resolved), nil
	}
	name, err := v.AsString()
	if err != nil {
		return nil, err
	}
	val, ok := e.Variables.Resolve(name)
	if !ok {
		return nil, verror.Executionf("cannot resolve variable %s", name)
	}
	return val, nil
}

// elementsOf requires v to be a Tuple and returns its elements; both
// SelectKeys/SelectRules operands and EvaluateSentence's argument list
// are always Tuples by construction of the compiler.
func elementsOf(v core.Value) ([]core.Value, error) {
	tup, ok := value.AsTupleValue(v)
	if !ok {
		return nil, verror.Internal("expected a tuple")
	}
	return tup.Elements(), nil
}
