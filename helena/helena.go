// Package helena ties the pipeline's five components together into
// convenience entry points (Tokenize/Parse/Compile/Run) and supplies a
// minimal set of resolver implementations so the core is runnable
// standalone, the way the teacher's internal/api/api.go wires its own
// tokenize→parse→eval pipeline together for its CLI.
package helena

import (
	"context"

	"github.com/helena-lang/helena/classify"
	"github.com/helena-lang/helena/compile"
	"github.com/helena-lang/helena/core"
	"github.com/helena-lang/helena/exec"
	"github.com/helena-lang/helena/parse"
	"github.com/helena-lang/helena/selector"
	"github.com/helena-lang/helena/syntax"
	"github.com/helena-lang/helena/token"
	"github.com/helena-lang/helena/verror"
)

// Tokenize runs the Tokenizer over src (spec.md §4.1).
func Tokenize(src string) []token.Token {
	return token.Tokenize(src)
}

// Parse runs the Parser over src, producing a Script (spec.md §4.2).
func Parse(src string) (*syntax.Script, error) {
	return parse.Parse(src)
}

// Classify classifies a single word (spec.md §4.3). Exposed mainly for
// tooling that wants to inspect the classifier's decision without
// compiling.
func Classify(w syntax.Word) (classify.Result, error) {
	return classify.Classify(w)
}

// Compile lowers a Script into a Program (spec.md §4.4).
func Compile(s *syntax.Script) (compile.Program, error) {
	return compile.Script(s)
}

// Run parses, compiles, and executes src against the given resolvers
// in one call. Most callers that only need to run a script once will
// reach for this instead of driving the pipeline stage by stage.
func Run(ctx context.Context, src string, ex *exec.Executor) (core.Value, error) {
	script, err := Parse(src)
	if err != nil {
		return nil, err
	}
	prog, err := Compile(script)
	if err != nil {
		return nil, err
	}
	return ex.Run(ctx, prog)
}

// MapVariables is a minimal core.VariableResolver backed by a plain
// map, useful for embedding the core without a host-specific binding
// scheme.
type MapVariables map[string]core.Value

func (m MapVariables) Resolve(name string) (core.Value, bool) {
	v, ok := m[name]
	return v, ok
}

// MapCommands is a minimal core.CommandResolver backed by a plain map.
type MapCommands map[string]core.Command

func (m MapCommands) Resolve(name string) (core.Command, bool) {
	c, ok := m[name]
	return c, ok
}

// CommandFunc adapts a plain function to core.Command.
type CommandFunc func(ctx context.Context, arguments core.Value) (core.Value, error)

func (f CommandFunc) Evaluate(ctx context.Context, arguments core.Value) (core.Value, error) {
	return f(ctx, arguments)
}

// DefaultSelectorResolver resolves every {...} rule list to a plain
// selector.Generic, so a {...} selector is constructible and
// inspectable (via Render) even though spec.md §9 leaves rule
// semantics entirely up to the host. This is a convenience default,
// not a spec-mandated rule language — hosts that need real rule
// dispatch should supply their own core.SelectorResolver.
type DefaultSelectorResolver struct{}

func (DefaultSelectorResolver) Resolve(rules []core.Value) (core.Selector, error) {
	if len(rules) == 0 {
		return nil, verror.Execution("empty selector")
	}
	return selector.NewGeneric(rules)
}
