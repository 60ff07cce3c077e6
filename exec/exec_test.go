package exec

import (
	"context"
	"testing"

	"github.com/helena-lang/helena/compile"
	"github.com/helena-lang/helena/core"
	"github.com/helena-lang/helena/parse"
	"github.com/helena-lang/helena/value"
	"github.com/helena-lang/helena/verror"
)

type mapVariables map[string]core.Value

func (m mapVariables) Resolve(name string) (core.Value, bool) { v, ok := m[name]; return v, ok }

type mapCommands map[string]core.Command

func (m mapCommands) Resolve(name string) (core.Command, bool) { c, ok := m[name]; return c, ok }

type cmdFunc func(ctx context.Context, arguments core.Value) (core.Value, error)

func (f cmdFunc) Evaluate(ctx context.Context, arguments core.Value) (core.Value, error) {
	return f(ctx, arguments)
}

type noSelectors struct{}

func (noSelectors) Resolve(rules []core.Value) (core.Selector, error) {
	return nil, verror.Execution("no selector semantics configured")
}

func compileSrc(t *testing.T, src string) compile.Program {
	t.Helper()
	s, err := parse.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	prog, err := compile.Script(s)
	if err != nil {
		t.Fatalf("Script(%q) error: %v", src, err)
	}
	return prog
}

func identityCommands() mapCommands {
	return mapCommands{
		"echo": cmdFunc(func(ctx context.Context, arguments core.Value) (core.Value, error) {
			tup, ok := value.AsTupleValue(arguments)
			if !ok {
				return nil, verror.Internal("expected a tuple")
			}
			elems := tup.Elements()
			if len(elems) < 2 {
				return value.NewNil(), nil
			}
			return elems[1], nil
		}),
	}
}

func TestRun_EvaluatesLastSentenceResult(t *testing.T) {
	prog := compileSrc(t, "echo hello")
	ex := New(mapVariables{}, identityCommands(), noSelectors{})
	result, err := ex.Run(context.Background(), prog)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	s, err := result.AsString()
	if err != nil || s != "hello" {
		t.Fatalf("got %v (%v), want %q", result, err, "hello")
	}
}

func TestRun_ResolvesVariables(t *testing.T) {
	prog := compileSrc(t, "echo $name")
	vars := mapVariables{"name": value.NewString("world")}
	ex := New(vars, identityCommands(), noSelectors{})
	result, err := ex.Run(context.Background(), prog)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	s, _ := result.AsString()
	if s != "world" {
		t.Fatalf("got %q, want %q", s, "world")
	}
}

func TestRun_UnresolvedVariableFails(t *testing.T) {
	prog := compileSrc(t, "echo $missing")
	ex := New(mapVariables{}, identityCommands(), noSelectors{})
	_, err := ex.Run(context.Background(), prog)
	if err == nil || !verror.Is(err, verror.CategoryExecution) {
		t.Fatalf("expected an execution-category error, got %v", err)
	}
}

func TestRun_UnresolvedCommandFails(t *testing.T) {
	prog := compileSrc(t, "nope")
	ex := New(mapVariables{}, mapCommands{}, noSelectors{})
	_, err := ex.Run(context.Background(), prog)
	if err == nil || !verror.Is(err, verror.CategoryExecution) {
		t.Fatalf("expected an execution-category error, got %v", err)
	}
}

func TestRun_EmptyProgramReturnsNil(t *testing.T) {
	prog := compileSrc(t, "")
	ex := New(mapVariables{}, mapCommands{}, noSelectors{})
	result, err := ex.Run(context.Background(), prog)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !value.AsNilValue(result) {
		t.Fatalf("expected Nil result for an empty program, got %v", result)
	}
}

func TestRun_RootTupleYieldsATuple(t *testing.T) {
	prog := compileSrc(t, "echo (a b)")
	ex := New(mapVariables{}, identityCommands(), noSelectors{})
	result, err := ex.Run(context.Background(), prog)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	tup, ok := value.AsTupleValue(result)
	if !ok || len(tup.Elements()) != 2 {
		t.Fatalf("expected a 2-element tuple, got %+v", result)
	}
}

func TestRun_KeyedSelectorOnListFails(t *testing.T) {
	prog := compileSrc(t, "echo $list(0)")
	vars := mapVariables{"list": value.NewList([]core.Value{value.NewString("first"), value.NewString("second")})}
	ex := New(vars, identityCommands(), noSelectors{})
	_, err := ex.Run(context.Background(), prog)
	// "(0)" is a keyed selector (Tuple-bracket), not indexed; against a
	// List this exercises SelectKeys, which a List does not support by
	// key — expect a typed error rather than a panic.
	if err == nil {
		t.Fatalf("expected an error selecting a list by key")
	}
}
