package compile

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/helena-lang/helena/parse"
)

func mustCompile(t *testing.T, src string) Program {
	t.Helper()
	s, err := parse.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	prog, err := Script(s)
	if err != nil {
		t.Fatalf("Script(%q) compile error: %v", src, err)
	}
	return prog
}

func kinds(prog Program) []Kind {
	ks := make([]Kind, len(prog))
	for i, o := range prog {
		ks[i] = o.Kind
	}
	return ks
}

func kindsEqual(got, want []Kind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestScript_LiteralSentence(t *testing.T) {
	prog := mustCompile(t, "foo bar")
	want := []Kind{OpenFrame, PushValue, PushValue, CloseFrame, EvaluateSentence}
	if !kindsEqual(kinds(prog), want) {
		t.Fatalf("got %v, want %v", kinds(prog), want)
	}
}

func TestScript_EmptySource(t *testing.T) {
	prog := mustCompile(t, "")
	if len(prog) != 0 {
		t.Fatalf("expected empty program, got %v", kinds(prog))
	}
}

func TestScript_RootTuple(t *testing.T) {
	prog := mustCompile(t, "(a b)")
	want := []Kind{
		OpenFrame, OpenFrame, PushValue, PushValue, CloseFrame, CloseFrame, EvaluateSentence,
	}
	if !kindsEqual(kinds(prog), want) {
		t.Fatalf("got %v, want %v", kinds(prog), want)
	}
}

func TestScript_RootExpressionSubstitutesResult(t *testing.T) {
	prog := mustCompile(t, "[a]")
	last := prog[len(prog)-1]
	if last.Kind != EvaluateSentence {
		t.Fatalf("expected sentence to end in EvaluateSentence, got %v", last.Kind)
	}
	found := false
	for _, o := range prog {
		if o.Kind == SubstituteResult {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a SubstituteResult op for the nested expression, got %v", kinds(prog))
	}
}

func TestCompileWord_SubstitutionEmitsResolveValue(t *testing.T) {
	prog := mustCompile(t, "$foo")
	want := []Kind{OpenFrame, PushValue, ResolveValue, CloseFrame, EvaluateSentence}
	if !kindsEqual(kinds(prog), want) {
		t.Fatalf("got %v, want %v", kinds(prog), want)
	}
}

func TestCompileWord_DoubleSubstitutionEmitsExtraResolveValue(t *testing.T) {
	prog := mustCompile(t, "$$foo")
	count := 0
	for _, o := range prog {
		if o.Kind == ResolveValue {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 ResolveValue ops for $$foo, got %d in %v", count, kinds(prog))
	}
}

func TestCompileWord_ExpandingSubstitutionEmitsExpandValue(t *testing.T) {
	prog := mustCompile(t, "$*foo")
	found := false
	for _, o := range prog {
		if o.Kind == ExpandValue {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ExpandValue op, got %v", kinds(prog))
	}
}

func TestCompileWord_QualifiedEmitsSetSourceAndSelectKeys(t *testing.T) {
	prog := mustCompile(t, "foo(bar)")
	want := []Kind{
		OpenFrame, PushValue, SetSource, OpenFrame, PushValue, CloseFrame, SelectKeys, CloseFrame, EvaluateSentence,
	}
	if !kindsEqual(kinds(prog), want) {
		t.Fatalf("got %v, want %v", kinds(prog), want)
	}
}

func TestCompileWord_ExpressionSelectorEmitsSelectIndex(t *testing.T) {
	prog := mustCompile(t, "foo[0]")
	found := false
	for _, o := range prog {
		if o.Kind == SelectIndex {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SelectIndex op, got %v", kinds(prog))
	}
}

func TestCompileWord_BlockSelectorEmitsSelectRules(t *testing.T) {
	prog := mustCompile(t, "foo{a b}")
	found := false
	for _, o := range prog {
		if o.Kind == SelectRules {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SelectRules op, got %v", kinds(prog))
	}
}

func TestCompileWord_CompoundJoinsWithJoinStrings(t *testing.T) {
	prog := mustCompile(t, "foo$bar")
	found := false
	for _, o := range prog {
		if o.Kind == JoinStrings {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected JoinStrings op for a compound word, got %v", kinds(prog))
	}
}

func TestCompileWord_StringStemsJoinWithJoinStrings(t *testing.T) {
	prog := mustCompile(t, `"a$b c"`)
	found := false
	for _, o := range prog {
		if o.Kind == JoinStrings {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected JoinStrings op for a string with multiple stems, got %v", kinds(prog))
	}
}

// dumpProgram renders a Program as one "kind" (or "kind value") line
// per op, for golden-file snapshot tests of the compiler's lowering.
func dumpProgram(prog Program) string {
	var b strings.Builder
	for _, o := range prog {
		if o.Kind == PushValue && o.Value != nil {
			if s, err := o.Value.AsString(); err == nil {
				fmt.Fprintf(&b, "%v %v %q\n", o.Kind, o.Value.Kind(), s)
				continue
			}
			fmt.Fprintf(&b, "%v %v\n", o.Kind, o.Value.Kind())
			continue
		}
		fmt.Fprintf(&b, "%v\n", o.Kind)
	}
	return b.String()
}

func TestScript_GoldenProgram(t *testing.T) {
	sources := []string{
		"foo bar",
		"(a b)",
		"$foo",
		"foo(bar)",
		"foo$bar",
	}
	for _, src := range sources {
		snaps.MatchSnapshot(t, src, dumpProgram(mustCompile(t, src)))
	}
}

func TestOpKind_String(t *testing.T) {
	cases := map[Kind]string{
		PushValue:        "push-value",
		OpenFrame:        "open-frame",
		CloseFrame:       "close-frame",
		ResolveValue:     "resolve-value",
		ExpandValue:      "expand-value",
		SetSource:        "set-source",
		SelectIndex:      "select-index",
		SelectKeys:       "select-keys",
		SelectRules:      "select-rules",
		EvaluateSentence: "evaluate-sentence",
		SubstituteResult: "substitute-result",
		JoinStrings:      "join-strings",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
