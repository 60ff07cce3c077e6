package value

import (
	"testing"

	"github.com/helena-lang/helena/core"
	"github.com/helena-lang/helena/verror"
)

func TestString_AsStringAndIndex(t *testing.T) {
	s := NewString("hello")
	got, err := s.AsString()
	if err != nil || got != "hello" {
		t.Fatalf("got %q (%v), want %q", got, err, "hello")
	}
	ch, err := s.SelectIndex(NewInteger(1))
	if err != nil {
		t.Fatalf("SelectIndex error: %v", err)
	}
	chStr, _ := ch.AsString()
	if chStr != "e" {
		t.Fatalf("got %q, want %q", chStr, "e")
	}
}

func TestString_IndexOutOfRange(t *testing.T) {
	s := NewString("ab")
	_, err := s.SelectIndex(NewInteger(5))
	if err == nil || !verror.Is(err, verror.CategoryExecution) {
		t.Fatalf("got %v, want an execution-category error", err)
	}
}

func TestInteger_AsString(t *testing.T) {
	i := NewInteger(42)
	got, err := i.AsString()
	if err != nil || got != "42" {
		t.Fatalf("got %q (%v), want %q", got, err, "42")
	}
}

func TestInteger_NotSelectable(t *testing.T) {
	i := NewInteger(1)
	if _, err := i.SelectIndex(NewInteger(0)); err == nil {
		t.Fatalf("expected an error selecting into an Integer")
	}
}

func TestReal_AsStringFromFloat64(t *testing.T) {
	r := NewRealFromFloat64(3.5)
	got, err := r.AsString()
	if err != nil || got != "3.5" {
		t.Fatalf("got %q (%v), want %q", got, err, "3.5")
	}
}

func TestBoolean_AsString(t *testing.T) {
	if got, _ := NewBoolean(true).AsString(); got != "true" {
		t.Fatalf("got %q, want %q", got, "true")
	}
	if got, _ := NewBoolean(false).AsString(); got != "false" {
		t.Fatalf("got %q, want %q", got, "false")
	}
}

func TestNil_Singleton(t *testing.T) {
	if NewNil() != NewNil() {
		t.Fatalf("expected NewNil to return the same shared instance")
	}
	if !AsNilValue(NewNil()) {
		t.Fatalf("expected AsNilValue(NewNil()) to be true")
	}
	if AsNilValue(NewString("x")) {
		t.Fatalf("expected AsNilValue(non-nil) to be false")
	}
}

func TestNil_HasNoStringRepresentation(t *testing.T) {
	if _, err := NewNil().AsString(); err == nil {
		t.Fatalf("expected Nil.AsString to fail")
	}
}

func TestList_SelectIndex(t *testing.T) {
	l := NewList([]core.Value{NewString("a"), NewString("b")})
	v, err := l.SelectIndex(NewInteger(0))
	if err != nil {
		t.Fatalf("SelectIndex error: %v", err)
	}
	s, _ := v.AsString()
	if s != "a" {
		t.Fatalf("got %q, want %q", s, "a")
	}
}

func TestList_HasNoStringRepresentation(t *testing.T) {
	if _, err := NewList(nil).AsString(); err == nil {
		t.Fatalf("expected List.AsString to fail")
	}
}

func TestList_DefensiveCopyOnConstruction(t *testing.T) {
	elems := []core.Value{NewString("a")}
	l := NewList(elems)
	elems[0] = NewString("mutated")
	got, _ := l.Elements()[0].AsString()
	if got != "a" {
		t.Fatalf("NewList did not copy defensively: got %q", got)
	}
}

func TestTuple_SelectIndexMapsOverElements(t *testing.T) {
	tup := NewTuple([]core.Value{
		NewList([]core.Value{NewString("a"), NewString("b")}),
		NewList([]core.Value{NewString("c"), NewString("d")}),
	})
	result, err := tup.SelectIndex(NewInteger(1))
	if err != nil {
		t.Fatalf("SelectIndex error: %v", err)
	}
	inner, ok := AsTupleValue(result)
	if !ok || inner.Len() != 2 {
		t.Fatalf("expected a 2-element tuple result, got %+v", result)
	}
	first, _ := inner.Elements()[0].AsString()
	if first != "b" {
		t.Fatalf("got %q, want %q", first, "b")
	}
}

func TestTuple_HasNoStringRepresentation(t *testing.T) {
	if _, err := NewTuple(nil).AsString(); err == nil {
		t.Fatalf("expected Tuple.AsString to fail")
	}
}

func TestDictionary_GetAndSelectKey(t *testing.T) {
	d := NewDictionary([]DictPair{
		{Key: "a", Value: NewString("1")},
		{Key: "b", Value: NewString("2")},
	})
	v, err := d.SelectKey(NewString("b"))
	if err != nil {
		t.Fatalf("SelectKey error: %v", err)
	}
	s, _ := v.AsString()
	if s != "2" {
		t.Fatalf("got %q, want %q", s, "2")
	}
}

func TestDictionary_UnknownKeyFails(t *testing.T) {
	d := NewDictionary(nil)
	if _, err := d.SelectKey(NewString("missing")); err == nil {
		t.Fatalf("expected an error for an unknown key")
	}
}

func TestDictionary_DuplicateKeyOverwritesValueKeepsPosition(t *testing.T) {
	d := NewDictionary([]DictPair{
		{Key: "a", Value: NewString("1")},
		{Key: "b", Value: NewString("2")},
		{Key: "a", Value: NewString("3")},
	})
	entries := d.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after a duplicate key, got %d", len(entries))
	}
	if entries[0].Key != "a" {
		t.Fatalf("expected the first entry to stay %q, got %q", "a", entries[0].Key)
	}
	s, _ := entries[0].Value.AsString()
	if s != "3" {
		t.Fatalf("expected the later value %q to win, got %q", "3", s)
	}
}

func TestDictionary_IterationOrderIsInsertionOrder(t *testing.T) {
	d := NewDictionary([]DictPair{{Key: "z"}, {Key: "a"}, {Key: "m"}})
	entries := d.Entries()
	want := []string{"z", "a", "m"}
	for i, k := range want {
		if entries[i].Key != k {
			t.Fatalf("got order %v, want %v", entries, want)
		}
	}
}

func TestQualified_SelectIndexAppendsSelector(t *testing.T) {
	q := NewQualified(NewString("source"))
	next, err := q.SelectIndex(NewInteger(0))
	if err != nil {
		t.Fatalf("SelectIndex error: %v", err)
	}
	qv, ok := AsQualifiedValue(next)
	if !ok || len(qv.Selectors()) != 1 {
		t.Fatalf("expected 1 selector appended, got %+v", next)
	}
}

func TestQualified_AdjacentKeySelectionsMerge(t *testing.T) {
	q := NewQualified(NewString("source"))
	step1, err := q.SelectKey(NewString("x"))
	if err != nil {
		t.Fatalf("SelectKey error: %v", err)
	}
	step2, err := step1.SelectKey(NewString("y"))
	if err != nil {
		t.Fatalf("SelectKey error: %v", err)
	}
	qv, ok := AsQualifiedValue(step2)
	if !ok || len(qv.Selectors()) != 1 {
		t.Fatalf("expected adjacent keyed selections to merge into one selector, got %+v", step2)
	}
}

func TestQualified_NonAdjacentKeySelectionsDoNotMerge(t *testing.T) {
	q := NewQualified(NewString("source"))
	step1, err := q.SelectKey(NewString("x"))
	if err != nil {
		t.Fatalf("SelectKey error: %v", err)
	}
	step2, err := step1.SelectIndex(NewInteger(0))
	if err != nil {
		t.Fatalf("SelectIndex error: %v", err)
	}
	step3, err := step2.SelectKey(NewString("y"))
	if err != nil {
		t.Fatalf("SelectKey error: %v", err)
	}
	qv, ok := AsQualifiedValue(step3)
	if !ok || len(qv.Selectors()) != 3 {
		t.Fatalf("expected 3 distinct selectors, got %+v", step3)
	}
}

func TestCustom_NilHooksReportTypedErrors(t *testing.T) {
	c := NewCustom("demo", nil, CustomHooks{})
	if _, err := c.AsString(); err == nil {
		t.Fatalf("expected AsString to fail with nil hook")
	}
	if _, err := c.SelectIndex(NewInteger(0)); err == nil {
		t.Fatalf("expected SelectIndex to fail with nil hook")
	}
	if _, err := c.SelectKey(NewString("k")); err == nil {
		t.Fatalf("expected SelectKey to fail with nil hook")
	}
	if _, err := c.SelectRules(nil); err == nil {
		t.Fatalf("expected SelectRules to fail with nil hook")
	}
}

func TestCustom_HooksDelegate(t *testing.T) {
	c := NewCustom("demo", 7, CustomHooks{
		AsString: func() (string, error) { return "custom", nil },
	})
	got, err := c.AsString()
	if err != nil || got != "custom" {
		t.Fatalf("got %q (%v), want %q", got, err, "custom")
	}
	if c.Payload.(int) != 7 {
		t.Fatalf("got payload %v, want 7", c.Payload)
	}
}

func TestScript_SourceRetainedWhenProvided(t *testing.T) {
	s := NewScriptWithSource(nil, "a b")
	src, ok := s.Source()
	if !ok || src != "a b" {
		t.Fatalf("got (%q, %v), want (%q, true)", src, ok, "a b")
	}
	got, err := s.AsString()
	if err != nil || got != "a b" {
		t.Fatalf("got %q (%v), want %q", got, err, "a b")
	}
}

func TestScript_NoSourceHasNoStringRepresentation(t *testing.T) {
	s := NewScript(nil)
	if _, ok := s.Source(); ok {
		t.Fatalf("expected no retained source")
	}
	if _, err := s.AsString(); err == nil {
		t.Fatalf("expected AsString to fail without retained source")
	}
}

func TestAsVariants_TypeMismatchReturnsFalse(t *testing.T) {
	v := NewString("x")
	if _, ok := AsIntegerValue(v); ok {
		t.Fatalf("expected AsIntegerValue to fail on a String")
	}
	if _, ok := AsListValue(v); ok {
		t.Fatalf("expected AsListValue to fail on a String")
	}
	if _, ok := AsTupleValue(v); ok {
		t.Fatalf("expected AsTupleValue to fail on a String")
	}
	if _, ok := AsDictionaryValue(v); ok {
		t.Fatalf("expected AsDictionaryValue to fail on a String")
	}
	if _, ok := AsQualifiedValue(v); ok {
		t.Fatalf("expected AsQualifiedValue to fail on a String")
	}
	if _, ok := AsScriptValue(v); ok {
		t.Fatalf("expected AsScriptValue to fail on a String")
	}
	if _, ok := AsCustomValue(v); ok {
		t.Fatalf("expected AsCustomValue to fail on a String")
	}
	if _, ok := AsBooleanValue(v); ok {
		t.Fatalf("expected AsBooleanValue to fail on a String")
	}
	if _, ok := AsRealValue(v); ok {
		t.Fatalf("expected AsRealValue to fail on a String")
	}
}
