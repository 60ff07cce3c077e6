package value

import (
	"github.com/helena-lang/helena/core"
	"github.com/helena-lang/helena/syntax"
)

// ScriptValue wraps a parsed syntax.Script plus its original source
// text, if any. AsString returns the literal source when available
// (spec.md §3 footnote 3); otherwise it fails. Scripts support none of
// the selection capabilities.
type ScriptValue struct {
	script *syntax.Script
	source string
	hasSrc bool
}

// NewScript creates a Script value with no retained source text.
func NewScript(s *syntax.Script) *ScriptValue {
	return &ScriptValue{script: s}
}

// NewScriptWithSource creates a Script value retaining its original
// source text (used for Block morphemes, which must re-evaluate as
// strings).
func NewScriptWithSource(s *syntax.Script, source string) *ScriptValue {
	return &ScriptValue{script: s, source: source, hasSrc: true}
}

func (s *ScriptValue) Kind() core.ValueKind { return core.KindScript }

// Script returns the wrapped syntax tree.
func (s *ScriptValue) Script() *syntax.Script { return s.script }

// Source returns the retained literal source and whether one exists.
func (s *ScriptValue) Source() (string, bool) { return s.source, s.hasSrc }

func (s *ScriptValue) AsString() (string, error) {
	if s.hasSrc {
		return s.source, nil
	}
	return "", errNoStringRepr()
}

func (s *ScriptValue) SelectIndex(core.Value) (core.Value, error) { return nil, errNotIndexSelectable() }
func (s *ScriptValue) SelectKey(core.Value) (core.Value, error)   { return nil, errNotKeySelectable() }
func (s *ScriptValue) SelectRules([]core.Value) (core.Value, error) {
	return nil, errNotSelectable()
}

// AsScriptValue extracts the ScriptValue payload, or (nil, false) on
// type mismatch.
func AsScriptValue(v core.Value) (*ScriptValue, bool) {
	sv, ok := v.(*ScriptValue)
	return sv, ok
}
