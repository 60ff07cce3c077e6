// Package core defines the seam interfaces shared by every layer of the
// Helena pipeline (value model, selectors, and the executor's three
// resolver collaborators). Keeping these in a leaf package with no
// dependents lets value, selector, compile, and exec all depend on the
// same small vocabulary without importing each other.
package core

import "context"

// ValueKind tags the variant a Value holds.
type ValueKind uint8

const (
	KindNil ValueKind = iota
	KindBoolean
	KindInteger
	KindReal
	KindString
	KindList
	KindDictionary
	KindTuple
	KindScript
	KindQualified
	KindCustom
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDictionary:
		return "dictionary"
	case KindTuple:
		return "tuple"
	case KindScript:
		return "script"
	case KindQualified:
		return "qualified"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Value is the tagged variant at the heart of the data model (spec.md
// §3). Every implementation exposes the same four capabilities; each
// may fail with a typed error when the operation is unsupported for
// that variant.
type Value interface {
	Kind() ValueKind

	// AsString returns the canonical string representation, or a typed
	// error for variants with none (Nil, List, Dictionary, Tuple,
	// map-like Custom values).
	AsString() (string, error)

	// SelectIndex performs numeric index selection.
	SelectIndex(index Value) (Value, error)

	// SelectKey performs keyed selection.
	SelectKey(key Value) (Value, error)

	// SelectRules performs generic rule-based selection.
	SelectRules(rules []Value) (Value, error)
}

// Sequence is implemented by Value variants that hold an ordered list
// of elements (List, Tuple). Selector rendering uses it to format
// rule/key operands without selector needing to import the concrete
// value package (and so without a value<->selector import cycle).
type Sequence interface {
	Elements() []Value
}

// Selector narrows a Value by index, key set, or rule set (spec.md §3).
type Selector interface {
	// Apply executes the selector against target, returning a new Value
	// or a typed error.
	Apply(target Value) (Value, error)

	// Render produces the canonical selector syntax ("[index]",
	// "(key1 key2)", "{rule1 arg1; rule2 arg2}") with escaping of any
	// special characters in its operands.
	Render() string
}

// Command is the unit of behavior a CommandResolver hands back to the
// executor's EvaluateSentence operation. arguments is always a Tuple
// Value containing the whole sentence, including the command name
// itself as its first element.
type Command interface {
	Evaluate(ctx context.Context, arguments Value) (Value, error)
}

// VariableResolver looks up a variable by name for the ResolveValue
// operation.
type VariableResolver interface {
	Resolve(name string) (Value, bool)
}

// CommandResolver looks up a command by name for the EvaluateSentence
// operation.
type CommandResolver interface {
	Resolve(name string) (Command, bool)
}

// SelectorResolver turns a rule list (the operand of a {...} selector)
// into a concrete Selector for the SelectRules operation. The core
// specifies no default rule language; semantics are entirely up to the
// host (spec.md §9).
type SelectorResolver interface {
	Resolve(rules []Value) (Selector, error)
}
