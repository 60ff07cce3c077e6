// Package selector implements the three selector kinds of spec.md §3:
// IndexedSelector, KeyedSelector, and GenericSelector. A Selector
// narrows a core.Value by index, key set, or rule set, and renders back
// to canonical selector syntax.
//
// Grounded on the teacher's internal/value/path.go PathExpression /
// PathSegment, generalized from a single path kind into three selector
// kinds, with the adjacent-KeyedSelector merge spec.md requires added
// on top (the teacher's Path has no merge step).
package selector

import (
	"strings"

	"github.com/helena-lang/helena/core"
	"github.com/helena-lang/helena/verror"
)

// Indexed applies core.Value.SelectIndex.
type Indexed struct {
	Index core.Value
}

// NewIndexed constructs an Indexed selector. Construction fails with
// "invalid index" when index is Nil.
func NewIndexed(index core.Value) (*Indexed, error) {
	if index.Kind() == core.KindNil {
		return nil, verror.Execution("invalid index")
	}
	return &Indexed{Index: index}, nil
}

func (s *Indexed) Apply(target core.Value) (core.Value, error) {
	return target.SelectIndex(s.Index)
}

func (s *Indexed) Render() string {
	return "[" + renderOperand(s.Index) + "]"
}

// Keyed applies core.Value.SelectKey, folding left-to-right over a
// non-empty, ordered sequence of keys.
type Keyed struct {
	Keys []core.Value
}

// NewKeyed constructs a Keyed selector. Construction fails with
// "empty selector" on empty input.
func NewKeyed(keys []core.Value) (*Keyed, error) {
	if len(keys) == 0 {
		return nil, verror.Execution("empty selector")
	}
	return &Keyed{Keys: append([]core.Value(nil), keys...)}, nil
}

func (s *Keyed) Apply(target core.Value) (core.Value, error) {
	current := target
	for _, key := range s.Keys {
		next, err := current.SelectKey(key)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

func (s *Keyed) Render() string {
	parts := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		parts[i] = renderOperand(k)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Merge returns a new Keyed selector with other's keys appended after
// this selector's keys, implementing the "adjacent keyed merge"
// property of spec.md §8.
func (s *Keyed) Merge(other *Keyed) *Keyed {
	merged := make([]core.Value, 0, len(s.Keys)+len(other.Keys))
	merged = append(merged, s.Keys...)
	merged = append(merged, other.Keys...)
	return &Keyed{Keys: merged}
}

// Generic applies core.Value.SelectRules over a non-empty, ordered
// sequence of rule values.
type Generic struct {
	Rules []core.Value
}

// NewGeneric constructs a Generic selector. Construction fails with
// "empty selector" on empty input.
func NewGeneric(rules []core.Value) (*Generic, error) {
	if len(rules) == 0 {
		return nil, verror.Execution("empty selector")
	}
	return &Generic{Rules: append([]core.Value(nil), rules...)}, nil
}

func (s *Generic) Apply(target core.Value) (core.Value, error) {
	return target.SelectRules(s.Rules)
}

func (s *Generic) Render() string {
	parts := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		parts[i] = renderOperand(r)
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

// renderOperand formats a single selector operand: sequence-shaped
// values (List/Tuple) render their elements space-joined, everything
// else renders through AsString with escaping of syntax-significant
// characters.
func renderOperand(v core.Value) string {
	if seq, ok := v.(core.Sequence); ok {
		elems := seq.Elements()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = renderOperand(e)
		}
		return strings.Join(parts, " ")
	}
	s, err := v.AsString()
	if err != nil {
		return ""
	}
	return escapeWord(s)
}

// specialChars are syntax-significant outside of a quoted string; any
// operand containing one is rendered as a quoted, escaped string.
const specialChars = " \t\r\n\"\\(){}[]$;#"

func escapeWord(s string) string {
	if s == "" {
		return `""`
	}
	if !strings.ContainsAny(s, specialChars) {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
