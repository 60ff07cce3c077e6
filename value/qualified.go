package value

import (
	"github.com/helena-lang/helena/core"
	"github.com/helena-lang/helena/selector"
)

// QualifiedValue pairs a source Value with an ordered sequence of
// selectors — a deferred access path (spec.md §3, §6 "Qualified
// value"). Values are immutable: every Select* call returns a new
// QualifiedValue with the selector appended (or, for adjacent keyed
// selections, merged into the existing trailing KeyedSelector per
// spec.md §3 footnote 4 / §8 "Adjacent keyed merge").
type QualifiedValue struct {
	source    core.Value
	selectors []core.Selector
}

// NewQualified creates a Qualified value with an empty selector
// sequence (the SetSource compiler operation's result).
func NewQualified(source core.Value) *QualifiedValue {
	return &QualifiedValue{source: source}
}

func (q *QualifiedValue) Kind() core.ValueKind { return core.KindQualified }

// Source returns the qualified value's source.
func (q *QualifiedValue) Source() core.Value { return q.source }

// Selectors returns the qualified value's selector sequence in order.
func (q *QualifiedValue) Selectors() []core.Selector {
	return append([]core.Selector(nil), q.selectors...)
}

func (q *QualifiedValue) AsString() (string, error) { return "", errNoStringRepr() }

// SelectIndex appends an IndexedSelector to the selector sequence.
func (q *QualifiedValue) SelectIndex(index core.Value) (core.Value, error) {
	s, err := selector.NewIndexed(index)
	if err != nil {
		return nil, err
	}
	return q.appended(s), nil
}

// SelectKey appends a single-key KeyedSelector, merging into an
// existing trailing KeyedSelector if present.
func (q *QualifiedValue) SelectKey(key core.Value) (core.Value, error) {
	s, err := selector.NewKeyed([]core.Value{key})
	if err != nil {
		return nil, err
	}
	if len(q.selectors) > 0 {
		if last, ok := q.selectors[len(q.selectors)-1].(*selector.Keyed); ok {
			merged := last.Merge(s)
			next := &QualifiedValue{
				source:    q.source,
				selectors: append(append([]core.Selector(nil), q.selectors[:len(q.selectors)-1]...), merged),
			}
			return next, nil
		}
	}
	return q.appended(s), nil
}

// SelectRules appends a GenericSelector to the selector sequence.
func (q *QualifiedValue) SelectRules(rules []core.Value) (core.Value, error) {
	s, err := selector.NewGeneric(rules)
	if err != nil {
		return nil, err
	}
	return q.appended(s), nil
}

func (q *QualifiedValue) appended(s core.Selector) *QualifiedValue {
	return &QualifiedValue{
		source:    q.source,
		selectors: append(append([]core.Selector(nil), q.selectors...), s),
	}
}

// AsQualifiedValue extracts the QualifiedValue payload, or (nil, false)
// on type mismatch.
func AsQualifiedValue(v core.Value) (*QualifiedValue, bool) {
	qv, ok := v.(*QualifiedValue)
	return qv, ok
}
