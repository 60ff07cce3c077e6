package value

import "github.com/helena-lang/helena/core"

// TupleValue holds an ordered sequence of Values, distinct from List:
// a Tuple is the unit of argument passing and expansion. Index/key
// selection propagates element-wise and recurses into nested Tuples,
// yielding a Tuple of the same shape (spec.md §3 footnote 2).
type TupleValue struct {
	elements []core.Value
}

// NewTuple creates a Tuple value. elements is copied defensively.
func NewTuple(elements []core.Value) *TupleValue {
	return &TupleValue{elements: append([]core.Value(nil), elements...)}
}

func (t *TupleValue) Kind() core.ValueKind { return core.KindTuple }

// Elements returns the tuple's elements in order. Implements
// core.Sequence.
func (t *TupleValue) Elements() []core.Value {
	return append([]core.Value(nil), t.elements...)
}

// Len returns the number of elements.
func (t *TupleValue) Len() int { return len(t.elements) }

func (t *TupleValue) AsString() (string, error) { return "", errNoStringRepr() }

func (t *TupleValue) SelectIndex(index core.Value) (core.Value, error) {
	return t.mapElements(func(e core.Value) (core.Value, error) {
		return e.SelectIndex(index)
	})
}

func (t *TupleValue) SelectKey(key core.Value) (core.Value, error) {
	return t.mapElements(func(e core.Value) (core.Value, error) {
		return e.SelectKey(key)
	})
}

func (t *TupleValue) SelectRules([]core.Value) (core.Value, error) {
	return nil, errNotSelectable()
}

func (t *TupleValue) mapElements(f func(core.Value) (core.Value, error)) (core.Value, error) {
	results := make([]core.Value, len(t.elements))
	for i, e := range t.elements {
		r, err := f(e)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return NewTuple(results), nil
}

// AsTupleValue extracts the TupleValue payload, or (nil, false) on type
// mismatch.
func AsTupleValue(v core.Value) (*TupleValue, bool) {
	tv, ok := v.(*TupleValue)
	return tv, ok
}
