package value

import "github.com/helena-lang/helena/core"

// ListValue holds an ordered sequence of Values. Lists have no string
// representation and support only index selection.
type ListValue struct {
	elements []core.Value
}

// NewList creates a List value. elements is copied defensively so the
// result is immutable even if the caller mutates its slice afterwards.
func NewList(elements []core.Value) *ListValue {
	return &ListValue{elements: append([]core.Value(nil), elements...)}
}

func (l *ListValue) Kind() core.ValueKind { return core.KindList }

// Elements returns the list's elements in order. Implements
// core.Sequence.
func (l *ListValue) Elements() []core.Value {
	return append([]core.Value(nil), l.elements...)
}

// Len returns the number of elements.
func (l *ListValue) Len() int { return len(l.elements) }

func (l *ListValue) AsString() (string, error) { return "", errNoStringRepr() }

func (l *ListValue) SelectIndex(index core.Value) (core.Value, error) {
	i, err := indexInt64(index)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= int64(len(l.elements)) {
		return nil, errIndexOutOfRange()
	}
	return l.elements[i], nil
}

func (l *ListValue) SelectKey(core.Value) (core.Value, error) { return nil, errNotKeySelectable() }
func (l *ListValue) SelectRules([]core.Value) (core.Value, error) {
	return nil, errNotSelectable()
}

// AsListValue extracts the ListValue payload, or (nil, false) on type
// mismatch.
func AsListValue(v core.Value) (*ListValue, bool) {
	lv, ok := v.(*ListValue)
	return lv, ok
}
