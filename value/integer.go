package value

import (
	"strconv"

	"github.com/helena-lang/helena/core"
)

// IntegerValue holds a 64-bit signed integer.
type IntegerValue struct {
	v int64
}

// NewInteger creates an Integer value.
func NewInteger(v int64) *IntegerValue { return &IntegerValue{v: v} }

func (i *IntegerValue) Kind() core.ValueKind { return core.KindInteger }

// Int64 returns the underlying Go int64.
func (i *IntegerValue) Int64() int64 { return i.v }

func (i *IntegerValue) AsString() (string, error) {
	return strconv.FormatInt(i.v, 10), nil
}

func (i *IntegerValue) SelectIndex(core.Value) (core.Value, error) { return nil, errNotIndexSelectable() }
func (i *IntegerValue) SelectKey(core.Value) (core.Value, error)   { return nil, errNotKeySelectable() }
func (i *IntegerValue) SelectRules([]core.Value) (core.Value, error) {
	return nil, errNotSelectable()
}

// AsIntegerValue extracts the IntegerValue payload, or (nil, false) on
// type mismatch.
func AsIntegerValue(v core.Value) (*IntegerValue, bool) {
	n, ok := v.(*IntegerValue)
	return n, ok
}

// indexInt64 extracts an int64 usable as an index. Only Integer-kind
// values are valid indices; anything else is "invalid integer".
func indexInt64(v core.Value) (int64, error) {
	n, ok := v.(*IntegerValue)
	if !ok {
		return 0, errInvalidInteger()
	}
	return n.v, nil
}
