package value

import (
	"github.com/helena-lang/helena/core"
	"github.com/helena-lang/helena/verror"
)

// NilValue represents the absence of a value. It has no string
// representation and supports none of the three selection capabilities.
type NilValue struct{}

var theNil = &NilValue{}

// NewNil returns the shared Nil value.
func NewNil() *NilValue { return theNil }

func (*NilValue) Kind() core.ValueKind { return core.KindNil }

func (*NilValue) AsString() (string, error) {
	return "", verror.Execution("nil has no string representation")
}

func (*NilValue) SelectIndex(core.Value) (core.Value, error) { return nil, errNotIndexSelectable() }
func (*NilValue) SelectKey(core.Value) (core.Value, error)   { return nil, errNotKeySelectable() }
func (*NilValue) SelectRules([]core.Value) (core.Value, error) {
	return nil, errNotSelectable()
}

// AsNilValue reports whether v is a Nil value.
func AsNilValue(v core.Value) bool {
	_, ok := v.(*NilValue)
	return ok
}
