package value

import "github.com/helena-lang/helena/core"

// BooleanValue holds a true/false value.
type BooleanValue struct {
	v bool
}

// NewBoolean creates a Boolean value.
func NewBoolean(b bool) *BooleanValue { return &BooleanValue{v: b} }

func (b *BooleanValue) Kind() core.ValueKind { return core.KindBoolean }

// Bool returns the underlying Go bool.
func (b *BooleanValue) Bool() bool { return b.v }

func (b *BooleanValue) AsString() (string, error) {
	if b.v {
		return "true", nil
	}
	return "false", nil
}

func (b *BooleanValue) SelectIndex(core.Value) (core.Value, error) { return nil, errNotIndexSelectable() }
func (b *BooleanValue) SelectKey(core.Value) (core.Value, error)   { return nil, errNotKeySelectable() }
func (b *BooleanValue) SelectRules([]core.Value) (core.Value, error) {
	return nil, errNotSelectable()
}

// AsBooleanValue extracts the BooleanValue payload, or (nil, false) on
// type mismatch.
func AsBooleanValue(v core.Value) (*BooleanValue, bool) {
	b, ok := v.(*BooleanValue)
	return b, ok
}
