package value

import (
	"github.com/ericlagergren/decimal"
	"github.com/helena-lang/helena/core"
)

// RealValue holds an arbitrary-precision real number, backed by
// ericlagergren/decimal rather than a bare float64 — the same choice
// the teacher made for its own Decimal value type (internal/value/decimal.go).
type RealValue struct {
	v *decimal.Big
}

// NewReal creates a Real value from a decimal.Big. d is not copied;
// callers must not mutate it afterwards (values are immutable once
// constructed).
func NewReal(d *decimal.Big) *RealValue { return &RealValue{v: d} }

// NewRealFromFloat64 creates a Real value from a float64.
func NewRealFromFloat64(f float64) *RealValue {
	d := new(decimal.Big)
	d.SetFloat64(f)
	return &RealValue{v: d}
}

func (r *RealValue) Kind() core.ValueKind { return core.KindReal }

// Decimal returns the underlying decimal.Big.
func (r *RealValue) Decimal() *decimal.Big { return r.v }

func (r *RealValue) AsString() (string, error) {
	return r.v.String(), nil
}

func (r *RealValue) SelectIndex(core.Value) (core.Value, error) { return nil, errNotIndexSelectable() }
func (r *RealValue) SelectKey(core.Value) (core.Value, error)   { return nil, errNotKeySelectable() }
func (r *RealValue) SelectRules([]core.Value) (core.Value, error) {
	return nil, errNotSelectable()
}

// AsRealValue extracts the RealValue payload, or (nil, false) on type
// mismatch.
func AsRealValue(v core.Value) (*RealValue, bool) {
	d, ok := v.(*RealValue)
	return d, ok
}
