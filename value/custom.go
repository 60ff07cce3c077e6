package value

import "github.com/helena-lang/helena/core"

// CustomHooks are the host-supplied capability implementations behind
// a Custom value. A nil hook means that capability is unsupported; the
// Custom value reports the same typed errors a built-in variant would.
type CustomHooks struct {
	AsString    func() (string, error)
	SelectIndex func(core.Value) (core.Value, error)
	SelectKey   func(core.Value) (core.Value, error)
	SelectRules func([]core.Value) (core.Value, error)
}

// CustomValue is an opaque host-supplied value: a type tag, an
// arbitrary payload, and the capability hooks implementing it (spec.md
// §3 "Custom").
type CustomValue struct {
	TypeTag string
	Payload any
	hooks   CustomHooks
}

// NewCustom creates a Custom value with the given type tag, payload,
// and capability hooks.
func NewCustom(typeTag string, payload any, hooks CustomHooks) *CustomValue {
	return &CustomValue{TypeTag: typeTag, Payload: payload, hooks: hooks}
}

func (c *CustomValue) Kind() core.ValueKind { return core.KindCustom }

func (c *CustomValue) AsString() (string, error) {
	if c.hooks.AsString == nil {
		return "", errNoStringRepr()
	}
	return c.hooks.AsString()
}

func (c *CustomValue) SelectIndex(index core.Value) (core.Value, error) {
	if c.hooks.SelectIndex == nil {
		return nil, errNotIndexSelectable()
	}
	return c.hooks.SelectIndex(index)
}

func (c *CustomValue) SelectKey(key core.Value) (core.Value, error) {
	if c.hooks.SelectKey == nil {
		return nil, errNotKeySelectable()
	}
	return c.hooks.SelectKey(key)
}

func (c *CustomValue) SelectRules(rules []core.Value) (core.Value, error) {
	if c.hooks.SelectRules == nil {
		return nil, errNotSelectable()
	}
	return c.hooks.SelectRules(rules)
}

// AsCustomValue extracts the CustomValue payload, or (nil, false) on
// type mismatch.
func AsCustomValue(v core.Value) (*CustomValue, bool) {
	cv, ok := v.(*CustomValue)
	return cv, ok
}
