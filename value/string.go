package value

import "github.com/helena-lang/helena/core"

// StringValue holds a character sequence. Indexing is rune-based (a
// String selects a single-character String at a 0-based position), so
// the runes are cached at construction time rather than recomputed on
// every SelectIndex call.
type StringValue struct {
	s     string
	runes []rune
}

// NewString creates a String value.
func NewString(s string) *StringValue {
	return &StringValue{s: s, runes: []rune(s)}
}

func (s *StringValue) Kind() core.ValueKind { return core.KindString }

// String returns the underlying Go string.
func (s *StringValue) String() string { return s.s }

func (s *StringValue) AsString() (string, error) { return s.s, nil }

// SelectIndex returns the single-character String at a 0-based integer
// position; out-of-range fails with "index out of range".
func (s *StringValue) SelectIndex(index core.Value) (core.Value, error) {
	i, err := indexInt64(index)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= int64(len(s.runes)) {
		return nil, errIndexOutOfRange()
	}
	return NewString(string(s.runes[i])), nil
}

func (s *StringValue) SelectKey(core.Value) (core.Value, error) { return nil, errNotKeySelectable() }
func (s *StringValue) SelectRules([]core.Value) (core.Value, error) {
	return nil, errNotSelectable()
}

// AsStringValue extracts the StringValue payload, or (nil, false) on
// type mismatch.
func AsStringValue(v core.Value) (*StringValue, bool) {
	sv, ok := v.(*StringValue)
	return sv, ok
}
