package value

import "github.com/helena-lang/helena/core"

// DictPair is a single key/value entry used to construct a Dictionary.
type DictPair struct {
	Key   string
	Value core.Value
}

// DictionaryValue holds an insertion-ordered mapping from string keys
// to Values. Iteration/rendering order is fixed to insertion order
// (spec.md §9 Open Question), not hash order — backed by a slice of
// entries plus an index map for O(1) lookup, the same shape as the
// teacher's ordered Frame bindings (internal/frame/frame.go).
type DictionaryValue struct {
	entries []DictPair
	index   map[string]int
}

// NewDictionary creates a Dictionary value from an ordered list of
// pairs. A later duplicate key overwrites the earlier entry's value
// but keeps the earlier entry's position, matching ordinary map-literal
// semantics.
func NewDictionary(pairs []DictPair) *DictionaryValue {
	d := &DictionaryValue{index: make(map[string]int, len(pairs))}
	for _, p := range pairs {
		if i, ok := d.index[p.Key]; ok {
			d.entries[i].Value = p.Value
			continue
		}
		d.index[p.Key] = len(d.entries)
		d.entries = append(d.entries, p)
	}
	return d
}

func (d *DictionaryValue) Kind() core.ValueKind { return core.KindDictionary }

// Entries returns the dictionary's key/value pairs in insertion order.
func (d *DictionaryValue) Entries() []DictPair {
	return append([]DictPair(nil), d.entries...)
}

// Len returns the number of entries.
func (d *DictionaryValue) Len() int { return len(d.entries) }

// Get looks up a key directly (bypassing the Selector machinery), for
// host code that already has a Go string key.
func (d *DictionaryValue) Get(key string) (core.Value, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.entries[i].Value, true
}

func (d *DictionaryValue) AsString() (string, error) { return "", errNoStringRepr() }

func (d *DictionaryValue) SelectIndex(core.Value) (core.Value, error) {
	return nil, errNotIndexSelectable()
}

func (d *DictionaryValue) SelectKey(key core.Value) (core.Value, error) {
	k, err := key.AsString()
	if err != nil {
		return nil, err
	}
	v, ok := d.Get(k)
	if !ok {
		return nil, errUnknownKey()
	}
	return v, nil
}

func (d *DictionaryValue) SelectRules([]core.Value) (core.Value, error) {
	return nil, errNotSelectable()
}

// AsDictionaryValue extracts the DictionaryValue payload, or (nil, false)
// on type mismatch.
func AsDictionaryValue(v core.Value) (*DictionaryValue, bool) {
	dv, ok := v.(*DictionaryValue)
	return dv, ok
}
