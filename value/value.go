// Package value implements the tagged value variants of spec.md §3:
// Nil, Boolean, Integer, Real, String, List, Dictionary, Tuple, Script,
// Qualified, and Custom. Every variant implements core.Value's four
// capabilities (AsString, SelectIndex, SelectKey, SelectRules); the
// capability matrix in spec.md §3 is enforced per type in this
// package's files (one file per variant, mirroring the teacher's
// internal/value layout).
//
// Construction is exclusively through the New* functions below; no
// caller should build a variant struct literal directly, matching the
// teacher's "constructor functions are the only way to create values"
// rule.
package value

import "github.com/helena-lang/helena/verror"

func errNotIndexSelectable() error { return verror.Execution("value is not index-selectable") }
func errNotKeySelectable() error   { return verror.Execution("value is not key-selectable") }
func errNotSelectable() error      { return verror.Execution("value is not selectable") }
func errNoStringRepr() error       { return verror.Execution("value has no string representation") }
func errInvalidInteger() error     { return verror.Execution("invalid integer") }
func errIndexOutOfRange() error    { return verror.Execution("index out of range") }
func errUnknownKey() error         { return verror.Execution("unknown key") }
