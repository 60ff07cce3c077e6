package main

import (
	"fmt"
	"strings"

	"github.com/helena-lang/helena/core"
	"github.com/helena-lang/helena/value"
)

// formatValue renders a core.Value for display. This is CLI-only
// presentation: the core library mandates no canonical render form
// beyond what AsString already defines for string-like variants
// (spec.md §6 "no binary encoding is mandated" extends to display
// too), so aggregate kinds get a best-effort bracketed rendering here.
func formatValue(v core.Value) string {
	if s, err := v.AsString(); err == nil {
		return s
	}
	switch v.Kind() {
	case core.KindList:
		seq := v.(core.Sequence)
		return "[" + joinValues(seq.Elements()) + "]"
	case core.KindTuple:
		seq := v.(core.Sequence)
		return "(" + joinValues(seq.Elements()) + ")"
	case core.KindDictionary:
		d, _ := value.AsDictionaryValue(v)
		parts := make([]string, 0, d.Len())
		for _, pair := range d.Entries() {
			parts = append(parts, fmt.Sprintf("%s: %s", pair.Key, formatValue(pair.Value)))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case core.KindQualified:
		q, _ := value.AsQualifiedValue(v)
		var b strings.Builder
		b.WriteString(formatValue(q.Source()))
		for _, sel := range q.Selectors() {
			b.WriteString(sel.Render())
		}
		return b.String()
	case core.KindScript:
		sv, _ := value.AsScriptValue(v)
		if src, ok := sv.Source(); ok {
			return "{" + src + "}"
		}
		return "{...}"
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

func joinValues(vs []core.Value) string {
	parts := make([]string, len(vs))
	for i, el := range vs {
		parts[i] = formatValue(el)
	}
	return strings.Join(parts, " ")
}
