// Package classify implements the Syntax classifier of spec.md §4.3:
// the five-way word classification (Ignored, Root, Substitution,
// Qualified, Compound) the compiler lowers from.
//
// No teacher package maps onto this directly — Rebol's flat token
// stream has no word-classification pass, since every Rebol value is
// already its own syntactic unit. This is grounded instead on the
// teacher's internal/eval dispatch-table idiom (classify-then-dispatch
// on a small closed tag set, one case per tag, default falls through to
// a catch-all), applied here to morpheme-sequence shapes instead of
// value kinds.
package classify

import (
	"github.com/helena-lang/helena/syntax"
	"github.com/helena-lang/helena/verror"
)

// Class is the five-way classification of a Word.
type Class uint8

const (
	Ignored Class = iota
	Root
	Substitution
	Qualified
	Compound
)

func (c Class) String() string {
	switch c {
	case Ignored:
		return "ignored"
	case Root:
		return "root"
	case Substitution:
		return "substitution"
	case Qualified:
		return "qualified"
	case Compound:
		return "compound"
	default:
		return "unknown"
	}
}

// Result is the outcome of classifying a Word, carrying just the
// pieces the compiler needs for that Class.
type Result struct {
	Class Class

	// Root: the word's single morpheme.
	Root syntax.Morpheme

	// Substitution: the leading marker, its source morpheme, and zero
	// or more trailing selector morphemes.
	Marker    syntax.Morpheme
	Source    syntax.Morpheme
	Selectors []syntax.Morpheme

	// Qualified reuses Source and Selectors above (Marker unused).

	// Compound: every morpheme of the word, in order.
	Stems []syntax.Morpheme
}

func isCommentKind(k syntax.MorphemeKind) bool {
	return k == syntax.LineComment || k == syntax.BlockComment
}

// IsSubstitutionSource reports whether k may follow a SubstituteNext
// marker as its source (spec.md §4.3: "Literal, Tuple, Block, or
// Expression"). Exported for the compiler's stem segmenter, which
// applies the same shape rules incrementally across a flat morpheme
// run (compound words, string stems) rather than to a whole Word.
func IsSubstitutionSource(k syntax.MorphemeKind) bool {
	switch k {
	case syntax.Literal, syntax.Tuple, syntax.Block, syntax.Expression:
		return true
	default:
		return false
	}
}

// IsQualifiedSource reports whether k may open a Qualified word
// (spec.md §4.3: "Literal, Tuple, or Block; no leading $").
func IsQualifiedSource(k syntax.MorphemeKind) bool {
	switch k {
	case syntax.Literal, syntax.Tuple, syntax.Block:
		return true
	default:
		return false
	}
}

// IsSelector reports whether k may appear as a trailing selector
// morpheme (keyed/indexed/generic, per the bracket it was parsed from).
func IsSelector(k syntax.MorphemeKind) bool {
	switch k {
	case syntax.Tuple, syntax.Expression, syntax.Block:
		return true
	default:
		return false
	}
}

// Classify classifies w into exactly one of the five categories, or
// fails if it matches none of them (spec.md §4.3, §7 category 3).
func Classify(w syntax.Word) (Result, error) {
	ms := w.Morphemes

	if allComments(ms) {
		return Result{Class: Ignored}, nil
	}

	if len(ms) == 1 {
		return Result{Class: Root, Root: ms[0]}, nil
	}

	if len(ms) >= 2 && ms[0].Kind == syntax.SubstituteNext && IsSubstitutionSource(ms[1].Kind) {
		if allSelectors(ms[2:]) {
			return Result{
				Class:     Substitution,
				Marker:    ms[0],
				Source:    ms[1],
				Selectors: ms[2:],
			}, nil
		}
	}

	if len(ms) >= 2 && IsQualifiedSource(ms[0].Kind) && len(ms[1:]) > 0 && allSelectors(ms[1:]) {
		return Result{
			Class:     Qualified,
			Source:    ms[0],
			Selectors: ms[1:],
		}, nil
	}

	if len(ms) >= 2 {
		return Result{Class: Compound, Stems: ms}, nil
	}

	return Result{}, verror.Syntax("invalid word")
}

func allComments(ms []syntax.Morpheme) bool {
	if len(ms) == 0 {
		return false
	}
	for _, m := range ms {
		if !isCommentKind(m.Kind) {
			return false
		}
	}
	return true
}

func allSelectors(ms []syntax.Morpheme) bool {
	for _, m := range ms {
		if !IsSelector(m.Kind) {
			return false
		}
	}
	return true
}
