package compile

import (
	"github.com/helena-lang/helena/classify"
	"github.com/helena-lang/helena/syntax"
	"github.com/helena-lang/helena/value"
	"github.com/helena-lang/helena/verror"
)

// Script compiles a whole Script: each sentence wrapped in
// OpenFrame/compile-words/CloseFrame/EvaluateSentence, in order
// (spec.md §4.4 "Script compilation").
func Script(s *syntax.Script) (Program, error) {
	return compileSentences(s)
}

// compileSentences is the shared body used by Script, by ROOT
// Expression ("compile(inner script as sentences)"), and by an
// Expression-selector's indexed-selector emit.
func compileSentences(s *syntax.Script) (Program, error) {
	var prog Program
	for _, sent := range s.Sentences {
		prog = append(prog, op(OpenFrame))
		for _, w := range sent.Words {
			wp, err := compileWord(w)
			if err != nil {
				return nil, err
			}
			prog = append(prog, wp...)
		}
		prog = append(prog, op(CloseFrame), op(EvaluateSentence))
	}
	return prog, nil
}

// compileTupleBody flattens every sentence's words across the whole
// script into one sequence of pushes — a Tuple's contents are not
// separately-evaluated commands, just a flat argument list (spec.md
// §4.4 "ROOT Tuple | compile(inner script as sentence args)").
func compileTupleBody(s *syntax.Script) (Program, error) {
	var prog Program
	for _, sent := range s.Sentences {
		for _, w := range sent.Words {
			wp, err := compileWord(w)
			if err != nil {
				return nil, err
			}
			prog = append(prog, wp...)
		}
	}
	return prog, nil
}

// compileGenericRules compiles a Block-selector's body into a Tuple of
// per-sentence Tuples: one rule per sentence, each rule being the flat
// tuple of that sentence's word-values (not evaluated as a command).
func compileGenericRules(s *syntax.Script) (Program, error) {
	prog := Program{op(OpenFrame)}
	for _, sent := range s.Sentences {
		prog = append(prog, op(OpenFrame))
		for _, w := range sent.Words {
			wp, err := compileWord(w)
			if err != nil {
				return nil, err
			}
			prog = append(prog, wp...)
		}
		prog = append(prog, op(CloseFrame))
	}
	prog = append(prog, op(CloseFrame))
	return prog, nil
}

// compileWord classifies and lowers one Word.
func compileWord(w syntax.Word) (Program, error) {
	res, err := classify.Classify(w)
	if err != nil {
		return nil, err
	}
	switch res.Class {
	case classify.Ignored:
		return nil, nil
	case classify.Root:
		return compileRoot(res.Root)
	case classify.Substitution:
		return compileSubstitution(res)
	case classify.Qualified:
		return compileQualified(res)
	case classify.Compound:
		return compileJoinedStems(res.Stems)
	default:
		return nil, verror.Internal("unreachable word class")
	}
}

// compileRoot lowers a single self-contained morpheme to its natural
// value (spec.md §4.4 "ROOT ..." rows).
func compileRoot(m syntax.Morpheme) (Program, error) {
	switch m.Kind {
	case syntax.Literal, syntax.HereString, syntax.TaggedString:
		return Program{push(value.NewString(m.Text))}, nil

	case syntax.Block:
		return Program{push(value.NewScriptWithSource(m.Nested, m.Source))}, nil

	case syntax.Tuple:
		body, err := compileTupleBody(m.Nested)
		if err != nil {
			return nil, err
		}
		prog := Program{op(OpenFrame)}
		prog = append(prog, body...)
		prog = append(prog, op(CloseFrame))
		return prog, nil

	case syntax.Expression:
		body, err := compileSentences(m.Nested)
		if err != nil {
			return nil, err
		}
		return append(body, op(SubstituteResult)), nil

	case syntax.String:
		return compileJoinedStems(m.Stems)

	default:
		return nil, verror.Internal("invalid root morpheme")
	}
}

// compileSubstitutionSource emits the "source-varname(s)" half of a
// SUBSTITUTION word: the natural value of the source morpheme, plus a
// ResolveValue for every source kind except Expression (whose ROOT
// lowering already performs the whole evaluate-and-substitute, leaving
// nothing further to resolve).
func compileSubstitutionSource(m syntax.Morpheme) (Program, error) {
	prog, err := compileRoot(m)
	if err != nil {
		return nil, err
	}
	switch m.Kind {
	case syntax.Literal, syntax.Block, syntax.Tuple:
		return append(prog, op(ResolveValue)), nil
	case syntax.Expression:
		return prog, nil
	default:
		return nil, verror.Internal("invalid substitution source")
	}
}

// compileSelectors emits each trailing selector morpheme shared by
// SUBSTITUTION and QUALIFIED words: a Tuple selector is keyed, an
// Expression selector is indexed, a Block selector is generic.
func compileSelectors(sels []syntax.Morpheme) (Program, error) {
	var prog Program
	for _, s := range sels {
		switch s.Kind {
		case syntax.Tuple:
			body, err := compileTupleBody(s.Nested)
			if err != nil {
				return nil, err
			}
			prog = append(prog, op(OpenFrame))
			prog = append(prog, body...)
			prog = append(prog, op(CloseFrame), op(SelectKeys))

		case syntax.Expression:
			body, err := compileSentences(s.Nested)
			if err != nil {
				return nil, err
			}
			prog = append(prog, body...)
			prog = append(prog, op(SubstituteResult), op(SelectIndex))

		case syntax.Block:
			body, err := compileGenericRules(s.Nested)
			if err != nil {
				return nil, err
			}
			prog = append(prog, body...)
			prog = append(prog, op(SelectRules))

		default:
			return nil, verror.Internal("invalid selector morpheme")
		}
	}
	return prog, nil
}

// compileSubstitution lowers a SUBSTITUTION word (spec.md §4.4 row
// "SUBSTITUTION").
func compileSubstitution(res classify.Result) (Program, error) {
	srcProg, err := compileSubstitutionSource(res.Source)
	if err != nil {
		return nil, err
	}
	selProg, err := compileSelectors(res.Selectors)
	if err != nil {
		return nil, err
	}
	prog := append(srcProg, selProg...)
	for i := 0; i < res.Marker.Levels-1; i++ {
		prog = append(prog, op(ResolveValue))
	}
	if res.Marker.Expansion {
		prog = append(prog, op(ExpandValue))
	}
	return prog, nil
}

// compileQualified lowers a QUALIFIED word (spec.md §4.4 row
// "QUALIFIED").
func compileQualified(res classify.Result) (Program, error) {
	srcProg, err := compileRoot(res.Source)
	if err != nil {
		return nil, err
	}
	selProg, err := compileSelectors(res.Selectors)
	if err != nil {
		return nil, err
	}
	prog := append(srcProg, op(SetSource))
	prog = append(prog, selProg...)
	return prog, nil
}

// compileJoinedStems lowers a flat morpheme run (a COMPOUND word's
// morphemes, or a ROOT String's stems) by segmenting it into maximal
// self-contained units — same shape rules as classify.Classify, but
// applied incrementally since a single compound word or string may
// concatenate several such units — then joining each segment's value
// as a string (spec.md §4.4 rows "ROOT String", "COMPOUND").
func compileJoinedStems(ms []syntax.Morpheme) (Program, error) {
	prog := Program{op(OpenFrame)}
	for _, seg := range segments(ms) {
		segProg, err := compileSegment(seg)
		if err != nil {
			return nil, err
		}
		prog = append(prog, segProg...)
	}
	prog = append(prog, op(CloseFrame), op(JoinStrings))
	return prog, nil
}

// segments groups a flat morpheme run into maximal units: a
// SubstituteNext marker together with its source and any immediately
// following selector morphemes; a qualifiable source together with its
// immediately following selector morphemes; or else a single morpheme.
func segments(ms []syntax.Morpheme) [][]syntax.Morpheme {
	var segs [][]syntax.Morpheme
	i := 0
	for i < len(ms) {
		if ms[i].Kind == syntax.SubstituteNext && i+1 < len(ms) && classify.IsSubstitutionSource(ms[i+1].Kind) {
			j := i + 2
			for j < len(ms) && classify.IsSelector(ms[j].Kind) {
				j++
			}
			segs = append(segs, ms[i:j])
			i = j
			continue
		}
		if classify.IsQualifiedSource(ms[i].Kind) && i+1 < len(ms) && classify.IsSelector(ms[i+1].Kind) {
			j := i + 1
			for j < len(ms) && classify.IsSelector(ms[j].Kind) {
				j++
			}
			segs = append(segs, ms[i:j])
			i = j
			continue
		}
		segs = append(segs, ms[i:i+1])
		i++
	}
	return segs
}

// compileSegment compiles one segment produced by segments: a comment
// morpheme contributes nothing (IGNORED generalizes to the stem
// level), a single morpheme compiles like ROOT, a marker-led segment
// like SUBSTITUTION, and anything else like QUALIFIED.
func compileSegment(seg []syntax.Morpheme) (Program, error) {
	if len(seg) == 1 {
		if seg[0].Kind == syntax.LineComment || seg[0].Kind == syntax.BlockComment {
			return nil, nil
		}
		return compileRoot(seg[0])
	}
	if seg[0].Kind == syntax.SubstituteNext {
		return compileSubstitution(classify.Result{Marker: seg[0], Source: seg[1], Selectors: seg[2:]})
	}
	return compileQualified(classify.Result{Source: seg[0], Selectors: seg[1:]})
}
