// Package parse implements the Parser of spec.md §4.2: a context-stack
// state machine turning a token sequence into a syntax.Script.
//
// Grounded on the teacher's internal/parse/semantic_parser.go (an
// explicit Parser struct walking a token slice with a position cursor
// and one parseX method per construct) and internal/parse/dialect/cursor.go
// (an explicit position/state object threaded through recursive
// descent), generalized from Rebol's single-pass bracket parser into
// the full context-stack spec.md's shell-like surface syntax needs:
// strings, here-strings, tagged strings, and nestable block comments
// layered on top of the bracket-matching the teacher already does.
package parse

import (
	"strings"

	"github.com/helena-lang/helena/syntax"
	"github.com/helena-lang/helena/token"
	"github.com/helena-lang/helena/verror"
)

// Parse tokenizes and parses src into a Script. It fails with one of
// the exact delimiter-mismatch messages from spec.md §6 on any
// unmatched context.
func Parse(src string) (*syntax.Script, error) {
	toks := token.Tokenize(src)
	p := &parser{tokens: toks, src: []rune(src)}
	script, err := p.parseScript(token.EOF, "", true)
	if err != nil {
		return nil, err
	}
	return script, nil
}

type parser struct {
	tokens []token.Token
	pos    int
	src    []rune
}

func (p *parser) cur() token.Token { return p.peekAt(0) }

func (p *parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i < 0 || i >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[i]
}

func (p *parser) advanceTok() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// consumeQuoteChars consumes n quote characters from the current
// StringDelimiter token, shrinking it in place (rather than advancing
// past it) when n is smaller than its full run length.
func (p *parser) consumeQuoteChars(n int) {
	t := p.tokens[p.pos]
	if n >= len(t.Literal) {
		p.pos++
		return
	}
	p.tokens[p.pos] = token.Token{
		Kind:    token.StringDelimiter,
		Literal: t.Literal[n:],
		Line:    t.Line,
		Column:  t.Column + n,
		Index:   t.Index + n,
		Length:  t.Length - n,
	}
}

// advanceToRuneIndex realigns the token cursor to the token covering
// rune offset idx, shrinking a token in place if idx falls inside it.
// Used after raw-character scans (comments, here-strings, tagged
// strings) that bypass the token stream for their content.
func (p *parser) advanceToRuneIndex(idx int) {
	for p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		if t.Index+t.Length <= idx {
			p.pos++
			continue
		}
		if t.Index >= idx {
			return
		}
		drop := idx - t.Index
		r := []rune(t.Literal)
		if drop >= len(r) {
			p.pos++
			continue
		}
		p.tokens[p.pos] = token.Token{
			Kind:    t.Kind,
			Literal: string(r[drop:]),
			Line:    t.Line,
			Column:  t.Column + drop,
			Index:   t.Index + drop,
			Length:  t.Length - drop,
		}
		return
	}
}

func closerName(k token.Kind) string {
	switch k {
	case token.CloseTuple:
		return "parenthesis"
	case token.CloseBlock:
		return "brace"
	case token.CloseExpression:
		return "bracket"
	default:
		return "delimiter"
	}
}

// parseScript parses a sequence of sentences (spec.md §4.2 rule 1).
// For a nested context (top=false) it stops without consuming the
// token matching closer; the caller consumes it. Reaching EOF in a
// nested context is an "unmatched left X" error; reaching a foreign
// closer is "mismatched right X" (nested) or "unmatched right X" (top
// level), per spec.md §4.2 rule 2.
func (p *parser) parseScript(closer token.Kind, openerName string, top bool) (*syntax.Script, error) {
	var sentences []syntax.Sentence
	var curWords []syntax.Word
	var curMorphs []syntax.Morpheme

	flushWord := func() {
		if len(curMorphs) > 0 {
			curWords = append(curWords, syntax.Word{Morphemes: curMorphs})
			curMorphs = nil
		}
	}
	flushSentence := func() {
		flushWord()
		if len(curWords) > 0 {
			sentences = append(sentences, syntax.Sentence{Words: curWords})
			curWords = nil
		}
	}

	for {
		tok := p.cur()

		if !top && tok.Kind == closer {
			flushSentence()
			return &syntax.Script{Sentences: sentences}, nil
		}

		switch tok.Kind {
		case token.EOF:
			flushSentence()
			if !top {
				return nil, verror.Syntax("unmatched left " + openerName)
			}
			return &syntax.Script{Sentences: sentences}, nil

		case token.CloseTuple, token.CloseBlock, token.CloseExpression:
			name := closerName(tok.Kind)
			if top {
				return nil, verror.Syntax("unmatched right " + name)
			}
			return nil, verror.Syntax("mismatched right " + name)

		case token.Newline, token.Semicolon:
			p.advanceTok()
			flushSentence()

		case token.Whitespace, token.LineContinuation:
			p.advanceTok()
			flushWord()

		default:
			m, err := p.parseMorpheme()
			if err != nil {
				return nil, err
			}
			curMorphs = append(curMorphs, m)
		}
	}
}

// parseMorpheme parses exactly one morpheme starting at the current
// token, which must not be Whitespace/Newline/Semicolon/LineContinuation/
// EOF/a closer (parseScript handles those itself).
func (p *parser) parseMorpheme() (syntax.Morpheme, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.Text, token.Escape:
		return p.parseLiteralRun(), nil
	case token.Dollar:
		return p.parseSubstitute(), nil
	case token.OpenTuple:
		return p.parseTuple()
	case token.OpenBlock:
		return p.parseBlock()
	case token.OpenExpression:
		return p.parseExpression()
	case token.StringDelimiter:
		return p.parseQuoted()
	case token.Comment:
		return p.parseComment()
	case token.Asterisk:
		p.advanceTok()
		return syntax.Morpheme{Kind: syntax.Literal, Text: "*"}, nil
	default:
		p.advanceTok()
		return syntax.Morpheme{Kind: syntax.Literal, Text: tok.Literal}, nil
	}
}

// parseLiteralRun coalesces consecutive Text/Escape tokens into a
// single Literal morpheme.
func (p *parser) parseLiteralRun() syntax.Morpheme {
	var b strings.Builder
	for p.cur().Kind == token.Text || p.cur().Kind == token.Escape {
		b.WriteString(p.advanceTok().Literal)
	}
	return syntax.Morpheme{Kind: syntax.Literal, Text: b.String()}
}

func isSubstitutableStart(k token.Kind) bool {
	switch k {
	case token.Text, token.Escape, token.OpenTuple, token.OpenBlock, token.OpenExpression:
		return true
	default:
		return false
	}
}

// parseSubstitute parses a run of '$' optionally followed by '*'
// (spec.md §4.2 rule 7). A trailing run not followed by a
// substitutable morpheme degrades to literal Text.
func (p *parser) parseSubstitute() syntax.Morpheme {
	levels := 0
	var raw strings.Builder
	for p.cur().Kind == token.Dollar {
		levels++
		raw.WriteByte('$')
		p.advanceTok()
	}
	expansion := false
	if p.cur().Kind == token.Asterisk {
		expansion = true
		raw.WriteByte('*')
		p.advanceTok()
	}
	if isSubstitutableStart(p.cur().Kind) {
		return syntax.Morpheme{Kind: syntax.SubstituteNext, Levels: levels, Expansion: expansion}
	}
	return syntax.Morpheme{Kind: syntax.Literal, Text: raw.String()}
}

func (p *parser) parseTuple() (syntax.Morpheme, error) {
	p.advanceTok() // consume '('
	inner, err := p.parseScript(token.CloseTuple, "parenthesis", false)
	if err != nil {
		return syntax.Morpheme{}, err
	}
	p.advanceTok() // consume ')'
	return syntax.Morpheme{Kind: syntax.Tuple, Nested: inner}, nil
}

func (p *parser) parseExpression() (syntax.Morpheme, error) {
	p.advanceTok() // consume '['
	inner, err := p.parseScript(token.CloseExpression, "bracket", false)
	if err != nil {
		return syntax.Morpheme{}, err
	}
	p.advanceTok() // consume ']'
	return syntax.Morpheme{Kind: syntax.Expression, Nested: inner}, nil
}

// parseBlock additionally captures the raw verbatim source between the
// braces (spec.md §3 invariant: "Block morphemes retain their raw
// source between braces verbatim for later re-evaluation as strings").
func (p *parser) parseBlock() (syntax.Morpheme, error) {
	openTok := p.advanceTok() // consume '{'
	rawStart := openTok.Index + openTok.Length
	inner, err := p.parseScript(token.CloseBlock, "brace", false)
	if err != nil {
		return syntax.Morpheme{}, err
	}
	rawEnd := p.cur().Index
	source := string(p.src[rawStart:rawEnd])
	p.advanceTok() // consume '}'
	return syntax.Morpheme{Kind: syntax.Block, Nested: inner, Source: source}, nil
}

// parseQuoted dispatches on the length of the opening quote run:
// one quote opens a plain String, two opens either an empty String or
// a TaggedString (depending on what follows), three or more opens a
// HereString (spec.md §4.2 rules 3-5).
func (p *parser) parseQuoted() (syntax.Morpheme, error) {
	tok := p.cur()
	runLen := len([]rune(tok.Literal))
	switch {
	case runLen == 1:
		p.consumeQuoteChars(1)
		stems, err := p.parseStringStems(1)
		if err != nil {
			return syntax.Morpheme{}, err
		}
		return syntax.Morpheme{Kind: syntax.String, Stems: stems}, nil
	case runLen == 2:
		return p.parseTwoQuoteOpener(tok)
	default:
		return p.parseHereString(tok, runLen)
	}
}

// parseStringStems scans the flat stem sequence of a plain String
// context until a quote run of at least closerLen closes it. Unlike a
// Script context, whitespace/newlines/semicolons/comments are literal
// content here, not terminators.
func (p *parser) parseStringStems(closerLen int) ([]syntax.Morpheme, error) {
	var stems []syntax.Morpheme
	var pending strings.Builder

	flushPending := func() {
		if pending.Len() > 0 {
			stems = append(stems, syntax.Morpheme{Kind: syntax.Literal, Text: pending.String()})
			pending.Reset()
		}
	}

	for {
		tok := p.cur()
		switch tok.Kind {
		case token.EOF:
			return nil, verror.Syntax("unmatched string delimiter")

		case token.StringDelimiter:
			runLen := len([]rune(tok.Literal))
			if runLen >= closerLen {
				p.consumeQuoteChars(closerLen)
				flushPending()
				return stems, nil
			}
			pending.WriteString(tok.Literal)
			p.advanceTok()

		case token.Text, token.Escape, token.Whitespace, token.Semicolon, token.LineContinuation, token.Comment:
			pending.WriteString(tok.Literal)
			p.advanceTok()

		case token.Newline:
			pending.WriteString("\n")
			p.advanceTok()

		case token.Asterisk:
			pending.WriteString("*")
			p.advanceTok()

		case token.Dollar:
			flushPending()
			stems = append(stems, p.parseSubstitute())

		case token.OpenTuple:
			flushPending()
			m, err := p.parseTuple()
			if err != nil {
				return nil, err
			}
			stems = append(stems, m)

		case token.OpenBlock:
			flushPending()
			m, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stems = append(stems, m)

		case token.OpenExpression:
			flushPending()
			m, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			stems = append(stems, m)

		default:
			// A foreign closer (CloseTuple/CloseBlock/CloseExpression)
			// with no opener inside this string is just literal text:
			// strings are not bracket-balanced the way scripts are.
			pending.WriteString(tok.Literal)
			p.advanceTok()
		}
	}
}

// parseTwoQuoteOpener resolves the "" ambiguity: an adjacent tag word
// followed immediately by a newline opens a TaggedString; an adjacent
// tag word followed by anything else fails with "extra characters after
// string delimiter"; with no adjacent tag word it is an empty plain
// String (spec.md §4.2 rule 5).
func (p *parser) parseTwoQuoteOpener(tok token.Token) (syntax.Morpheme, error) {
	p.consumeQuoteChars(2)
	tagTok := p.cur()
	if tagTok.Kind == token.Text && tagTok.Index == tok.Index+2 {
		nlTok := p.peekAt(1)
		if nlTok.Kind == token.Newline && nlTok.Index == tagTok.Index+tagTok.Length {
			contentStart := nlTok.Index + nlTok.Length
			tag := tagTok.Literal
			p.advanceTok() // tag
			p.advanceTok() // newline
			return p.scanTaggedStringBody(tag, contentStart)
		}
		return syntax.Morpheme{}, verror.Syntax("extra characters after string delimiter")
	}
	return syntax.Morpheme{Kind: syntax.String}, nil
}

// scanTaggedStringBody raw-scans for a line whose content, once a
// leading run of horizontal whitespace is stripped, exactly equals
// tag. That indentation is then stripped from every content line
// (spec.md §4.2 rule 5: escape and substitution processing are
// suppressed inside a TaggedString).
func (p *parser) scanTaggedStringBody(tag string, contentStart int) (syntax.Morpheme, error) {
	runes := p.src
	n := len(runes)
	lineStart := contentStart
	for lineStart <= n {
		lineEnd := lineStart
		for lineEnd < n && runes[lineEnd] != '\n' {
			lineEnd++
		}
		lineText := string(runes[lineStart:lineEnd])
		trimmed := strings.TrimLeft(lineText, " \t")
		indent := lineText[:len(lineText)-len(trimmed)]
		if trimmed == tag {
			content := string(runes[contentStart:lineStart])
			closeEnd := lineEnd
			if closeEnd < n {
				closeEnd++
			}
			p.advanceToRuneIndex(closeEnd)
			return syntax.Morpheme{Kind: syntax.TaggedString, Text: stripIndent(content, indent)}, nil
		}
		if lineEnd >= n {
			break
		}
		lineStart = lineEnd + 1
	}
	return syntax.Morpheme{}, verror.Syntax("unmatched tagged string delimiter")
}

// stripIndent removes indent as an exact prefix from every line of
// content that carries it, leaving shorter lines untouched.
func stripIndent(content, indent string) string {
	if indent == "" || content == "" {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		if strings.HasPrefix(l, indent) {
			lines[i] = l[len(indent):]
		}
	}
	return strings.Join(lines, "\n")
}

// parseHereString raw-scans for a closing quote run of at least
// delimLen, taking the whole run literally except for its final
// delimLen characters. Excess leading quotes of a longer closing run
// are prepended to the content (spec.md §4.2 rule 4).
func (p *parser) parseHereString(tok token.Token, delimLen int) (syntax.Morpheme, error) {
	p.consumeQuoteChars(delimLen)
	contentStart := tok.Index + delimLen
	runes := p.src
	n := len(runes)
	var b strings.Builder
	i := contentStart
	for i < n {
		if runes[i] == '"' {
			j := i
			for j < n && runes[j] == '"' {
				j++
			}
			runLen := j - i
			if runLen >= delimLen {
				excess := runLen - delimLen
				b.WriteString(string(runes[i : i+excess]))
				closeEnd := i + excess + delimLen
				p.advanceToRuneIndex(closeEnd)
				return syntax.Morpheme{Kind: syntax.HereString, Text: b.String()}, nil
			}
			b.WriteString(string(runes[i:j]))
			i = j
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return syntax.Morpheme{}, verror.Syntax("unmatched here-string delimiter")
}

// parseComment distinguishes a line comment from a block comment: a
// hash run immediately followed by '{' (no gap) opens a block comment
// (spec.md §4.2 rule 6).
func (p *parser) parseComment() (syntax.Morpheme, error) {
	tok := p.cur()
	hashLen := len([]rune(tok.Literal))
	next := p.peekAt(1)
	if next.Kind == token.OpenBlock && next.Index == tok.Index+tok.Length {
		return p.parseBlockComment(tok, hashLen)
	}
	return p.parseLineComment(tok), nil
}

func (p *parser) parseLineComment(tok token.Token) syntax.Morpheme {
	start := tok.Index + tok.Length
	runes := p.src
	n := len(runes)
	end := start
	for end < n && runes[end] != '\n' {
		end++
	}
	text := string(runes[start:end])
	p.advanceToRuneIndex(end)
	return syntax.Morpheme{Kind: syntax.LineComment, Text: text}
}

// parseBlockComment raw-scans for a matching "}"+hashes closer,
// tracking nesting depth for any "hashes+{" opener of the same hash
// count encountered along the way (spec.md §4.2 rule 6, "may nest
// ##{…}##-style matching pairs").
func (p *parser) parseBlockComment(tok token.Token, hashLen int) (syntax.Morpheme, error) {
	runes := p.src
	n := len(runes)
	start := tok.Index + tok.Length + 1 // past the hash run and '{'
	depth := 1
	i := start
	for i < n {
		if hasHashRun(runes, i, hashLen) && i+hashLen < n && runes[i+hashLen] == '{' {
			depth++
			i += hashLen + 1
			continue
		}
		if runes[i] == '}' && hasHashRun(runes, i+1, hashLen) {
			depth--
			closeStart := i
			i += 1 + hashLen
			if depth == 0 {
				content := string(runes[start:closeStart])
				p.advanceToRuneIndex(i)
				return syntax.Morpheme{Kind: syntax.BlockComment, Text: content}, nil
			}
			continue
		}
		i++
	}
	return syntax.Morpheme{}, verror.Syntax("unmatched block comment delimiter")
}

func hasHashRun(runes []rune, at, n int) bool {
	if at < 0 || at+n > len(runes) {
		return false
	}
	for k := 0; k < n; k++ {
		if runes[at+k] != '#' {
			return false
		}
	}
	return true
}
