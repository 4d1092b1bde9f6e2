package notation

import (
	"fmt"

	"golang.org/x/exp/ebnf"
)

// Error is the kind of a single character no token kind matches.
const Error = "ERROR"

type Token struct {
	Kind    string
	Literal string
	Offset  int
}

func (t Token) String() string {
	return fmt.Sprintf("%d %s %q", t.Offset, t.Kind, t.Literal)
}

type memoKey struct {
	name   string
	offset int
}

// Lexer splits input into the token kinds of a grammar. At each position
// the longest match wins. Blanks between tokens are skipped.
type Lexer struct {
	grammar  ebnf.Grammar
	kinds    []string
	input    string
	pos      int
	memo     map[memoKey]int // match length or noMatch
	visiting map[memoKey]bool
}

func NewLexer(grammar ebnf.Grammar, input string) *Lexer {
	return &Lexer{
		grammar:  grammar,
		kinds:    tokenKinds(grammar),
		input:    input,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// Next returns the next token and false once the input is exhausted.
func (l *Lexer) Next() (Token, bool) {
	for l.pos < len(l.input) && isBlank(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return Token{}, false
	}

	start := l.pos
	bestKind, bestLen := "", 0
	for _, kind := range l.kinds {
		var n int
		if _, ok := l.grammar[kind]; ok {
			n = l.matchName(kind, start)
		} else {
			n = l.matchToken(kind, start)
		}
		if n > bestLen {
			bestKind, bestLen = kind, n
		}
	}

	if bestLen == 0 {
		l.pos++
		return Token{Kind: Error, Literal: l.input[start:l.pos], Offset: start}, true
	}
	l.pos += bestLen
	return Token{Kind: bestKind, Literal: l.input[start:l.pos], Offset: start}, true
}

// Tokenize reads all remaining tokens.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// noMatch tells a failed match apart from one that consumed nothing, as an
// empty repetition or option does.
const noMatch = -1

func (l *Lexer) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		return l.matchToken(e.String, offset)

	case *ebnf.Range:
		return l.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.match(item, offset+total)
			if n == noMatch {
				return noMatch
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := l.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := l.match(e.Body, offset+total)
			if n <= 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		return max(l.match(e.Body, offset), 0)

	case *ebnf.Group:
		return l.match(e.Body, offset)

	case *ebnf.Name:
		return l.matchName(e.String, offset)
	}
	return noMatch
}

// matchName matches a production, memoized by offset. A production that
// refers to itself at the same offset does not match.
func (l *Lexer) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if n, ok := l.memo[key]; ok {
		return n
	}
	if l.visiting[key] {
		return noMatch
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = noMatch
		return noMatch
	}

	l.visiting[key] = true
	n := l.match(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = n
	return n
}

func (l *Lexer) matchToken(token string, offset int) int {
	if offset+len(token) > len(l.input) {
		return noMatch
	}
	if l.input[offset:offset+len(token)] == token {
		return len(token)
	}
	return noMatch
}

func (l *Lexer) matchRange(begin, end string, offset int) int {
	if offset >= len(l.input) || len(begin) != 1 || len(end) != 1 {
		return noMatch
	}
	if ch := l.input[offset]; ch >= begin[0] && ch <= end[0] {
		return 1
	}
	return noMatch
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
