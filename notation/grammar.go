// Package notation tokenizes method signatures written in the arrow
// notation, such as "(List<T>, (T -> R)) -> List<R>". The lexical structure
// is defined by an EBNF grammar.
package notation

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

//go:embed signature.ebnf
var grammarSource string

// Start is the production a complete rendering is derived from.
const Start = "Rendering"

var loadGrammar = sync.OnceValues(func() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("signature.ebnf", strings.NewReader(grammarSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
})

// Grammar returns the verified notation grammar.
func Grammar() (ebnf.Grammar, error) {
	return loadGrammar()
}

// tokenKinds lists what a lexer may emit: the lexical productions the
// syntactic ones refer to by name, and the literal tokens they spell out.
// Literal tokens are their own kind.
func tokenKinds(g ebnf.Grammar) []string {
	seen := map[string]bool{}
	var walk func(ebnf.Expression)
	walk = func(expr ebnf.Expression) {
		switch e := expr.(type) {
		case *ebnf.Token:
			seen[e.String] = true
		case *ebnf.Name:
			if isLexical(e.String) {
				seen[e.String] = true
			}
		case ebnf.Sequence:
			for _, item := range e {
				walk(item)
			}
		case ebnf.Alternative:
			for _, alt := range e {
				walk(alt)
			}
		case *ebnf.Repetition:
			walk(e.Body)
		case *ebnf.Option:
			walk(e.Body)
		case *ebnf.Group:
			walk(e.Body)
		}
	}
	for name, prod := range g {
		if !isLexical(name) {
			walk(prod.Expr)
		}
	}

	kinds := make([]string, 0, len(seen))
	for kind := range seen {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}
