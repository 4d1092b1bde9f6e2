package notation

import (
	"strconv"
	"strings"
)

// Tokenize splits a rendering into tokens. Characters outside the notation
// become Error tokens.
func Tokenize(s string) ([]Token, error) {
	g, err := Grammar()
	if err != nil {
		return nil, err
	}
	return NewLexer(g, s).Tokenize(), nil
}

// Shape returns a lowercase, blank-free form of s in which type variables
// are numbered in order of first appearance. Renderings that differ only in
// the names of their type variables have the same shape:
//
//	Shape("(List<T>, (T -> R)) -> List<R>") == "(list<%1>,(%1->%2))->list<%2>"
//	Shape("(List<A>, (A -> B)) -> List<B>") == "(list<%1>,(%1->%2))->list<%2>"
//
// A type variable is a name of one capital letter, optionally followed by
// digits, as is conventional in Java.
func Shape(s string) (string, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return "", err
	}
	vars := map[string]int{}
	var sb strings.Builder
	for _, tok := range tokens {
		if isName(tok) && IsTypeVariable(tok.Literal) {
			n, ok := vars[tok.Literal]
			if !ok {
				n = len(vars) + 1
				vars[tok.Literal] = n
			}
			sb.WriteString("%" + strconv.Itoa(n))
			continue
		}
		sb.WriteString(strings.ToLower(tok.Literal))
	}
	return sb.String(), nil
}

// IsTypeVariable reports whether name follows the naming convention of
// type variables.
func IsTypeVariable(name string) bool {
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// A lone identifier lexes as either kind.
func isName(tok Token) bool {
	return tok.Kind == "name" || tok.Kind == "identifier"
}
