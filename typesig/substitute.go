package typesig

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Binding maps a declared type variable to the text of its actual argument.
type Binding struct {
	Variable string
	Actual   string
}

var wildcardBound = regexp.MustCompile(`\? (?:super|extends) `)

// bareTypeName renders an actual type argument for substitution: wildcard
// bound markers are dropped and '$' becomes "__".
func bareTypeName(t Type) string {
	name := wildcardBound.ReplaceAllString(t.TypeName(), "")
	return strings.ReplaceAll(name, "$", "__")
}

// bind pairs declared type parameters with actual arguments by position.
// With no actual arguments every variable is bound to itself.
func bind(declared []TypeVariable, actual []Type) ([]Binding, error) {
	bindings := make([]Binding, len(declared))
	if len(actual) == 0 {
		for i, v := range declared {
			bindings[i] = Binding{Variable: v.Name(), Actual: v.Name()}
		}
		return bindings, nil
	}
	if len(actual) != len(declared) {
		return nil, fmt.Errorf("%w: %d type parameters, %d arguments", ErrTypeArityMismatch, len(declared), len(actual))
	}
	for i, v := range declared {
		bindings[i] = Binding{Variable: v.Name(), Actual: bareTypeName(actual[i])}
	}
	return bindings, nil
}

// Substitute replaces whole-word occurrences of every bound variable in
// text with its actual argument. All variables are replaced in a single pass,
// so an argument that happens to spell another variable's name is not
// rewritten again.
func Substitute(text string, bindings []Binding) string {
	actual := make(map[string]string, len(bindings))
	var names []string
	for _, b := range bindings {
		if b.Variable == "" || b.Variable == b.Actual {
			continue
		}
		if _, dup := actual[b.Variable]; !dup {
			names = append(names, regexp.QuoteMeta(b.Variable))
		}
		actual[b.Variable] = b.Actual
	}
	if len(names) == 0 {
		return text
	}
	// longest first so that alternation order never matters
	slices.SortFunc(names, func(a, b string) int { return len(b) - len(a) })
	re := regexp.MustCompile(strings.Join(names, "|"))

	var sb strings.Builder
	pos := 0
	for pos < len(text) {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		begin, end := pos+loc[0], pos+loc[1]
		if !wordBoundary(text, begin) || !wordBoundary(text, end) {
			_, size := utf8.DecodeRuneInString(text[begin:])
			sb.WriteString(text[pos : begin+size])
			pos = begin + size
			continue
		}
		sb.WriteString(text[pos:begin])
		sb.WriteString(actual[text[begin:end]])
		pos = end
	}
	sb.WriteString(text[pos:])
	return sb.String()
}

// wordBoundary reports whether i separates a word character from a non-word
// character. Unlike the \b of package regexp, letters and digits of every
// script are word characters, so type variables such as Ä are found.
func wordBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
