// Package pkgpattern compiles lists of dot-separated namespaces into a single
// anchored regular expression that matches exactly the listed namespaces.
//
// Namespaces sharing a prefix share a branch of the expression:
//
//	{"a.b", "a.b.c"}  =>  ^(?:a(?:\.b(?:|\.c)))$
//
// so "a", "a.bx" and "a.b.cx" do not match.
package pkgpattern

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ErrInvalidNamespacePath is returned for a namespace with an empty segment.
var ErrInvalidNamespacePath = errors.New("invalid namespace path")

// matchNothing is used when no namespace was given.
const matchNothing = `^[^\x00-\x{10FFFF}]$`

// Pattern is an immutable compiled namespace list. It is safe for concurrent
// use.
type Pattern struct {
	re         *regexp.Regexp
	namespaces []string
}

// Compile builds the trie of namespaces and serializes it into a pattern.
func Compile(namespaces []string) (*Pattern, error) {
	root := newNode("", 0)
	for _, ns := range namespaces {
		segments := strings.Split(ns, ".")
		if slices.Contains(segments, "") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNamespacePath, ns)
		}
		root.insert(segments)
	}

	expr := matchNothing
	if len(root.children) > 0 {
		var sb strings.Builder
		sb.WriteString("^(?:")
		root.writeChildren(&sb)
		sb.WriteString(")$")
		expr = sb.String()
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(namespaces)
	slices.Sort(sorted)
	return &Pattern{re: re, namespaces: slices.Compact(sorted)}, nil
}

// MustCompile is like Compile but panics on a malformed namespace. It is
// meant for allow-lists fixed at build time.
func MustCompile(namespaces []string) *Pattern {
	p, err := Compile(namespaces)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchString reports whether s is exactly one of the compiled namespaces.
func (p *Pattern) MatchString(s string) bool {
	return p.re.MatchString(s)
}

// IsAllowedNamespace is MatchString under the name used by class filters.
func (p *Pattern) IsAllowedNamespace(candidate string) bool {
	return p.re.MatchString(candidate)
}

// Namespaces returns the compiled namespaces sorted and without duplicates.
func (p *Pattern) Namespaces() []string {
	return slices.Clone(p.namespaces)
}

func (p *Pattern) String() string {
	return p.re.String()
}

// Exported is the part of a class description an allow-list inspects.
type Exported interface {
	IsPublic() bool
	Package() string
}

// AllowsClass reports whether c is public and declared in an allowed
// namespace.
func (p *Pattern) AllowsClass(c Exported) bool {
	return c.IsPublic() && c.Package() != "" && p.MatchString(c.Package())
}
