package classfile

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedSignature = errors.New("malformed signature")

// TypeSignature is one of BaseTypeSignature, ClassTypeSignature,
// TypeVariableSignature or ArrayTypeSignature.
type TypeSignature interface {
	fmt.Stringer
	typeSignature()
}

// BaseTypeSignature is a primitive type or void.
type BaseTypeSignature struct {
	Name string
}

type ClassTypeSignature struct {
	// Outer is set when the type is written as a member of a
	// parameterized enclosing type, as in Map<K, V>.Entry<K, V>.
	Outer *ClassTypeSignature
	// Name is the binary name, e.g. "java.util.Map$Entry".
	Name string
	Args []TypeArgument
}

type TypeVariableSignature struct {
	Name string
}

type ArrayTypeSignature struct {
	Component TypeSignature
}

type Wildcard byte

const (
	NoWildcard      Wildcard = 0
	WildcardAny     Wildcard = '*'
	WildcardExtends Wildcard = '+'
	WildcardSuper   Wildcard = '-'
)

// TypeArgument is an actual type argument. Type is nil for WildcardAny.
type TypeArgument struct {
	Wildcard Wildcard
	Type     TypeSignature
}

type TypeParameter struct {
	Name string
	// Bounds holds the class bound, when present, followed by the
	// interface bounds.
	Bounds []TypeSignature
}

type ClassSignature struct {
	TypeParameters []TypeParameter
	Super          *ClassTypeSignature
	Interfaces     []*ClassTypeSignature
}

type MethodSignature struct {
	TypeParameters []TypeParameter
	Parameters     []TypeSignature
	Result         TypeSignature
	Throws         []TypeSignature
}

func (BaseTypeSignature) typeSignature()     {}
func (*ClassTypeSignature) typeSignature()   {}
func (TypeVariableSignature) typeSignature() {}
func (ArrayTypeSignature) typeSignature()    {}

func (s BaseTypeSignature) String() string     { return s.Name }
func (s TypeVariableSignature) String() string { return s.Name }
func (s ArrayTypeSignature) String() string    { return s.Component.String() + "[]" }

// String renders the type the way Java's Type.getTypeName does, e.g.
// "java.util.Map<K, V>".
func (s *ClassTypeSignature) String() string {
	var sb strings.Builder
	if s.Outer != nil && len(s.Outer.Args) > 0 {
		sb.WriteString(s.Outer.String())
		sb.WriteString("$")
		sb.WriteString(s.Name[strings.LastIndexByte(s.Name, '$')+1:])
	} else {
		sb.WriteString(s.Name)
	}
	if len(s.Args) > 0 {
		sb.WriteString("<")
		for i, a := range s.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteString(">")
	}
	return sb.String()
}

func (a TypeArgument) String() string {
	switch a.Wildcard {
	case WildcardAny:
		return "?"
	case WildcardExtends:
		return "? extends " + a.Type.String()
	case WildcardSuper:
		return "? super " + a.Type.String()
	}
	return a.Type.String()
}

// ParseClassSignature parses the Signature attribute of a class, e.g.
// "<T:Ljava/lang/Object;>Ljava/lang/Object;Ljava/util/function/Supplier<TT;>;".
func ParseClassSignature(sig string) (*ClassSignature, error) {
	p := &sigParser{s: sig}
	cs := &ClassSignature{TypeParameters: p.typeParameters()}
	cs.Super = p.classType()
	for p.err == nil && !p.done() {
		cs.Interfaces = append(cs.Interfaces, p.classType())
	}
	return cs, p.finish()
}

// ParseMethodSignature parses the Signature attribute of a method. A plain
// method descriptor is a valid method signature too.
func ParseMethodSignature(sig string) (*MethodSignature, error) {
	p := &sigParser{s: sig}
	ms := &MethodSignature{TypeParameters: p.typeParameters()}
	p.expect('(')
	for p.err == nil && p.peek() != ')' {
		ms.Parameters = append(ms.Parameters, p.javaType())
	}
	p.expect(')')
	if p.peek() == 'V' {
		p.pos++
		ms.Result = BaseTypeSignature{Name: "void"}
	} else {
		ms.Result = p.javaType()
	}
	for p.err == nil && p.peek() == '^' {
		p.pos++
		ms.Throws = append(ms.Throws, p.referenceType())
	}
	return ms, p.finish()
}

// ParseReferenceTypeSignature parses the Signature attribute of a field, or a
// single reference type.
func ParseReferenceTypeSignature(sig string) (TypeSignature, error) {
	p := &sigParser{s: sig}
	t := p.referenceType()
	return t, p.finish()
}

type sigParser struct {
	s   string
	pos int
	err error
}

func (p *sigParser) done() bool { return p.pos >= len(p.s) }

func (p *sigParser) peek() byte {
	if p.err != nil || p.done() {
		return 0
	}
	return p.s[p.pos]
}

func (p *sigParser) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %q at %d: %s", ErrMalformedSignature, p.s, p.pos, fmt.Sprintf(format, args...))
	}
}

func (p *sigParser) expect(c byte) {
	if p.peek() != c {
		p.fail("expected %q", c)
		return
	}
	p.pos++
}

func (p *sigParser) finish() error {
	if p.err == nil && !p.done() {
		p.fail("trailing input")
	}
	return p.err
}

func (p *sigParser) identifier() string {
	start := p.pos
	for !p.done() && !strings.ContainsRune(".;[/<>:", rune(p.s[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		p.fail("expected identifier")
	}
	return p.s[start:p.pos]
}

func (p *sigParser) typeParameters() []TypeParameter {
	if p.peek() != '<' {
		return nil
	}
	p.pos++
	var params []TypeParameter
	for p.err == nil && p.peek() != '>' {
		tp := TypeParameter{Name: p.identifier()}
		p.expect(':')
		// the class bound may be empty when only interface bounds follow
		if c := p.peek(); c == 'L' || c == 'T' || c == '[' {
			tp.Bounds = append(tp.Bounds, p.referenceType())
		}
		for p.err == nil && p.peek() == ':' {
			p.pos++
			tp.Bounds = append(tp.Bounds, p.referenceType())
		}
		params = append(params, tp)
	}
	p.expect('>')
	return params
}

func (p *sigParser) javaType() TypeSignature {
	if base, ok := baseTypes[p.peek()]; ok {
		p.pos++
		return BaseTypeSignature{Name: base}
	}
	return p.referenceType()
}

func (p *sigParser) referenceType() TypeSignature {
	switch p.peek() {
	case 'L':
		return p.classType()
	case 'T':
		p.pos++
		name := p.identifier()
		p.expect(';')
		return TypeVariableSignature{Name: name}
	case '[':
		p.pos++
		return ArrayTypeSignature{Component: p.javaType()}
	}
	p.fail("expected reference type")
	return BaseTypeSignature{Name: "?"}
}

func (p *sigParser) classType() *ClassTypeSignature {
	p.expect('L')
	var name strings.Builder
	name.WriteString(p.identifier())
	for p.peek() == '/' {
		p.pos++
		name.WriteString(".")
		name.WriteString(p.identifier())
	}
	ct := &ClassTypeSignature{Name: name.String(), Args: p.typeArguments()}
	for p.err == nil && p.peek() == '.' {
		p.pos++
		inner := p.identifier()
		ct = &ClassTypeSignature{Outer: ct, Name: ct.Name + "$" + inner, Args: p.typeArguments()}
	}
	p.expect(';')
	return ct
}

func (p *sigParser) typeArguments() []TypeArgument {
	if p.peek() != '<' {
		return nil
	}
	p.pos++
	var args []TypeArgument
	for p.err == nil && p.peek() != '>' {
		switch c := Wildcard(p.peek()); c {
		case WildcardAny:
			p.pos++
			args = append(args, TypeArgument{Wildcard: c})
		case WildcardExtends, WildcardSuper:
			p.pos++
			args = append(args, TypeArgument{Wildcard: c, Type: p.referenceType()})
		default:
			args = append(args, TypeArgument{Type: p.referenceType()})
		}
	}
	if len(args) == 0 {
		p.fail("empty type arguments")
	}
	p.expect('>')
	return args
}
