package typesig

import (
	"fmt"
	"strings"
)

// Modifiers is the set of method modifiers the renderings care about.
type Modifiers uint16

const (
	ModPublic Modifiers = 1 << iota
	ModProtected
	ModPrivate
	ModStatic
	ModAbstract
	ModFinal
	ModNative
	ModSynchronized
)

var otherModifiers = []struct {
	flag Modifiers
	name string
}{
	{ModStatic, "static"},
	{ModAbstract, "abstract"},
	{ModFinal, "final"},
	{ModNative, "native"},
	{ModSynchronized, "synchronized"},
}

func (m Modifiers) Has(flag Modifiers) bool { return m&flag == flag }

func (m Modifiers) IsStatic() bool { return m.Has(ModStatic) }

// AccessLevel returns public, protected, private or package. When several
// access bits are set the widest one wins.
func (m Modifiers) AccessLevel() string {
	switch {
	case m.Has(ModPublic):
		return "public"
	case m.Has(ModProtected):
		return "protected"
	case m.Has(ModPrivate):
		return "private"
	}
	return "package"
}

// Strings lists the access level (omitted for package access) followed by
// the other modifiers in a fixed order.
func (m Modifiers) Strings() []string {
	var out []string
	if level := m.AccessLevel(); level != "package" {
		out = append(out, level)
	}
	for _, o := range otherModifiers {
		if m.Has(o.flag) {
			out = append(out, o.name)
		}
	}
	return out
}

func (m Modifiers) String() string {
	return strings.Join(m.Strings(), " ")
}

// Annotation is the textual form of an annotation on a method.
type Annotation struct {
	Type     string
	Elements []AnnotationElement
}

type AnnotationElement struct {
	Name  string
	Value string
}

const deprecatedAnnotation = "java.lang.Deprecated"

func (a Annotation) String() string {
	var sb strings.Builder
	sb.WriteString("@")
	sb.WriteString(a.Type)
	sb.WriteString("(")
	for i, e := range a.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%s", e.Name, e.Value)
	}
	sb.WriteString(")")
	return sb.String()
}
