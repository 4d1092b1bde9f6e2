package typesig

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("typefind.typesig")

// TypeDescriptor is the rendered, immutable description of one type.
// Two descriptors are equal when their canonical forms are equal.
type TypeDescriptor struct {
	namespace  string
	kind       Kind
	localName  string
	simplified string
	canonical  string
}

var voidDescriptor = TypeDescriptor{
	kind:       KindVoid,
	localName:  "()",
	simplified: "()",
	canonical:  "()",
}

func (d TypeDescriptor) Namespace() string { return d.namespace }
func (d TypeDescriptor) Kind() Kind        { return d.kind }
func (d TypeDescriptor) LocalName() string { return d.localName }

// Simplified is the namespace-stripped rendering. For a functional
// interface it is the arrow notation of its single abstract method.
func (d TypeDescriptor) Simplified() string { return d.simplified }

// Canonical is the namespace-qualified rendering.
func (d TypeDescriptor) Canonical() string { return d.canonical }

func (d TypeDescriptor) Equal(other TypeDescriptor) bool {
	return d.canonical == other.canonical
}

func (d TypeDescriptor) String() string { return d.canonical }

// Describe classifies t and renders it.
func Describe(t Type) (TypeDescriptor, error) {
	return new(describer).describe(t)
}

// DescribeDeclaration renders c from its generic declaration rather than its
// raw name, so that List renders as "java.util.List<E>". Type parameter names
// are joined with "," and no space.
func DescribeDeclaration(c Class) (TypeDescriptor, error) {
	return new(describer).describeDeclaration(c)
}

// describer carries the functional interfaces whose arrow notation is being
// rendered, so that an interface mentioning itself in its own single
// abstract method does not recurse forever.
type describer struct {
	resolving []string
}

func (d *describer) describe(t Type) (TypeDescriptor, error) {
	kind, err := Classify(t)
	if err != nil {
		return TypeDescriptor{}, err
	}
	if kind == KindVoid {
		return voidDescriptor, nil
	}
	ns := namespaceOf(t)
	return d.build(t, kind, ns, stripNamespace(t.TypeName(), ns)), nil
}

func (d *describer) describeDeclaration(c Class) (TypeDescriptor, error) {
	kind, err := Classify(c)
	if err != nil {
		return TypeDescriptor{}, err
	}
	if kind == KindVoid {
		return voidDescriptor, nil
	}
	ns := namespaceOf(c)
	return d.build(c, kind, ns, stripNamespace(declarationName(c), ns)), nil
}

func (d *describer) build(t Type, kind Kind, ns, local string) TypeDescriptor {
	td := TypeDescriptor{
		namespace:  ns,
		kind:       kind,
		localName:  local,
		simplified: local,
		canonical:  qualify(ns, local),
	}
	if kind == KindFunctionalInterface {
		arrow, err := d.arrow(t)
		if err != nil {
			log.Debugf("keeping %s unsimplified: %s", td.canonical, err)
		} else {
			td.simplified = arrow
		}
	}
	return td
}

func (d *describer) arrow(t Type) (string, error) {
	switch t := t.(type) {
	case ParameterizedType:
		return d.resolveSAM(t.RawType(), t.ActualTypeArguments())
	case Class:
		return d.resolveSAM(t, nil)
	}
	return "", fmt.Errorf("%w: %s", ErrNoSamFound, t.TypeName())
}

func qualify(ns, local string) string {
	if ns == "" {
		return local
	}
	return ns + "." + local
}

var namespacePrefix = regexp.MustCompile(`^((?:\w+\.)+)\w+[^.]`)

// namespaceOf returns the package of a plain class, and otherwise the
// dotted prefix of the type name up to its first non-package segment.
func namespaceOf(t Type) string {
	if c, ok := t.(Class); ok && !c.IsArray() && !c.IsPrimitive() {
		return c.Package()
	}
	m := namespacePrefix.FindStringSubmatch(t.TypeName())
	if m == nil {
		return ""
	}
	return strings.TrimSuffix(m[1], ".")
}

// stripNamespace removes every "ns." occurrence, which also unqualifies
// type arguments from the same package.
func stripNamespace(typeName, ns string) string {
	if ns == "" {
		return typeName
	}
	return strings.ReplaceAll(typeName, ns+".", "")
}

func declarationName(c Class) string {
	params := c.TypeParameters()
	if len(params) == 0 {
		return c.TypeName()
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name()
	}
	return c.TypeName() + "<" + strings.Join(names, ",") + ">"
}
