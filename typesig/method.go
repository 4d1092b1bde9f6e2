package typesig

import (
	"fmt"
	"slices"
)

// MethodDescriptor is the immutable description of one method together with
// its simple and full renderings.
type MethodDescriptor struct {
	name           string
	declaringType  TypeDescriptor
	returnType     TypeDescriptor
	parameters     []TypeDescriptor
	thrownTypes    []TypeDescriptor
	typeParameters []TypeDescriptor
	modifiers      Modifiers
	annotations    []string
	deprecated     bool
	simpleForm     string
	fullForm       string
}

// DescribeMethod collects the metadata of m and renders it. Failures to
// simplify a functional interface fall back to its local name; only a type
// that cannot be classified at all is reported as an error.
func DescribeMethod(m Method) (MethodDescriptor, error) {
	d := new(describer)
	md := MethodDescriptor{
		name:      m.Name(),
		modifiers: m.Modifiers(),
	}

	var err error
	if md.declaringType, err = d.describeDeclaration(m.DeclaringClass()); err != nil {
		return MethodDescriptor{}, fmt.Errorf("declaring type of %s: %w", m.Name(), err)
	}
	if md.returnType, err = d.describe(m.GenericReturnType()); err != nil {
		return MethodDescriptor{}, fmt.Errorf("return type of %s: %w", m.Name(), err)
	}
	for i, p := range m.GenericParameterTypes() {
		td, err := d.describe(p)
		if err != nil {
			return MethodDescriptor{}, fmt.Errorf("parameter %d of %s: %w", i, m.Name(), err)
		}
		md.parameters = append(md.parameters, td)
	}
	for _, t := range m.ExceptionTypes() {
		td, err := d.describe(t)
		if err != nil {
			return MethodDescriptor{}, fmt.Errorf("thrown type of %s: %w", m.Name(), err)
		}
		md.thrownTypes = appendUnique(md.thrownTypes, td)
	}
	for _, v := range m.TypeParameters() {
		td, err := d.describe(v)
		if err != nil {
			return MethodDescriptor{}, fmt.Errorf("type parameter of %s: %w", m.Name(), err)
		}
		md.typeParameters = appendUnique(md.typeParameters, td)
	}
	for _, a := range m.Annotations() {
		if a.Type == deprecatedAnnotation {
			md.deprecated = true
		}
		if s := a.String(); !slices.Contains(md.annotations, s) {
			md.annotations = append(md.annotations, s)
		}
	}

	md.simpleForm = md.arrow(TypeDescriptor.Simplified)
	md.fullForm = md.declaringType.canonical + md.separator() + md.name + ": " + md.arrow(TypeDescriptor.Canonical)
	return md, nil
}

func appendUnique(set []TypeDescriptor, td TypeDescriptor) []TypeDescriptor {
	for _, have := range set {
		if have.Equal(td) {
			return set
		}
	}
	return append(set, td)
}

// arrow renders the method as a function from its arguments to its return
// type. An instance method takes its receiver as an implicit first argument.
func (md MethodDescriptor) arrow(render func(TypeDescriptor) string) string {
	var args []string
	if !md.IsStatic() {
		args = append(args, render(md.declaringType))
	}
	for _, p := range md.parameters {
		args = append(args, render(p))
	}
	return arrowArguments(args) + " -> " + render(md.returnType)
}

func (md MethodDescriptor) separator() string {
	if md.IsStatic() {
		return "."
	}
	return "#"
}

func (md MethodDescriptor) Name() string                  { return md.name }
func (md MethodDescriptor) DeclaringType() TypeDescriptor { return md.declaringType }
func (md MethodDescriptor) ReturnType() TypeDescriptor    { return md.returnType }
func (md MethodDescriptor) Modifiers() Modifiers          { return md.modifiers }
func (md MethodDescriptor) IsStatic() bool                { return md.modifiers.IsStatic() }
func (md MethodDescriptor) IsDeprecated() bool            { return md.deprecated }

// Parameters are in declaration order.
func (md MethodDescriptor) Parameters() []TypeDescriptor {
	return slices.Clone(md.parameters)
}

func (md MethodDescriptor) ThrownTypes() []TypeDescriptor {
	return slices.Clone(md.thrownTypes)
}

func (md MethodDescriptor) TypeParameters() []TypeDescriptor {
	return slices.Clone(md.typeParameters)
}

func (md MethodDescriptor) Annotations() []string {
	return slices.Clone(md.annotations)
}

// SimpleForm renders the method with simplified type names, e.g.
// "(List<E>, E) -> boolean".
func (md MethodDescriptor) SimpleForm() string { return md.simpleForm }

// FullForm renders the method with canonical type names, prefixed by its
// declaring type and name, e.g. "java.util.List<E>#add: (java.util.List<E>, E) -> boolean".
func (md MethodDescriptor) FullForm() string { return md.fullForm }

func (md MethodDescriptor) String() string { return md.fullForm }
