package typesig

import (
	"strings"
)

type fakeClass struct {
	name        string
	pkg         string
	primitive   bool
	array       bool
	iface       bool
	annotated   bool
	params      []TypeVariable
	declared    []Method
	inherited   []Method
	interfaces  []Class
	generic     []Type
	methodCalls int
}

func (c *fakeClass) TypeName() string               { return c.name }
func (c *fakeClass) Name() string                   { return c.name }
func (c *fakeClass) Package() string                { return c.pkg }
func (c *fakeClass) IsPrimitive() bool              { return c.primitive }
func (c *fakeClass) IsArray() bool                  { return c.array }
func (c *fakeClass) IsInterface() bool              { return c.iface }
func (c *fakeClass) IsPublic() bool                 { return true }
func (c *fakeClass) IsFunctionalAnnotated() bool    { return c.annotated }
func (c *fakeClass) TypeParameters() []TypeVariable { return c.params }
func (c *fakeClass) DeclaredMethods() []Method      { return c.declared }
func (c *fakeClass) Interfaces() []Class            { return c.interfaces }
func (c *fakeClass) GenericInterfaces() []Type      { return c.generic }

func (c *fakeClass) Methods() []Method {
	c.methodCalls++
	var out []Method
	for _, m := range c.declared {
		if m.Modifiers().Has(ModPublic) {
			out = append(out, m)
		}
	}
	return append(out, c.inherited...)
}

type fakeVar struct{ name string }

func (v fakeVar) TypeName() string { return v.name }
func (v fakeVar) Name() string     { return v.name }
func (v fakeVar) Bounds() []Type   { return nil }

type fakeParam struct {
	raw  *fakeClass
	args []Type
}

func (p fakeParam) RawType() Class              { return p.raw }
func (p fakeParam) ActualTypeArguments() []Type { return p.args }
func (p fakeParam) TypeName() string {
	names := make([]string, len(p.args))
	for i, a := range p.args {
		names[i] = a.TypeName()
	}
	return p.raw.name + "<" + strings.Join(names, ", ") + ">"
}

type fakeWildcard struct {
	upper []Type
	lower []Type
}

func (w fakeWildcard) UpperBounds() []Type { return w.upper }
func (w fakeWildcard) LowerBounds() []Type { return w.lower }
func (w fakeWildcard) TypeName() string {
	switch {
	case len(w.lower) > 0:
		return "? super " + w.lower[0].TypeName()
	case len(w.upper) > 0:
		return "? extends " + w.upper[0].TypeName()
	}
	return "?"
}

type fakeGenericArray struct{ component Type }

func (a fakeGenericArray) GenericComponentType() Type { return a.component }
func (a fakeGenericArray) TypeName() string           { return a.component.TypeName() + "[]" }

type fakeMethod struct {
	name        string
	owner       *fakeClass
	mods        Modifiers
	isDefault   bool
	params      []Type
	ret         Type
	throws      []Type
	tparams     []TypeVariable
	annotations []Annotation
}

func (m *fakeMethod) Name() string                   { return m.name }
func (m *fakeMethod) DeclaringClass() Class          { return m.owner }
func (m *fakeMethod) Modifiers() Modifiers           { return m.mods }
func (m *fakeMethod) IsDefault() bool                { return m.isDefault }
func (m *fakeMethod) GenericParameterTypes() []Type  { return m.params }
func (m *fakeMethod) GenericReturnType() Type        { return m.ret }
func (m *fakeMethod) ExceptionTypes() []Type         { return m.throws }
func (m *fakeMethod) TypeParameters() []TypeVariable { return m.tparams }
func (m *fakeMethod) Annotations() []Annotation      { return m.annotations }
func (m *fakeMethod) ParameterTypeNames() []string {
	names := make([]string, len(m.params))
	for i, p := range m.params {
		names[i] = erasure(p)
	}
	return names
}

func erasure(t Type) string {
	switch t := t.(type) {
	case *fakeClass:
		return t.name
	case fakeParam:
		return t.raw.name
	case fakeGenericArray:
		return erasure(t.component) + "[]"
	}
	return "java.lang.Object"
}

func params(ts ...Type) []Type { return ts }

func vars(names ...string) []TypeVariable {
	out := make([]TypeVariable, len(names))
	for i, n := range names {
		out[i] = fakeVar{n}
	}
	return out
}

func super(t Type) Type   { return fakeWildcard{lower: []Type{t}} }
func extends(t Type) Type { return fakeWildcard{upper: []Type{t}} }

func generic(raw *fakeClass, args ...Type) Type { return fakeParam{raw: raw, args: args} }

// declare attaches methods to their owner in declaration order.
func declare(owner *fakeClass, methods ...*fakeMethod) {
	for _, m := range methods {
		m.owner = owner
		owner.declared = append(owner.declared, m)
	}
}

const (
	abstractMethod = ModPublic | ModAbstract
	staticMethod   = ModPublic | ModStatic
)

// universe is a small, hand-built slice of the Java platform.
type universe struct {
	void, boolean, integer, long         *fakeClass
	object, objectArray                  *fakeClass
	str, system, cloneable               *fakeClass
	comparable, calendar                 *fakeClass
	list, collections, arrays            *fakeClass
	comparator                           *fakeClass
	function, biFunction, binaryOperator *fakeClass
	supplier, intBinaryOperator          *fakeClass
	stream, ioException                  *fakeClass
}

func primitive(name string) *fakeClass {
	return &fakeClass{name: name, primitive: true}
}

func newUniverse() *universe {
	u := &universe{
		void:              primitive("void"),
		boolean:           primitive("boolean"),
		integer:           primitive("int"),
		long:              primitive("long"),
		object:            &fakeClass{name: "java.lang.Object", pkg: "java.lang"},
		objectArray:       &fakeClass{name: "java.lang.Object[]", array: true},
		str:               &fakeClass{name: "java.lang.String", pkg: "java.lang"},
		system:            &fakeClass{name: "java.lang.System", pkg: "java.lang"},
		cloneable:         &fakeClass{name: "java.lang.Cloneable", pkg: "java.lang", iface: true},
		comparable:        &fakeClass{name: "java.lang.Comparable", pkg: "java.lang", iface: true, params: vars("T")},
		calendar:          &fakeClass{name: "java.util.Calendar", pkg: "java.util"},
		list:              &fakeClass{name: "java.util.List", pkg: "java.util", iface: true, params: vars("E")},
		collections:       &fakeClass{name: "java.util.Collections", pkg: "java.util"},
		arrays:            &fakeClass{name: "java.util.Arrays", pkg: "java.util"},
		comparator:        &fakeClass{name: "java.util.Comparator", pkg: "java.util", iface: true, annotated: true, params: vars("T")},
		function:          &fakeClass{name: "java.util.function.Function", pkg: "java.util.function", iface: true, annotated: true, params: vars("T", "R")},
		biFunction:        &fakeClass{name: "java.util.function.BiFunction", pkg: "java.util.function", iface: true, annotated: true, params: vars("T", "U", "R")},
		binaryOperator:    &fakeClass{name: "java.util.function.BinaryOperator", pkg: "java.util.function", iface: true, annotated: true, params: vars("T")},
		supplier:          &fakeClass{name: "java.util.function.Supplier", pkg: "java.util.function", iface: true, annotated: true, params: vars("T")},
		intBinaryOperator: &fakeClass{name: "java.util.function.IntBinaryOperator", pkg: "java.util.function", iface: true, annotated: true},
		stream:            &fakeClass{name: "java.util.stream.Stream", pkg: "java.util.stream", iface: true, params: vars("T")},
		ioException:       &fakeClass{name: "java.io.IOException", pkg: "java.io"},
	}
	T, E, R, U := fakeVar{"T"}, fakeVar{"E"}, fakeVar{"R"}, fakeVar{"U"}

	declare(u.object,
		&fakeMethod{name: "equals", mods: ModPublic, params: params(u.object), ret: u.boolean},
		&fakeMethod{name: "hashCode", mods: ModPublic | ModNative, ret: u.integer},
	)
	declare(u.str,
		&fakeMethod{name: "length", mods: ModPublic, ret: u.integer},
		&fakeMethod{name: "valueOf", mods: staticMethod, params: params(u.integer), ret: u.str},
		&fakeMethod{name: "indexOf", mods: ModPrivate, params: params(u.str), ret: u.integer},
	)
	declare(u.system,
		&fakeMethod{name: "gc", mods: staticMethod, ret: u.void},
	)
	declare(u.comparable,
		&fakeMethod{name: "compareTo", mods: abstractMethod, params: params(T), ret: u.integer},
	)
	declare(u.calendar,
		&fakeMethod{name: "computeTime", mods: ModProtected | ModAbstract, ret: u.void},
	)
	declare(u.comparator,
		&fakeMethod{name: "compare", mods: abstractMethod, params: params(T, T), ret: u.integer},
		&fakeMethod{name: "equals", mods: abstractMethod, params: params(u.object), ret: u.boolean},
		&fakeMethod{name: "reversed", mods: ModPublic, isDefault: true, ret: generic(u.comparator, T)},
	)
	declare(u.list,
		&fakeMethod{name: "add", mods: abstractMethod, params: params(E), ret: u.boolean},
		&fakeMethod{name: "clear", mods: abstractMethod, ret: u.void},
		&fakeMethod{name: "sort", mods: ModPublic, isDefault: true, params: params(generic(u.comparator, super(E))), ret: u.void},
	)
	declare(u.collections,
		&fakeMethod{name: "copy", mods: staticMethod, tparams: vars("T"),
			params: params(generic(u.list, super(T)), generic(u.list, extends(T))), ret: u.void},
		&fakeMethod{name: "binarySearch", mods: staticMethod, tparams: vars("T"),
			params: params(generic(u.list, extends(generic(u.comparable, super(T)))), T), ret: u.integer},
	)
	declare(u.arrays,
		&fakeMethod{name: "asList", mods: staticMethod, tparams: vars("T"),
			params: params(fakeGenericArray{T}), ret: generic(u.list, T)},
		&fakeMethod{name: "sort", mods: staticMethod, params: params(u.objectArray), ret: u.void},
	)
	declare(u.function,
		&fakeMethod{name: "apply", mods: abstractMethod, params: params(T), ret: R},
		&fakeMethod{name: "identity", mods: staticMethod, tparams: vars("T"), ret: generic(u.function, T, T)},
	)
	declare(u.biFunction,
		&fakeMethod{name: "apply", mods: abstractMethod, params: params(T, U), ret: R},
	)
	declare(u.binaryOperator,
		&fakeMethod{name: "minBy", mods: staticMethod, tparams: vars("T"),
			params: params(generic(u.comparator, super(T))), ret: generic(u.binaryOperator, T)},
	)
	u.binaryOperator.interfaces = []Class{u.biFunction}
	u.binaryOperator.generic = []Type{generic(u.biFunction, T, T, T)}
	u.binaryOperator.inherited = u.biFunction.declared
	declare(u.supplier,
		&fakeMethod{name: "get", mods: abstractMethod, ret: T},
	)
	declare(u.intBinaryOperator,
		&fakeMethod{name: "applyAsInt", mods: abstractMethod, params: params(u.integer, u.integer), ret: u.integer},
	)
	declare(u.stream,
		&fakeMethod{name: "map", mods: abstractMethod, tparams: vars("R"),
			params: params(generic(u.function, super(T), extends(R))), ret: generic(u.stream, R)},
		&fakeMethod{name: "count", mods: abstractMethod, ret: u.long},
	)
	return u
}

// method returns the first method of c with the given name.
func method(c *fakeClass, name string) Method {
	for _, m := range c.declared {
		if m.Name() == name {
			return m
		}
	}
	panic("no method " + name + " on " + c.name)
}
