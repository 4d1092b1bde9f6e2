package javastub

import (
	"slices"
	"strings"

	"github.com/dhamidi/typefind/typesig"
)

const (
	functionalInterfaceAnnotation = "java.lang.FunctionalInterface"
	objectClass                   = "java.lang.Object"
)

// Class is a declared class or interface, a primitive, an array, or a
// class that is mentioned but not declared. Undeclared classes are public,
// have no methods and are not interfaces.
type Class struct {
	u         *Universe
	name      string
	pkg       string
	primitive bool
	array     bool

	decl    *Decl
	file    *fileScope
	methods []*Method
}

func (c *Class) TypeName() string  { return c.name }
func (c *Class) Name() string      { return c.name }
func (c *Class) Package() string   { return c.pkg }
func (c *Class) IsPrimitive() bool { return c.primitive }
func (c *Class) IsArray() bool     { return c.array }

func (c *Class) IsInterface() bool {
	return c.decl != nil && c.decl.Kind == "interface"
}

func (c *Class) IsPublic() bool {
	return c.decl == nil || slices.Contains(c.decl.Modifiers, "public")
}

func (c *Class) IsFunctionalAnnotated() bool {
	if c.decl == nil {
		return false
	}
	return slices.ContainsFunc(c.decl.Annotations, func(a *Annotation) bool {
		return c.file.resolve(a.Name) == functionalInterfaceAnnotation
	})
}

func (c *Class) scope() scope { return scope{class: c} }

func (c *Class) TypeParameters() []typesig.TypeVariable {
	if c.decl == nil {
		return nil
	}
	return c.scope().typeVariables(c.decl.TypeParams)
}

func (c *Class) DeclaredMethods() []typesig.Method {
	out := make([]typesig.Method, len(c.methods))
	for i, m := range c.methods {
		out[i] = m
	}
	return out
}

// Methods collects the public methods of the class and its supertypes. The
// first method found for a name and erased parameter list wins, so that
// declarations closer to the class hide inherited ones.
func (c *Class) Methods() []typesig.Method {
	var out []typesig.Method
	seen := map[string]bool{}
	visited := map[*Class]bool{}

	var walk func(k *Class, inherited bool)
	walk = func(k *Class, inherited bool) {
		if visited[k] {
			return
		}
		visited[k] = true
		for _, m := range k.methods {
			mods := m.Modifiers()
			if !mods.Has(typesig.ModPublic) || (inherited && k.IsInterface() && mods.IsStatic()) {
				continue
			}
			key := m.Name() + "(" + strings.Join(m.ParameterTypeNames(), ",") + ")"
			if !seen[key] {
				seen[key] = true
				out = append(out, m)
			}
		}
		if super := k.superclass(); super != nil {
			walk(super, true)
		}
		for _, iface := range k.interfaces() {
			walk(iface, true)
		}
	}
	walk(c, false)
	return out
}

// superclass is nil for interfaces, undeclared classes and java.lang.Object.
func (c *Class) superclass() *Class {
	if c.decl == nil || c.IsInterface() || c.name == objectClass {
		return nil
	}
	if len(c.decl.Extends) > 0 {
		return c.u.class(c.file.resolve(c.decl.Extends[0].Name))
	}
	return c.u.class(objectClass)
}

// superinterfaces are the types after "extends" for an interface and after
// "implements" for a class.
func (c *Class) superinterfaces() []*TypeRef {
	if c.decl == nil {
		return nil
	}
	if c.IsInterface() {
		return c.decl.Extends
	}
	return c.decl.Implements
}

func (c *Class) interfaces() []*Class {
	var out []*Class
	for _, ref := range c.superinterfaces() {
		out = append(out, c.u.class(c.file.resolve(ref.Name)))
	}
	return out
}

func (c *Class) Interfaces() []typesig.Class {
	var out []typesig.Class
	for _, iface := range c.interfaces() {
		out = append(out, iface)
	}
	return out
}

func (c *Class) GenericInterfaces() []typesig.Type {
	var out []typesig.Type
	s := c.scope()
	for _, ref := range c.superinterfaces() {
		out = append(out, s.convert(ref, false))
	}
	return out
}
