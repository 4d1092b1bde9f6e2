package java

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dhamidi/typefind/classfile"
	"github.com/dhamidi/typefind/typesig"
)

const functionalInterfaceAnnotation = "java.lang.FunctionalInterface"

// Class is a class, interface, array or primitive type. A class that is
// referenced but missing from the class path behaves as an empty public
// class, so that signatures mentioning it can still be rendered.
type Class struct {
	cp        *ClassPath
	name      string
	primitive bool
	array     bool

	once      sync.Once
	err       error
	cf        *classfile.ClassFile
	signature *classfile.ClassSignature
	methods   []*Method
}

func newClass(cp *ClassPath, name string) *Class {
	return &Class{
		cp:        cp,
		name:      name,
		primitive: isPrimitive(name),
		array:     strings.HasSuffix(name, "[]"),
	}
}

func isPrimitive(name string) bool {
	switch name {
	case "void", "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

// load reads and parses the class file once. Primitives and arrays have none.
func (c *Class) load() error {
	c.once.Do(func() {
		if c.primitive || c.array {
			return
		}
		data, err := c.cp.readClass(c.name)
		if err != nil {
			c.err = err
			log.Debugf("treating %s as unresolved: %s", c.name, err)
			return
		}
		cf, err := classfile.Parse(bytes.NewReader(data))
		if err != nil {
			c.err = fmt.Errorf("%s: %w", c.name, err)
			log.Debugf("treating %s as unresolved: %s", c.name, err)
			return
		}
		c.cf = cf
		if sig := cf.Signature(); sig != "" {
			c.signature, err = classfile.ParseClassSignature(sig)
			if err != nil {
				log.Debugf("ignoring signature of %s: %s", c.name, err)
				c.signature = nil
			}
		}
		for i := range cf.Methods {
			m := &cf.Methods[i]
			if m.IsSynthetic() || m.IsBridge() || m.IsConstructor(cf.ConstantPool) || m.IsStaticInitializer(cf.ConstantPool) {
				continue
			}
			c.methods = append(c.methods, newMethod(c, m))
		}
	})
	return c.err
}

// loaded returns the class file, or nil for primitives, arrays and classes
// missing from the class path.
func (c *Class) loaded() *classfile.ClassFile {
	if c.load() != nil {
		return nil
	}
	return c.cf
}

func (c *Class) TypeName() string  { return c.name }
func (c *Class) Name() string      { return c.name }
func (c *Class) IsPrimitive() bool { return c.primitive }
func (c *Class) IsArray() bool     { return c.array }

// Package is empty for primitives and arrays.
func (c *Class) Package() string {
	if c.primitive || c.array {
		return ""
	}
	return packageOf(c.name)
}

func (c *Class) IsInterface() bool {
	cf := c.loaded()
	return cf != nil && cf.AccessFlags.IsInterface()
}

// IsAnnotation reports whether the class is an annotation type.
func (c *Class) IsAnnotation() bool {
	cf := c.loaded()
	return cf != nil && cf.IsAnnotation()
}

// IsPublic uses the flags the enclosing class records for a nested class,
// since the class file of a nested class never says private or protected.
func (c *Class) IsPublic() bool {
	cf := c.loaded()
	if cf == nil {
		return true
	}
	for _, ic := range cf.InnerClasses() {
		if ic.Name == cf.ClassName() {
			return ic.AccessFlags.IsPublic()
		}
	}
	return cf.AccessFlags.IsPublic()
}

func (c *Class) isSynthetic() bool {
	cf := c.loaded()
	return cf != nil && cf.AccessFlags.IsSynthetic()
}

func (c *Class) IsDeprecated() bool {
	cf := c.loaded()
	return cf != nil && cf.IsDeprecated()
}

func (c *Class) IsFunctionalAnnotated() bool {
	cf := c.loaded()
	if cf == nil {
		return false
	}
	return slices.ContainsFunc(cf.Annotations(), func(a classfile.Annotation) bool {
		return a.Visible && a.Type == functionalInterfaceAnnotation
	})
}

func (c *Class) TypeParameters() []typesig.TypeVariable {
	if c.loaded() == nil || c.signature == nil {
		return nil
	}
	return typeVariables(c.cp, c.signature.TypeParameters, scope{class: c})
}

func (c *Class) DeclaredMethods() []typesig.Method {
	if c.loaded() == nil {
		return nil
	}
	out := make([]typesig.Method, len(c.methods))
	for i, m := range c.methods {
		out[i] = m
	}
	return out
}

// Methods returns the public methods of the class and of its supertypes.
// A method declared closer to the class hides one with the same name and
// erased parameters further up. Static methods of super-interfaces are not
// inherited, and interfaces do not inherit from java.lang.Object.
func (c *Class) Methods() []typesig.Method {
	var out []typesig.Method
	seen := map[string]bool{}
	visited := map[string]bool{}

	var walk func(k *Class, inherited bool)
	walk = func(k *Class, inherited bool) {
		if visited[k.name] || k.loaded() == nil {
			return
		}
		visited[k.name] = true
		for _, m := range k.methods {
			if !m.info.IsPublic() || (inherited && k.IsInterface() && m.info.IsStatic()) {
				continue
			}
			key := m.Name() + "(" + strings.Join(m.ParameterTypeNames(), ",") + ")"
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, m)
		}
		if super := k.superclass(); super != nil && !k.IsInterface() {
			walk(super, true)
		}
		for _, iface := range k.interfaces() {
			walk(iface, true)
		}
	}
	walk(c, false)
	return out
}

func (c *Class) superclass() *Class {
	cf := c.loaded()
	if cf == nil || cf.SuperClass == 0 {
		return nil
	}
	return c.cp.class(classfile.InternalToSourceName(cf.SuperClassName()))
}

func (c *Class) interfaces() []*Class {
	cf := c.loaded()
	if cf == nil {
		return nil
	}
	var out []*Class
	for _, name := range cf.InterfaceNames() {
		out = append(out, c.cp.class(classfile.InternalToSourceName(name)))
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

// GenericInterfaces prefers the interfaces as written in the class
// signature and falls back to the raw interfaces.
func (c *Class) GenericInterfaces() []typesig.Type {
	if c.loaded() == nil {
		return nil
	}
	if c.signature == nil || len(c.signature.Interfaces) != len(c.cf.Interfaces) {
		var out []typesig.Type
		for _, iface := range c.interfaces() {
			out = append(out, iface)
		}
		return out
	}
	out := make([]typesig.Type, len(c.signature.Interfaces))
	for i, iface := range c.signature.Interfaces {
		out[i] = convert(c.cp, iface, scope{class: c})
	}
	return out
}

func packageOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}
