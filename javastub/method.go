package javastub

import (
	"slices"

	"github.com/dhamidi/typefind/typesig"
)

type Method struct {
	class *Class
	decl  *Member
}

func (m *Method) has(modifier string) bool {
	return slices.Contains(m.decl.Modifiers, modifier)
}

func (m *Method) scope() scope {
	return scope{class: m.class, method: m.decl.TypeParams}
}

func (m *Method) Name() string                  { return m.decl.Name }
func (m *Method) DeclaringClass() typesig.Class { return m.class }

// Modifiers follows the Java rules for interface members: they are public
// unless private, and abstract unless default, static or private.
func (m *Method) Modifiers() typesig.Modifiers {
	iface := m.class.IsInterface()
	var mods typesig.Modifiers
	switch {
	case m.has("public"), iface && !m.has("private"):
		mods |= typesig.ModPublic
	case m.has("protected"):
		mods |= typesig.ModProtected
	case m.has("private"):
		mods |= typesig.ModPrivate
	}
	if m.has("abstract") || (iface && !m.has("default") && !m.has("static") && !m.has("private")) {
		mods |= typesig.ModAbstract
	}
	for modifier, mod := range map[string]typesig.Modifiers{
		"static":       typesig.ModStatic,
		"final":        typesig.ModFinal,
		"native":       typesig.ModNative,
		"synchronized": typesig.ModSynchronized,
	} {
		if m.has(modifier) {
			mods |= mod
		}
	}
	return mods
}

func (m *Method) IsDefault() bool {
	return m.class.IsInterface() && m.has("default")
}

func (m *Method) ParameterTypeNames() []string {
	s := m.scope()
	names := make([]string, len(m.decl.Params))
	for i, p := range m.decl.Params {
		names[i] = s.erasure(p.Type, p.Varargs)
	}
	return names
}

func (m *Method) GenericParameterTypes() []typesig.Type {
	s := m.scope()
	out := make([]typesig.Type, len(m.decl.Params))
	for i, p := range m.decl.Params {
		out[i] = s.convert(p.Type, p.Varargs)
	}
	return out
}

func (m *Method) GenericReturnType() typesig.Type {
	return m.scope().convert(m.decl.Result, false)
}

func (m *Method) ExceptionTypes() []typesig.Type {
	s := m.scope()
	var out []typesig.Type
	for _, ref := range m.decl.Throws {
		out = append(out, s.convert(ref, false))
	}
	return out
}

func (m *Method) TypeParameters() []typesig.TypeVariable {
	return m.scope().typeVariables(m.decl.TypeParams)
}

// Annotations resolves annotation names like type names. An element written
// without a name is the "value" element.
func (m *Method) Annotations() []typesig.Annotation {
	var out []typesig.Annotation
	for _, a := range m.decl.Annotations {
		ann := typesig.Annotation{Type: m.class.file.resolve(a.Name)}
		for _, e := range a.Elements {
			name := e.Name
			if name == "" {
				name = "value"
			}
			ann.Elements = append(ann.Elements, typesig.AnnotationElement{Name: name, Value: e.Value})
		}
		out = append(out, ann)
	}
	return out
}
