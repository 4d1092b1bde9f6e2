package java

import (
	"slices"
	"sync"

	"github.com/dhamidi/typefind/classfile"
	"github.com/dhamidi/typefind/typesig"
)

type Method struct {
	class *Class
	info  *classfile.MemberInfo
	desc  *classfile.MethodDescriptor

	once sync.Once
	sig  *classfile.MethodSignature
}

func newMethod(c *Class, info *classfile.MemberInfo) *Method {
	return &Method{
		class: c,
		info:  info,
		desc:  info.ParsedDescriptor(c.cf.ConstantPool),
	}
}

func (m *Method) pool() classfile.ConstantPool { return m.class.cf.ConstantPool }

// signature parses the generic signature, falling back to the descriptor
// when there is none or when it disagrees with the descriptor on the number
// of parameters.
func (m *Method) signature() *classfile.MethodSignature {
	m.once.Do(func() {
		descriptor := m.info.Descriptor(m.pool())
		if sig := m.info.Signature(m.pool()); sig != "" {
			parsed, err := classfile.ParseMethodSignature(sig)
			switch {
			case err != nil:
				log.Debugf("ignoring signature of %s.%s: %s", m.class.name, m.Name(), err)
			case m.desc != nil && len(parsed.Parameters) == len(m.desc.Parameters):
				m.sig = parsed
				return
			}
		}
		parsed, err := classfile.ParseMethodSignature(descriptor)
		if err != nil {
			log.Debugf("bad descriptor of %s.%s: %s", m.class.name, m.Name(), err)
			parsed = &classfile.MethodSignature{Result: classfile.BaseTypeSignature{Name: "void"}}
		}
		m.sig = parsed
	})
	return m.sig
}

func (m *Method) scope() scope {
	return scope{class: m.class, method: m.signature().TypeParameters}
}

func (m *Method) Name() string                 { return m.info.Name(m.pool()) }
func (m *Method) DeclaringClass() typesig.Class { return m.class }
func (m *Method) Modifiers() typesig.Modifiers { return modifiersFromAccessFlags(m.info.AccessFlags) }

// IsDefault reports whether this is a public instance method with a body
// declared by an interface.
func (m *Method) IsDefault() bool {
	f := m.info.AccessFlags
	return m.class.IsInterface() && f.IsPublic() && !f.IsAbstract() && !f.IsStatic()
}

func (m *Method) ParameterTypeNames() []string {
	if m.desc == nil {
		return nil
	}
	return m.desc.ParameterTypeNames()
}

func (m *Method) GenericParameterTypes() []typesig.Type {
	sig, s := m.signature(), m.scope()
	out := make([]typesig.Type, len(sig.Parameters))
	for i, p := range sig.Parameters {
		out[i] = convert(m.class.cp, p, s)
	}
	return out
}

func (m *Method) GenericReturnType() typesig.Type {
	return convert(m.class.cp, m.signature().Result, m.scope())
}

// ExceptionTypes prefers the thrown types of the generic signature, which
// javac only writes when one of them is a type variable.
func (m *Method) ExceptionTypes() []typesig.Type {
	sig, s := m.signature(), m.scope()
	if len(sig.Throws) > 0 {
		out := make([]typesig.Type, len(sig.Throws))
		for i, t := range sig.Throws {
			out[i] = convert(m.class.cp, t, s)
		}
		return out
	}
	var out []typesig.Type
	for _, name := range m.info.Exceptions(m.pool()) {
		out = append(out, m.class.cp.class(classfile.InternalToSourceName(name)))
	}
	return out
}

func (m *Method) TypeParameters() []typesig.TypeVariable {
	return typeVariables(m.class.cp, m.signature().TypeParameters, m.scope())
}

// Annotations lists the runtime-visible annotations. A method marked only by
// the Deprecated attribute gets a @java.lang.Deprecated entry as well.
func (m *Method) Annotations() []typesig.Annotation {
	anns := annotationsFromClassfile(m.info.Annotations(m.pool()))
	if m.info.IsDeprecated() && !slices.ContainsFunc(anns, func(a typesig.Annotation) bool {
		return a.Type == deprecatedAnnotation
	}) {
		anns = append(anns, typesig.Annotation{Type: deprecatedAnnotation})
	}
	return anns
}
