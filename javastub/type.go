package javastub

import (
	"strings"

	"github.com/dhamidi/typefind/typesig"
)

// scope resolves names inside a declaration: method type parameters shadow
// class type parameters, which shadow class names.
type scope struct {
	class  *Class
	method []*TypeParam
}

func (s scope) typeParam(name string) (*TypeParam, bool) {
	for _, tp := range s.method {
		if tp.Name == name {
			return tp, true
		}
	}
	if s.class.decl != nil {
		for _, tp := range s.class.decl.TypeParams {
			if tp.Name == name {
				return tp, true
			}
		}
	}
	return nil, false
}

func (s scope) typeVariables(params []*TypeParam) []typesig.TypeVariable {
	out := make([]typesig.TypeVariable, len(params))
	for i, tp := range params {
		out[i] = &typeVariable{param: tp, scope: s}
	}
	return out
}

// convert turns a type as written into a handle. A varargs parameter has
// one more array dimension than written.
func (s scope) convert(ref *TypeRef, varargs bool) typesig.Type {
	var t typesig.Type
	generic := true
	if tp, ok := s.typeParam(ref.Name); ok {
		t = &typeVariable{param: tp, scope: s}
	} else {
		raw := s.class.u.class(s.class.file.resolve(ref.Name))
		if len(ref.Args) == 0 {
			t, generic = raw, false
		} else {
			p := &parameterizedType{raw: raw}
			names := make([]string, len(ref.Args))
			for i, arg := range ref.Args {
				p.args = append(p.args, s.convertArgument(arg))
				names[i] = p.args[i].TypeName()
			}
			p.typeName = raw.name + "<" + strings.Join(names, ", ") + ">"
			t = p
		}
	}

	dims := len(ref.Dims)
	if varargs {
		dims++
	}
	for range dims {
		if generic {
			t = &genericArrayType{component: t}
		} else {
			t = s.class.u.class(t.TypeName() + "[]")
		}
	}
	return t
}

func (s scope) convertArgument(arg *TypeArg) typesig.Type {
	if !arg.Wildcard {
		return s.convert(arg.Exact, false)
	}
	object := s.class.u.class(objectClass)
	switch arg.Bound {
	case "extends":
		bound := s.convert(arg.Type, false)
		return &wildcardType{typeName: "? extends " + bound.TypeName(), upper: []typesig.Type{bound}}
	case "super":
		bound := s.convert(arg.Type, false)
		return &wildcardType{
			typeName: "? super " + bound.TypeName(),
			upper:    []typesig.Type{object},
			lower:    []typesig.Type{bound},
		}
	}
	return &wildcardType{typeName: "?", upper: []typesig.Type{object}}
}

// erasure returns the binary name of the erased type, e.g.
// "java.lang.Object[]" for a parameter written as "T... values".
func (s scope) erasure(ref *TypeRef, varargs bool) string {
	var name string
	if tp, ok := s.typeParam(ref.Name); ok {
		name = objectClass
		if len(tp.Bounds) > 0 && tp.Bounds[0].Name != tp.Name {
			name = s.erasure(&TypeRef{Name: tp.Bounds[0].Name}, false)
		}
	} else {
		name = s.class.file.resolve(ref.Name)
	}
	dims := len(ref.Dims)
	if varargs {
		dims++
	}
	return name + strings.Repeat("[]", dims)
}

type parameterizedType struct {
	raw      *Class
	args     []typesig.Type
	typeName string
}

func (p *parameterizedType) TypeName() string                    { return p.typeName }
func (p *parameterizedType) RawType() typesig.Class              { return p.raw }
func (p *parameterizedType) ActualTypeArguments() []typesig.Type { return p.args }

type typeVariable struct {
	param *TypeParam
	scope scope
}

func (v *typeVariable) TypeName() string { return v.param.Name }
func (v *typeVariable) Name() string     { return v.param.Name }

func (v *typeVariable) Bounds() []typesig.Type {
	if len(v.param.Bounds) == 0 {
		return []typesig.Type{v.scope.class.u.class(objectClass)}
	}
	out := make([]typesig.Type, len(v.param.Bounds))
	for i, b := range v.param.Bounds {
		out[i] = v.scope.convert(b, false)
	}
	return out
}

type genericArrayType struct {
	component typesig.Type
}

func (a *genericArrayType) TypeName() string                   { return a.component.TypeName() + "[]" }
func (a *genericArrayType) GenericComponentType() typesig.Type { return a.component }

type wildcardType struct {
	typeName string
	upper    []typesig.Type
	lower    []typesig.Type
}

func (w *wildcardType) TypeName() string            { return w.typeName }
func (w *wildcardType) UpperBounds() []typesig.Type { return w.upper }
func (w *wildcardType) LowerBounds() []typesig.Type { return w.lower }
