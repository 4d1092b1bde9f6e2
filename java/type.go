package java

import (
	"github.com/dhamidi/typefind/classfile"
	"github.com/dhamidi/typefind/typesig"
)

// scope resolves the bounds of type variables used in a signature: method
// type parameters shadow those of the class.
type scope struct {
	class  *Class
	method []classfile.TypeParameter
}

func (s scope) bounds(name string) []classfile.TypeSignature {
	for _, tp := range s.method {
		if tp.Name == name {
			return tp.Bounds
		}
	}
	if s.class != nil && s.class.loaded() != nil && s.class.signature != nil {
		for _, tp := range s.class.signature.TypeParameters {
			if tp.Name == name {
				return tp.Bounds
			}
		}
	}
	return nil
}

// convert turns a parsed signature into a typesig handle. Array types whose
// element is generic become generic arrays; all other arrays are classes.
func convert(cp *ClassPath, sig classfile.TypeSignature, s scope) typesig.Type {
	switch sig := sig.(type) {
	case classfile.BaseTypeSignature:
		return cp.class(sig.Name)
	case *classfile.ClassTypeSignature:
		if !isGeneric(sig) {
			return cp.class(sig.Name)
		}
		p := &parameterizedType{raw: cp.class(sig.Name), typeName: sig.String()}
		for _, arg := range sig.Args {
			p.args = append(p.args, convertArgument(cp, arg, s))
		}
		return p
	case classfile.TypeVariableSignature:
		return &typeVariable{cp: cp, name: sig.Name, scope: s}
	case classfile.ArrayTypeSignature:
		if isGeneric(sig) {
			return &genericArrayType{component: convert(cp, sig.Component, s)}
		}
		return cp.class(sig.String())
	}
	return nil
}

func convertArgument(cp *ClassPath, arg classfile.TypeArgument, s scope) typesig.Type {
	switch arg.Wildcard {
	case classfile.WildcardAny:
		return &wildcardType{typeName: "?", upper: []typesig.Type{cp.class("java.lang.Object")}}
	case classfile.WildcardExtends:
		return &wildcardType{typeName: arg.String(), upper: []typesig.Type{convert(cp, arg.Type, s)}}
	case classfile.WildcardSuper:
		return &wildcardType{
			typeName: arg.String(),
			upper:    []typesig.Type{cp.class("java.lang.Object")},
			lower:    []typesig.Type{convert(cp, arg.Type, s)},
		}
	}
	return convert(cp, arg.Type, s)
}

// isGeneric reports whether sig mentions type arguments or type variables.
func isGeneric(sig classfile.TypeSignature) bool {
	switch sig := sig.(type) {
	case *classfile.ClassTypeSignature:
		return len(sig.Args) > 0 || (sig.Outer != nil && isGeneric(sig.Outer))
	case classfile.TypeVariableSignature:
		return true
	case classfile.ArrayTypeSignature:
		return isGeneric(sig.Component)
	}
	return false
}

func typeVariables(cp *ClassPath, params []classfile.TypeParameter, s scope) []typesig.TypeVariable {
	out := make([]typesig.TypeVariable, len(params))
	for i, tp := range params {
		out[i] = &typeVariable{cp: cp, name: tp.Name, scope: s}
	}
	return out
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
	cp    *ClassPath
	name  string
	scope scope
}

func (v *typeVariable) TypeName() string { return v.name }
func (v *typeVariable) Name() string     { return v.name }

// Bounds defaults to java.lang.Object when the variable declares none.
func (v *typeVariable) Bounds() []typesig.Type {
	sigs := v.scope.bounds(v.name)
	if len(sigs) == 0 {
		return []typesig.Type{v.cp.class("java.lang.Object")}
	}
	out := make([]typesig.Type, len(sigs))
	for i, b := range sigs {
		out[i] = convert(v.cp, b, v.scope)
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
