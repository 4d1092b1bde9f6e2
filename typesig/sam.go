package typesig

import (
	"fmt"
	"slices"
	"strings"
)

// ResolveSAM renders the single abstract method of iface in arrow notation,
// e.g. "((T, T) -> int)". actual holds the type arguments iface is used with;
// when empty, iface's own type variables are kept.
//
// The method is looked up among the methods iface declares first. Only when
// it declares none is the method searched among the inherited ones, and then
// only one level up: it must be declared by a direct super-interface, whose
// type parameters are bound to the arguments iface passes to it.
func ResolveSAM(iface Class, actual []Type) (string, error) {
	return new(describer).resolveSAM(iface, actual)
}

func (d *describer) resolveSAM(iface Class, actual []Type) (string, error) {
	name := iface.Name()
	if slices.Contains(d.resolving, name) {
		return "", fmt.Errorf("%w: %s", errResolving, name)
	}
	d.resolving = append(d.resolving, name)
	defer func() { d.resolving = d.resolving[:len(d.resolving)-1] }()

	bindings, err := bind(iface.TypeParameters(), actual)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	declared := samCandidates(iface.DeclaredMethods())
	switch len(declared) {
	case 1:
		return d.render(declared[0], bindings)
	case 0:
	default:
		return "", fmt.Errorf("%w: %s declares %s", ErrAmbiguousSam, name, methodNames(declared))
	}

	sam, super, superArgs, err := inheritedSAM(iface)
	if err != nil {
		return "", err
	}
	bindings, err = bind(super.TypeParameters(), superArgs)
	if err != nil {
		return "", fmt.Errorf("%s via %s: %w", name, super.Name(), err)
	}
	return d.render(sam, bindings)
}

// inheritedSAM finds the one abstract method visible on iface, the direct
// super-interface declaring it, and the type arguments iface's declaration
// passes to that super-interface.
func inheritedSAM(iface Class) (Method, Class, []Type, error) {
	visible := samCandidates(iface.Methods())
	switch len(visible) {
	case 0:
		return nil, nil, nil, fmt.Errorf("%w: %s has no abstract method", ErrNoSamFound, iface.Name())
	case 1:
	default:
		return nil, nil, nil, fmt.Errorf("%w: %s inherits %s", ErrAmbiguousSam, iface.Name(), methodNames(visible))
	}
	sam := visible[0]
	owner := sam.DeclaringClass().Name()

	var super Class
	for _, c := range iface.Interfaces() {
		if c.Name() != owner {
			continue
		}
		if super != nil {
			return nil, nil, nil, fmt.Errorf("%w: %s lists %s twice", ErrNoSamFound, iface.Name(), owner)
		}
		super = c
	}
	if super == nil {
		return nil, nil, nil, fmt.Errorf("%w: %s.%s is not declared by a direct super-interface of %s",
			ErrNoSamFound, owner, sam.Name(), iface.Name())
	}

	var args []Type
	for _, g := range iface.GenericInterfaces() {
		if p, ok := g.(ParameterizedType); ok && p.RawType().Name() == owner {
			args = p.ActualTypeArguments()
			break
		}
	}
	return sam, super, args, nil
}

func (d *describer) render(m Method, bindings []Binding) (string, error) {
	params := m.GenericParameterTypes()
	args := make([]string, len(params))
	for i, p := range params {
		td, err := d.describe(p)
		if err != nil {
			return "", err
		}
		args[i] = td.simplified
	}
	ret, err := d.describe(m.GenericReturnType())
	if err != nil {
		return "", err
	}
	return Substitute(fmt.Sprintf("(%s -> %s)", arrowArguments(args), ret.simplified), bindings), nil
}

// arrowArguments renders "()" for no arguments, the bare argument for one,
// and a parenthesized list otherwise.
func arrowArguments(args []string) string {
	switch len(args) {
	case 0:
		return "()"
	case 1:
		return args[0]
	}
	return "(" + strings.Join(args, ", ") + ")"
}

func methodNames(methods []Method) string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.Name()
	}
	return strings.Join(names, ", ")
}
