package typesig

import (
	"slices"
	"strings"
)

// rootObjectMethods are the public methods of java.lang.Object keyed by name,
// each entry listing one overload's erased parameter types.
var rootObjectMethods = map[string][][]string{
	"equals":    {{"java.lang.Object"}},
	"hashCode":  {{}},
	"toString":  {{}},
	"getClass":  {{}},
	"notify":    {{}},
	"notifyAll": {{}},
	"wait":      {{}, {"long"}, {"long", "int"}},
}

// isRootObjectMethod reports whether m has the name and erased parameter
// types of a method already defined on java.lang.Object.
func isRootObjectMethod(m Method) bool {
	overloads, ok := rootObjectMethods[m.Name()]
	if !ok {
		return false
	}
	params := m.ParameterTypeNames()
	for _, o := range overloads {
		if slices.Equal(o, params) {
			return true
		}
	}
	return false
}

func isAbstract(m Method) bool {
	mods := m.Modifiers()
	return mods.Has(ModAbstract) && !mods.IsStatic() && !m.IsDefault()
}

// samCandidates keeps the abstract methods that do not restate a root
// object method. Methods with the same name and erased parameters, as seen
// through more than one inheritance path, are kept once.
func samCandidates(methods []Method) []Method {
	var out []Method
	seen := map[string]bool{}
	for _, m := range methods {
		if !isAbstract(m) || isRootObjectMethod(m) {
			continue
		}
		key := m.Name() + "(" + strings.Join(m.ParameterTypeNames(), ",") + ")"
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out
}

// IsFunctionalInterface reports whether c is an interface that either
// carries the functional marker or declares exactly one abstract method of
// its own. Classes never qualify.
func IsFunctionalInterface(c Class) bool {
	if !c.IsInterface() {
		return false
	}
	if c.IsFunctionalAnnotated() {
		return true
	}
	return len(samCandidates(c.DeclaredMethods())) == 1
}
