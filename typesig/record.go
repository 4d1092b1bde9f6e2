package typesig

import (
	"fmt"
	"iter"
)

// Record is the plain, serializable form of a MethodDescriptor handed to
// indexing sinks.
type Record struct {
	Name           string   `json:"name"`
	DeclaringType  string   `json:"declaringType"`
	SimpleForm     string   `json:"simpleForm"`
	FullForm       string   `json:"fullForm"`
	Parameters     []string `json:"parameters"`
	ReturnType     string   `json:"returnType"`
	ThrownTypes    []string `json:"thrownTypes,omitempty"`
	TypeParameters []string `json:"typeParameters,omitempty"`
	Modifiers      []string `json:"modifiers"`
	Annotations    []string `json:"annotations,omitempty"`
	Deprecated     bool     `json:"deprecated"`
	Static         bool     `json:"static"`
}

func (md MethodDescriptor) Record() Record {
	return Record{
		Name:           md.name,
		DeclaringType:  md.declaringType.canonical,
		SimpleForm:     md.simpleForm,
		FullForm:       md.fullForm,
		Parameters:     canonicalForms(md.parameters),
		ReturnType:     md.returnType.canonical,
		ThrownTypes:    canonicalForms(md.thrownTypes),
		TypeParameters: canonicalForms(md.typeParameters),
		Modifiers:      md.modifiers.Strings(),
		Annotations:    md.Annotations(),
		Deprecated:     md.deprecated,
		Static:         md.IsStatic(),
	}
}

func canonicalForms(tds []TypeDescriptor) []string {
	if tds == nil {
		return nil
	}
	out := make([]string, len(tds))
	for i, td := range tds {
		out[i] = td.canonical
	}
	return out
}

// PublicMethods returns the public methods c declares itself.
func PublicMethods(c Class) []Method {
	var out []Method
	for _, m := range c.DeclaredMethods() {
		if m.Modifiers().Has(ModPublic) {
			out = append(out, m)
		}
	}
	return out
}

// Methods lazily describes the public methods of every class in classes.
// Errors from classes and from individual methods are yielded in place and
// iteration continues with the next item. The sequence can be ranged over
// again whenever classes can.
func Methods(classes iter.Seq2[Class, error]) iter.Seq2[MethodDescriptor, error] {
	return func(yield func(MethodDescriptor, error) bool) {
		for c, err := range classes {
			if err != nil {
				if !yield(MethodDescriptor{}, err) {
					return
				}
				continue
			}
			for _, m := range PublicMethods(c) {
				md, err := DescribeMethod(m)
				if err != nil {
					err = fmt.Errorf("%s: %w", c.Name(), err)
				}
				if !yield(md, err) {
					return
				}
			}
		}
	}
}
