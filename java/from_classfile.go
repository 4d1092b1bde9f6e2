package java

import (
	"github.com/dhamidi/typefind/classfile"
	"github.com/dhamidi/typefind/typesig"
)

const deprecatedAnnotation = "java.lang.Deprecated"

func modifiersFromAccessFlags(flags classfile.AccessFlags) typesig.Modifiers {
	var mods typesig.Modifiers
	switch {
	case flags.IsPublic():
		mods |= typesig.ModPublic
	case flags.IsProtected():
		mods |= typesig.ModProtected
	case flags.IsPrivate():
		mods |= typesig.ModPrivate
	}
	for _, f := range []struct {
		has func() bool
		mod typesig.Modifiers
	}{
		{flags.IsStatic, typesig.ModStatic},
		{flags.IsAbstract, typesig.ModAbstract},
		{flags.IsFinal, typesig.ModFinal},
		{flags.IsNative, typesig.ModNative},
		{flags.IsSynchronized, typesig.ModSynchronized},
	} {
		if f.has() {
			mods |= f.mod
		}
	}
	return mods
}

// annotationsFromClassfile keeps the annotations visible at run time.
func annotationsFromClassfile(anns []classfile.Annotation) []typesig.Annotation {
	var out []typesig.Annotation
	for _, a := range anns {
		if !a.Visible {
			continue
		}
		ann := typesig.Annotation{Type: a.Type}
		for _, e := range a.Elements {
			ann.Elements = append(ann.Elements, typesig.AnnotationElement{Name: e.Name, Value: e.Value})
		}
		out = append(out, ann)
	}
	return out
}
