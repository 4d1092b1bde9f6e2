package typesig

import (
	"fmt"
	"strings"
)

// Kind classifies a type handle. Exactly one kind applies to any handle.
type Kind int

const (
	KindPrimitive Kind = iota
	KindVoid
	KindArray
	KindGenericArray
	KindParameterizedType
	KindFunctionalInterface
	KindTypeVariable
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindVoid:
		return "void"
	case KindArray:
		return "array"
	case KindGenericArray:
		return "generic-array"
	case KindParameterizedType:
		return "parameterized-type"
	case KindFunctionalInterface:
		return "functional-interface"
	case KindTypeVariable:
		return "type-variable"
	case KindClass:
		return "class"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

const voidName = "void"

func isPrimitiveName(name string) bool {
	switch name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

// Classify determines the kind of t. The checks run in a fixed priority
// order: a parameterized or plain interface that qualifies as functional is
// a functional interface, never a parameterized type or class.
func Classify(t Type) (Kind, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil type", ErrUnsupportedTypeDescriptor)
	}
	name := t.TypeName()
	if name == voidName {
		return KindVoid, nil
	}
	if isPrimitiveName(name) {
		return KindPrimitive, nil
	}

	switch t := t.(type) {
	case ParameterizedType:
		if raw := t.RawType(); raw != nil && IsFunctionalInterface(raw) {
			return KindFunctionalInterface, nil
		}
		return KindParameterizedType, nil
	case TypeVariable:
		return KindTypeVariable, nil
	case Class:
		if IsFunctionalInterface(t) {
			return KindFunctionalInterface, nil
		}
		if strings.HasSuffix(name, "[]") {
			return KindArray, nil
		}
		return KindClass, nil
	case GenericArrayType:
		return KindGenericArray, nil
	}
	return 0, fmt.Errorf("%w: %T %s", ErrUnsupportedTypeDescriptor, t, name)
}
