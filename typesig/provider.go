package typesig

// Type is a handle on a type reported by a metadata provider.
type Type interface {
	// TypeName renders the type fully qualified and with its generic
	// arguments, e.g. "java.util.List<? extends T>", "int[]" or "E".
	TypeName() string
}

// Class is a primitive, array, class or interface. The void type is a Class
// named "void".
type Class interface {
	Type
	// Name is the binary name, e.g. "java.util.Map$Entry".
	Name() string
	Package() string
	IsPrimitive() bool
	IsArray() bool
	IsInterface() bool
	IsPublic() bool
	// IsFunctionalAnnotated reports whether the type carries the explicit
	// functional-interface marker.
	IsFunctionalAnnotated() bool
	TypeParameters() []TypeVariable
	// DeclaredMethods are the methods declared directly on the type.
	DeclaredMethods() []Method
	// Methods are the public member methods, inherited ones included.
	Methods() []Method
	// Interfaces are the direct super-interfaces in declaration order.
	Interfaces() []Class
	// GenericInterfaces are Interfaces as written in the declaration, that
	// is, with their type arguments.
	GenericInterfaces() []Type
}

type ParameterizedType interface {
	Type
	RawType() Class
	ActualTypeArguments() []Type
}

type TypeVariable interface {
	Type
	Name() string
	Bounds() []Type
}

type GenericArrayType interface {
	Type
	GenericComponentType() Type
}

// WildcardType only occurs as a type argument. It cannot be described on its
// own.
type WildcardType interface {
	Type
	UpperBounds() []Type
	LowerBounds() []Type
}

type Method interface {
	Name() string
	DeclaringClass() Class
	Modifiers() Modifiers
	// IsDefault reports whether an interface method has a body.
	IsDefault() bool
	// ParameterTypeNames are the erased parameter types as binary names,
	// e.g. "java.lang.Object" or "int[]".
	ParameterTypeNames() []string
	GenericParameterTypes() []Type
	GenericReturnType() Type
	ExceptionTypes() []Type
	TypeParameters() []TypeVariable
	Annotations() []Annotation
}
