package typesig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeMethod(t *testing.T) {
	u := newUniverse()

	tests := []struct {
		name   string
		method Method
		simple string
		full   string
	}{
		{"static", method(u.str, "valueOf"), "int -> String", "java.lang.String.valueOf: int -> java.lang.String"},
		{"instance", method(u.str, "length"), "String -> int", "java.lang.String#length: java.lang.String -> int"},
		{"nothing to nothing", method(u.system, "gc"), "() -> ()", "java.lang.System.gc: () -> ()"},
		{"generic receiver", method(u.list, "clear"), "List<E> -> ()", "java.util.List<E>#clear: java.util.List<E> -> ()"},
		{"array argument", method(u.arrays, "sort"), "Object[] -> ()", "java.util.Arrays.sort: java.lang.Object[] -> ()"},
		{"generic array argument", method(u.arrays, "asList"), "T[] -> List<T>", "java.util.Arrays.asList: T[] -> java.util.List<T>"},
		{"functional argument", method(u.stream, "map"), "(Stream<T>, (T -> R)) -> Stream<R>", ""},
		{"functional argument with wildcard", method(u.list, "sort"), "(List<E>, ((E, E) -> int)) -> ()", ""},
		{"wildcard arguments", method(u.collections, "copy"), "(List<? super T>, List<? extends T>) -> ()", ""},
		{"nested wildcard", method(u.collections, "binarySearch"), "(List<? extends java.lang.Comparable<? super T>>, T) -> int", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := DescribeMethod(tt.method)
			require.NoError(t, err)
			if got := md.SimpleForm(); got != tt.simple {
				t.Errorf("SimpleForm() = %q, want %q", got, tt.simple)
			}
			if tt.full != "" && md.FullForm() != tt.full {
				t.Errorf("FullForm() = %q, want %q", md.FullForm(), tt.full)
			}
		})
	}
}

func TestDescribeMethodMetadata(t *testing.T) {
	u := newUniverse()
	reader := &fakeClass{name: "java.io.Reader", pkg: "java.io"}
	read := &fakeMethod{
		name:    "read",
		mods:    ModPublic | ModSynchronized,
		params:  params(u.str),
		ret:     u.integer,
		throws:  params(u.ioException, u.ioException),
		tparams: vars("T", "T"),
		annotations: []Annotation{
			{Type: "java.lang.Deprecated", Elements: []AnnotationElement{{Name: "since", Value: `"9"`}}},
			{Type: "java.lang.Deprecated", Elements: []AnnotationElement{{Name: "since", Value: `"9"`}}},
		},
	}
	declare(reader, read)

	md, err := DescribeMethod(read)
	require.NoError(t, err)

	assert.Equal(t, "read", md.Name())
	assert.False(t, md.IsStatic())
	assert.True(t, md.IsDeprecated())
	assert.Len(t, md.ThrownTypes(), 1, "thrown types are a set")
	assert.Len(t, md.TypeParameters(), 1, "type parameters are a set")
	assert.Equal(t, []string{`@java.lang.Deprecated(since="9")`}, md.Annotations())
	assert.Equal(t, "public synchronized", md.Modifiers().String())
	assert.Equal(t, "java.io.Reader", md.DeclaringType().Canonical())
	assert.Equal(t, "int", md.ReturnType().Canonical())
	require.Len(t, md.Parameters(), 1)
	assert.Equal(t, "String", md.Parameters()[0].Simplified())
	assert.Equal(t, "(Reader, String) -> int", md.SimpleForm())
}

func TestDescribeMethodUnsupportedType(t *testing.T) {
	u := newUniverse()
	broken := &fakeClass{name: "p.Broken", pkg: "p"}
	m := &fakeMethod{name: "wild", mods: ModPublic, params: params(extends(u.str)), ret: u.void}
	declare(broken, m)

	_, err := DescribeMethod(m)
	assert.ErrorIs(t, err, ErrUnsupportedTypeDescriptor)
}

func TestModifiers(t *testing.T) {
	tests := []struct {
		mods  Modifiers
		level string
		want  string
	}{
		{ModPublic | ModStatic | ModFinal, "public", "public static final"},
		{ModProtected | ModAbstract, "protected", "protected abstract"},
		{ModPrivate | ModNative, "private", "private native"},
		{ModStatic, "package", "static"},
		{ModPublic | ModPrivate, "public", "public"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, tt.mods.AccessLevel())
		assert.Equal(t, tt.want, tt.mods.String())
	}
}
