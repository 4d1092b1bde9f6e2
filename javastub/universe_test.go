package javastub_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/typefind/javastub"
	"github.com/dhamidi/typefind/pkgpattern"
	"github.com/dhamidi/typefind/typesig"
)

const functionStubs = `
package java.util.function;

import java.util.Comparator;

@FunctionalInterface
public interface Function<T, R> {
    R apply(T t);
    default <V> Function<T, V> andThen(Function<? super R, ? extends V> after);
    static <T> Function<T, T> identity();
}

@FunctionalInterface
public interface BiFunction<T, U, R> {
    R apply(T t, U u);
}

/* inherits its single abstract method */
@FunctionalInterface
public interface BinaryOperator<T> extends BiFunction<T, T, T> {
    static <T> BinaryOperator<T> minBy(Comparator<? super T> comparator);
}
`

const utilStubs = `
package java.util;

import java.util.function.*;

public interface Comparator<T> {
    int compare(T o1, T o2);
    boolean equals(Object obj);
    default Comparator<T> reversed();
}

public interface List<E> extends Collection<E> {
    boolean isEmpty();
    int size();
    default void sort(Comparator<? super E> c);
    static <E> List<E> of(E... elements);
}

public class Collections {
    public static <T extends Comparable<? super T>> void sort(List<T> list);
    public static <T> void copy(List<? super T> dest, List<? extends T> src);
    public static <T> T reduce(List<T> list, BinaryOperator<T> op);
}

public final class Arrays {
    public static <T> List<T> asList(T... a);
    @Deprecated(since = "9")
    public static void legacy(int[] values) throws java.io.IOException;
    private static void check(int index);
}

interface Hidden {
    void run();
}
`

func newUniverse(t *testing.T) *javastub.Universe {
	t.Helper()
	u := javastub.New()
	require.NoError(t, u.ParseString("function.jstub", functionStubs))
	require.NoError(t, u.ParseString("util.jstub", utilStubs))
	return u
}

func describe(t *testing.T, u *javastub.Universe, class, method string) typesig.MethodDescriptor {
	t.Helper()
	c, err := u.Lookup(class)
	require.NoError(t, err)
	for _, m := range c.DeclaredMethods() {
		if m.Name() == method {
			md, err := typesig.DescribeMethod(m)
			require.NoError(t, err)
			return md
		}
	}
	t.Fatalf("%s has no method %s", class, method)
	return typesig.MethodDescriptor{}
}

func TestDescribe(t *testing.T) {
	u := newUniverse(t)

	tests := []struct {
		class, method string
		simple, full  string
	}{
		{"java.util.function.Function", "identity", "() -> (T -> T)", "java.util.function.Function<T,R>.identity: () -> java.util.function.Function<T, T>"},
		{"java.util.function.BinaryOperator", "minBy", "((T, T) -> int) -> ((T, T) -> T)", ""},
		{"java.util.List", "isEmpty", "List<E> -> boolean", "java.util.List<E>#isEmpty: java.util.List<E> -> boolean"},
		{"java.util.List", "sort", "(List<E>, ((E, E) -> int)) -> ()", ""},
		{"java.util.List", "of", "E[] -> List<E>", "java.util.List<E>.of: E[] -> java.util.List<E>"},
		{"java.util.Collections", "sort", "List<T> -> ()", ""},
		{"java.util.Collections", "copy", "(List<? super T>, List<? extends T>) -> ()", ""},
		{"java.util.Collections", "reduce", "(List<T>, ((T, T) -> T)) -> T", ""},
		{"java.util.Arrays", "asList", "T[] -> List<T>", "java.util.Arrays.asList: T[] -> java.util.List<T>"},
		{"java.util.Arrays", "legacy", "int[] -> ()", "java.util.Arrays.legacy: int[] -> ()"},
	}
	for _, tt := range tests {
		t.Run(tt.class+"."+tt.method, func(t *testing.T) {
			md := describe(t, u, tt.class, tt.method)
			assert.Equal(t, tt.simple, md.SimpleForm())
			if tt.full != "" {
				assert.Equal(t, tt.full, md.FullForm())
			}
		})
	}
}

func TestMethodMetadata(t *testing.T) {
	u := newUniverse(t)

	legacy := describe(t, u, "java.util.Arrays", "legacy")
	assert.True(t, legacy.IsDeprecated())
	assert.True(t, legacy.IsStatic())
	assert.Equal(t, []string{`@java.lang.Deprecated(since="9")`}, legacy.Annotations())
	require.Len(t, legacy.ThrownTypes(), 1)
	assert.Equal(t, "java.io.IOException", legacy.ThrownTypes()[0].Canonical())

	sort := describe(t, u, "java.util.Collections", "sort")
	require.Len(t, sort.TypeParameters(), 1)
	assert.Equal(t, "T", sort.TypeParameters()[0].Canonical())

	isEmpty := describe(t, u, "java.util.List", "isEmpty")
	assert.Equal(t, "public abstract", isEmpty.Modifiers().String())
	check := describe(t, u, "java.util.Arrays", "check")
	assert.Equal(t, "private static", check.Modifiers().String())
}

func TestErasure(t *testing.T) {
	u := newUniverse(t)

	tests := []struct {
		class, method string
		want          []string
	}{
		{"java.util.List", "of", []string{"java.lang.Object[]"}},
		{"java.util.Collections", "sort", []string{"java.util.List"}},
		{"java.util.Arrays", "legacy", []string{"int[]"}},
		{"java.util.Comparator", "equals", []string{"java.lang.Object"}},
	}
	for _, tt := range tests {
		t.Run(tt.class+"."+tt.method, func(t *testing.T) {
			c, err := u.Lookup(tt.class)
			require.NoError(t, err)
			for _, m := range c.DeclaredMethods() {
				if m.Name() == tt.method {
					assert.Equal(t, tt.want, m.ParameterTypeNames())
				}
			}
		})
	}
}

func TestFunctionalInterfaces(t *testing.T) {
	u := newUniverse(t)

	tests := []struct {
		class string
		want  bool
	}{
		{"java.util.function.Function", true},
		{"java.util.function.BinaryOperator", true},
		{"java.util.Comparator", true},
		{"java.util.List", false},
		{"java.util.Collections", false},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			c, err := u.Lookup(tt.class)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typesig.IsFunctionalInterface(c))
		})
	}
}

func TestClasses(t *testing.T) {
	u := newUniverse(t)

	var names []string
	for c, err := range u.Classes(pkgpattern.MustCompile([]string{"java.util"})) {
		require.NoError(t, err)
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"java.util.Comparator", "java.util.List", "java.util.Collections", "java.util.Arrays"}, names)

	count := 0
	for _, err := range typesig.Methods(u.Classes(pkgpattern.MustCompile([]string{"java.util.function"}))) {
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 5, count)
}

func TestLookup(t *testing.T) {
	u := newUniverse(t)

	_, err := u.Lookup("java.util.Collection")
	assert.ErrorIs(t, err, javastub.ErrClassNotFound)

	c, err := u.Lookup("int")
	require.NoError(t, err)
	assert.True(t, c.IsPrimitive())
}

func TestParseErrors(t *testing.T) {
	u := newUniverse(t)

	err := u.ParseString("dup.jstub", "package java.util; public class Arrays {}")
	assert.ErrorContains(t, err, "duplicate declaration of java.util.Arrays")

	err = javastub.New().ParseString("bad.jstub", "package x; public interface {")
	assert.ErrorContains(t, err, "bad.jstub")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "function.jstub")
	require.NoError(t, os.WriteFile(path, []byte(functionStubs), 0o644))

	u, err := javastub.Load(path)
	require.NoError(t, err)
	defer u.Close()

	md := describe(t, u, "java.util.function.BinaryOperator", "minBy")
	assert.Equal(t, "Comparator<? super T> -> ((T, T) -> T)", md.SimpleForm(),
		"Comparator is undeclared here, so it is not a functional interface")

	_, err = javastub.Load(filepath.Join(dir, "missing.jstub"))
	assert.Error(t, err)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "util"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "function.jstub"), []byte(functionStubs), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "util", "util.jstub"), []byte(utilStubs), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("not a stub"), 0o644))

	u, err := javastub.Load(dir)
	require.NoError(t, err)

	md := describe(t, u, "java.util.function.BinaryOperator", "minBy")
	assert.Equal(t, "((T, T) -> int) -> ((T, T) -> T)", md.SimpleForm())
}
