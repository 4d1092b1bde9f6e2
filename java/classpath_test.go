package java_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/typefind/classfile"
	"github.com/dhamidi/typefind/classfile/classfiletest"
	"github.com/dhamidi/typefind/java"
	"github.com/dhamidi/typefind/pkgpattern"
	"github.com/dhamidi/typefind/typesig"
)

const (
	functional = "Ljava/lang/FunctionalInterface;"
	deprecated = "Ljava/lang/Deprecated;"
	oneParam   = "<T:Ljava/lang/Object;>Ljava/lang/Object;"
)

func jdkClasses() []*classfiletest.Class {
	return []*classfiletest.Class{
		classfiletest.New("java/lang/Object").Extends("").
			Method(classfile.AccPublic, "equals", "(Ljava/lang/Object;)Z").
			Method(classfile.AccPublic, "hashCode", "()I").
			Method(classfile.AccPublic, "toString", "()Ljava/lang/String;"),
		classfiletest.New("java/lang/String").
			Method(classfile.AccPublic, "length", "()I").
			Method(classfile.AccPublic|classfile.AccStatic, "valueOf", "(I)Ljava/lang/String;").
			Method(classfile.AccPrivate, "checkIndex", "(I)V").
			Method(classfile.AccPublic|classfile.AccSynthetic, "lambda$0", "()V"),
		classfiletest.New("java/lang/Math").
			Method(classfile.AccPublic|classfile.AccStatic, "random", "()D"),
		classfiletest.Interface("java/util/function/Supplier").
			Signature(oneParam).
			Annotate(functional).
			Abstract("get", "()Ljava/lang/Object;", classfiletest.WithSignature("()TT;")),
		classfiletest.Interface("java/util/function/Function").
			Signature("<T:Ljava/lang/Object;R:Ljava/lang/Object;>Ljava/lang/Object;").
			Annotate(functional).
			Abstract("apply", "(Ljava/lang/Object;)Ljava/lang/Object;", classfiletest.WithSignature("(TT;)TR;")),
		classfiletest.Interface("java/util/function/BiFunction").
			Signature("<T:Ljava/lang/Object;U:Ljava/lang/Object;R:Ljava/lang/Object;>Ljava/lang/Object;").
			Annotate(functional).
			Abstract("apply", "(Ljava/lang/Object;Ljava/lang/Object;)Ljava/lang/Object;", classfiletest.WithSignature("(TT;TU;)TR;")),
		classfiletest.Interface("java/util/function/BinaryOperator").
			Signature("<T:Ljava/lang/Object;>Ljava/lang/Object;Ljava/util/function/BiFunction<TT;TT;TT;>;").
			Implements("java/util/function/BiFunction").
			Annotate(functional),
		classfiletest.Interface("java/util/Comparator").
			Signature(oneParam).
			Abstract("compare", "(Ljava/lang/Object;Ljava/lang/Object;)I", classfiletest.WithSignature("(TT;TT;)I")).
			Abstract("equals", "(Ljava/lang/Object;)Z"),
		classfiletest.Interface("java/util/List").
			Signature("<E:Ljava/lang/Object;>Ljava/lang/Object;").
			Abstract("isEmpty", "()Z").
			Abstract("size", "()I").
			Method(classfile.AccPublic, "sort", "(Ljava/util/Comparator;)V",
				classfiletest.WithSignature("(Ljava/util/Comparator<-TE;>;)V")),
	}
}

func newClassPath(t *testing.T, classes ...*classfiletest.Class) *java.ClassPath {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, classfiletest.WriteDir(dir, classes...))
	cp, err := java.NewClassPath(dir)
	require.NoError(t, err)
	t.Cleanup(func() { cp.Close() })
	return cp
}

func describe(t *testing.T, cp *java.ClassPath, class, method string) typesig.MethodDescriptor {
	t.Helper()
	c, err := cp.Lookup(class)
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

func TestFunctionalInterfaces(t *testing.T) {
	cp := newClassPath(t, jdkClasses()...)

	tests := []struct {
		class string
		want  bool
	}{
		{"java.util.function.Supplier", true},
		{"java.util.function.BinaryOperator", true},
		{"java.util.Comparator", true},
		{"java.util.List", false},
		{"java.lang.String", false},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			c, err := cp.Lookup(tt.class)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typesig.IsFunctionalInterface(c))
		})
	}
}

func TestResolveSAM(t *testing.T) {
	cp := newClassPath(t, jdkClasses()...)

	binaryOperator, err := cp.Lookup("java.util.function.BinaryOperator")
	require.NoError(t, err)
	str, err := cp.Lookup("java.lang.String")
	require.NoError(t, err)

	comparator, err := cp.Lookup("java.util.Comparator")
	require.NoError(t, err)

	got, err := typesig.ResolveSAM(comparator, nil)
	require.NoError(t, err)
	assert.Equal(t, "((T, T) -> int)", got)

	got, err = typesig.ResolveSAM(comparator, []typesig.Type{str})
	require.NoError(t, err)
	assert.Equal(t, "((java.lang.String, java.lang.String) -> int)", got)

	// only the arguments BinaryOperator passes to BiFunction are substituted
	got, err = typesig.ResolveSAM(binaryOperator, []typesig.Type{str})
	require.NoError(t, err)
	assert.Equal(t, "((T, T) -> T)", got)
}

func TestDescribeMethods(t *testing.T) {
	classes := append(jdkClasses(),
		classfiletest.New("com/example/Lists").
			Method(classfile.AccPublic|classfile.AccStatic, "map",
				"(Ljava/util/List;Ljava/util/function/Function;)Ljava/util/List;",
				classfiletest.WithSignature("<T:Ljava/lang/Object;R:Ljava/lang/Object;>(Ljava/util/List<TT;>;Ljava/util/function/Function<-TT;+TR;>;)Ljava/util/List<TR;>;")).
			Method(classfile.AccPublic|classfile.AccStatic, "reduce",
				"(Ljava/util/List;Ljava/util/function/BinaryOperator;)Ljava/lang/Object;",
				classfiletest.WithSignature("<T:Ljava/lang/Object;>(Ljava/util/List<TT;>;Ljava/util/function/BinaryOperator<TT;>;)TT;")).
			Method(classfile.AccPublic|classfile.AccStatic, "first",
				"([Ljava/lang/Object;)Ljava/lang/Object;",
				classfiletest.WithSignature("<T:Ljava/lang/Object;>([TT;)TT;")),
	)
	cp := newClassPath(t, classes...)

	tests := []struct {
		class, method string
		simple, full  string
	}{
		{"java.lang.String", "length", "String -> int", "java.lang.String#length: java.lang.String -> int"},
		{"java.lang.String", "valueOf", "int -> String", "java.lang.String.valueOf: int -> java.lang.String"},
		{"java.lang.Math", "random", "() -> double", "java.lang.Math.random: () -> double"},
		{"java.util.List", "isEmpty", "List<E> -> boolean", "java.util.List<E>#isEmpty: java.util.List<E> -> boolean"},
		{"java.util.List", "sort", "(List<E>, ((E, E) -> int)) -> ()", ""},
		{"com.example.Lists", "map", "(List<T>, (T -> R)) -> List<R>", ""},
		{"com.example.Lists", "reduce", "(List<T>, ((T, T) -> T)) -> T", ""},
		{"com.example.Lists", "first", "T[] -> T", "com.example.Lists.first: T[] -> T"},
	}
	for _, tt := range tests {
		t.Run(tt.class+"."+tt.method, func(t *testing.T) {
			md := describe(t, cp, tt.class, tt.method)
			assert.Equal(t, tt.simple, md.SimpleForm())
			if tt.full != "" {
				assert.Equal(t, tt.full, md.FullForm())
			}
		})
	}
}

func TestMethodMetadata(t *testing.T) {
	cp := newClassPath(t, append(jdkClasses(),
		classfiletest.New("java/io/IOException"),
		classfiletest.New("java/io/Reader").
			Method(classfile.AccPublic|classfile.AccSynchronized, "read", "([C)I",
				classfiletest.Throws("java/io/IOException"),
				classfiletest.DeprecatedMethod()).
			Method(classfile.AccPublic, "mark", "(I)V",
				classfiletest.AnnotatedWith(deprecated, classfiletest.Element{Name: "since", Value: "9"})),
	)...)

	read := describe(t, cp, "java.io.Reader", "read")
	assert.Equal(t, "(Reader, char[]) -> int", read.SimpleForm())
	assert.True(t, read.IsDeprecated())
	assert.Equal(t, []string{"@java.lang.Deprecated()"}, read.Annotations())
	assert.Equal(t, "public synchronized", read.Modifiers().String())
	require.Len(t, read.ThrownTypes(), 1)
	assert.Equal(t, "java.io.IOException", read.ThrownTypes()[0].Canonical())

	mark := describe(t, cp, "java.io.Reader", "mark")
	assert.True(t, mark.IsDeprecated())
	assert.Equal(t, []string{`@java.lang.Deprecated(since="9")`}, mark.Annotations())
}

func TestDeclaredMethodsSkipCompilerArtifacts(t *testing.T) {
	cp := newClassPath(t, jdkClasses()...)
	c, err := cp.Lookup("java.lang.String")
	require.NoError(t, err)

	var names []string
	for _, m := range c.DeclaredMethods() {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"length", "valueOf", "checkIndex"}, names)

	var public []string
	for _, m := range typesig.PublicMethods(c) {
		public = append(public, m.Name())
	}
	assert.Equal(t, []string{"length", "valueOf"}, public)
}

func TestInheritedMethods(t *testing.T) {
	cp := newClassPath(t, jdkClasses()...)
	c, err := cp.Lookup("java.util.function.BinaryOperator")
	require.NoError(t, err)

	require.Empty(t, c.DeclaredMethods())
	methods := c.Methods()
	require.Len(t, methods, 1)
	assert.Equal(t, "apply", methods[0].Name())
	assert.Equal(t, "java.util.function.BiFunction", methods[0].DeclaringClass().Name())

	str, err := cp.Lookup("java.lang.String")
	require.NoError(t, err)
	var names []string
	for _, m := range str.Methods() {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"length", "valueOf", "equals", "hashCode", "toString"}, names)
}

func TestUnresolvedClass(t *testing.T) {
	cp := newClassPath(t,
		classfiletest.New("com/example/Widget").
			Method(classfile.AccPublic, "owner", "()Lcom/example/missing/Owner;"),
	)

	_, err := cp.Lookup("com.example.missing.Owner")
	require.ErrorIs(t, err, java.ErrClassNotFound)

	md := describe(t, cp, "com.example.Widget", "owner")
	assert.Equal(t, "Widget -> Owner", md.SimpleForm())
	assert.Equal(t, "com.example.missing.Owner", md.ReturnType().Canonical())
}

func TestClasses(t *testing.T) {
	dir := t.TempDir()
	jar := filepath.Join(dir, "lib.jar")
	require.NoError(t, classfiletest.WriteJar(jar,
		classfiletest.New("com/example/Api"),
		classfiletest.New("com/example/Api$1"),
		classfiletest.New("com/example/Hidden").Access(0),
		classfiletest.New("com/example/internal/Impl"),
		classfiletest.Interface("com/example/Marker").
			Access(classfile.AccPublic|classfile.AccInterface|classfile.AccAbstract|classfile.AccAnnotation),
		classfiletest.New("org/other/Thing"),
	))
	classes := filepath.Join(dir, "classes")
	require.NoError(t, classfiletest.WriteDir(classes,
		classfiletest.New("com/example/Api").Method(classfile.AccPublic, "shadowed", "()V"),
		classfiletest.New("com/example/Extra"),
	))

	cp, err := java.NewClassPath(jar, classes)
	require.NoError(t, err)
	defer cp.Close()

	names := func(allow *pkgpattern.Pattern) []string {
		var out []string
		for c, err := range cp.Classes(allow) {
			require.NoError(t, err)
			out = append(out, c.Name())
		}
		return out
	}

	assert.Equal(t,
		[]string{"com.example.Api", "com.example.internal.Impl", "org.other.Thing", "com.example.Extra"},
		names(nil))
	assert.Equal(t,
		[]string{"com.example.Api", "com.example.Extra"},
		names(pkgpattern.MustCompile([]string{"com.example"})))

	api, err := cp.Load("com.example.Api")
	require.NoError(t, err)
	assert.Empty(t, api.DeclaredMethods(), "the jar shadows the directory")
}

func TestMethodsStream(t *testing.T) {
	cp := newClassPath(t, jdkClasses()...)

	var forms []string
	for md, err := range typesig.Methods(cp.Classes(pkgpattern.MustCompile([]string{"java.util"}))) {
		require.NoError(t, err)
		forms = append(forms, md.SimpleForm())
	}
	assert.ElementsMatch(t, []string{
		"(((T, T) -> int), T, T) -> int",
		"(((T, T) -> int), Object) -> boolean",
		"List<E> -> boolean",
		"List<E> -> int",
		"(List<E>, ((E, E) -> int)) -> ()",
	}, forms)
}

func TestNewClassPathErrors(t *testing.T) {
	_, err := java.NewClassPath(filepath.Join(t.TempDir(), "missing.jar"))
	assert.Error(t, err)

	assert.Equal(t, []string{"a.jar", "classes"}, java.SplitList("a.jar"+string(filepath.ListSeparator)+string(filepath.ListSeparator)+"classes"))
}
