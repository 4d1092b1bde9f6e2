package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/typefind/classfile"
	"github.com/dhamidi/typefind/classfile/classfiletest"
	"github.com/dhamidi/typefind/pkgpattern"
	"github.com/dhamidi/typefind/typesig"
)

const greeterStub = `
package com.example;

public class Greeter {
    public String greet(String name);
    public static Greeter create();
    @Deprecated
    public void shout();
    private void whisper();
}
`

func writeStub(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "greeter.jstub")
	require.NoError(t, os.WriteFile(path, []byte(greeterStub), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(classPathEnv, "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(javaStyleArgs(append(args, "--no-color")))
	err := cmd.Execute()
	return out.String(), err
}

func TestJavaStyleArgs(t *testing.T) {
	got := javaStyleArgs([]string{"describe", "-cp", "a.jar", "-classpath", "b", "-cp=c", "-v", "java.lang.String"})
	assert.Equal(t, []string{"describe", "--classpath", "a.jar", "--classpath", "b", "--classpath=c", "-v", "java.lang.String"}, got)
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "--stub", writeStub(t), "com.example.Greeter")
	require.NoError(t, err)

	assert.Equal(t, `greet: (Greeter, String) -> String
    com.example.Greeter#greet: (com.example.Greeter, java.lang.String) -> java.lang.String
create: () -> Greeter
    com.example.Greeter.create: () -> com.example.Greeter
shout: Greeter -> () (deprecated)
    com.example.Greeter#shout: com.example.Greeter -> ()
`, out)
}

func TestDescribeUnknownClass(t *testing.T) {
	_, err := run(t, "describe", "--stub", writeStub(t), "com.example.Missing")
	assert.ErrorContains(t, err, "describe com.example.Missing")
}

func TestMethodsJSON(t *testing.T) {
	out, err := run(t, "methods", "--stub", writeStub(t), "-f", "json")
	require.NoError(t, err)

	var names []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var r typesig.Record
		require.NoError(t, json.Unmarshal([]byte(line), &r))
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"greet", "create", "shout"}, names)
}

func TestMethodsPackageFilter(t *testing.T) {
	out, err := run(t, "methods", "--stub", writeStub(t), "-p", "com.example.internal")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMethodsClassPathAndStubs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, classfiletest.WriteDir(dir,
		classfiletest.New("java/lang/Math").
			Method(classfile.AccPublic|classfile.AccStatic, "random", "()D"),
	))

	out, err := run(t, "methods", "-cp", dir, "--stub", writeStub(t), "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"fullForm":"java.lang.Math.random: () -> double"`)
	assert.Contains(t, out, `"name":"greet"`)
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", "--stub", writeStub(t), "greeter->()")
	require.NoError(t, err)
	assert.Contains(t, out, "shout: Greeter -> ()")
	assert.NotContains(t, out, "greet:")

	out, err = run(t, "search", "--stub", writeStub(t), "-n", "1", "greet")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"), "one record is two lines")
}

func TestPackages(t *testing.T) {
	out, err := run(t, "packages", "-p", "java.util", "-p", "java.util.function", "java.util", "java.util.stream")
	require.NoError(t, err)
	assert.Equal(t, "allowed  java.util\nrejected java.util.stream\n", out)

	out, err = run(t, "packages", "-p", "java.util")
	require.NoError(t, err)
	assert.Equal(t, pkgpattern.MustCompile([]string{"java.util"}).String()+"\n", out)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no source", []string{"describe", "java.lang.String"}, "one of --classpath, --stub or --maven is required"},
		{"unknown format", []string{"methods", "--stub", "x.jstub", "-f", "xml"}, `--format must be one of text, json, not "xml"`},
		{"unknown profile", []string{"methods", "--stub", "x.jstub", "--profile", "compact9"}, `--profile must be one of compact1, compact2, compact3, full, not "compact9"`},
		{"too verbose", []string{"packages", "-vvvvvv"}, "--verbose may be given at most 5 times"},
		{"bad coordinate", []string{"describe", "--maven", "guava", "Strings"}, `--maven "guava" is not a groupId:artifactId[:classifier]:version coordinate`},
		{"empty package", []string{"methods", "--stub", "x.jstub", "-p", "java.util,"}, "--package must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestCoordinateTag(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = newValidator() })

	assert.NoError(t, v.Var("com.google.guava:guava:33.0.0-jre", "coordinate"))
	assert.Error(t, v.Var("guava", "coordinate"))
}
