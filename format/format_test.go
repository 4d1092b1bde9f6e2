package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/typefind/typesig"
)

var records = []typesig.Record{
	{
		Name:          "length",
		DeclaringType: "java.lang.String",
		SimpleForm:    "String -> int",
		FullForm:      "java.lang.String#length: java.lang.String -> int",
		Parameters:    []string{},
		ReturnType:    "int",
		Modifiers:     []string{"public"},
	},
	{
		Name:          "getYear",
		DeclaringType: "java.util.Date",
		SimpleForm:    "Date -> int",
		FullForm:      "java.util.Date#getYear: java.util.Date -> int",
		ReturnType:    "int",
		Modifiers:     []string{"public"},
		Annotations:   []string{"@java.lang.Deprecated()"},
		Deprecated:    true,
	},
}

func TestTextEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf)
	enc.DisableColor()
	for _, r := range records {
		require.NoError(t, enc.Encode(r))
	}

	want := "length: String -> int\n" +
		"    java.lang.String#length: java.lang.String -> int\n" +
		"getYear: Date -> int (deprecated)\n" +
		"    java.util.Date#getYear: java.util.Date -> int\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewJSONEncoder(&buf)
	for _, r := range records {
		require.NoError(t, enc.Encode(r))
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{
		"name": "length",
		"declaringType": "java.lang.String",
		"simpleForm": "String -> int",
		"fullForm": "java.lang.String#length: java.lang.String -> int",
		"parameters": [],
		"returnType": "int",
		"modifiers": ["public"],
		"deprecated": false,
		"static": false
	}`, string(lines[0]))
	assert.Contains(t, string(lines[1]), `"annotations":["@java.lang.Deprecated()"]`)
	assert.Contains(t, string(lines[1]), `"simpleForm":"Date -> int"`)
}

func TestNew(t *testing.T) {
	for _, name := range Names {
		enc, err := New(name, &bytes.Buffer{})
		require.NoError(t, err)
		assert.NotNil(t, enc)
	}
	_, err := New("xml", &bytes.Buffer{})
	assert.ErrorContains(t, err, `unknown format "xml"`)
}
