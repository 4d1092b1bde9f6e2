package typesig

import (
	"encoding/json"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classes(items ...any) iter.Seq2[Class, error] {
	return func(yield func(Class, error) bool) {
		for _, item := range items {
			var ok bool
			switch item := item.(type) {
			case Class:
				ok = yield(item, nil)
			case error:
				ok = yield(nil, item)
			}
			if !ok {
				return
			}
		}
	}
}

func TestMethods(t *testing.T) {
	u := newUniverse()
	errMissing := errors.New("missing class")

	var forms []string
	var errs []error
	for md, err := range Methods(classes(u.str, errMissing, u.system)) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		forms = append(forms, md.FullForm())
	}

	// the private indexOf is skipped
	assert.Equal(t, []string{
		"java.lang.String#length: java.lang.String -> int",
		"java.lang.String.valueOf: int -> java.lang.String",
		"java.lang.System.gc: () -> ()",
	}, forms)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], errMissing)
}

func TestMethodsContinuesAfterMethodError(t *testing.T) {
	u := newUniverse()
	broken := &fakeClass{name: "p.Broken", pkg: "p"}
	declare(broken,
		&fakeMethod{name: "wild", mods: ModPublic, params: params(extends(u.str)), ret: u.void},
		&fakeMethod{name: "fine", mods: ModPublic, ret: u.void},
	)

	var names []string
	var failed int
	for md, err := range Methods(classes(broken)) {
		if err != nil {
			failed++
			assert.ErrorContains(t, err, "p.Broken")
			continue
		}
		names = append(names, md.Name())
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{"fine"}, names)
}

func TestMethodsStopsEarly(t *testing.T) {
	u := newUniverse()

	n := 0
	for range Methods(classes(u.str, u.system)) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestRecordJSON(t *testing.T) {
	u := newUniverse()
	md, err := DescribeMethod(method(u.str, "valueOf"))
	require.NoError(t, err)

	data, err := json.Marshal(md.Record())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "valueOf",
		"declaringType": "java.lang.String",
		"simpleForm": "int -> String",
		"fullForm": "java.lang.String.valueOf: int -> java.lang.String",
		"parameters": ["int"],
		"returnType": "java.lang.String",
		"modifiers": ["public", "static"],
		"deprecated": false,
		"static": true
	}`, string(data))
}
