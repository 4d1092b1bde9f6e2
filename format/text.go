package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dhamidi/typefind/typesig"
)

// TextEncoder writes "name: simple form" lines followed by the indented
// full form. Deprecated methods are highlighted.
type TextEncoder struct {
	w          io.Writer
	name       *color.Color
	deprecated *color.Color
	full       *color.Color
}

// NewTextEncoder colors its output unless color.NoColor is set, which
// fatih/color does when the output is not a terminal.
func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{
		w:          w,
		name:       color.New(color.Bold),
		deprecated: color.New(color.FgYellow),
		full:       color.New(color.Faint),
	}
}

// DisableColor turns colors off for this encoder only.
func (e *TextEncoder) DisableColor() {
	for _, c := range []*color.Color{e.name, e.deprecated, e.full} {
		c.DisableColor()
	}
}

func (e *TextEncoder) Encode(r typesig.Record) error {
	var sb strings.Builder
	sb.WriteString(e.name.Sprint(r.Name))
	sb.WriteString(": ")
	if r.Deprecated {
		sb.WriteString(e.deprecated.Sprint(r.SimpleForm + " (deprecated)"))
	} else {
		sb.WriteString(r.SimpleForm)
	}
	sb.WriteString("\n    ")
	sb.WriteString(e.full.Sprint(r.FullForm))
	sb.WriteString("\n")
	_, err := fmt.Fprint(e.w, sb.String())
	return err
}
