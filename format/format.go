// Package format writes method records for people and for programs.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/typefind/typesig"
)

type Encoder interface {
	Encode(r typesig.Record) error
}

// Names lists the formats New accepts.
var Names = []string{"text", "json"}

// New returns the encoder for a format name.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q", name)
}
