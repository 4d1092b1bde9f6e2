package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/typefind/typesig"
)

// JSONEncoder writes one JSON object per line.
type JSONEncoder struct {
	enc *json.Encoder
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONEncoder{enc: enc}
}

func (e *JSONEncoder) Encode(r typesig.Record) error {
	return e.enc.Encode(r)
}
