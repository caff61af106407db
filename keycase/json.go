package keycase

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/erraggy/taxokit/casing"
	"github.com/erraggy/taxokit/taxerrors"
)

// JSON rewrites the property keys of a JSON document with conv and returns
// compact JSON. Object members keep their source order; keys that collide
// after conversion are all emitted. With deep false only the members of a
// top-level object are renamed.
func JSON(data []byte, conv casing.Converter, deep bool, opts ...Option) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, &taxerrors.ParseError{Message: "invalid JSON document"}
	}
	w := &jsonWriter{conv: conv, deep: deep, maxDepth: newConfig(opts).maxDepth}
	if err := w.write(gjson.ParseBytes(data), 0); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

type jsonWriter struct {
	buf      bytes.Buffer
	conv     casing.Converter
	deep     bool
	maxDepth int
}

func (w *jsonWriter) write(res gjson.Result, depth int) error {
	if !res.IsObject() && !res.IsArray() {
		w.buf.WriteString(res.Raw)
		return nil
	}
	if depth > w.maxDepth {
		return &taxerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(w.maxDepth),
			Actual:       int64(depth),
			Message:      "JSON document nests too deeply",
		}
	}
	if depth > 0 && !w.deep {
		w.buf.WriteString(res.Raw)
		return nil
	}

	object := res.IsObject()
	if object {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte('[')
	}
	var err error
	first := true
	res.ForEach(func(key, value gjson.Result) bool {
		if !first {
			w.buf.WriteByte(',')
		}
		first = false
		if object {
			name, mErr := json.Marshal(w.conv(key.String()))
			if mErr != nil {
				err = mErr
				return false
			}
			w.buf.Write(name)
			w.buf.WriteByte(':')
		}
		err = w.write(value, depth+1)
		return err == nil
	})
	if err != nil {
		return err
	}
	if object {
		w.buf.WriteByte('}')
	} else {
		w.buf.WriteByte(']')
	}
	return nil
}
