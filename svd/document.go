package svd

import (
	"bytes"
	"encoding/xml"
	"io"
)

// Marshal serializes an SVD element tree with the fixed formatting the
// converter guarantees: XML declaration, two-space indentation, trailing
// newline. The same tree always yields byte-identical output, keeping
// regenerated files diffable.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Write marshals v and writes it to w in one piece, so a marshal failure
// leaves w untouched.
func Write(w io.Writer, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
