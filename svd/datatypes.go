package svd

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Integer is an SVD scaledNonNegativeInteger. It marshals as 0x-prefixed
// hexadecimal, the form debuggers display addresses and reset values in,
// and unmarshals from either hexadecimal or decimal.
type Integer uint64

func (h Integer) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(fmt.Sprintf("0x%X", uint64(h)), start)
}

func (h *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) (err error) {
	var v string
	if err = d.DecodeElement(&v, &start); err != nil {
		return err
	}

	var value uint64
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		value, err = strconv.ParseUint(v[2:], 16, 64)
	} else {
		value, err = strconv.ParseUint(v, 10, 64)
	}
	if err != nil {
		return err
	}
	*h = Integer(value)
	return nil
}
