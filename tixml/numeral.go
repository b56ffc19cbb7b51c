package tixml

import (
	"bytes"
	"strconv"
	"strings"
)

// parseNumeral accepts the numeral forms TI files use: 0x-prefixed
// hexadecimal or plain decimal.
func parseNumeral(v string) (uint64, error) {
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		return strconv.ParseUint(v[2:], 16, 64)
	}
	return strconv.ParseUint(v, 10, 64)
}

// Byte-order marks that have leaked through the caller's pre-processing.
// CCXML files shipped by TI are known to carry these.
var boms = [][]byte{
	{0x00, 0x00, 0xFE, 0xFF}, // UTF-32 BE, before the UTF-16 prefixes
	{0xFF, 0xFE, 0x00, 0x00}, // UTF-32 LE
	{0xEF, 0xBB, 0xBF},       // UTF-8
	{0xFE, 0xFF},             // UTF-16 BE
	{0xFF, 0xFE},             // UTF-16 LE
}

// checkBOM fails when the document starts with a byte-order mark. Stripping
// is the caller's pre-processing step; parsing a BOM-prefixed document would
// corrupt the first element name, so it is rejected outright.
func checkBOM(data []byte) error {
	for _, bom := range boms {
		if bytes.HasPrefix(data, bom) {
			return schemaErrorf("", "", "",
				"input starts with a byte-order mark; strip it before conversion")
		}
	}
	return nil
}
