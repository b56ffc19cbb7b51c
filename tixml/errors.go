package tixml

import (
	"fmt"
	"strings"
)

// SchemaError reports malformed or incomplete TIXML structure. Context
// names the offending element so the upstream file can be fixed: TI's own
// descriptor files contain defects and the converter never papers over them.
type SchemaError struct {
	// Peripheral, Register and Field identify the element; each may be a
	// positional placeholder like "register #3" when the element has no id.
	Peripheral string
	Register   string
	Field      string
	Msg        string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("tixml: ")
	b.WriteString(e.Msg)
	if ctx := e.context(); ctx != "" {
		fmt.Fprintf(&b, " (%s)", ctx)
	}
	return b.String()
}

func (e *SchemaError) context() string {
	var parts []string
	if e.Peripheral != "" {
		parts = append(parts, "peripheral "+e.Peripheral)
	}
	if e.Register != "" {
		parts = append(parts, "register "+e.Register)
	}
	if e.Field != "" {
		parts = append(parts, "field "+e.Field)
	}
	return strings.Join(parts, ", ")
}

func schemaErrorf(peripheral, register, field, format string, args ...interface{}) error {
	return &SchemaError{
		Peripheral: peripheral,
		Register:   register,
		Field:      field,
		Msg:        fmt.Sprintf(format, args...),
	}
}
