package converter

import "fmt"

// MissingFileError reports a peripheral module reference that could not be
// resolved. A device with an unresolvable peripheral cannot produce a
// trustworthy SVD file, so this always aborts the conversion.
type MissingFileError struct {
	Path     string // the unresolved href
	Instance string // the referencing peripheral instance
	Err      error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("cannot load peripheral module %q referenced by instance %s: %v",
		e.Path, e.Instance, e.Err)
}

func (e *MissingFileError) Unwrap() error { return e.Err }

// InvalidWidthError reports a register whose declared bit width is not a
// supported register size. The known real-world trigger is a 33-bit
// register in a TI file; that is upstream corruption to fix at the source,
// never something to coerce.
type InvalidWidthError struct {
	Peripheral string
	Register   string
	Width      uint64
}

func (e *InvalidWidthError) Error() string {
	return fmt.Sprintf("peripheral %s register %s declares unsupported width %d (want 8, 16, 32 or 64)",
		e.Peripheral, e.Register, e.Width)
}

// FieldOverflowError reports a field extending past its register's width.
type FieldOverflowError struct {
	Peripheral string
	Register   string
	Field      string
	// Overflow is how many bits the field extends past the register.
	Overflow uint64
}

func (e *FieldOverflowError) Error() string {
	return fmt.Sprintf("peripheral %s register %s field %s exceeds the register width by %d bit(s)",
		e.Peripheral, e.Register, e.Field, e.Overflow)
}

// ResetOverflowError reports a field reset value that does not fit in the
// field's declared width.
type ResetOverflowError struct {
	Peripheral string
	Register   string
	Field      string
	ResetValue uint64
}

func (e *ResetOverflowError) Error() string {
	return fmt.Sprintf("peripheral %s register %s field %s reset value 0x%X does not fit the field width",
		e.Peripheral, e.Register, e.Field, e.ResetValue)
}

// DuplicateOffsetError reports two registers of one peripheral sharing an
// address offset. Raised only under DuplicateError policy; TI files alias
// registers legitimately, so the default policy warns instead.
type DuplicateOffsetError struct {
	Peripheral string
	Register   string
	Other      string
	Offset     uint64
}

func (e *DuplicateOffsetError) Error() string {
	return fmt.Sprintf("peripheral %s registers %s and %s share address offset 0x%X",
		e.Peripheral, e.Other, e.Register, e.Offset)
}
