// Package tixml parses Texas-Instruments device and peripheral descriptor
// files. TI ships two document shapes: a device descriptor listing peripheral
// instances (<device><cpu><instance .../></cpu></device>) and a peripheral
// module descriptor holding the register map (<module><register><bitfield>).
package tixml

// Access is a register or field access mode, using the CMSIS-SVD vocabulary.
type Access int

const (
	AccessUnspecified Access = iota
	AccessReadOnly
	AccessWriteOnly
	AccessReadWrite
)

func (a Access) String() string {
	switch a {
	case AccessReadOnly:
		return "read-only"
	case AccessWriteOnly:
		return "write-only"
	case AccessReadWrite:
		return "read-write"
	}
	return ""
}

// EnumDef is one named value of a bit field (TIXML <bitenum>).
type EnumDef struct {
	Name        string
	Value       uint64
	Description string
}

// FieldDef is one bit field within a register.
//
// Geometry is carried as uint64 exactly as declared; narrowing happens only
// after validation, so an absurd declared value can never wrap into a
// plausible one and dodge its validation error.
type FieldDef struct {
	Name        string
	Description string
	BitOffset   uint64
	BitWidth    uint64
	// BitRange is the declared range attribute, passed through verbatim.
	BitRange string
	// Access inherits the register's access mode when the bitfield carries
	// no rwaccess attribute of its own.
	Access     Access
	ResetValue *uint64
	Enums      []EnumDef
}

// RegisterDef is one register within a peripheral module.
type RegisterDef struct {
	Name          string
	Description   string
	AddressOffset uint64
	Width         uint64
	Access        Access
	// ResetValue starts from the register's own resetval attribute and
	// accumulates the bitfield resetvals, each shifted to its field
	// position. Nil when neither register nor any bitfield declared one.
	ResetValue *uint64
	Fields     []FieldDef
}

// PeripheralDef is the register layout of one peripheral module,
// independent of where a device maps it. Immutable once parsed; a single
// definition may be shared by several instances across a device.
type PeripheralDef struct {
	Name        string
	Description string
	Registers   []RegisterDef
	// SourcePath is where the definition was loaded from, for diagnostics.
	// Empty when parsed from a non-file source.
	SourcePath string
}

// PeripheralInstance is one named, base-addressed occurrence of a
// peripheral module within a device.
type PeripheralInstance struct {
	Name        string
	BaseAddress uint64
	// ModulePath is the href attribute: the module descriptor's path
	// relative to the device file's directory.
	ModulePath string
	// Size is the address-block size in bytes, 0 when the device file
	// declares none.
	Size uint64
}

// Device is a parsed device descriptor: pass-through header metadata plus
// the peripheral instances of one selected CPU, in declaration order.
type Device struct {
	Name        string
	Description string
	Instances   []PeripheralInstance
}
