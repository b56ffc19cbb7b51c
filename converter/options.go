package converter

import (
	"fmt"
	"io"
	"os"

	"omibyte.io/tixml2svd/targets"
)

// DuplicateOffsetPolicy decides what to do when two registers of one
// peripheral share an address offset.
type DuplicateOffsetPolicy int

const (
	// DuplicateWarn prints a diagnostic and keeps converting (default).
	DuplicateWarn DuplicateOffsetPolicy = iota
	// DuplicateError fails validation.
	DuplicateError
)

// ParseDuplicateOffsetPolicy maps the CLI spelling to a policy.
func ParseDuplicateOffsetPolicy(v string) (DuplicateOffsetPolicy, error) {
	switch v {
	case "warn":
		return DuplicateWarn, nil
	case "error":
		return DuplicateError, nil
	}
	return 0, fmt.Errorf("unknown duplicate-offsets policy %q (want warn or error)", v)
}

// Options customizes one conversion run.
type Options struct {
	// PeripheralOnly expects a peripheral module file instead of a device
	// file and emits a single <peripheral> document.
	PeripheralOnly bool

	// CPUIndex selects which <cpu> of a multi-core device file to read
	// peripherals from.
	CPUIndex int

	// DuplicateOffsets selects the duplicate-register-offset policy.
	DuplicateOffsets DuplicateOffsetPolicy

	// Sanitize squashes characters code generators choke on out of
	// emitted names.
	Sanitize bool

	// NoDeviceInfo suppresses the placeholder device header fields.
	NoDeviceInfo bool

	// CPU supplies the <cpu> metadata TIXML files omit. Nil leaves a
	// marker comment in the output instead.
	CPU *targets.CPUInfo

	// Silent suppresses progress diagnostics; Verbose adds more of them.
	Silent  bool
	Verbose int

	// Diag receives warnings and progress output. Nil means os.Stderr.
	Diag io.Writer
}

func (o *Options) diag() io.Writer {
	if o.Diag != nil {
		return o.Diag
	}
	return os.Stderr
}

func (o *Options) diagf(format string, args ...interface{}) {
	if o.Silent {
		return
	}
	fmt.Fprintf(o.diag(), format+"\n", args...)
}

func (o *Options) verbosef(level int, format string, args ...interface{}) {
	if o.Silent || o.Verbose < level {
		return
	}
	fmt.Fprintf(o.diag(), format+"\n", args...)
}
