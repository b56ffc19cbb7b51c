// Package converter turns TIXML device and peripheral descriptors into
// CMSIS-SVD documents. The pipeline is parse, resolve, validate, emit;
// parsing and resolution fail fast, validation collects everything, and
// nothing is written to the output sink unless the whole run succeeds.
package converter

import (
	"io"
	"os"

	"omibyte.io/tixml2svd/svd"
	"omibyte.io/tixml2svd/tixml"
)

// Convert reads the TIXML document at inputPath and writes its SVD
// rendition to w. This is the mode dispatcher: PeripheralOnly feeds the
// module file straight into validation and emission, otherwise the device
// pipeline runs with module hrefs resolved next to the device file.
func Convert(opts Options, inputPath string, w io.Writer) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if opts.PeripheralOnly {
		return ConvertPeripheral(&opts, f, w)
	}
	return ConvertDevice(&opts, f, NewDirResolver(inputPath), w)
}

// ConvertDevice converts a device descriptor read from r, resolving
// peripheral module references through resolver.
func ConvertDevice(opts *Options, r io.Reader, resolver Resolver, w io.Writer) error {
	dev, err := tixml.ParseDevice(r, opts.CPUIndex)
	if err != nil {
		return err
	}
	model, err := Resolve(opts, dev, resolver)
	if err != nil {
		return err
	}
	if err := Validate(opts, model); err != nil {
		return err
	}
	return svd.Write(w, buildDevice(opts, model))
}

// ConvertPeripheral converts a single peripheral module descriptor read
// from r into an SVD <peripheral> document.
func ConvertPeripheral(opts *Options, r io.Reader, w io.Writer) error {
	def, err := tixml.ParsePeripheral(r)
	if err != nil {
		return err
	}
	if err := ValidatePeripheral(opts, def); err != nil {
		return err
	}
	return svd.Write(w, buildFragment(opts, def))
}
