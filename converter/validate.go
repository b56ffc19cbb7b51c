package converter

import (
	"errors"

	"golang.org/x/exp/slices"

	"omibyte.io/tixml2svd/tixml"
)

// Register sizes SVD consumers accept.
var supportedWidths = []uint64{8, 16, 32, 64}

// Validate checks the register and field geometry of a resolved device
// model. Unlike parsing and resolution, validation is exhaustive: every
// violation across the whole model is collected so the user gets the full
// defect list in one pass, then the joined error aborts the run.
func Validate(opts *Options, model *Model) error {
	var errs []error
	seen := make(map[string]bool)
	for _, p := range model.Peripherals {
		// Shared definitions are validated once; a second instance of the
		// same module cannot add new defects.
		key := normalizeHref(p.Instance.ModulePath)
		if p.Instance.ModulePath != "" && seen[key] {
			continue
		}
		seen[key] = true
		errs = append(errs, validateDef(opts, p.Def)...)
	}
	return errors.Join(errs...)
}

// ValidatePeripheral checks a single module definition (peripheral-only
// mode).
func ValidatePeripheral(opts *Options, def *tixml.PeripheralDef) error {
	return errors.Join(validateDef(opts, def)...)
}

func validateDef(opts *Options, def *tixml.PeripheralDef) []error {
	var errs []error
	firstAtOffset := make(map[uint64]string)
	for _, reg := range def.Registers {
		if !slices.Contains(supportedWidths, reg.Width) {
			errs = append(errs, &InvalidWidthError{
				Peripheral: def.Name,
				Register:   reg.Name,
				Width:      reg.Width,
			})
		}

		if other, ok := firstAtOffset[reg.AddressOffset]; ok {
			dup := &DuplicateOffsetError{
				Peripheral: def.Name,
				Register:   reg.Name,
				Other:      other,
				Offset:     reg.AddressOffset,
			}
			// Aliased registers are a known-legitimate TI pattern, so the
			// default policy only warns.
			if opts.DuplicateOffsets == DuplicateError {
				errs = append(errs, dup)
			} else {
				opts.diagf("warning: %v", dup)
			}
		} else {
			firstAtOffset[reg.AddressOffset] = reg.Name
		}

		for _, field := range reg.Fields {
			// Phrased so that absurd declared offsets cannot wrap the sum
			// past the comparison.
			if field.BitWidth > reg.Width || field.BitOffset > reg.Width-field.BitWidth {
				errs = append(errs, &FieldOverflowError{
					Peripheral: def.Name,
					Register:   reg.Name,
					Field:      field.Name,
					Overflow:   field.BitOffset + field.BitWidth - reg.Width,
				})
			}
			if field.ResetValue != nil && field.BitWidth < 64 && *field.ResetValue>>field.BitWidth != 0 {
				errs = append(errs, &ResetOverflowError{
					Peripheral: def.Name,
					Register:   reg.Name,
					Field:      field.Name,
					ResetValue: *field.ResetValue,
				})
			}
		}
	}
	return errs
}
