package converter

import (
	"regexp"

	"omibyte.io/tixml2svd/svd"
	"omibyte.io/tixml2svd/targets"
	"omibyte.io/tixml2svd/tixml"
)

// Placeholder device header for SVD consumers that insist on one. TIXML
// carries none of this, so it is synthesized unless NoDeviceInfo is set.
const (
	schemaVersion   = "1.1"
	placeholderVer  = "1.0"
	addressUnitBits = 8
	defaultBitWidth = 32
	defaultRegSize  = 32
	unknownDevice   = "UNKNOWN"
)

// XML comments must not contain "--", so no flag spellings in the note.
const cpuNotePlacehold = " cpu metadata is not present in TIXML; supply a header file or pick a series "

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// name squashes characters code generators and picky postprocessors choke
// on, when sanitizing is requested.
func (o *Options) name(v string) string {
	if !o.Sanitize {
		return v
	}
	return unsafeNameChars.ReplaceAllString(v, "_")
}

func buildDevice(opts *Options, model *Model) *svd.DeviceElement {
	name := model.Name
	if name == "" {
		name = unknownDevice
	}
	dev := &svd.DeviceElement{
		SchemaVersion: schemaVersion,
		Name:          opts.name(name),
		Description:   model.Description,
	}
	if !opts.NoDeviceInfo {
		dev.Version = placeholderVer
		dev.AddressableWidth = addressUnitBits
		dev.BitWidth = defaultBitWidth
		dev.RegisterSize = defaultRegSize
	}
	cpu := opts.CPU
	if cpu == nil && model.Name != "" {
		// The device id often identifies the family well enough to pick
		// the core from the catalog.
		if found, err := targets.FindByDevice(model.Name); err == nil {
			cpu = &found
		}
	}
	if cpu != nil {
		dev.CPU = &svd.CPUElement{
			Name:                cpu.Name,
			Revision:            cpu.Revision,
			Endian:              cpu.Endian,
			MPUPresent:          cpu.MPUPresent,
			FPUPresent:          cpu.FPUPresent,
			NVICPriorityBits:    cpu.NVICPrioBits,
			VendorSystickConfig: cpu.VendorSystickConfig,
		}
	} else {
		dev.CPUNote = cpuNotePlacehold
	}

	dev.Peripherals.Elements = make([]svd.PeripheralElement, 0, len(model.Peripherals))
	for _, p := range model.Peripherals {
		dev.Peripherals.Elements = append(dev.Peripherals.Elements, buildPeripheral(opts, p))
	}
	return dev
}

func buildPeripheral(opts *Options, p ResolvedInstance) svd.PeripheralElement {
	base := svd.Integer(p.Instance.BaseAddress)
	pe := svd.PeripheralElement{
		Name:        opts.name(p.Instance.Name),
		Description: p.Def.Description,
		BaseAddress: &base,
		Registers:   buildRegisters(opts, p.Def),
	}
	if p.Instance.Size > 0 {
		pe.AddressBlock = &svd.AddressBlockElement{
			Offset: 0,
			Size:   svd.Integer(p.Instance.Size),
			Usage:  "registers",
		}
	}
	return pe
}

// buildFragment wraps a lone module definition in a minimal peripheral
// shell so peripheral-only mode flows through the same emitter path as a
// full device.
func buildFragment(opts *Options, def *tixml.PeripheralDef) svd.PeripheralElement {
	return svd.PeripheralElement{
		Name:        opts.name(def.Name),
		Description: def.Description,
		Registers:   buildRegisters(opts, def),
	}
}

func buildRegisters(opts *Options, def *tixml.PeripheralDef) *svd.RegistersElement {
	if len(def.Registers) == 0 {
		return nil
	}
	regs := &svd.RegistersElement{
		Elements: make([]svd.RegisterElement, 0, len(def.Registers)),
	}
	for _, reg := range def.Registers {
		regs.Elements = append(regs.Elements, buildRegister(opts, reg))
	}
	return regs
}

func buildRegister(opts *Options, reg tixml.RegisterDef) svd.RegisterElement {
	out := svd.RegisterElement{
		Name:          opts.name(reg.Name),
		Description:   reg.Description,
		AddressOffset: svd.Integer(reg.AddressOffset),
		Size:          uint32(reg.Width),
		Access:        reg.Access.String(),
	}
	// svd2rust wants an explicit reset value, so an undeclared one emits 0.
	if reg.ResetValue != nil {
		out.ResetValue = svd.Integer(*reg.ResetValue)
	}
	if len(reg.Fields) > 0 {
		fields := &svd.FieldsElement{Elements: make([]svd.FieldElement, 0, len(reg.Fields))}
		for _, field := range reg.Fields {
			fields.Elements = append(fields.Elements, buildField(opts, field))
		}
		out.Fields = fields
	}
	return out
}

func buildField(opts *Options, field tixml.FieldDef) svd.FieldElement {
	out := svd.FieldElement{
		Name:        opts.name(field.Name),
		Description: field.Description,
		BitOffset:   uint32(field.BitOffset),
		BitWidth:    uint32(field.BitWidth),
		BitRange:    field.BitRange,
		Access:      field.Access.String(),
	}
	if len(field.Enums) > 0 {
		enums := &svd.EnumeratedValuesElement{
			Elements: make([]svd.EnumeratedValueElement, 0, len(field.Enums)),
		}
		for _, e := range field.Enums {
			enums.Elements = append(enums.Elements, svd.EnumeratedValueElement{
				Name:        opts.name(e.Name),
				Description: e.Description,
				Value:       svd.Integer(e.Value),
			})
		}
		out.EnumeratedValues = enums
	}
	return out
}
