package tixml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Raw shapes of a TIXML peripheral module document. Everything of interest
// is carried in attributes.
type moduleElement struct {
	XMLName     xml.Name          `xml:"module"`
	ID          string            `xml:"id,attr"`
	Description string            `xml:"description,attr"`
	Registers   []registerElement `xml:"register"`
}

type registerElement struct {
	ID          string            `xml:"id,attr"`
	Acronym     string            `xml:"acronym,attr"`
	Description string            `xml:"description,attr"`
	Offset      string            `xml:"offset,attr"`
	Width       string            `xml:"width,attr"`
	RWAccess    string            `xml:"rwaccess,attr"`
	ResetVal    string            `xml:"resetval,attr"`
	Bitfields   []bitfieldElement `xml:"bitfield"`
}

type bitfieldElement struct {
	ID          string           `xml:"id,attr"`
	Description string           `xml:"description,attr"`
	Range       string           `xml:"range,attr"`
	Begin       string           `xml:"begin,attr"`
	End         string           `xml:"end,attr"`
	Width       string           `xml:"width,attr"`
	RWAccess    string           `xml:"rwaccess,attr"`
	ResetVal    string           `xml:"resetval,attr"`
	Bitenums    []bitenumElement `xml:"bitenum"`
}

type bitenumElement struct {
	ID          string `xml:"id,attr"`
	Value       string `xml:"value,attr"`
	Token       string `xml:"token,attr"`
	Description string `xml:"description,attr"`
}

// ParsePeripheral parses one TIXML peripheral module document into a
// PeripheralDef. Structural defects (missing required attributes, unknown
// access tokens, a leading BOM) fail with a SchemaError naming the offending
// element. Semantic geometry checks (width ranges, field bounds) are left
// to the validator so that parsing stays independently testable.
func ParsePeripheral(r io.Reader) (*PeripheralDef, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := checkBOM(data); err != nil {
		return nil, err
	}

	var mod moduleElement
	if err := xml.Unmarshal(data, &mod); err != nil {
		return nil, schemaErrorf("", "", "", "malformed peripheral document: %v", err)
	}
	if mod.ID == "" {
		return nil, schemaErrorf("", "", "", "module element has no id attribute")
	}

	def := &PeripheralDef{
		Name:        mod.ID,
		Description: mod.Description,
		Registers:   make([]RegisterDef, 0, len(mod.Registers)),
	}
	for i, raw := range mod.Registers {
		reg, err := convertRegister(mod.ID, i, raw)
		if err != nil {
			return nil, err
		}
		def.Registers = append(def.Registers, reg)
	}
	return def, nil
}

func convertRegister(peripheral string, index int, raw registerElement) (RegisterDef, error) {
	regName := raw.ID
	if regName == "" {
		return RegisterDef{}, schemaErrorf(peripheral, fmt.Sprintf("#%d", index), "",
			"register has no id attribute")
	}
	if raw.Offset == "" {
		return RegisterDef{}, schemaErrorf(peripheral, regName, "", "register has no offset attribute")
	}
	offset, err := parseNumeral(raw.Offset)
	if err != nil {
		return RegisterDef{}, schemaErrorf(peripheral, regName, "", "bad register offset %q", raw.Offset)
	}
	if raw.Width == "" {
		return RegisterDef{}, schemaErrorf(peripheral, regName, "", "register has no width attribute")
	}
	width, err := parseNumeral(raw.Width)
	if err != nil {
		return RegisterDef{}, schemaErrorf(peripheral, regName, "", "bad register width %q", raw.Width)
	}
	access, ok := parseAccess(raw.RWAccess)
	if !ok {
		return RegisterDef{}, schemaErrorf(peripheral, regName, "", "unknown rwaccess token %q", raw.RWAccess)
	}

	reg := RegisterDef{
		Name:          regName,
		Description:   raw.Description,
		AddressOffset: offset,
		Width:         width,
		Access:        access,
		Fields:        make([]FieldDef, 0, len(raw.Bitfields)),
	}
	// The register-level resetval is the reset base; bitfield resetvals
	// are OR-ed on top of it.
	if raw.ResetVal != "" {
		rv, err := parseNumeral(raw.ResetVal)
		if err != nil {
			return RegisterDef{}, schemaErrorf(peripheral, regName, "", "bad register resetval %q", raw.ResetVal)
		}
		reg.ResetValue = &rv
	}
	for i, rawField := range raw.Bitfields {
		field, err := convertField(peripheral, regName, i, reg.Access, rawField)
		if err != nil {
			return RegisterDef{}, err
		}
		// Field reset values accumulate into the register reset value,
		// each shifted to its field position.
		if field.ResetValue != nil && field.BitOffset < 64 {
			shifted := *field.ResetValue << field.BitOffset
			if reg.ResetValue == nil {
				reg.ResetValue = new(uint64)
			}
			*reg.ResetValue |= shifted
		}
		reg.Fields = append(reg.Fields, field)
	}
	return reg, nil
}

func convertField(peripheral, register string, index int, inherited Access, raw bitfieldElement) (FieldDef, error) {
	fieldName := raw.ID
	if fieldName == "" {
		return FieldDef{}, schemaErrorf(peripheral, register, fmt.Sprintf("#%d", index),
			"bitfield has no id attribute")
	}
	// The end attribute is the field's least-significant bit position.
	if raw.End == "" {
		return FieldDef{}, schemaErrorf(peripheral, register, fieldName, "bitfield has no end attribute")
	}
	offset, err := parseNumeral(raw.End)
	if err != nil {
		return FieldDef{}, schemaErrorf(peripheral, register, fieldName, "bad bitfield end %q", raw.End)
	}
	if raw.Width == "" {
		return FieldDef{}, schemaErrorf(peripheral, register, fieldName, "bitfield has no width attribute")
	}
	width, err := parseNumeral(raw.Width)
	if err != nil {
		return FieldDef{}, schemaErrorf(peripheral, register, fieldName, "bad bitfield width %q", raw.Width)
	}
	access, ok := parseAccess(raw.RWAccess)
	if !ok {
		return FieldDef{}, schemaErrorf(peripheral, register, fieldName, "unknown rwaccess token %q", raw.RWAccess)
	}
	if access == AccessUnspecified {
		access = inherited
	}

	field := FieldDef{
		Name:        fieldName,
		Description: fieldDescription(raw),
		BitOffset:   offset,
		BitWidth:    width,
		BitRange:    raw.Range,
		Access:      access,
		Enums:       make([]EnumDef, 0, len(raw.Bitenums)),
	}
	if raw.ResetVal != "" {
		rv, err := parseNumeral(raw.ResetVal)
		if err != nil {
			return FieldDef{}, schemaErrorf(peripheral, register, fieldName, "bad bitfield resetval %q", raw.ResetVal)
		}
		field.ResetValue = &rv
	}
	for i, rawEnum := range raw.Bitenums {
		if rawEnum.ID == "" {
			return FieldDef{}, schemaErrorf(peripheral, register, fieldName,
				"bitenum #%d has no id attribute", i)
		}
		if rawEnum.Value == "" {
			return FieldDef{}, schemaErrorf(peripheral, register, fieldName,
				"bitenum %s has no value attribute", rawEnum.ID)
		}
		value, err := parseNumeral(rawEnum.Value)
		if err != nil {
			return FieldDef{}, schemaErrorf(peripheral, register, fieldName,
				"bad bitenum value %q for %s", rawEnum.Value, rawEnum.ID)
		}
		field.Enums = append(field.Enums, EnumDef{
			Name:        rawEnum.ID,
			Value:       value,
			Description: rawEnum.Description,
		})
	}
	return field, nil
}

// fieldDescription prefixes the description with the declared bit range,
// matching the [begin:end] convention register maps are documented with.
func fieldDescription(raw bitfieldElement) string {
	if raw.Description == "" {
		return ""
	}
	if raw.Begin != "" && raw.End != "" {
		return fmt.Sprintf("[%s:%s] %s", raw.Begin, raw.End, raw.Description)
	}
	return raw.Description
}
