// Package svd models the subset of CMSIS-SVD this converter emits:
// device, peripherals, registers, fields and enumerated values.
package svd

import "encoding/xml"

type DeviceElement struct {
	XMLName          xml.Name           `xml:"device"`
	SchemaVersion    string             `xml:"schemaVersion,attr,omitempty"`
	Name             string             `xml:"name"`
	Version          string             `xml:"version,omitempty"`
	Description      string             `xml:"description,omitempty"`
	CPUNote          string             `xml:",comment"`
	CPU              *CPUElement        `xml:"cpu,omitempty"`
	AddressableWidth uint32             `xml:"addressUnitBits,omitempty"`
	BitWidth         uint32             `xml:"width,omitempty"`
	RegisterSize     uint32             `xml:"size,omitempty"`
	ResetValue       *Integer           `xml:"resetValue,omitempty"`
	ResetMask        *Integer           `xml:"resetMask,omitempty"`
	Peripherals      PeripheralsElement `xml:"peripherals"`
}

type CPUElement struct {
	Name                string `xml:"name"`
	Revision            string `xml:"revision"`
	Endian              string `xml:"endian"`
	MPUPresent          bool   `xml:"mpuPresent"`
	FPUPresent          bool   `xml:"fpuPresent"`
	NVICPriorityBits    uint32 `xml:"nvicPrioBits"`
	VendorSystickConfig bool   `xml:"vendorSystickConfig"`
}

type PeripheralsElement struct {
	Elements []PeripheralElement `xml:"peripheral"`
}

type PeripheralElement struct {
	XMLName      xml.Name             `xml:"peripheral"`
	Name         string               `xml:"name"`
	Description  string               `xml:"description,omitempty"`
	BaseAddress  *Integer             `xml:"baseAddress,omitempty"`
	AddressBlock *AddressBlockElement `xml:"addressBlock,omitempty"`
	Registers    *RegistersElement    `xml:"registers,omitempty"`
}

type AddressBlockElement struct {
	Offset Integer `xml:"offset"`
	Size   Integer `xml:"size"`
	Usage  string  `xml:"usage"`
}

type RegistersElement struct {
	Elements []RegisterElement `xml:"register"`
}

type RegisterElement struct {
	Name          string         `xml:"name"`
	Description   string         `xml:"description,omitempty"`
	AddressOffset Integer        `xml:"addressOffset"`
	Size          uint32         `xml:"size"`
	Access        string         `xml:"access,omitempty"`
	ResetValue    Integer        `xml:"resetValue"`
	Fields        *FieldsElement `xml:"fields,omitempty"`
}

type FieldsElement struct {
	Elements []FieldElement `xml:"field"`
}

type FieldElement struct {
	Name             string                   `xml:"name"`
	Description      string                   `xml:"description,omitempty"`
	BitOffset        uint32                   `xml:"bitOffset"`
	BitWidth         uint32                   `xml:"bitWidth"`
	BitRange         string                   `xml:"bitRange,omitempty"`
	Access           string                   `xml:"access,omitempty"`
	EnumeratedValues *EnumeratedValuesElement `xml:"enumeratedValues,omitempty"`
}

type EnumeratedValuesElement struct {
	Elements []EnumeratedValueElement `xml:"enumeratedValue"`
}

type EnumeratedValueElement struct {
	Name        string  `xml:"name"`
	Description string  `xml:"description,omitempty"`
	Value       Integer `xml:"value"`
}
