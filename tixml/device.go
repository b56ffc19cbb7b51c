package tixml

import (
	"encoding/xml"
	"io"
)

type deviceElement struct {
	XMLName     xml.Name     `xml:"device"`
	ID          string       `xml:"id,attr"`
	Description string       `xml:"description,attr"`
	CPUs        []cpuElement `xml:"cpu"`
}

type cpuElement struct {
	ID        string            `xml:"id,attr"`
	Instances []instanceElement `xml:"instance"`
}

type instanceElement struct {
	ID       string `xml:"id,attr"`
	HRef     string `xml:"href,attr"`
	BaseAddr string `xml:"baseaddr,attr"`
	EndAddr  string `xml:"endaddr,attr"`
	Size     string `xml:"size,attr"`
}

// ParseDevice parses a TIXML device descriptor and returns the peripheral
// instances of CPU number cpuIndex, in declaration order. Multi-core TI
// parts describe each core's bus view in its own <cpu> element; instances
// are never merged across cores.
//
// Duplicate instance names are preserved: a device legitimately maps the
// same module twice (UART0/UART1 pointing at one module file).
func ParseDevice(r io.Reader, cpuIndex int) (*Device, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := checkBOM(data); err != nil {
		return nil, err
	}

	var dev deviceElement
	if err := xml.Unmarshal(data, &dev); err != nil {
		return nil, schemaErrorf("", "", "", "malformed device document: %v", err)
	}
	if cpuIndex < 0 || cpuIndex >= len(dev.CPUs) {
		return nil, schemaErrorf("", "", "",
			"device describes %d cpu(s), cpu %d requested", len(dev.CPUs), cpuIndex)
	}

	out := &Device{
		Name:        dev.ID,
		Description: dev.Description,
	}
	for _, raw := range dev.CPUs[cpuIndex].Instances {
		// Instances without an id are TI-internal bookkeeping, not
		// peripherals; skip them.
		if raw.ID == "" {
			continue
		}
		if raw.BaseAddr == "" {
			return nil, schemaErrorf(raw.ID, "", "", "instance has no baseaddr attribute")
		}
		base, err := parseNumeral(raw.BaseAddr)
		if err != nil {
			return nil, schemaErrorf(raw.ID, "", "", "bad instance baseaddr %q", raw.BaseAddr)
		}
		if raw.HRef == "" {
			return nil, schemaErrorf(raw.ID, "", "", "instance has no href attribute")
		}
		inst := PeripheralInstance{
			Name:        raw.ID,
			BaseAddress: base,
			ModulePath:  raw.HRef,
		}
		if raw.Size != "" {
			size, err := parseNumeral(raw.Size)
			if err != nil {
				return nil, schemaErrorf(raw.ID, "", "", "bad instance size %q", raw.Size)
			}
			inst.Size = size
		}
		out.Instances = append(out.Instances, inst)
	}
	return out, nil
}
