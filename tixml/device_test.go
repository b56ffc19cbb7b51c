package tixml

import (
	"errors"
	"strings"
	"testing"
)

const testDevice = `<device id="CC2650F128" description="SimpleLink Wireless MCU">
  <cpu id="Cortex_M3">
    <instance id="UART0" href="Modules/uart.xml" baseaddr="0x40001000" endaddr="0x40001FFF" size="0x1000"/>
    <instance id="UART1" href="Modules/uart.xml" baseaddr="0x4000B000" size="0x1000"/>
    <instance href="Modules/internal.xml" baseaddr="0x50000000"/>
    <instance id="PRCM" href="Modules/prcm.xml" baseaddr="0x40082000" size="0x1000"/>
  </cpu>
  <cpu id="Cortex_M0">
    <instance id="RFC" href="Modules/rfc.xml" baseaddr="0x21000000" size="0x1000"/>
  </cpu>
</device>`

func TestParseDevice(t *testing.T) {
	dev, err := ParseDevice(strings.NewReader(testDevice), 0)
	if err != nil {
		t.Fatal(err)
	}

	if dev.Name != "CC2650F128" {
		t.Errorf("name = %q", dev.Name)
	}
	if dev.Description != "SimpleLink Wireless MCU" {
		t.Errorf("description = %q", dev.Description)
	}

	// The id-less instance is TI-internal and dropped; everything else is
	// kept in declaration order, duplicates included.
	var names []string
	for _, inst := range dev.Instances {
		names = append(names, inst.Name)
	}
	if got := strings.Join(names, ","); got != "UART0,UART1,PRCM" {
		t.Errorf("instances = %s, want UART0,UART1,PRCM", got)
	}

	if dev.Instances[0].BaseAddress != 0x40001000 {
		t.Errorf("UART0 base = 0x%X", dev.Instances[0].BaseAddress)
	}
	if dev.Instances[0].ModulePath != "Modules/uart.xml" {
		t.Errorf("UART0 path = %q", dev.Instances[0].ModulePath)
	}
	if dev.Instances[0].Size != 0x1000 {
		t.Errorf("UART0 size = 0x%X", dev.Instances[0].Size)
	}
}

func TestParseDeviceSecondCPU(t *testing.T) {
	dev, err := ParseDevice(strings.NewReader(testDevice), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(dev.Instances) != 1 || dev.Instances[0].Name != "RFC" {
		t.Errorf("cpu 1 instances = %+v", dev.Instances)
	}
}

func TestParseDeviceErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		cpuIndex int
		want     string
	}{
		{
			"cpu out of range",
			testDevice,
			2,
			"cpu 2 requested",
		},
		{
			"instance without baseaddr",
			`<device id="D"><cpu id="C"><instance id="X" href="x.xml"/></cpu></device>`,
			0,
			"no baseaddr attribute",
		},
		{
			"instance without href",
			`<device id="D"><cpu id="C"><instance id="X" baseaddr="0x0"/></cpu></device>`,
			0,
			"no href attribute",
		},
		{
			"bad baseaddr",
			`<device id="D"><cpu id="C"><instance id="X" href="x.xml" baseaddr="zero"/></cpu></device>`,
			0,
			"bad instance baseaddr",
		},
		{
			"no cpus",
			`<device id="D"></device>`,
			0,
			"0 cpu(s)",
		},
		{
			"wrong root element",
			`<module id="P"></module>`,
			0,
			"malformed device document",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDevice(strings.NewReader(tc.src), tc.cpuIndex)
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("got %v, want SchemaError", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestParseDeviceRejectsBOM(t *testing.T) {
	_, err := ParseDevice(strings.NewReader("\xEF\xBB\xBF"+testDevice), 0)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("got %v, want SchemaError", err)
	}
}
