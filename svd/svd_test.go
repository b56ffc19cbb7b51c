package svd

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
)

func TestIntegerMarshal(t *testing.T) {
	type doc struct {
		XMLName xml.Name `xml:"doc"`
		Value   Integer  `xml:"value"`
	}
	out, err := xml.Marshal(doc{Value: 0x40001000})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(out); got != "<doc><value>0x40001000</value></doc>" {
		t.Errorf("marshal = %s", got)
	}
}

func TestIntegerUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want Integer
	}{
		{"<v>0x1A</v>", 0x1A},
		{"<v>26</v>", 26},
		{"<v>0</v>", 0},
	}
	for _, tc := range tests {
		var got Integer
		if err := xml.Unmarshal([]byte(tc.in), &got); err != nil {
			t.Errorf("unmarshal %s: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("unmarshal %s = %d, want %d", tc.in, got, tc.want)
		}
	}

	var bad Integer
	if err := xml.Unmarshal([]byte("<v>0xZZ</v>"), &bad); err == nil {
		t.Error("bad numeral accepted")
	}
}

func TestMarshalFormatting(t *testing.T) {
	base := Integer(0x40000000)
	p := PeripheralElement{
		Name:        "WDT",
		BaseAddress: &base,
	}

	out, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	want := xml.Header +
		"<peripheral>\n" +
		"  <name>WDT</name>\n" +
		"  <baseAddress>0x40000000</baseAddress>\n" +
		"</peripheral>\n"
	if string(out) != want {
		t.Errorf("marshal:\ngot:\n%s\nwant:\n%s", out, want)
	}

	// Byte-identical across runs.
	again, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, again) {
		t.Error("marshal output is not deterministic")
	}
}

func TestMarshalOmitsEmptyOptionals(t *testing.T) {
	out, err := Marshal(RegisterElement{
		Name:          "CTL",
		AddressOffset: 0x10,
		Size:          32,
	})
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)
	for _, unwanted := range []string{"<description>", "<access>", "<fields>"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("empty optional %s emitted:\n%s", unwanted, got)
		}
	}
	if !strings.Contains(got, "<resetValue>0x0</resetValue>") {
		t.Errorf("resetValue must always be emitted:\n%s", got)
	}
}
