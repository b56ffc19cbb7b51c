package converter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"omibyte.io/tixml2svd/tixml"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertDispatchesDeviceMode(t *testing.T) {
	dir := t.TempDir()
	devicePath := writeFile(t, dir, "device.xml", testDeviceSrc)
	writeFile(t, dir, "uart.xml", uartModule)

	var out bytes.Buffer
	if err := Convert(Options{Silent: true}, devicePath, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != testDeviceGolden {
		t.Errorf("device output mismatch:\ngot:\n%s", out.String())
	}
}

func TestConvertDispatchesPeripheralMode(t *testing.T) {
	dir := t.TempDir()
	modulePath := writeFile(t, dir, "uart.xml", uartModule)

	var out bytes.Buffer
	if err := Convert(Options{Silent: true, PeripheralOnly: true}, modulePath, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "<peripheral>") || strings.Contains(out.String(), "<device") {
		t.Errorf("peripheral mode emitted wrong document shape:\n%s", out.String())
	}
}

func TestConvertModuleFileWithBOM(t *testing.T) {
	dir := t.TempDir()
	devicePath := writeFile(t, dir, "device.xml", testDeviceSrc)
	writeFile(t, dir, "uart.xml", "\xEF\xBB\xBF"+uartModule)

	var out bytes.Buffer
	err := Convert(Options{Silent: true}, devicePath, &out)
	var schemaErr *tixml.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("got %v, want SchemaError for BOM in module file", err)
	}
	if out.Len() != 0 {
		t.Error("output written despite failure")
	}
}

func TestConvertMissingInput(t *testing.T) {
	var out bytes.Buffer
	err := Convert(Options{Silent: true}, filepath.Join(t.TempDir(), "nope.xml"), &out)
	if err == nil {
		t.Fatal("missing input accepted")
	}
}
