package targets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindByDevice(t *testing.T) {
	cpu, err := FindByDevice("CC2650F128")
	if err != nil {
		t.Fatal(err)
	}
	if cpu.Name != "CM3" || cpu.Series != "cc26x0" {
		t.Errorf("cpu = %+v", cpu)
	}

	if _, err := FindByDevice("STM32F407"); !errors.Is(err, ErrUnknownDevice) {
		t.Errorf("got %v, want ErrUnknownDevice", err)
	}
}

func TestFindBySeries(t *testing.T) {
	cpu, err := FindBySeries("CC13x2")
	if err != nil {
		t.Fatal(err)
	}
	if cpu.Name != "CM4" || !cpu.FPUPresent {
		t.Errorf("cpu = %+v", cpu)
	}

	if _, err := FindBySeries("nope"); !errors.Is(err, ErrUnknownDevice) {
		t.Errorf("got %v, want ErrUnknownDevice", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.yaml")
	const src = `name: CM0
revision: r0p0
endian: little
mpuPresent: false
fpuPresent: false
nvicPrioBits: 2
vendorSystickConfig: false
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cpu, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cpu.Name != "CM0" || cpu.NVICPrioBits != 2 {
		t.Errorf("cpu = %+v", cpu)
	}
}

func TestLoadRejectsHeaderWithoutName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.yaml")
	if err := os.WriteFile(path, []byte("endian: little\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("header without cpu name accepted")
	}
}

func TestCatalogSane(t *testing.T) {
	if len(All()) == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, cpu := range All() {
		if cpu.Series == "" || cpu.Name == "" || len(cpu.Devices) == 0 {
			t.Errorf("incomplete catalog entry: %+v", cpu)
		}
	}
}
