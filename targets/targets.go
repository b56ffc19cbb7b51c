// Package targets catalogs the CMSIS CPU metadata TIXML descriptors omit.
// SVD consumers want a <cpu> section, but TI's files say nothing about the
// core, so the converter looks it up here (or loads a user-supplied header
// file) instead of guessing.
package targets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed cpus.yaml
var rawCPUs []byte

var cpus []CPUInfo

var ErrUnknownDevice = errors.New("no cpu metadata for device")

func init() {
	if err := yaml.Unmarshal(rawCPUs, &cpus); err != nil {
		panic(fmt.Sprintf("targets: bad embedded cpus.yaml: %v", err))
	}
}

// CPUInfo describes one processor core the way SVD's <cpu> element wants it.
type CPUInfo struct {
	Series              string   `yaml:"series"`
	Devices             []string `yaml:"devices"`
	Name                string   `yaml:"name"`
	Revision            string   `yaml:"revision"`
	Endian              string   `yaml:"endian"`
	MPUPresent          bool     `yaml:"mpuPresent"`
	FPUPresent          bool     `yaml:"fpuPresent"`
	NVICPrioBits        uint32   `yaml:"nvicPrioBits"`
	VendorSystickConfig bool     `yaml:"vendorSystickConfig"`
}

// All returns the embedded catalog.
func All() []CPUInfo {
	return cpus
}

// FindBySeries looks up a catalog entry by its series key.
func FindBySeries(series string) (CPUInfo, error) {
	series = strings.ToLower(series)
	for _, cpu := range cpus {
		if cpu.Series == series {
			return cpu, nil
		}
	}
	return CPUInfo{}, fmt.Errorf("%w: series %q", ErrUnknownDevice, series)
}

// FindByDevice matches a device id (for example CC2650F128) against the
// catalog's device-name prefixes.
func FindByDevice(device string) (CPUInfo, error) {
	device = strings.ToLower(device)
	for _, cpu := range cpus {
		for _, prefix := range cpu.Devices {
			if strings.HasPrefix(device, prefix) {
				return cpu, nil
			}
		}
	}
	return CPUInfo{}, fmt.Errorf("%w: %q", ErrUnknownDevice, device)
}

// Load reads CPU metadata from a user-supplied YAML header file, for parts
// the embedded catalog does not cover.
func Load(path string) (CPUInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CPUInfo{}, err
	}
	var cpu CPUInfo
	if err := yaml.Unmarshal(data, &cpu); err != nil {
		return CPUInfo{}, fmt.Errorf("bad cpu header file %s: %w", path, err)
	}
	if cpu.Name == "" {
		return CPUInfo{}, fmt.Errorf("cpu header file %s declares no cpu name", path)
	}
	return cpu, nil
}
