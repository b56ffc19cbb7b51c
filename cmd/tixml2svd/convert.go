package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"omibyte.io/tixml2svd/converter"
	"omibyte.io/tixml2svd/targets"
)

var opts = struct {
	input        string
	output       string
	header       string
	series       string
	duplicates   string
	cpunum       int
	peripheral   bool
	sanitize     bool
	noDeviceInfo bool
	verbose      int
	silent       bool
}{}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "input xml file")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	flags.StringVar(&opts.header, "header", "", "optional yaml file supplying cpu metadata")
	flags.StringVar(&opts.series, "series", "", "pick cpu metadata for a device series from the built-in catalog")
	flags.StringVar(&opts.duplicates, "duplicate-offsets", "warn", "policy for registers sharing an address offset (warn|error)")
	flags.IntVarP(&opts.cpunum, "cpunum", "c", 0, "select cpu number, starting with 0")
	flags.BoolVarP(&opts.peripheral, "peripheral", "p", false, "compile single peripheral file")
	flags.BoolVarP(&opts.sanitize, "sanitize", "z", false, "sanitize file for code generation or picky postprocessors")
	flags.BoolVarP(&opts.noDeviceInfo, "no-device-info", "x", false, "do not generate fake device info in file header")
	flags.CountVarP(&opts.verbose, "verbose", "v", "be more verbose")
	flags.BoolVarP(&opts.silent, "silent", "s", false, "be silent")
	rootCmd.MarkFlagRequired("input")
}

func run() error {
	convOpts := converter.Options{
		PeripheralOnly: opts.peripheral,
		CPUIndex:       opts.cpunum,
		Sanitize:       opts.sanitize,
		NoDeviceInfo:   opts.noDeviceInfo,
		Silent:         opts.silent,
		Verbose:        opts.verbose,
	}

	policy, err := converter.ParseDuplicateOffsetPolicy(opts.duplicates)
	if err != nil {
		return err
	}
	convOpts.DuplicateOffsets = policy

	if opts.header != "" && opts.series != "" {
		return errors.New("--header and --series are mutually exclusive")
	}
	if opts.header != "" {
		cpu, err := targets.Load(opts.header)
		if err != nil {
			return err
		}
		convOpts.CPU = &cpu
	}
	if opts.series != "" {
		cpu, err := targets.FindBySeries(opts.series)
		if err != nil {
			return err
		}
		convOpts.CPU = &cpu
	}

	if !opts.silent {
		fmt.Fprintf(os.Stderr, "Processing file: %s\n", opts.input)
	}

	f, err := os.Open(opts.input)
	if err != nil {
		return err
	}
	defer f.Close()

	in, err := skipBOM(f)
	if err != nil {
		return err
	}

	// Convert into a buffer first so a failed run writes nothing.
	var buf bytes.Buffer
	if opts.peripheral {
		err = converter.ConvertPeripheral(&convOpts, in, &buf)
	} else {
		err = converter.ConvertDevice(&convOpts, in, converter.NewDirResolver(opts.input), &buf)
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(opts.output, buf.Bytes(), 0644)
}

// skipBOM strips a UTF-8 byte-order mark from the input. Some CCXML files
// ship with one, and XML parsing would otherwise fail. Other Unicode
// encodings are rejected outright.
func skipBOM(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	prefix, err := br.Peek(3)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(prefix) >= 2 {
		switch {
		case prefix[0] == 0xEF && prefix[1] == 0xBB && len(prefix) >= 3 && prefix[2] == 0xBF:
			br.Discard(3)
		case prefix[0] == 0xFE && prefix[1] == 0xFF,
			prefix[0] == 0xFF && prefix[1] == 0xFE,
			prefix[0] == 0x00 && prefix[1] == 0x00:
			return nil, errors.New("unsupported Unicode file encoding; convert the input to UTF-8 first")
		}
	}
	return br, nil
}
