package converter

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"omibyte.io/tixml2svd/tixml"
)

// Resolver opens the peripheral module document an instance's href points
// at. The file-backed implementation is DirResolver; tests substitute an
// in-memory one.
type Resolver interface {
	Resolve(href string) (io.ReadCloser, error)
}

// DirResolver resolves hrefs relative to the directory of the device file,
// which is where TI's descriptors keep their module files.
type DirResolver struct {
	Dir string
}

// NewDirResolver returns a resolver rooted at the directory containing
// devicePath.
func NewDirResolver(devicePath string) DirResolver {
	return DirResolver{Dir: filepath.Dir(devicePath)}
}

func (r DirResolver) Resolve(href string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(r.Dir, filepath.FromSlash(href)))
}

// ResolvedInstance pairs a device's peripheral instance with its shared
// module definition.
type ResolvedInstance struct {
	Instance tixml.PeripheralInstance
	Def      *tixml.PeripheralDef
}

// Model is a fully resolved device: header metadata plus one entry per
// instance, in declaration order.
type Model struct {
	Name        string
	Description string
	Peripherals []ResolvedInstance
}

// cache memoizes parsed module definitions by normalized href, so two
// instances of the same module share one read-only definition instead of
// parsing (or diverging) twice.
type cache struct {
	resolver Resolver
	defs     map[string]*tixml.PeripheralDef
}

func newCache(resolver Resolver) *cache {
	return &cache{
		resolver: resolver,
		defs:     make(map[string]*tixml.PeripheralDef),
	}
}

// normalizeHref folds case and separators so path spellings that name the
// same file share one cache slot.
func normalizeHref(href string) string {
	return path.Clean(strings.ToLower(strings.ReplaceAll(href, "\\", "/")))
}

func (c *cache) load(inst tixml.PeripheralInstance) (*tixml.PeripheralDef, error) {
	key := normalizeHref(inst.ModulePath)
	if def, ok := c.defs[key]; ok {
		return def, nil
	}

	rc, err := c.resolver.Resolve(inst.ModulePath)
	if err != nil {
		return nil, &MissingFileError{Path: inst.ModulePath, Instance: inst.Name, Err: err}
	}
	defer rc.Close()

	def, err := tixml.ParsePeripheral(rc)
	if err != nil {
		return nil, err
	}
	def.SourcePath = inst.ModulePath
	c.defs[key] = def
	return def, nil
}

// Resolve loads every instance's module definition, in declaration order,
// parsing each distinct module path at most once. The first defective or
// unreadable module file in document order aborts the whole run.
func Resolve(opts *Options, dev *tixml.Device, resolver Resolver) (*Model, error) {
	c := newCache(resolver)
	model := &Model{
		Name:        dev.Name,
		Description: dev.Description,
		Peripherals: make([]ResolvedInstance, 0, len(dev.Instances)),
	}
	for _, inst := range dev.Instances {
		opts.diagf("Processing peripheral file: %s", inst.ModulePath)
		def, err := c.load(inst)
		if err != nil {
			return nil, err
		}
		model.Peripherals = append(model.Peripherals, ResolvedInstance{Instance: inst, Def: def})
	}
	if opts.Verbose > 0 {
		keys := maps.Keys(c.defs)
		slices.Sort(keys)
		opts.verbosef(1, "parsed %d distinct module file(s): %s",
			len(keys), strings.Join(keys, ", "))
	}
	return model, nil
}
