package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reallyoldfogie/ccblockstate/blockstate"
)

type options struct {
	parser        *blockstate.Parser
	fallback      Fallback
	textureDomain string
}

// Option configures Load, LoadFile and LoadDir.
type Option func(*options)

// WithParser sets the record parser used for ccl documents.
func WithParser(p *blockstate.Parser) Option {
	return func(o *options) {
		o.parser = p
	}
}

// WithFallback replaces the loader used for documents without a ccl_marker.
func WithFallback(f Fallback) Option {
	return func(o *options) {
		o.fallback = f
	}
}

// WithDefaultTextureDomain sets the texture domain for documents that do not declare one.
func WithDefaultTextureDomain(domain string) Option {
	return func(o *options) {
		o.textureDomain = domain
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		parser:   blockstate.NewParser(),
		fallback: FallbackFunc(LoadVanilla),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load compiles a ccl blockstate document, or hands data to the fallback
// loader untouched when it has no ccl_marker.
func Load(data []byte, opts ...Option) (*Definition, error) {
	o := newOptions(opts)
	doc, err := blockstate.ParseDocument(data, o.parser)
	if errors.Is(err, blockstate.ErrNotCCL) {
		return o.fallback.Load(data)
	}
	if err != nil {
		return nil, err
	}
	return FromDocument(doc, o.textureDomain)
}

// LoadFile loads a single blockstate file.
func LoadFile(path string, opts ...Option) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	def, err := Load(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return def, nil
}

// LoadDir scans a directory tree of blockstate files grouped by namespace
// and returns definitions keyed by block ID ("namespace:name").
func LoadDir(root string, opts ...Option) (map[string]*Definition, error) {
	out := make(map[string]*Definition)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsBlockstateFile(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		def, err := LoadFile(path, opts...)
		if err != nil {
			return err
		}
		out[BlockID(rel)] = def
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IsBlockstateFile reports whether name has a blockstate file extension.
func IsBlockstateFile(name string) bool {
	switch filepath.Ext(name) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// BlockID derives "namespace:name" from a path relative to a blockstates
// root. Files directly under the root belong to the minecraft namespace.
func BlockID(rel string) string {
	rel = filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
	ns, name, ok := strings.Cut(rel, "/")
	if !ok {
		return "minecraft:" + rel
	}
	return ns + ":" + name
}
