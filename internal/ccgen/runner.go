package ccgen

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reallyoldfogie/ccblockstate/blockstate"
	"github.com/reallyoldfogie/ccblockstate/loader"
)

// Summary counts what a Run did.
type Summary struct {
	Compiled int
	Vanilla  int
	Copied   int
}

// Encode renders a definition in the given output format.
func Encode(def *loader.Definition, format string) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		buf, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(buf, '\n'), nil
	case FormatYAML:
		buf, err := yaml.Marshal(def)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return buf, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// LoaderOptions turns the config into loader options.
func (cfg *Config) LoaderOptions() []loader.Option {
	var popts []blockstate.ParserOption
	if cfg.AllowUnknownFields {
		popts = append(popts, blockstate.AllowUnknownFields())
	}
	if cfg.RejectUnresolved {
		popts = append(popts, blockstate.RejectUnresolved())
	}
	return []loader.Option{
		loader.WithParser(blockstate.NewParser(popts...)),
		loader.WithDefaultTextureDomain(cfg.DefaultTextureDomain),
	}
}

// Run loads every blockstate under cfg.InputDir and writes one output file
// per block to cfg.OutputDir/<namespace>/<name>.<format>. The first
// failing file aborts the run.
func Run(cfg *Config) (*Summary, error) {
	files, err := listBlockstateFiles(cfg.InputDir)
	if err != nil {
		return nil, err
	}

	opts := cfg.LoaderOptions()
	sum := &Summary{}
	for _, rel := range files {
		src := filepath.Join(cfg.InputDir, rel)
		def, err := loader.LoadFile(src, opts...)
		if err != nil {
			return sum, err
		}

		ns, name := splitBlockID(loader.BlockID(rel))
		if def.Format == loader.FormatVanilla {
			sum.Vanilla++
			if cfg.CopyVanilla {
				if err := copyFile(src, filepath.Join(cfg.OutputDir, ns, filepath.FromSlash(name)+filepath.Ext(rel))); err != nil {
					return sum, fmt.Errorf("copy %s: %w", rel, err)
				}
				sum.Copied++
				continue
			}
		} else {
			sum.Compiled++
		}

		buf, err := Encode(def, cfg.Format)
		if err != nil {
			return sum, fmt.Errorf("encode %s: %w", rel, err)
		}
		dst := filepath.Join(cfg.OutputDir, ns, filepath.FromSlash(name)+"."+cfg.Format)
		if err := writeFile(dst, buf); err != nil {
			return sum, err
		}
		log.Printf("%s %s:%s -> %d keys", def.Format, ns, name, len(def.Entries))
	}
	return sum, nil
}

func splitBlockID(blockID string) (namespace, path string) {
	// blockID like "minecraft:oak_fence"
	parts := strings.SplitN(blockID, ":", 2)
	if len(parts) == 1 {
		return "minecraft", parts[0]
	}
	return parts[0], parts[1]
}
