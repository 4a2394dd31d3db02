package loader

import (
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/reallyoldfogie/ccblockstate/blockstate"
)

// Format names the document format a Definition was loaded from.
type Format string

const (
	FormatCCL     Format = "ccl"
	FormatVanilla Format = "vanilla"
)

// VariantKind tells the model builder which kind of model to construct.
type VariantKind string

const (
	// KindSimple is a plain model with a quarter-turn rotation.
	KindSimple VariantKind = "simple"
	// KindCustom carries a full transform and texture overrides.
	KindCustom VariantKind = "custom"
)

// Variant holds the rendering parameters for one model of a blockstate.
type Variant struct {
	Kind      VariantKind          `json:"kind" yaml:"kind"`
	Model     string               `json:"model,omitempty" yaml:"model,omitempty"`
	Rotation  *blockstate.Rotation `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Transform *mgl32.Mat4          `json:"transform,omitempty" yaml:"transform,omitempty"`
	UVLock    bool                 `json:"uvlock" yaml:"uvlock"`
	Smooth    bool                 `json:"smooth" yaml:"smooth"`
	GUI3D     bool                 `json:"gui3d" yaml:"gui3d"`
	Weight    int                  `json:"weight" yaml:"weight"`
	Textures  map[string]string    `json:"textures,omitempty" yaml:"textures,omitempty"`
}

// Entry is the variant list for one blockstate key.
type Entry struct {
	Key      string    `json:"key" yaml:"key"`
	Variants []Variant `json:"variants" yaml:"variants"`
}

// Definition is an ordered blockstate key -> variant list table.
type Definition struct {
	Format  Format  `json:"format" yaml:"format"`
	Entries []Entry `json:"entries" yaml:"entries"`

	index map[string]int
}

func newDefinition(format Format, entries []Entry) *Definition {
	d := &Definition{Format: format, Entries: entries, index: make(map[string]int, len(entries))}
	for i, e := range entries {
		d.index[normalizeKey(e.Key)] = i
	}
	return d
}

// normalizeKey maps "b=2,a=1" and "a=1,b=2" to the same key. Keys that are
// not property lists, such as "normal" or "inventory", are returned as is.
func normalizeKey(key string) string {
	combo, err := blockstate.ParseKey(key)
	if err != nil {
		return key
	}
	props := make(map[string]string, len(combo))
	for _, p := range combo {
		props[p.Property] = p.Value
	}
	return MakePropsKey(props)
}

// Keys returns the blockstate keys in definition order.
func (d *Definition) Keys() []string {
	keys := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Get returns the entry for key. Property order within key does not matter.
func (d *Definition) Get(key string) (Entry, bool) {
	i, ok := d.index[normalizeKey(key)]
	if !ok {
		return Entry{}, false
	}
	return d.Entries[i], true
}

// Lookup returns the entry for a set of block properties. A block with no
// properties also matches the vanilla "normal" key.
func (d *Definition) Lookup(props map[string]string) (Entry, bool) {
	if i, ok := d.index[MakePropsKey(props)]; ok {
		return d.Entries[i], true
	}
	if len(props) == 0 {
		return d.Get("normal")
	}
	return Entry{}, false
}

// MakePropsKey deterministically encodes properties as "k1=v1,k2=v2".
func MakePropsKey(props map[string]string) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+props[k])
	}
	return strings.Join(parts, ",")
}

// MergeDefinitions merges multiple definition maps, preferring later entries when keys collide.
func MergeDefinitions(maps ...map[string]*Definition) map[string]*Definition {
	out := make(map[string]*Definition)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
