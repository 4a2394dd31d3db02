package loader

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/reallyoldfogie/ccblockstate/blockstate"
)

// Fallback loads documents that are not ccl blockstates.
type Fallback interface {
	Load(data []byte) (*Definition, error)
}

// FallbackFunc adapts a function to Fallback.
type FallbackFunc func(data []byte) (*Definition, error)

func (f FallbackFunc) Load(data []byte) (*Definition, error) {
	return f(data)
}

type vanillaBlockState struct {
	Variants map[string]vanillaVariants `json:"variants"`
}

// vanillaVariants accepts either a single variant object or an array of them.
type vanillaVariants []vanillaVariant

func (v *vanillaVariants) UnmarshalJSON(data []byte) error {
	var variants []vanillaVariant
	if err := json.Unmarshal(data, &variants); err == nil {
		*v = variants
		return nil
	}

	var single vanillaVariant
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*v = []vanillaVariant{single}
	return nil
}

type vanillaVariant struct {
	Model  string `json:"model"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	UVLock bool   `json:"uvlock"`
	Weight *int   `json:"weight"`
}

// LoadVanilla decodes a plain "variants" blockstate. Keys are sorted since
// the JSON object order is not kept.
func LoadVanilla(data []byte) (*Definition, error) {
	var bs vanillaBlockState
	if err := json.Unmarshal(data, &bs); err != nil {
		return nil, fmt.Errorf("unmarshal vanilla blockstate: %w", err)
	}
	if bs.Variants == nil {
		return nil, fmt.Errorf("unsupported blockstate: no variants")
	}

	keys := make([]string, 0, len(bs.Variants))
	for k := range bs.Variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		vars := make([]Variant, 0, len(bs.Variants[key]))
		for _, vv := range bs.Variants[key] {
			rot, err := blockstate.NewRotation(vv.X, vv.Y)
			if err != nil {
				return nil, fmt.Errorf("variant %q: %w", key, err)
			}
			weight := 1
			if vv.Weight != nil {
				weight = *vv.Weight
			}
			vars = append(vars, Variant{
				Kind:     KindSimple,
				Model:    vv.Model,
				Rotation: &rot,
				UVLock:   vv.UVLock,
				Smooth:   true,
				GUI3D:    true,
				Weight:   weight,
			})
		}
		entries = append(entries, Entry{Key: key, Variants: vars})
	}
	return newDefinition(FormatVanilla, entries), nil
}
