package loader

import (
	"strings"

	"github.com/reallyoldfogie/ccblockstate/blockstate"
)

// FromDocument compiles doc and converts every compiled record into
// rendering parameters. defaultDomain is used when the document sets no
// texture_domain.
func FromDocument(doc *blockstate.Document, defaultDomain string) (*Definition, error) {
	compiled, err := doc.Compile()
	if err != nil {
		return nil, err
	}
	domain := doc.TextureDomain
	if domain == "" {
		domain = defaultDomain
	}

	entries := make([]Entry, 0, compiled.Len())
	for _, key := range compiled.Keys() {
		v, _ := compiled.Get(key)
		entries = append(entries, Entry{
			Key:      key,
			Variants: []Variant{renderVariant(v.Resolve(), domain)},
		})
	}
	return newDefinition(FormatCCL, entries), nil
}

// renderVariant picks a simple model when the record is only a model with a
// quarter-turn rotation, and a custom model otherwise.
func renderVariant(r blockstate.Resolved, domain string) Variant {
	out := Variant{
		Model:  r.Model,
		UVLock: r.UVLock,
		Smooth: r.Smooth,
		GUI3D:  r.GUI3D,
		Weight: r.Weight,
	}
	if rot, ok := r.State.(blockstate.Rotation); ok && r.Model != "" && len(r.Textures) == 0 {
		out.Kind = KindSimple
		out.Rotation = &rot
		return out
	}

	out.Kind = KindCustom
	state := r.State
	if state == nil {
		state = blockstate.Identity()
	}
	m := state.Matrix()
	out.Transform = &m
	if len(r.Textures) > 0 {
		out.Textures = make(map[string]string, len(r.Textures))
		for k, tex := range r.Textures {
			out.Textures[k] = withDomain(tex, domain)
		}
	}
	return out
}

// withDomain prefixes a texture location with domain unless it already has
// a namespace or refers to another texture variable.
func withDomain(tex, domain string) string {
	if domain == "" || strings.HasPrefix(tex, "#") || strings.Contains(tex, ":") {
		return tex
	}
	return domain + ":" + tex
}
