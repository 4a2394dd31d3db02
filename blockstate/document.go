package blockstate

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	fieldMarker            = "ccl_marker"
	fieldBlockVariants     = "block_variants"
	fieldInventoryVariants = "inventory_variants"
	fieldTextureDomain     = "texture_domain"
	fieldDefaults          = "defaults"
	fieldVariants          = "variants"
)

// Channel is a named list of properties whose combinations get compiled.
type Channel struct {
	Name       string
	Properties []string
}

// Document is a parsed ccl blockstate file.
type Document struct {
	Marker        string
	Block         Channel
	Inventory     Channel
	TextureDomain string
	Defaults      *Variant
	Variants      *Table

	rejectUnresolved bool
}

// ParseDocument decodes a ccl blockstate document. It returns ErrNotCCL when
// the data parses but has no ccl_marker, so the caller can hand it to
// another loader.
func ParseDocument(data []byte, p *Parser) (*Document, error) {
	if p == nil {
		p = NewParser()
	}
	root, err := decodeNode(data)
	if err != nil {
		if markerlessJSON(data) {
			return nil, ErrNotCCL
		}
		return nil, &Error{Kind: ErrConfigFormat, Message: "parse document", Err: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrNotCCL
	}
	top := deref(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, ErrNotCCL
	}

	fields := make(map[string]*yaml.Node, len(top.Content)/2)
	for i := 0; i+1 < len(top.Content); i += 2 {
		fields[top.Content[i].Value] = deref(top.Content[i+1])
	}
	if _, ok := fields[fieldMarker]; !ok {
		return nil, ErrNotCCL
	}

	doc := &Document{
		Block:     Channel{Name: fieldBlockVariants},
		Inventory: Channel{Name: fieldInventoryVariants},
		Defaults:  &Variant{},

		rejectUnresolved: p.rejectUnresolved,
	}
	if doc.Marker, err = requiredString(fields, fieldMarker, top.Line); err != nil {
		return nil, err
	}
	for _, ch := range []*Channel{&doc.Block, &doc.Inventory} {
		list, err := requiredString(fields, ch.Name, top.Line)
		if err != nil {
			return nil, err
		}
		if ch.Properties, err = splitProperties(list, ch.Name, fields[ch.Name].Line); err != nil {
			return nil, err
		}
	}
	if n, ok := fields[fieldTextureDomain]; ok {
		if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" {
			return nil, configError(fieldTextureDomain, n.Line, "expected a string")
		}
		doc.TextureDomain = n.Value
	}
	if n, ok := fields[fieldDefaults]; ok && n.ShortTag() != "!!null" {
		if doc.Defaults, err = p.variant(n, fieldDefaults); err != nil {
			return nil, err
		}
	}

	n, ok := fields[fieldVariants]
	if !ok {
		return nil, configError(fieldVariants, top.Line, "missing required field")
	}
	if n.Kind != yaml.MappingNode {
		return nil, configError(fieldVariants, n.Line, "expected an object")
	}
	if doc.Variants, err = p.table(n, fieldVariants); err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeNode parses data as YAML. Valid JSON the YAML scanner trips over is
// re-encoded and parsed again.
func decodeNode(data []byte) (*yaml.Node, error) {
	var root yaml.Node
	err := yaml.Unmarshal(data, &root)
	if err == nil || !json.Valid(data) {
		return &root, err
	}
	fixed, jerr := reencodeJSON(data)
	if jerr != nil {
		return nil, err
	}
	root = yaml.Node{}
	if yerr := yaml.Unmarshal(fixed, &root); yerr != nil {
		return nil, err
	}
	return &root, nil
}

// markerlessJSON reports whether data is a JSON object without a ccl_marker.
func markerlessJSON(data []byte) bool {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return false
	}
	_, ok := top[fieldMarker]
	return !ok
}

func requiredString(fields map[string]*yaml.Node, name string, line int) (string, error) {
	n, ok := fields[name]
	if !ok {
		return "", configError(name, line, "missing required field")
	}
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" {
		return "", configError(name, n.Line, "expected a string")
	}
	return n.Value, nil
}

// splitProperties parses "a,b,c". An empty or blank list means no properties.
func splitProperties(list, field string, line int) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	seen := make(map[string]bool)
	var props []string
	for _, raw := range strings.Split(list, ",") {
		prop := strings.TrimSpace(raw)
		if !validName(prop) {
			return nil, configError(field, line, "invalid property name %q in %q", prop, list)
		}
		if seen[prop] {
			return nil, configError(field, line, "duplicate property %q in %q", prop, list)
		}
		seen[prop] = true
		props = append(props, prop)
	}
	return props, nil
}

// Channels returns the block channel followed by the inventory channel.
func (d *Document) Channels() []Channel {
	return []Channel{d.Block, d.Inventory}
}

// Combinations expands one channel against the document's variants. A
// channel naming a property without values has no combinations, unless
// the document was parsed with RejectUnresolved.
func (d *Document) Combinations(ch Channel) ([]Combination, error) {
	c := ValuesFor(ch.Properties, d.Variants)
	if d.rejectUnresolved {
		if err := c.Check(); err != nil {
			return nil, fmt.Errorf("expand %s: %w", ch.Name, err)
		}
	}
	return Expand(c), nil
}

// Compile expands both channels and compiles every combination over the
// document defaults. Any expansion failure aborts the whole compile.
func (d *Document) Compile() (*Compiled, error) {
	var combos []Combination
	for _, ch := range d.Channels() {
		cs, err := d.Combinations(ch)
		if err != nil {
			return nil, err
		}
		combos = append(combos, cs...)
	}
	return CompileAll(combos, d.Variants, d.Defaults), nil
}
