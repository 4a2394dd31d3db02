package blockstate

// Compile resolves the record for one combination. Every pair's own record
// is merged over base in key order, then every pair's sub variants are
// applied against the whole combination, so a matching sub variant always
// beats a plain override. A nil base is treated as an empty record.
func Compile(combo Combination, t *Table, base *Variant) *Variant {
	out := base.Copy()
	for _, pair := range combo {
		if v, ok := t.Lookup(pair.Property, pair.Value); ok {
			out = out.With(v)
		}
	}
	for _, pair := range combo {
		if v, ok := t.Lookup(pair.Property, pair.Value); ok {
			out = v.ApplySubOverrides(out, combo)
		}
	}
	return out
}

// Compiled is an ordered combination key -> record table.
type Compiled struct {
	keys     []string
	variants map[string]*Variant
}

// CompileAll compiles every combination. A key produced twice keeps its
// first position and the later record.
func CompileAll(combos []Combination, t *Table, base *Variant) *Compiled {
	c := &Compiled{variants: make(map[string]*Variant, len(combos))}
	for _, combo := range combos {
		c.put(combo.Key(), Compile(combo, t, base))
	}
	return c
}

func (c *Compiled) put(key string, v *Variant) {
	if _, ok := c.variants[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.variants[key] = v
}

// Keys returns the combination keys in compile order.
func (c *Compiled) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Get returns the compiled record for key.
func (c *Compiled) Get(key string) (*Variant, bool) {
	v, ok := c.variants[key]
	return v, ok
}

// Len is the number of compiled keys.
func (c *Compiled) Len() int {
	return len(c.keys)
}
