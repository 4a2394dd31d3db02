package blockstate

// Variant is a sparse override record. A nil field inherits from whatever
// it is merged onto. SubVariants holds records that only apply when their
// property=value pair is part of the combination being compiled.
type Variant struct {
	Model       *string
	State       ModelState
	UVLock      *bool
	Smooth      *bool
	GUI3D       *bool
	Weight      *int
	Textures    map[string]string
	SubVariants *Table
}

// Resolved is a Variant with every field concrete.
type Resolved struct {
	Model    string
	State    ModelState
	UVLock   bool
	Smooth   bool
	GUI3D    bool
	Weight   int
	Textures map[string]string
}

// Copy returns a copy that shares no mutable state with v.
func (v *Variant) Copy() *Variant {
	if v == nil {
		return &Variant{}
	}
	out := *v
	out.Textures = nil
	if len(v.Textures) > 0 {
		out.Textures = make(map[string]string, len(v.Textures))
		for k, tex := range v.Textures {
			out.Textures[k] = tex
		}
	}
	return &out
}

// With merges o over v and returns the result. Fields set on o win,
// textures and sub variants are unioned with o taking precedence.
// Neither v nor o is modified.
func (v *Variant) With(o *Variant) *Variant {
	out := v.Copy()
	if o == nil {
		return out
	}
	if o.Model != nil {
		out.Model = o.Model
	}
	if o.State != nil {
		out.State = o.State
	}
	if o.UVLock != nil {
		out.UVLock = o.UVLock
	}
	if o.Smooth != nil {
		out.Smooth = o.Smooth
	}
	if o.GUI3D != nil {
		out.GUI3D = o.GUI3D
	}
	if o.Weight != nil {
		out.Weight = o.Weight
	}
	if len(o.Textures) > 0 {
		if out.Textures == nil {
			out.Textures = make(map[string]string, len(o.Textures))
		}
		for k, tex := range o.Textures {
			out.Textures[k] = tex
		}
	}
	out.SubVariants = out.SubVariants.union(o.SubVariants)
	return out
}

// PossibleValues lists every value of property named anywhere in v's
// sub variant tree, in discovery order. The result may hold duplicates.
func (v *Variant) PossibleValues(property string) []string {
	if v == nil || v.SubVariants == nil {
		return nil
	}
	var values []string
	for _, prop := range v.SubVariants.Properties() {
		if prop == property {
			values = append(values, v.SubVariants.Values(prop)...)
		}
		for _, value := range v.SubVariants.Values(prop) {
			sub, _ := v.SubVariants.Lookup(prop, value)
			values = append(values, sub.PossibleValues(property)...)
		}
	}
	return values
}

// ApplySubOverrides merges every sub variant of v whose condition holds in
// combo onto base, in key order. Only then are the matched sub variants'
// own overrides applied, so a nested match beats a sibling match.
func (v *Variant) ApplySubOverrides(base *Variant, combo Combination) *Variant {
	out := base
	if v == nil || v.SubVariants == nil {
		return out
	}
	var matched []*Variant
	for _, pair := range combo {
		if sub, ok := v.SubVariants.Lookup(pair.Property, pair.Value); ok {
			out = out.With(sub)
			matched = append(matched, sub)
		}
	}
	for _, sub := range matched {
		out = sub.ApplySubOverrides(out, combo)
	}
	return out
}

// Resolve fills unset fields with their defaults: no uvlock, smooth
// lighting, 3d in gui and a weight of 1.
func (v *Variant) Resolve() Resolved {
	r := Resolved{Smooth: true, GUI3D: true, Weight: 1}
	if v == nil {
		return r
	}
	if v.Model != nil {
		r.Model = *v.Model
	}
	r.State = v.State
	if v.UVLock != nil {
		r.UVLock = *v.UVLock
	}
	if v.Smooth != nil {
		r.Smooth = *v.Smooth
	}
	if v.GUI3D != nil {
		r.GUI3D = *v.GUI3D
	}
	if v.Weight != nil {
		r.Weight = *v.Weight
	}
	if len(v.Textures) > 0 {
		r.Textures = make(map[string]string, len(v.Textures))
		for k, tex := range v.Textures {
			r.Textures[k] = tex
		}
	}
	return r
}
