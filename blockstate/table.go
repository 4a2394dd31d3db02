package blockstate

// Entry is one property=value record used to build a Table.
type Entry struct {
	Property string
	Value    string
	Variant  *Variant
}

// Table maps property -> value -> Variant, keeping the order in which
// properties and values were first seen. A Table is not modified after
// construction.
type Table struct {
	props  []string
	values map[string]*valueSet
}

type valueSet struct {
	order    []string
	variants map[string]*Variant
}

// NewTable builds a Table from entries. A repeated property=value pair
// replaces the earlier record but keeps its position.
func NewTable(entries ...Entry) *Table {
	t := &Table{values: make(map[string]*valueSet)}
	for _, e := range entries {
		t.put(e.Property, e.Value, e.Variant)
	}
	return t
}

func (t *Table) put(property, value string, v *Variant) {
	set, ok := t.values[property]
	if !ok {
		set = &valueSet{variants: make(map[string]*Variant)}
		t.values[property] = set
		t.props = append(t.props, property)
	}
	if _, ok := set.variants[value]; !ok {
		set.order = append(set.order, value)
	}
	set.variants[value] = v
}

// Properties returns the property names in first-seen order.
func (t *Table) Properties() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.props...)
}

// Values returns the values registered for property in first-seen order.
func (t *Table) Values(property string) []string {
	if t == nil {
		return nil
	}
	set, ok := t.values[property]
	if !ok {
		return nil
	}
	return append([]string(nil), set.order...)
}

// Lookup returns the record registered for property=value.
func (t *Table) Lookup(property, value string) (*Variant, bool) {
	if t == nil {
		return nil, false
	}
	set, ok := t.values[property]
	if !ok {
		return nil, false
	}
	v, ok := set.variants[value]
	return v, ok
}

// Len is the number of property=value records in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, set := range t.values {
		n += len(set.order)
	}
	return n
}

// Entries flattens the table back into construction order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, t.Len())
	for _, prop := range t.props {
		set := t.values[prop]
		for _, value := range set.order {
			out = append(out, Entry{Property: prop, Value: value, Variant: set.variants[value]})
		}
	}
	return out
}

// union returns a new table holding t's entries overlaid with o's.
func (t *Table) union(o *Table) *Table {
	if o == nil || o.Len() == 0 {
		return t
	}
	if t == nil || t.Len() == 0 {
		return o
	}
	return NewTable(append(t.Entries(), o.Entries()...)...)
}
