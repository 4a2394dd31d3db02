package blockstate

// Candidates holds the ordered candidate values of each requested property.
type Candidates struct {
	Properties []string
	Values     [][]string
}

// Count is the number of combinations Expand will produce.
func (c *Candidates) Count() int {
	n := 1
	for _, vals := range c.Values {
		n *= len(vals)
	}
	return n
}

// ValuesFor collects, for each property, the values registered for it in
// the table followed by every value named for it in any record's sub
// variants. Each value is kept once, at its first position. A property
// nobody names gets no values, which makes the product empty.
func ValuesFor(properties []string, t *Table) *Candidates {
	c := &Candidates{
		Properties: append([]string(nil), properties...),
		Values:     make([][]string, 0, len(properties)),
	}
	for _, prop := range properties {
		seen := make(map[string]bool)
		var vals []string
		add := func(values []string) {
			for _, v := range values {
				if !seen[v] {
					seen[v] = true
					vals = append(vals, v)
				}
			}
		}

		add(t.Values(prop))
		for _, entry := range t.Entries() {
			add(entry.Variant.PossibleValues(prop))
		}
		c.Values = append(c.Values, vals)
	}
	return c
}

// Check returns an ErrUnresolvedReference error for the first property
// without candidate values.
func (c *Candidates) Check() error {
	for i, vals := range c.Values {
		if len(vals) == 0 {
			return &Error{
				Kind:    ErrUnresolvedReference,
				Path:    c.Properties[i],
				Message: "property has no values in variants or sub variants",
			}
		}
	}
	return nil
}

// Expand enumerates the cartesian product of c. The last property varies
// fastest. With no properties the result is a single empty combination,
// and a property without values yields no combinations at all.
func Expand(c *Candidates) []Combination {
	total := c.Count()
	if total == 0 {
		return nil
	}
	out := make([]Combination, 0, total)
	idx := make([]int, len(c.Properties))
	for n := 0; n < total; n++ {
		combo := make(Combination, len(idx))
		for i, prop := range c.Properties {
			combo[i] = Pair{Property: prop, Value: c.Values[i][idx[i]]}
		}
		out = append(out, combo)

		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(c.Values[i]) {
				break
			}
			idx[i] = 0
		}
	}
	return out
}
