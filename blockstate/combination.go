package blockstate

import (
	"fmt"
	"strings"
)

// Pair is a single property=value assignment.
type Pair struct {
	Property string
	Value    string
}

// Combination assigns one value to each requested property, in request order.
type Combination []Pair

// Key renders the combination as "p1=v1,p2=v2". The empty combination has key "".
func (c Combination) Key() string {
	parts := make([]string, 0, len(c))
	for _, p := range c {
		parts = append(parts, p.Property+"="+p.Value)
	}
	return strings.Join(parts, ",")
}

// Value returns the value assigned to property.
func (c Combination) Value(property string) (string, bool) {
	for _, p := range c {
		if p.Property == property {
			return p.Value, true
		}
	}
	return "", false
}

// ParseKey is the inverse of Combination.Key.
func ParseKey(key string) (Combination, error) {
	if key == "" {
		return Combination{}, nil
	}
	parts := strings.Split(key, ",")
	out := make(Combination, 0, len(parts))
	for _, part := range parts {
		prop, value, ok := strings.Cut(part, "=")
		if !ok || !validName(prop) || !validName(value) {
			return nil, fmt.Errorf("malformed combination key %q", key)
		}
		out = append(out, Pair{Property: prop, Value: value})
	}
	return out, nil
}

// validName reports whether s can appear in a combination key.
func validName(s string) bool {
	return s != "" && !strings.ContainsAny(s, ",=")
}
