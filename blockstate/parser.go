package blockstate

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Parser decodes variant records from YAML nodes. JSON documents are valid
// YAML, and decoding through yaml.Node keeps mapping order.
type Parser struct {
	allowUnknown     bool
	rejectUnresolved bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// AllowUnknownFields makes the parser skip record fields it does not know
// instead of rejecting them.
func AllowUnknownFields() ParserOption {
	return func(p *Parser) {
		p.allowUnknown = true
	}
}

// RejectUnresolved makes documents from this parser fail to compile when a
// channel names a property without any values. By default such a channel
// compiles to no combinations.
func RejectUnresolved() ParserOption {
	return func(p *Parser) {
		p.rejectUnresolved = true
	}
}

// NewParser returns a strict parser: unknown record fields are errors.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseVariant decodes a single record object.
func (p *Parser) ParseVariant(n *yaml.Node) (*Variant, error) {
	return p.variant(n, "variant")
}

// ParseTable decodes a property -> value -> record object.
func (p *Parser) ParseTable(n *yaml.Node) (*Table, error) {
	return p.table(n, "variants")
}

func (p *Parser) table(n *yaml.Node, path string) (*Table, error) {
	n = deref(n)
	if n.Kind != yaml.MappingNode {
		return nil, decodeError(path, n.Line, "expected an object of properties")
	}
	t := NewTable()
	for i := 0; i+1 < len(n.Content); i += 2 {
		prop := n.Content[i].Value
		propPath := path + "." + prop
		if !validName(prop) {
			return nil, decodeError(propPath, n.Content[i].Line, "invalid property name %q", prop)
		}
		values := deref(n.Content[i+1])
		if values.Kind != yaml.MappingNode {
			return nil, decodeError(propPath, values.Line, "expected an object of property values")
		}
		for j := 0; j+1 < len(values.Content); j += 2 {
			value := values.Content[j].Value
			valuePath := propPath + "." + value
			if !validName(value) {
				return nil, decodeError(valuePath, values.Content[j].Line, "invalid property value %q", value)
			}
			v, err := p.variant(values.Content[j+1], valuePath)
			if err != nil {
				return nil, err
			}
			t.put(prop, value, v)
		}
	}
	return t, nil
}

func (p *Parser) variant(n *yaml.Node, path string) (*Variant, error) {
	n = deref(n)
	if n.Kind != yaml.MappingNode {
		return nil, decodeError(path, n.Line, "expected a variant object")
	}

	v := &Variant{}
	var (
		x, y        int
		hasRotation bool
		err         error
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		val := deref(n.Content[i+1])
		fieldPath := path + "." + key
		if val.ShortTag() == "!!null" {
			continue
		}

		switch key {
		case "model":
			var s string
			if s, err = scalarString(val, fieldPath); err == nil {
				v.Model = &s
			}
		case "uvlock":
			v.UVLock, err = scalarBool(val, fieldPath)
		case "smooth":
			v.Smooth, err = scalarBool(val, fieldPath)
		case "gui3d":
			v.GUI3D, err = scalarBool(val, fieldPath)
		case "weight":
			var w int
			if w, err = scalarInt(val, fieldPath); err == nil {
				if w < 1 {
					return nil, decodeError(fieldPath, val.Line, "weight must be positive, got %d", w)
				}
				v.Weight = &w
			}
		case "x":
			x, err = scalarInt(val, fieldPath)
			hasRotation = true
		case "y":
			y, err = scalarInt(val, fieldPath)
			hasRotation = true
		case "transform":
			v.State, err = transform(val, fieldPath)
		case "textures":
			v.Textures, err = stringMap(val, fieldPath)
		case "variants":
			v.SubVariants, err = p.table(val, fieldPath)
		default:
			if !p.allowUnknown {
				return nil, decodeError(fieldPath, n.Content[i].Line, "unknown variant field %q", key)
			}
		}
		if err != nil {
			return nil, err
		}
	}

	if hasRotation {
		if v.State != nil {
			return nil, decodeError(path, n.Line, "x/y rotation and transform are mutually exclusive")
		}
		rot, err := NewRotation(x, y)
		if err != nil {
			return nil, &Error{Kind: ErrDeserialization, Path: path, Line: n.Line, Message: "bad rotation", Err: err}
		}
		v.State = rot
	}
	return v, nil
}

func transform(n *yaml.Node, path string) (ModelState, error) {
	if n.Kind == yaml.ScalarNode {
		if n.Value == "identity" {
			return Identity(), nil
		}
		return nil, decodeError(path, n.Line, "unknown transform %q", n.Value)
	}
	if n.Kind != yaml.MappingNode {
		return nil, decodeError(path, n.Line, "expected a transform object or \"identity\"")
	}

	t := Identity()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		val := deref(n.Content[i+1])
		fieldPath := path + "." + key
		var err error
		switch key {
		case "translation":
			t.Translation, err = vec3(val, fieldPath)
		case "rotation":
			t.LeftRotation, err = quat(val, fieldPath)
		case "post-rotation":
			t.RightRotation, err = quat(val, fieldPath)
		case "scale":
			if val.Kind == yaml.ScalarNode {
				var s float32
				s, err = scalarFloat(val, fieldPath)
				t.Scale = mgl32.Vec3{s, s, s}
			} else {
				t.Scale, err = vec3(val, fieldPath)
			}
		default:
			return nil, decodeError(fieldPath, n.Content[i].Line, "unknown transform field %q", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// quat accepts [x, y, z, w], a single-axis object such as {"y": 90}, or a
// list of single-axis objects applied in order.
func quat(n *yaml.Node, path string) (mgl32.Quat, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return axisQuat(n, path)
	case yaml.SequenceNode:
		if len(n.Content) == 4 && deref(n.Content[0]).Kind == yaml.ScalarNode {
			f, err := floats(n, path, 4)
			if err != nil {
				return mgl32.Quat{}, err
			}
			return mgl32.Quat{W: f[3], V: mgl32.Vec3{f[0], f[1], f[2]}}.Normalize(), nil
		}
		q := mgl32.QuatIdent()
		for i, item := range n.Content {
			r, err := axisQuat(deref(item), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return mgl32.Quat{}, err
			}
			q = q.Mul(r)
		}
		return q, nil
	}
	return mgl32.Quat{}, decodeError(path, n.Line, "expected a rotation")
}

func axisQuat(n *yaml.Node, path string) (mgl32.Quat, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return mgl32.Quat{}, decodeError(path, n.Line, "expected a single-axis rotation object")
	}
	axis := n.Content[0].Value
	deg, err := scalarFloat(deref(n.Content[1]), path+"."+axis)
	if err != nil {
		return mgl32.Quat{}, err
	}
	var v mgl32.Vec3
	switch axis {
	case "x":
		v = mgl32.Vec3{1, 0, 0}
	case "y":
		v = mgl32.Vec3{0, 1, 0}
	case "z":
		v = mgl32.Vec3{0, 0, 1}
	default:
		return mgl32.Quat{}, decodeError(path, n.Line, "unknown rotation axis %q", axis)
	}
	return mgl32.QuatRotate(mgl32.DegToRad(deg), v), nil
}

func vec3(n *yaml.Node, path string) (mgl32.Vec3, error) {
	f, err := floats(n, path, 3)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return mgl32.Vec3{f[0], f[1], f[2]}, nil
}

func floats(n *yaml.Node, path string, size int) ([]float32, error) {
	if n.Kind != yaml.SequenceNode || len(n.Content) != size {
		return nil, decodeError(path, n.Line, "expected an array of %d numbers", size)
	}
	out := make([]float32, size)
	for i, item := range n.Content {
		f, err := scalarFloat(deref(item), fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func stringMap(n *yaml.Node, path string) (map[string]string, error) {
	if n.Kind != yaml.MappingNode {
		return nil, decodeError(path, n.Line, "expected an object of strings")
	}
	out := make(map[string]string, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		s, err := scalarString(deref(n.Content[i+1]), path+"."+key)
		if err != nil {
			return nil, err
		}
		out[key] = s
	}
	return out, nil
}

func scalarString(n *yaml.Node, path string) (string, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" {
		return "", decodeError(path, n.Line, "expected a string")
	}
	return n.Value, nil
}

func scalarBool(n *yaml.Node, path string) (*bool, error) {
	var b bool
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!bool" {
		return nil, decodeError(path, n.Line, "expected a boolean")
	}
	if err := n.Decode(&b); err != nil {
		return nil, &Error{Kind: ErrDeserialization, Path: path, Line: n.Line, Message: "decode boolean", Err: err}
	}
	return &b, nil
}

func scalarInt(n *yaml.Node, path string) (int, error) {
	var i int
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		return 0, decodeError(path, n.Line, "expected an integer")
	}
	if err := n.Decode(&i); err != nil {
		return 0, &Error{Kind: ErrDeserialization, Path: path, Line: n.Line, Message: "decode integer", Err: err}
	}
	return i, nil
}

func scalarFloat(n *yaml.Node, path string) (float32, error) {
	var f float64
	if n.Kind != yaml.ScalarNode || (n.ShortTag() != "!!int" && n.ShortTag() != "!!float") {
		return 0, decodeError(path, n.Line, "expected a number")
	}
	if err := n.Decode(&f); err != nil {
		return 0, &Error{Kind: ErrDeserialization, Path: path, Line: n.Line, Message: "decode number", Err: err}
	}
	return float32(f), nil
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}
