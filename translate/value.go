package translate

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inkmill/inkmill/errors"
)

// Value is the type universe translators consume: the JSON/YAML-like
// shapes Null, Bool, Int, Float, Str, Mapping and Sequence. Those seven
// concrete types are the canonical tags; the dispatcher renders any
// other implementation through the variant's escaped-string form of its
// Raw text.
type Value interface {
	// Raw returns the plain textual rendering of the value, without any
	// language-specific quoting or escaping.
	Raw() string
}

// Null is the absent value.
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Int is a 64-bit integer value.
type Int int64

// Float is a double-precision value.
type Float float64

// Str is a text value.
type Str string

// Pair is one key/value entry of a Mapping.
type Pair struct {
	Key string
	Val Value
}

// Mapping is an ordered set of key/value pairs. Insertion order is
// emission order; key uniqueness is the caller's contract.
type Mapping []Pair

// Sequence is an ordered list of values.
type Sequence []Value

func (Null) Raw() string { return "None" }

func (b Bool) Raw() string {
	if b {
		return "True"
	}
	return "False"
}

func (i Int) Raw() string { return strconv.FormatInt(int64(i), 10) }

func (f Float) Raw() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

func (s Str) Raw() string { return string(s) }

func (m Mapping) Raw() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Key)
		sb.WriteString(": ")
		sb.WriteString(rawOf(p.Val))
	}
	sb.WriteByte('}')
	return sb.String()
}

func (s Sequence) Raw() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(rawOf(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

func rawOf(v Value) string {
	if v == nil {
		return Null{}.Raw()
	}
	return v.Raw()
}

// FromYAML converts a decoded YAML node into a Value, preserving
// mapping order. JSON documents decode through the same path since YAML
// is a superset.
func FromYAML(node *yaml.Node) (Value, error) {
	if node == nil {
		return Null{}, nil
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null{}, nil
		}
		return FromYAML(node.Content[0])
	case yaml.AliasNode:
		return FromYAML(node.Alias)
	case yaml.ScalarNode:
		return scalarFromYAML(node)
	case yaml.MappingNode:
		m := make(Mapping, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			val, err := FromYAML(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m = append(m, Pair{Key: node.Content[i].Value, Val: val})
		}
		return m, nil
	case yaml.SequenceNode:
		s := make(Sequence, 0, len(node.Content))
		for _, item := range node.Content {
			val, err := FromYAML(item)
			if err != nil {
				return nil, err
			}
			s = append(s, val)
		}
		return s, nil
	}
	return nil, errors.Newf("unsupported yaml node kind %d at line %d", node.Kind, node.Line)
}

func scalarFromYAML(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(node.Value))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing bool %q at line %d", node.Value, node.Line)
		}
		return Bool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing int %q at line %d", node.Value, node.Line)
		}
		return Int(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing float %q at line %d", node.Value, node.Line)
		}
		return Float(f), nil
	default:
		// Unrecognized scalar tags (timestamps, binary, custom tags)
		// keep their textual form.
		return Str(node.Value), nil
	}
}
