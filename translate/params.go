package translate

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/inkmill/inkmill/errors"
)

// Parameters is an ordered mapping from parameter name to Value.
// Insertion order is the emission order of the generated block. Setting
// an existing name replaces its value in place (last write wins).
type Parameters struct {
	om *orderedmap.OrderedMap[string, Value]
}

// NewParameters returns an empty parameter set.
func NewParameters() *Parameters {
	return &Parameters{om: orderedmap.New[string, Value]()}
}

// Set inserts or replaces the value bound to name.
func (p *Parameters) Set(name string, v Value) *Parameters {
	p.om.Set(name, v)
	return p
}

// Get returns the value bound to name.
func (p *Parameters) Get(name string) (Value, bool) {
	return p.om.Get(name)
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	if p == nil || p.om == nil {
		return 0
	}
	return p.om.Len()
}

// Names returns the parameter names in insertion order.
func (p *Parameters) Names() []string {
	names := make([]string, 0, p.Len())
	_ = p.Each(func(name string, _ Value) error {
		names = append(names, name)
		return nil
	})
	return names
}

// Each walks the parameters in insertion order, stopping at the first
// error fn returns.
func (p *Parameters) Each(fn func(name string, v Value) error) error {
	if p == nil || p.om == nil {
		return nil
	}
	for pair := p.om.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// ParametersFromYAML decodes a YAML (or JSON) document into a parameter
// set, preserving the document's key order. The top level must be a
// mapping of parameter names to values.
func ParametersFromYAML(data []byte) (*Parameters, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "decoding parameters document")
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return NewParameters(), nil
		}
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return NewParameters(), nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.Newf("parameters document must be a mapping, got yaml kind %d", node.Kind)
	}

	params := NewParameters()
	for i := 0; i+1 < len(node.Content); i += 2 {
		val, err := FromYAML(node.Content[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "decoding parameter %q", node.Content[i].Value)
		}
		params.Set(node.Content[i].Value, val)
	}
	return params, nil
}
