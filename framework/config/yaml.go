package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML mapping into a Store, preserving the document's
// key order. An empty document yields an empty Store.
//
//	store, err := config.FromYAML([]byte("host: smtp.example.com\nport: 587\n"))
func FromYAML(data []byte) (*Store, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return NewStore(), nil
	}
	return FromYAMLNode(root.Content[0])
}

// FromYAMLNode decodes a mapping node into a Store, preserving key order.
// Standard yaml decoding into map[string]any loses ordering; walking the
// node's content pairs keeps it.
func FromYAMLNode(node *yaml.Node) (*Store, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("config: expected a yaml mapping at line %d", node.Line)
	}

	s := NewStore()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return nil, fmt.Errorf("config: decode key at line %d: %w", node.Content[i].Line, err)
		}
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("config: decode value for %q: %w", key, err)
		}
		if err := s.Set(key, value); err != nil {
			return nil, err
		}
	}
	return s, nil
}
