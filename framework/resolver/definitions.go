package resolver

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/km-arc/go-forge/framework/config"
)

// LoadDefinitions applies a YAML definitions document to r: a "bindings"
// section of abstract → concrete type names, and a "config" section of
// per-type configuration stores. Key order inside each type's block is
// preserved.
//
//	bindings:
//	  Mailer: SmtpMailer
//	config:
//	  SmtpMailer:
//	    host: smtp.example.com
//	    port: 587
//
// Type metadata itself is code, not data — RegisterType still happens in
// bootstrap code; definitions files only rebind and configure.
func LoadDefinitions(r *Resolver, data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("resolver: parse definitions: %w", err)
	}
	if len(root.Content) == 0 {
		return nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return fmt.Errorf("resolver: definitions must be a yaml mapping")
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		section := doc.Content[i].Value
		body := doc.Content[i+1]

		switch section {
		case "bindings":
			var bindings map[string]string
			if err := body.Decode(&bindings); err != nil {
				return fmt.Errorf("resolver: bindings section: %w", err)
			}
			for abstract, concrete := range bindings {
				r.Bind(abstract, concrete)
			}

		case "config":
			if body.Kind != yaml.MappingNode {
				return fmt.Errorf("resolver: config section must be a yaml mapping")
			}
			for j := 0; j+1 < len(body.Content); j += 2 {
				typ := body.Content[j].Value
				store, err := config.FromYAMLNode(body.Content[j+1])
				if err != nil {
					return fmt.Errorf("resolver: config for %s: %w", typ, err)
				}
				r.Configure(typ, store)
			}

		default:
			return fmt.Errorf("resolver: unknown definitions section %q", section)
		}
	}
	return nil
}
