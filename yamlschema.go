package jsonschema

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"
)

// YAMLToJSONSchema transcodes a YAML-authored schema document into the JSON
// bytes Compiler.Compile expects. Authoring schemas in YAML is common enough
// (block style reads better than JSON for deeply nested keyword trees) that
// it's worth a direct helper rather than asking callers to shell out to a
// generic YAML library themselves.
func YAMLToJSONSchema(yamlSchema []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(yamlSchema, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAMLUnmarshal, err)
	}

	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSONUnmarshal, err)
	}

	return jsonBytes, nil
}

// CompileYAML compiles a YAML-authored schema document, transcoding it to
// JSON first.
func (c *Compiler) CompileYAML(yamlSchema []byte, uris ...string) (*Schema, error) {
	jsonSchema, err := YAMLToJSONSchema(yamlSchema)
	if err != nil {
		return nil, err
	}
	return c.Compile(jsonSchema, uris...)
}
