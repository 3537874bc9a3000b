package openapi

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var yamlHeader = strings.TrimSpace(`
# OpenAPI specification for the chat server API
# Generated by docgen from route descriptors
# DO NOT EDIT MANUALLY
`) + "\n\n"

// MarshalYAML serializes the spec as block-style YAML.
// The JSON encoding is decoded into a yaml.Node first so that key order and
// json tags carry over unchanged.
func MarshalYAML(spec *Spec) ([]byte, error) {
	data, err := MarshalJSON(spec)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	blockStyle(&node)

	var buf bytes.Buffer
	buf.WriteString(yamlHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteYAML serializes the spec as YAML and writes it to path.
func WriteYAML(spec *Spec, path string) error {
	data, err := MarshalYAML(spec)
	if err != nil {
		return fmt.Errorf("marshal spec: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write spec: %w", err)
	}
	return nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
