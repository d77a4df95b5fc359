package config

import (
	"os"
	"path/filepath"
	"strings"

	"emperror.dev/errors"
	"gopkg.in/yaml.v3"
)

// ReadRawConfig reads the configuration file as raw YAML text, preserving comments.
func ReadRawConfig(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: failed to read config file")
	}
	return b, nil
}

// WriteRawConfig writes raw YAML content to the configuration file, creating
// the parent directory if needed.
func WriteRawConfig(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "config: failed to create config directory")
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return errors.Wrap(err, "config: failed to write config file")
	}
	return nil
}

// SetValue updates a single dot-notation key (for example
// "filesystem.filename_encoding") in the file at path while keeping every
// comment and unrelated value intact. The result must still be a valid
// configuration or nothing is written.
func SetValue(path, key, value string) error {
	var root yaml.Node
	raw, err := ReadRawConfig(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &root); err != nil {
			return errors.WrapWithDetails(err, "config: failed to parse config file", "path", path)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return err
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode}}}
	}

	if err := UpdateYAMLNode(root.Content[0], key, value); err != nil {
		return errors.WithDetails(err, "key", key)
	}

	out, err := yaml.Marshal(&root)
	if err != nil {
		return errors.Wrap(err, "config: failed to marshal config")
	}

	c, err := NewAtPath(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(out, c); err != nil {
		return errors.WrapWithDetails(err, "config: invalid value", "key", key, "value", value)
	}
	if err := c.Validate(); err != nil {
		return err
	}

	return WriteRawConfig(path, out)
}

// UpdateYAMLNode sets the scalar at a dot-notation path in a mapping node,
// creating intermediate mappings as needed. The value is written untagged so
// YAML resolves "true" or "10" the usual way.
func UpdateYAMLNode(node *yaml.Node, path string, value string) error {
	if node == nil {
		return errors.New("config: root node is nil")
	}
	if path == "" {
		return errors.New("config: empty key")
	}

	for _, key := range strings.Split(path, ".") {
		if node.Kind != yaml.MappingNode {
			return errors.New("config: key traverses through non-mapping value")
		}

		var next *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				next = node.Content[i+1]
				break
			}
		}
		if next == nil {
			next = &yaml.Node{Kind: yaml.MappingNode}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, next)
		}
		node = next
	}

	if node.Kind == yaml.MappingNode && len(node.Content) > 0 {
		return errors.New("config: key refers to a section, not a value")
	}

	// Keep any comments attached to the old value.
	node.Kind = yaml.ScalarNode
	node.Tag = ""
	node.Style = 0
	node.Value = value
	node.Content = nil
	return nil
}
