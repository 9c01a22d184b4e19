package local

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yaml11Bools are the plain scalars YAML 1.1 resolves to booleans but YAML
// 1.2 leaves as strings. Override files are written for the 1.1 reading.
var yaml11Bools = map[string]bool{
	"yes": true, "Yes": true, "YES": true,
	"on": true, "On": true, "ON": true,
	"no": false, "No": false, "NO": false,
	"off": false, "Off": false, "OFF": false,
}

// UnmarshalYAML decodes one synced_folder entry. local and shared keep the
// scalar's source text so that values such as 2024-01-01 are not reread as
// timestamps.
func (r *FolderRecord) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: synced_folder entry must be a mapping", node.Line)
	}

	record := make(FolderRecord, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := resolveAlias(node.Content[i]), resolveAlias(node.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: synced_folder keys must be scalars", keyNode.Line)
		}
		value, err := recordValue(keyNode.Value, valueNode)
		if err != nil {
			return err
		}
		record[keyNode.Value] = value
	}
	*r = record
	return nil
}

func recordValue(key string, node *yaml.Node) (interface{}, error) {
	if node.Kind == yaml.ScalarNode && node.ShortTag() != "!!null" {
		if key == keyLocal || key == keyShared {
			return node.Value, nil
		}
		if node.Style == 0 && node.ShortTag() == "!!str" {
			if b, ok := yaml11Bools[node.Value]; ok {
				return b, nil
			}
		}
	}

	var value interface{}
	if err := node.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
