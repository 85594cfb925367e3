package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for SampleList.
// Accepts either a sequence of samples or a mapping of input to want.
// Mapping order is preserved.
func (s *SampleList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []Sample

		err := node.Decode(&list)
		if err != nil {
			return err
		}

		*s = list

		return nil

	case yaml.MappingNode:
		list := make([]Sample, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			var sample Sample

			if err := node.Content[i].Decode(&sample.Input); err != nil {
				return fmt.Errorf("sample input at line %d: %w", node.Content[i].Line, err)
			}

			if err := node.Content[i+1].Decode(&sample.Want); err != nil {
				return fmt.Errorf("sample want at line %d: %w", node.Content[i+1].Line, err)
			}

			list = append(list, sample)
		}

		*s = list

		return nil

	default:
		return fmt.Errorf("expected samples sequence or mapping, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for SampleList.
// Always outputs the sequence form.
func (s SampleList) MarshalYAML() (any, error) {
	return []Sample(s), nil
}
