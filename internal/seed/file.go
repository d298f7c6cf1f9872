package seed

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileRecord is the YAML shape of one seed entry.
type fileRecord struct {
	Title       string     `yaml:"title"`
	Completed   bool       `yaml:"completed"`
	Description string     `yaml:"description,omitempty"`
	CompletedAt *time.Time `yaml:"completed_at,omitempty"`
}

type fileDoc struct {
	Tasks []fileRecord `yaml:"tasks"`
}

// File returns a source reading a YAML seed file at path.
func File(path string) Source {
	return SourceFunc(func(ctx context.Context) ([]Record, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading seed file: %w", err)
		}
		return ParseYAML(data)
	})
}

// ParseYAML parses seed records from YAML. The document is either a
// sequence of records or a mapping with a "tasks" sequence.
func ParseYAML(data []byte) ([]Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var items []fileRecord
	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&items); err != nil {
			return nil, fmt.Errorf("parsing seed file: %w", err)
		}
	case yaml.MappingNode:
		var doc fileDoc
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing seed file: %w", err)
		}
		items = doc.Tasks
	default:
		return nil, fmt.Errorf("parsing seed file: expected a list of tasks at line %d", root.Line)
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, Record{
			Title:       item.Title,
			Completed:   item.Completed,
			Description: item.Description,
			CompletedAt: item.CompletedAt,
		})
	}
	return records, nil
}
