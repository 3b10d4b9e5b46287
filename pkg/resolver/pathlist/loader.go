package pathlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/olavoasantos/resolver/pkg/resolver"
)

// FromFile loads a path list from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json, .jsonc
func FromFile(path string) (resolver.PathList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read path list: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json", ".jsonc":
		return FromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported path list extension: %s", ext)
	}
}

// FromYAML parses YAML data into a path list.
func FromYAML(data []byte) (resolver.PathList, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return fromDecoded(raw)
}

// FromJSON parses JSON data into a path list. Comments and trailing
// commas are accepted.
func FromJSON(data []byte) (resolver.PathList, error) {
	var raw any
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return fromDecoded(raw)
}

// fromDecoded checks that the document root is a mapping.
// An empty document yields an empty path list.
func fromDecoded(raw any) (resolver.PathList, error) {
	if raw == nil {
		return resolver.PathList{}, nil
	}
	m, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("path list root must be a mapping, got %T", raw)
	}
	return resolver.PathList(m), nil
}

// normalize rewrites map[any]any nodes to map[string]any, recursively.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = normalize(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[resolver.Stringify(k)] = normalize(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = normalize(child)
		}
		return out
	default:
		return v
	}
}
