package configuration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v2"
)

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromFileName picks YAML for .yml/.yaml files and JSON otherwise.
func FormatFromFileName(fileName string) Format {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "views": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["objectName"],
        "additionalProperties": false,
        "properties": {
          "objectName": { "type": "string", "minLength": 1 },
          "fields": {
            "type": ["array", "null"],
            "items": {
              "type": "object",
              "required": ["path"],
              "additionalProperties": false,
              "properties": {
                "path": { "type": "array", "items": { "type": "string" } },
                "displayName": { "type": ["string", "null"] }
              }
            }
          }
        }
      }
    }
  },
  "additionalProperties": false
}`

var compiledDocumentSchema = jsonschema.MustCompileString("configuration.schema.json", documentSchema)

func LoadFile(fileName string) (*Config, error) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return Load(content, FormatFromFileName(fileName))
}

// Load checks the structure of the document before decoding it.
// Semantic checks against a schema are done by Validate.
func Load(content []byte, format Format) (*Config, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse configuration yaml: %w", err)
		}
		content = converted
	}

	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()
	var document interface{}
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("failed to parse configuration json: %w", err)
	}
	if err := compiledDocumentSchema.Validate(document); err != nil {
		return nil, fmt.Errorf("invalid configuration document: %w", err)
	}

	var config Config
	if err := json.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return &config, nil
}

func yamlToJSON(content []byte) ([]byte, error) {
	var document interface{}
	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, err
	}
	converted, err := convertYAMLValue(document)
	if err != nil {
		return nil, err
	}
	if converted == nil {
		converted = map[string]interface{}{}
	}
	return json.Marshal(converted)
}

// convertYAMLValue replaces the map[interface{}]interface{} values produced
// by yaml.v2 with JSON compatible maps.
func convertYAMLValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			keyStr, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported key %v of type %T", key, key)
			}
			converted, err := convertYAMLValue(item)
			if err != nil {
				return nil, err
			}
			out[keyStr] = converted
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			converted, err := convertYAMLValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return v, nil
	}
}
