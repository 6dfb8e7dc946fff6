package topicgraph

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// configSchema is the JSON Schema every graph config file must satisfy.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["subject", "topics"],
  "additionalProperties": false,
  "properties": {
    "subject": {"type": "string", "minLength": 1},
    "topics": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"}
        }
      }
    },
    "prerequisites": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["topic_id", "prerequisite_id"],
        "additionalProperties": false,
        "properties": {
          "topic_id": {"type": "string", "minLength": 1},
          "prerequisite_id": {"type": "string", "minLength": 1},
          "mastery_threshold": {"type": "number", "exclusiveMinimum": 0, "maximum": 1},
          "weight": {"type": "number", "exclusiveMinimum": 0}
        }
      }
    }
  }
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Config is the on-disk graph configuration format.
type Config struct {
	Subject       string         `json:"subject"`
	Topics        []topicConfig  `json:"topics"`
	Prerequisites []prereqConfig `json:"prerequisites"`
}

type topicConfig struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type prereqConfig struct {
	TopicID          string  `json:"topic_id"`
	PrerequisiteID   string  `json:"prerequisite_id"`
	MasteryThreshold float64 `json:"mastery_threshold"`
	Weight           float64 `json:"weight"`
}

// LoadFile reads a graph config file, validates it against the embedded
// schema and the structural rules, and returns the subject and graph.
func LoadFile(path string) (string, *Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read graph config: %w", err)
	}
	return Load(data)
}

// Load parses and validates a graph config from raw JSON.
func Load(data []byte) (string, *Graph, error) {
	if err := validateAgainstSchema(data); err != nil {
		return "", nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return "", nil, fmt.Errorf("parse graph config: %w", err)
	}

	topics := make([]Topic, len(cfg.Topics))
	for i, t := range cfg.Topics {
		topics[i] = Topic{ID: t.ID, Name: t.Name}
	}
	edges := make([]Prerequisite, len(cfg.Prerequisites))
	for i, e := range cfg.Prerequisites {
		edges[i] = Prerequisite{
			TopicID:          e.TopicID,
			PrerequisiteID:   e.PrerequisiteID,
			MasteryThreshold: e.MasteryThreshold,
			Weight:           e.Weight,
		}
	}

	g := New(topics, edges)
	if err := g.Validate(); err != nil {
		return "", nil, err
	}
	return cfg.Subject, g, nil
}

// validateAgainstSchema checks raw JSON against the embedded config schema.
func validateAgainstSchema(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile graph config schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("graph config schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema compiles the embedded schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(configSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://topicgraph-config.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
