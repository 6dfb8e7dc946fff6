package topicgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `{
  "subject": "mathematics",
  "topics": [
    {"id": "arithmetic", "name": "Arithmetic"},
    {"id": "fractions", "name": "Fractions"},
    {"id": "algebra", "name": "Algebra"}
  ],
  "prerequisites": [
    {"topic_id": "fractions", "prerequisite_id": "arithmetic"},
    {"topic_id": "algebra", "prerequisite_id": "arithmetic", "mastery_threshold": 0.6, "weight": 2.0}
  ]
}`

func TestLoad_ValidConfig(t *testing.T) {
	subject, g, err := Load([]byte(validConfig))
	require.NoError(t, err)
	assert.Equal(t, "mathematics", subject)
	assert.Len(t, g.Topics(), 3)

	prereqs := g.Prerequisites("fractions")
	require.Len(t, prereqs, 1)
	assert.Equal(t, DefaultMasteryThreshold, prereqs[0].MasteryThreshold)

	prereqs = g.Prerequisites("algebra")
	require.Len(t, prereqs, 1)
	assert.Equal(t, 0.6, prereqs[0].MasteryThreshold)
	assert.Equal(t, 2.0, prereqs[0].Weight)
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, _, err := Load([]byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestLoad_SchemaRejection(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing subject", `{"topics": [{"id": "a"}]}`},
		{"empty topic id", `{"subject": "math", "topics": [{"id": ""}]}`},
		{"unknown field", `{"subject": "math", "topics": [], "extra": true}`},
		{"threshold above one", `{"subject": "math", "topics": [{"id": "a"}, {"id": "b"}], "prerequisites": [{"topic_id": "b", "prerequisite_id": "a", "mastery_threshold": 1.5}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestLoad_StructuralRejection(t *testing.T) {
	// Passes the schema but trips graph validation: dangling prerequisite.
	data := `{
	  "subject": "math",
	  "topics": [{"id": "a"}],
	  "prerequisites": [{"topic_id": "a", "prerequisite_id": "ghost"}]
	}`
	_, _, err := Load([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o644))

	subject, g, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mathematics", subject)
	assert.NotNil(t, g)
}

func TestLoadFile_Missing(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read graph config")
}
