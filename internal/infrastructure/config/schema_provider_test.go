package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaJSON_DescribesSections(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "colorline configuration", doc["title"])

	s := string(data)
	for _, key := range []string{"database", "logging", "colors", "cli", "start_color", "preview_color", "jobs"} {
		assert.Contains(t, s, `"`+key+`"`)
	}
}

func TestWriteSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), schemaName)
	require.NoError(t, WriteSchemaFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestSchemaProvider_GetSchema(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()
	require.NotEmpty(t, keys)

	byKey := make(map[string]string, len(keys))
	for _, k := range keys {
		assert.NotEmpty(t, k.Section, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
		byKey[k.Key] = k.Default
	}

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Colors.StartColor, byKey["colors.start_color"])
	assert.Equal(t, "10", byKey["colors.steps"])
	assert.Equal(t, defaults.Logging.Level, byKey["logging.level"])
	assert.Contains(t, byKey, "database.path")
	assert.Contains(t, byKey, "cli.jobs")
}
