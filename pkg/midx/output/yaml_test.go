package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAMLFormatter_Format_BasicOutput(t *testing.T) {
	formatter := &YAMLFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	// Should be valid YAML
	var parsed map[string]interface{}
	err = yaml.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	// Should have entries, stats, and meta sections
	assert.Contains(t, parsed, "entries")
	assert.Contains(t, parsed, "stats")
	assert.Contains(t, parsed, "meta")

	entries := parsed["entries"].([]interface{})
	require.Len(t, entries, 2)

	entry1 := entries[0].(map[string]interface{})
	assert.Equal(t, "jazz/take5.mid", entry1["path"])
	assert.Equal(t, "asset", entry1["origin"])
}

func TestYAMLFormatter_Format_EmptyResult(t *testing.T) {
	formatter := &YAMLFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, &Result{Source: "assets/midi"})
	require.NoError(t, err)

	var parsed map[string]interface{}
	err = yaml.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	meta := parsed["meta"].(map[string]interface{})
	assert.Equal(t, "assets/midi", meta["source"])
}

func TestYAMLFormatter_Registration(t *testing.T) {
	formatter, err := Get("yaml")
	require.NoError(t, err)
	assert.IsType(t, &YAMLFormatter{}, formatter)
}
