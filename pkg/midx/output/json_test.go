package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_Format_BasicOutput(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	// Should be valid JSON
	var parsed map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	// Should have entries, stats, and meta sections
	assert.Contains(t, parsed, "entries")
	assert.Contains(t, parsed, "stats")
	assert.Contains(t, parsed, "meta")

	// Verify entries
	entries := parsed["entries"].([]interface{})
	require.Len(t, entries, 2)

	entry1 := entries[0].(map[string]interface{})
	assert.Equal(t, "jazz/take5.mid", entry1["path"])
	assert.Equal(t, "take5", entry1["name"])
	assert.Equal(t, "asset", entry1["origin"])
	assert.Equal(t, float64(2048), entry1["size"])

	// Verify meta
	meta := parsed["meta"].(map[string]interface{})
	assert.Equal(t, "assets/midi", meta["source"])
	assert.Equal(t, "assets/midi_manifest.json", meta["manifest_path"])
	assert.Equal(t, float64(2), meta["total_entries"])

	// Verify stats
	stats := parsed["stats"].(map[string]interface{})
	assert.Equal(t, float64(3072), stats["total_size"])
}

func TestJSONFormatter_Format_EmptyResult(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	result := &Result{
		Entries:      []EntryInfo{},
		Source:       "assets/midi",
		ManifestPath: "assets/midi_manifest.json",
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	var parsed map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	entries := parsed["entries"].([]interface{})
	assert.Len(t, entries, 0)
}

func TestJSONFormatter_Format_Warnings(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	result := sampleResult()
	result.Warnings = []string{"skipping missing asset entry: gone.mid"}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

	meta := parsed["meta"].(map[string]interface{})
	warnings := meta["warnings"].([]interface{})
	require.Len(t, warnings, 1)
	assert.Equal(t, "skipping missing asset entry: gone.mid", warnings[0])
}

func TestJSONFormatter_Format_Indented(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	// Should be indented (contains newlines after opening braces)
	assert.Contains(t, buf.String(), "{\n")
}

func TestJSONFormatter_Registration(t *testing.T) {
	formatter, err := Get("json")
	require.NoError(t, err)
	assert.IsType(t, &JSONFormatter{}, formatter)
}

func TestJSONLFormatter_Format_OneObjectPerLine(t *testing.T) {
	formatter := &JSONLFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	// Each line should be a valid compact JSON object
	for _, line := range lines {
		var parsed map[string]interface{}
		err := json.Unmarshal([]byte(line), &parsed)
		require.NoError(t, err)
		assert.Contains(t, parsed, "path")
		assert.Contains(t, parsed, "size")
	}

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "jazz/take5.mid", first["path"])
}

func TestJSONLFormatter_Format_EmptyResult(t *testing.T) {
	formatter := &JSONLFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, &Result{})
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}

func TestJSONLFormatter_Registration(t *testing.T) {
	formatter, err := Get("jsonl")
	require.NoError(t, err)
	assert.IsType(t, &JSONLFormatter{}, formatter)
}
