package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFormatter_Format_CustomTemplate(t *testing.T) {
	formatter := NewTemplateFormatter(`{{range .Entries}}{{.Name}}:{{.Path}};{{end}}`)
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	assert.Equal(t, "take5:jazz/take5.mid;nocturne:classical/nocturne.midi;", buf.String())
}

func TestTemplateFormatter_Format_BytesFunc(t *testing.T) {
	formatter := NewTemplateFormatter(`{{range .Entries}}{{bytes .Size}}
{{end}}`)
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "2.0 KiB")
	assert.Contains(t, buf.String(), "1.0 KiB")
}

func TestTemplateFormatter_Format_DateFunc(t *testing.T) {
	formatter := NewTemplateFormatter(`{{range .Entries}}{{date .ModTime "2006-01-02"}}
{{end}}`)
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "2024-03-10")
	assert.Contains(t, buf.String(), "2024-03-11")
}

func TestTemplateFormatter_Format_StatsAccess(t *testing.T) {
	formatter := NewTemplateFormatter(`{{.Stats.EntriesListed}} of {{.Stats.EntriesTotal}}`)
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	assert.Equal(t, "2 of 2", buf.String())
}

func TestTemplateFormatter_Format_InvalidTemplate(t *testing.T) {
	formatter := NewTemplateFormatter(`{{range .Entries}`)
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	assert.Error(t, err)
}

func TestTemplateFormatter_SetTemplate(t *testing.T) {
	formatter := NewTemplateFormatter(`first`)
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)
	assert.Equal(t, "first", buf.String())

	formatter.SetTemplate(`second`)
	buf.Reset()

	err = formatter.Format(&buf, sampleResult())
	require.NoError(t, err)
	assert.Equal(t, "second", buf.String())
}

func TestTemplateFormatter_Registration(t *testing.T) {
	formatter, err := Get("template")
	require.NoError(t, err)
	require.IsType(t, &TemplateFormatter{}, formatter)

	// Default template renders size and path
	var buf bytes.Buffer
	err = formatter.Format(&buf, sampleResult())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "jazz/take5.mid")
}
