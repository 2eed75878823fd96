package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-sparsetable"
)

func TestParse(t *testing.T) {
	opts, err := Parse([]byte("" +
		"log:\n" +
		"  level: DEBUG\n" +
		"order: column-major\n" +
		"csv:\n" +
		"  separator: ','\n" +
		"  newline: \"\\n\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", opts.Log.Level)
	assert.Equal(t, "FULL", opts.Log.Mode, "default kept")
	assert.Equal(t, sparsetable.ColumnMajor, opts.IterationOrder())
	format := opts.CSVFormat()
	assert.Equal(t, ",", format.Separator)
	assert.Equal(t, "\n", format.Newline)
	assert.Equal(t, "UTF-8", format.Encoding)
	assert.True(t, opts.CSV.HeaderRow)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("order: diagonal\n"))
	require.ErrorContains(t, err, "invalid config order")

	_, err = Parse([]byte("csv:\n  separator: ';;'\n"))
	require.ErrorContains(t, err, "invalid config csv")

	_, err = Parse([]byte("log: [\n"))
	require.Error(t, err)
}

func TestTemplateRoundTrip(t *testing.T) {
	data, err := Template()
	require.NoError(t, err)
	assert.Contains(t, string(data), "order: row-major")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, NewDefault(), opts)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
