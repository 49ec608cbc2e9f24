package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/configcheck/internal/checker"
	"github.com/leengari/configcheck/internal/document"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrinterLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	require.NoError(t, p.Banner())
	require.NoError(t, p.Warnings([]checker.Warning{
		{TableName: "Notes", TableID: "t1", Property: "$permissions"},
		{TableName: "Unknown", TableID: "Unknown", Property: "columns"},
	}))
	require.NoError(t, p.Done())

	want := "Checking tables for missing array properties...\n" +
		"Warning: Table 'Notes' (t1) is missing '$permissions'.\n" +
		"Warning: Table 'Unknown' (Unknown) is missing 'columns'.\n" +
		"Done.\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinterParseFailure(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	_, err := document.Parse([]byte(`{"tables": [`))
	require.Error(t, err)
	require.NoError(t, p.ParseFailure(err))

	assert.Equal(t, "JSON Decode Error: unexpected end of JSON input: line 1 column 13 (char 12)\n", buf.String())
}

func TestPrinterParseFailureOtherError(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf).ParseFailure(errors.New("boom")))

	assert.Equal(t, "JSON Decode Error: boom\n", buf.String())
}

func TestPrinterWriteError(t *testing.T) {
	p := NewPrinter(failingWriter{})

	err := p.Banner()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	err = p.Warnings([]checker.Warning{{Property: "columns"}})
	require.Error(t, err)
}
