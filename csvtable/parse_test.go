package csvtable

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go-fs"

	"github.com/domonda/go-sparsetable"
)

func TestParseDetectFormat(t *testing.T) {
	tests := []struct {
		name       string
		csv        string
		wantRows   [][]string
		wantFormat Format
	}{
		{
			name:       "semicolon CRLF",
			csv:        "Name;Age\r\nJohn;30\r\nJane;25",
			wantRows:   [][]string{{"Name", "Age"}, {"John", "30"}, {"Jane", "25"}},
			wantFormat: Format{Encoding: "UTF-8", Separator: ";", Newline: "\r\n"},
		},
		{
			name:       "comma LF with empty line",
			csv:        "a,b\n\nc,d\n",
			wantRows:   [][]string{{"a", "b"}, nil, {"c", "d"}},
			wantFormat: Format{Encoding: "UTF-8", Separator: ",", Newline: "\n"},
		},
		{
			name:       "tabs",
			csv:        "a\tb\tc\n1\t\t3",
			wantRows:   [][]string{{"a", "b", "c"}, {"1", "", "3"}},
			wantFormat: Format{Encoding: "UTF-8", Separator: "\t", Newline: "\n"},
		},
		{
			name:       "sep header",
			csv:        "sep=,\r\na;b,c\r\n",
			wantRows:   [][]string{{"a;b", "c"}},
			wantFormat: Format{Encoding: "UTF-8", Separator: ",", Newline: "\r\n"},
		},
		{
			name:       "quoted fields",
			csv:        "\"x;y\";\"say \"\"hi\"\"\";z\n\"\";a\"b;",
			wantRows:   [][]string{{"x;y", `say "hi"`, "z"}, {"", `a"b`, ""}},
			wantFormat: Format{Encoding: "UTF-8", Separator: ";", Newline: "\n"},
		},
		{
			name:       "multi-line field keeps line numbers",
			csv:        "1;\"first\r\nsecond\";x\r\n2;y;z\r\n",
			wantRows:   [][]string{{"1", "first\nsecond", "x"}, nil, {"2", "y", "z"}},
			wantFormat: Format{Encoding: "UTF-8", Separator: ";", Newline: "\r\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, format, err := ParseDetectFormat([]byte(tt.csv), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, *format)
			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestParseDetectFormat_Empty(t *testing.T) {
	rows, format, err := ParseDetectFormat([]byte("\r\n \r\n"), nil)
	require.NoError(t, err)
	require.Empty(t, rows)
	require.Equal(t, "UTF-8", format.Encoding)
}

func TestParseDetectFormat_Errors(t *testing.T) {
	_, _, err := ParseDetectFormat([]byte("a;\"open\nb;c"), nil)
	require.ErrorContains(t, err, "not terminated")

	_, _, err = ParseDetectFormat([]byte("\"a\"b;c"), nil)
	require.ErrorContains(t, err, "after closing quote in line 1")
}

func TestParseWithFormat(t *testing.T) {
	format := NewFormat(",")
	rows, err := ParseWithFormat([]byte("\xEF\xBB\xBFa,b\r\nc,d"), format)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, rows)

	rows, err = ParseWithFormat([]byte("sep=,\r\na,b"), format)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b"}}, rows)

	_, err = ParseWithFormat([]byte("sep=;\r\na;b"), format)
	require.Error(t, err)

	_, err = ParseWithFormat(nil, &Format{Encoding: "UTF-8", Separator: ",", Newline: "\r"})
	require.Error(t, err)
}

func TestFormat_Validate(t *testing.T) {
	var nilFormat *Format
	require.Error(t, nilFormat.Validate())
	require.NoError(t, NewFormat(";").Validate())
	require.Error(t, (&Format{Separator: ";", Newline: "\n"}).Validate())
	require.Error(t, (&Format{Encoding: "UTF-8", Newline: "\n"}).Validate())
	require.Error(t, (&Format{Encoding: "UTF-8", Separator: ";"}).Validate())
	require.NoError(t, (&Format{Encoding: "UTF-8", Separator: ";", Newline: "\n\r"}).Validate())
}

func TestParseSepHeaderLine(t *testing.T) {
	assert.Equal(t, ",", parseSepHeaderLine("sep=,"))
	assert.Equal(t, ";", parseSepHeaderLine("SEP=;"))
	assert.Equal(t, "\t", parseSepHeaderLine("\"sep=\t\""))
	assert.Equal(t, "", parseSepHeaderLine("Name,Age"))
	assert.Equal(t, "", parseSepHeaderLine(""))
}

func TestReadTable(t *testing.T) {
	table, format, err := ReadTable([]byte("a;;b\r\n\r\n;c;\r\n"), nil)
	require.NoError(t, err)
	require.Equal(t, ";", format.Separator)
	require.Equal(t, 3, table.Size())
	require.Equal(t, []int{0, 2}, table.RowIndices())
	value, ok := table.Get(2, 1)
	require.True(t, ok)
	require.Equal(t, "c", value)
	require.NoError(t, table.Check())
}

func TestReadTableFile(t *testing.T) {
	file := fs.File(t.TempDir()).Join("table.csv")
	require.NoError(t, file.WriteAll([]byte("x,y\n,z\n")))

	table, format, err := ReadTableFile(file, nil)
	require.NoError(t, err)
	require.Equal(t, ",", format.Separator)
	require.Equal(t, 3, table.Size())
	require.True(t, table.Contains(1, 1))
	require.False(t, table.Contains(1, 0))
}

func TestCellsRoundTrip(t *testing.T) {
	ctx := context.Background()
	table := sparsetable.New[string]()
	table.MustAdd(2, 5, "a")
	table.MustAdd(-4, 3, "semi;colon")
	table.MustAdd(3, 4, "multi\nline")

	var dest bytes.Buffer
	err := WriteCells(ctx, NewWriter().WithHeaderRow(true), &dest, table)
	require.NoError(t, err)
	require.Equal(t, ""+
		"row;column;value\r\n"+
		"-4;3;\"semi;colon\"\r\n"+
		"2;5;a\r\n"+
		"3;4;\"multi\nline\"\r\n",
		dest.String(),
	)

	parsed, err := ReadCells(dest.Bytes(), NewFormat(";"))
	require.NoError(t, err)
	require.Equal(t, table.Size(), parsed.Size())
	for loc, value := range table.All() {
		got, ok := parsed.Get(loc.Row, loc.Column)
		require.True(t, ok, "cell %s", loc)
		require.Equal(t, value, got)
	}
}

func TestReadCells_Errors(t *testing.T) {
	_, err := ReadCells([]byte("1;2\r\n"), NewFormat(";"))
	require.ErrorContains(t, err, "expected 3 fields")

	_, err = ReadCells([]byte("1;2;a\r\nx;2;b\r\n"), NewFormat(";"))
	require.ErrorContains(t, err, "line 2: invalid row")

	table, err := ReadCells([]byte("1;2;a\r\n1;2;b\r\n"), NewFormat(";"))
	require.NoError(t, err)
	value, _ := table.Get(1, 2)
	require.Equal(t, "b", value, "later cell overwrites")
	require.Equal(t, 1, table.Size())
}
