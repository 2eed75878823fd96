package csvtable

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/domonda/go-types/charset"
	"github.com/ungerik/go-fs"
)

// ParseDetectFormat detects the encoding, line endings and separator
// of csv and parses it into rows of fields.
// A nil config is replaced by NewDefaultFormatDetectionConfig().
//
// Every line of the data results in one row so row indices equal
// line numbers, empty lines result in nil rows.
// A line continuing a quoted multi-line field also results
// in a nil row.
//
// Separator detection honors a "sep=X" first line as written by Excel,
// else the most frequent of ',', ';' and '\t' is used with ',' as default.
func ParseDetectFormat(csv []byte, config *FormatDetectionConfig) (rows [][]string, format *Format, err error) {
	if config == nil {
		config = NewDefaultFormatDetectionConfig()
	}
	text, format, err := detectFormat(csv, config)
	if err != nil {
		return nil, format, err
	}
	if text == "" {
		return nil, format, nil
	}
	rows, err = parseRecords(text, format.Separator[0])
	return rows, format, err
}

// ParseWithFormat parses csv decoded from format.Encoding
// with the separator and line endings of format.
// A "sep=X" first line is skipped if it matches format.Separator.
func ParseWithFormat(csv []byte, format *Format) (rows [][]string, err error) {
	if err = format.Validate(); err != nil {
		return nil, err
	}
	if format.Encoding == "UTF-8" {
		csv = charset.TrimBOM(csv, charset.BOMUTF8)
	} else {
		enc, err := charset.GetEncoding(format.Encoding)
		if err != nil {
			return nil, err
		}
		if csv, err = enc.Decode(csv); err != nil {
			return nil, err
		}
	}
	text := normalizeNewlines(string(sanitizeUTF8(csv)), format.Newline)
	first, rest, _ := strings.Cut(text, "\n")
	if headerSep := parseSepHeaderLine(first); headerSep != "" {
		if headerSep != format.Separator {
			return nil, fmt.Errorf("separator %q in header line is different from csvtable.Format.Separator %q", headerSep, format.Separator)
		}
		text = rest
	}
	return parseRecords(text, format.Separator[0])
}

// ParseFile reads file and parses it with ParseDetectFormat.
func ParseFile(file fs.FileReader, config *FormatDetectionConfig) (rows [][]string, format *Format, err error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	rows, format, err = ParseDetectFormat(data, config)
	if err != nil {
		return nil, format, fmt.Errorf("can't parse CSV file %s: %w", file.Name(), err)
	}
	return rows, format, nil
}

// detectFormat decodes csv to a UTF-8 string with "\n" line endings
// and the "sep=X" header line removed.
func detectFormat(csv []byte, config *FormatDetectionConfig) (text string, format *Format, err error) {
	if config == nil {
		return "", nil, errors.New("FormatDetectionConfig must not be nil")
	}

	var encodings []charset.Encoding
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return "", nil, err
		}
		encodings = append(encodings, enc)
	}
	format = new(Format)
	csv, format.Encoding, err = charset.AutoDecode(csv, encodings, config.EncodingTests)
	if err != nil {
		return "", nil, err
	}
	if format.Encoding == "" {
		format.Encoding = "UTF-8"
	}
	csv = sanitizeUTF8(csv)

	// Prefer the standard \r\n if it is used at all
	if bytes.Contains(csv, []byte("\r\n")) {
		format.Newline = "\r\n"
	} else {
		format.Newline = "\n"
	}
	text = normalizeNewlines(string(csv), format.Newline)

	first, rest, _ := strings.Cut(text, "\n")
	if format.Separator = parseSepHeaderLine(first); format.Separator != "" {
		return rest, format, nil
	}

	var (
		commas     = strings.Count(text, ",")
		semicolons = strings.Count(text, ";")
		tabs       = strings.Count(text, "\t")
	)
	switch {
	case semicolons > commas && semicolons > tabs:
		format.Separator = ";"
	case tabs > commas && tabs > semicolons:
		format.Separator = "\t"
	default:
		format.Separator = ","
	}
	if strings.TrimSpace(text) == "" {
		return "", format, nil
	}
	return text, format, nil
}

// normalizeNewlines replaces newline with "\n"
// and removes remaining carriage returns.
func normalizeNewlines(text, newline string) string {
	if newline != "\n" {
		text = strings.ReplaceAll(text, newline, "\n")
	}
	return strings.ReplaceAll(text, "\r", "")
}

// parseSepHeaderLine returns X for a line "sep=X" or "SEP=X"
// that may be enclosed in double quotes.
func parseSepHeaderLine(line string) (sep string) {
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if len(line) != 5 || (!strings.HasPrefix(line, "sep=") && !strings.HasPrefix(line, "SEP=")) {
		return ""
	}
	return line[4:5]
}

// parseRecords splits text with "\n" line endings into rows of fields.
// Quoted fields may contain the separator, newlines and quotes
// escaped as "". A quote in an unquoted field is kept as is.
func parseRecords(text string, separator byte) (rows [][]string, err error) {
	var (
		line     = 1
		row      []string
		field    strings.Builder
		quoted   bool // inside a quoted field
		closed   bool // after the closing quote of a field
		started  bool // row has content
		numLines = 0  // lines spanned by the current row minus one
	)
	endField := func() {
		row = append(row, field.String())
		field.Reset()
		closed = false
	}
	endRow := func() {
		if started {
			endField()
		}
		rows = append(rows, row)
		for range numLines {
			rows = append(rows, nil)
		}
		row, started, numLines = nil, false, 0
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quoted:
			switch {
			case c == '"' && i+1 < len(text) && text[i+1] == '"':
				field.WriteByte('"')
				i++
			case c == '"':
				quoted, closed = false, true
			default:
				if c == '\n' {
					line++
					numLines++
				}
				field.WriteByte(c)
			}
		case c == separator:
			started = true
			endField()
		case c == '\n':
			endRow()
			line++
		case closed:
			return nil, fmt.Errorf("unexpected character %q after closing quote in line %d", c, line)
		case c == '"' && field.Len() == 0:
			started, quoted = true, true
		default:
			started = true
			field.WriteByte(c)
		}
	}
	if quoted {
		return nil, fmt.Errorf("quoted field not terminated in line %d", line)
	}
	if started {
		endRow()
	}
	return rows, nil
}

func sanitizeUTF8(str []byte) []byte {
	return bytes.Map(
		func(r rune) rune {
			switch r {
			// \u00a0 is No-Break Space (NBSP)
			case '\uFFFD', '\u00a0':
				return ' '
			default:
				return r
			}
		},
		str,
	)
}
