// Package csvtable reads CSV data into sparse tables and writes
// views and cell lists of tables as CSV.
//
// Parsing detects the character encoding, separator and line endings
// of the data and supports quoted fields with embedded separators,
// newlines and escaped quotes per RFC 4180.
package csvtable

import (
	"errors"
	"fmt"
	"strings"
)

// Format describes the encoding and structure of CSV data.
type Format struct {
	// Encoding is a name known by github.com/domonda/go-types/charset,
	// like "UTF-8", "UTF-16LE", "ISO 8859-1", "Windows 1252" or "Macintosh"
	Encoding string `json:"encoding" yaml:"encoding"`

	// Separator is the single character field delimiter
	Separator string `json:"separator" yaml:"separator"`

	// Newline is one of "\n", "\r\n" or "\n\r"
	Newline string `json:"newline" yaml:"newline"`
}

// NewFormat returns a UTF-8 Format with the passed separator
// and "\r\n" line endings.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// Validate returns an error if the format is nil or incomplete.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvtable.Format")
	case f.Encoding == "":
		return errors.New("missing csvtable.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csvtable.Format.Separator")
	case len(f.Separator) > 1:
		return fmt.Errorf("invalid csvtable.Format.Separator: %q", f.Separator)
	case f.Newline == "":
		return errors.New("missing csvtable.Format.Newline")
	case f.Newline != "\n" && f.Newline != "\n\r" && f.Newline != "\r\n":
		return fmt.Errorf("invalid csvtable.Format.Newline: %q", f.Newline)
	}
	return nil
}

// FormatDetectionConfig configures ParseDetectFormat.
type FormatDetectionConfig struct {
	// Encodings to try in priority order
	Encodings []string `json:"encodings" yaml:"encodings"`

	// EncodingTests are strings with characters that are
	// encoded differently by the Encodings.
	// An encoding is selected if the decoded data contains one of them.
	EncodingTests []string `json:"encodingTests" yaml:"encodingTests"`
}

// NewDefaultFormatDetectionConfig returns a FormatDetectionConfig
// for European and Cyrillic CSV files.
func NewDefaultFormatDetectionConfig() *FormatDetectionConfig {
	return &FormatDetectionConfig{
		Encodings: []string{
			"UTF-8",
			"UTF-16LE",
			"ISO 8859-1",
			"Windows 1252", // like ANSI
			"Macintosh",
		},
		EncodingTests: []string{
			"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€",
			"д", "Д", "ъ", "Ъ", "б", "Б", "л", "Л", "и", "И", "ж",
		},
	}
}

// EscapeQuotes doubles every double quote of val.
func EscapeQuotes(val string) string {
	return strings.ReplaceAll(val, `"`, `""`)
}
