package csvtable

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"

	"github.com/domonda/go-sparsetable"
)

// Encoder is an interface to encode byte strings.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

// CharsetEncoder returns an Encoder that encodes UTF-8
// to the charset with the passed name.
func CharsetEncoder(name string) (Encoder, error) {
	enc, err := charset.GetEncoding(name)
	if err != nil {
		return nil, err
	}
	return EncoderFunc(enc.Encode), nil
}

// Padding aligns the fields of a column to the same width.
type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Writer writes Views as CSV.
// All With* methods return a modified copy of the Writer.
type Writer struct {
	columnFormatters map[int]sparsetable.CellFormatter
	formatters       *sparsetable.ReflectTypeCellFormatter
	padding          Padding
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	nilValue         string
	delimiter        rune
	newLine          string
	encoder          Encoder
}

// NewWriter returns a Writer using ';' as delimiter and "\r\n" line endings.
func NewWriter() *Writer {
	return &Writer{
		escapeQuotes: `""`,
		delimiter:    ';',
		newLine:      "\r\n",
	}
}

// NewWriterWithFormat returns a Writer using the separator,
// newline and encoding of format.
func NewWriterWithFormat(format *Format) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	w := NewWriter().
		WithDelimiter(rune(format.Separator[0])).
		WithNewLine(format.Newline)
	if format.Encoding != "UTF-8" {
		enc, err := CharsetEncoder(format.Encoding)
		if err != nil {
			return nil, err
		}
		w = w.WithEncoder(enc)
	}
	return w, nil
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteView writes the view to dest formatted as CSV.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view sparsetable.View) error {
	if w.padding != NoPadding {
		rows, err := w.ViewStrings(ctx, view)
		if err != nil {
			return err
		}
		return w.writeRows(dest, rows, sparsetable.StringColumnWidths(rows, len(view.Columns())))
	}

	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	if w.headerRow {
		header, err := w.rowStrings(ctx, sparsetable.NewHeaderViewFrom(view), 0)
		if err != nil {
			return err
		}
		if err = w.writeRow(dest, rowBuf, header, nil); err != nil {
			return err
		}
	}
	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		fields, err := w.rowStrings(ctx, view, row)
		if err != nil {
			return err
		}
		if err = w.writeRow(dest, rowBuf, fields, nil); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeRows(dest io.Writer, rows [][]string, colWidths []int) error {
	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for _, fields := range rows {
		if err := w.writeRow(dest, rowBuf, fields, colWidths); err != nil {
			return err
		}
	}
	return nil
}

// writeRow writes the escaped fields to dest,
// padded to colWidths if not nil.
func (w *Writer) writeRow(dest io.Writer, rowBuf *bytes.Buffer, fields []string, colWidths []int) error {
	rowBuf.Reset()
	for col, str := range fields {
		if col > 0 {
			rowBuf.WriteRune(w.delimiter)
		}
		if colWidths == nil {
			rowBuf.WriteString(str)
			continue
		}
		var (
			padTotal = colWidths[col] - utf8.RuneCountInString(str)
			padLeft  = 0
			padRight = 0
		)
		switch w.padding {
		case AlignLeft:
			padRight = padTotal
		case AlignRight:
			padLeft = padTotal
		case AlignCenter:
			padLeft = padTotal / 2
			padRight = (padTotal + 1) / 2
		}
		rowBuf.WriteString(strings.Repeat(" ", padLeft))
		rowBuf.WriteString(str)
		rowBuf.WriteString(strings.Repeat(" ", padRight))
	}
	rowBuf.WriteString(w.newLine)

	data := rowBuf.Bytes()
	if w.encoder != nil {
		encoded, err := w.encoder.Bytes(data)
		if err != nil {
			return err
		}
		data = encoded
	}
	_, err := dest.Write(data)
	return err
}

// ViewStrings returns the escaped fields of the view
// including the header row if enabled.
func (w *Writer) ViewStrings(ctx context.Context, view sparsetable.View) ([][]string, error) {
	numRows := view.NumRows()
	rows := make([][]string, 0, numRows+1)
	if w.headerRow {
		// HeaderView for potential formatting of the column titles
		header, err := w.rowStrings(ctx, sparsetable.NewHeaderViewFrom(view), 0)
		if err != nil {
			return nil, err
		}
		rows = append(rows, header)
	}
	for row := 0; row < numRows; row++ {
		fields, err := w.rowStrings(ctx, view, row)
		if err != nil {
			return nil, err
		}
		rows = append(rows, fields)
	}
	return rows, nil
}

func (w *Writer) rowStrings(ctx context.Context, view sparsetable.View, row int) ([]string, error) {
	fields := make([]string, len(view.Columns()))
	for col := range fields {
		var err error
		fields[col], err = w.cellString(ctx, view, row, col)
		if err != nil {
			return nil, err
		}
	}
	return fields, nil
}

func (w *Writer) cellString(ctx context.Context, view sparsetable.View, row, col int) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if colFormatter, ok := w.columnFormatters[col]; ok {
		str, isRaw, err := colFormatter.FormatCell(ctx, view, row, col)
		if err == nil {
			return w.escapeString(str, isRaw), nil
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
	}

	str, isRaw, err := w.formatters.FormatCell(ctx, view, row, col)
	if err == nil {
		return w.escapeString(str, isRaw), nil
	}
	if !errors.Is(err, errors.ErrUnsupported) {
		return "", err
	}

	v := sparsetable.AsReflectCellView(view).ReflectCell(row, col)
	if sparsetable.IsNullLike(v) {
		return w.escapeString(w.nilValue, false), nil
	}
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return w.escapeString(fmt.Sprint(v.Interface()), false), nil
}

func (w *Writer) escapeString(str string, isRaw bool) string {
	if isRaw {
		return str
	}
	// \n alone is valid within quotes
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, w.delimiter) || strings.ContainsRune(str, '\n'):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return strings.ReplaceAll(str, `"`, w.escapeQuotes)
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithColumnFormatter returns a new writer with the passed formatter registered for columnIndex.
// If nil is passed as formatter, then a previous registered column formatter is removed.
func (w *Writer) WithColumnFormatter(columnIndex int, formatter sparsetable.CellFormatter) *Writer {
	mod := w.clone()
	mod.columnFormatters = maps.Clone(w.columnFormatters)
	if mod.columnFormatters == nil {
		mod.columnFormatters = make(map[int]sparsetable.CellFormatter)
	}
	if formatter != nil {
		mod.columnFormatters[columnIndex] = formatter
	} else {
		delete(mod.columnFormatters, columnIndex)
	}
	return mod
}

func (w *Writer) WithTypeFormatters(formatter *sparsetable.ReflectTypeCellFormatter) *Writer {
	mod := w.clone()
	mod.formatters = formatter
	return mod
}

func (w *Writer) WithTypeFormatter(typ reflect.Type, fmt sparsetable.CellFormatter) *Writer {
	mod := w.clone()
	mod.formatters = w.formatters.WithTypeFormatter(typ, fmt)
	return mod
}

func (w *Writer) WithKindFormatter(kind reflect.Kind, fmt sparsetable.CellFormatter) *Writer {
	mod := w.clone()
	mod.formatters = w.formatters.WithKindFormatter(kind, fmt)
	return mod
}

func (w *Writer) WithPadding(padding Padding) *Writer {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer) WithNilValue(nilValue string) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer) WithEncoder(encoder Encoder) *Writer {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

func (w *Writer) Delimiter() rune     { return w.delimiter }
func (w *Writer) NewLine() string     { return w.newLine }
func (w *Writer) NilValue() string    { return w.nilValue }
func (w *Writer) HeaderRow() bool     { return w.headerRow }
func (w *Writer) Padding() Padding    { return w.padding }
func (w *Writer) EscapeQuotes() string { return w.escapeQuotes }
