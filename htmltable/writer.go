// Package htmltable writes Views as HTML tables.
//
// Cell values are HTML escaped unless a formatter
// returns them as raw HTML.
//
//	table := sparsetable.New[string]()
//	table.MustAdd(10, 2, "x")
//
//	err := htmltable.NewWriter().
//	    WithHeaderRow(true).
//	    WithTableClass("sparse").
//	    WriteView(ctx, os.Stdout, sparsetable.NewTableView("Title", table))
package htmltable

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"maps"
	"reflect"

	"github.com/domonda/go-sparsetable"
)

// Writer writes Views as HTML table elements.
// All With* methods return a modified copy of the Writer.
type Writer struct {
	tableClass       string
	columnFormatters map[int]sparsetable.CellFormatter
	typeFormatters   *sparsetable.ReflectTypeCellFormatter
	nilValue         template.HTML
	headerRow        bool
	rowTitle         func(row int) string
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	footerTemplate   *template.Template
}

// NewWriter returns a Writer with the default templates,
// no header row and empty nil values.
func NewWriter() *Writer {
	return &Writer{
		headerTemplate: HeaderTemplate,
		rowTemplate:    RowTemplate,
		footerTemplate: FooterTemplate,
	}
}

// WriteView writes view as HTML table to dest
// using the view title as caption.
//
// Cells are formatted by the column formatter of their column,
// then by the type formatters and finally with fmt.Sprint.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view sparsetable.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		columns   = view.Columns()
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableClass: w.tableClass,
				Caption:    view.Title(),
			},
			HasRowTitles: w.rowTitle != nil,
			RawCells:     make([]template.HTML, len(columns)),
		}
		reflectView = sparsetable.AsReflectCellView(view)
	)

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if w.headerRow {
		templData.IsHeaderRow = true
		for i := range columns {
			templData.RawCells[i] = template.HTML(template.HTMLEscapeString(columns[i])) //#nosec G203
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
		templData.RowIndex++
	}

	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if w.rowTitle != nil {
			templData.RowTitle = w.rowTitle(row)
		}
		for col := range columns {
			templData.RawCells[col], err = w.cellHTML(ctx, reflectView, row, col)
			if err != nil {
				return err
			}
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.RowIndex++
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

func (w *Writer) cellHTML(ctx context.Context, view sparsetable.ReflectCellView, row, col int) (template.HTML, error) {
	if colFormatter, ok := w.columnFormatters[col]; ok {
		str, isRaw, err := colFormatter.FormatCell(ctx, view, row, col)
		if err == nil {
			return toHTML(str, isRaw), nil
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
	}

	str, isRaw, err := w.typeFormatters.FormatCell(ctx, view, row, col)
	if err == nil {
		return toHTML(str, isRaw), nil
	}
	if !errors.Is(err, errors.ErrUnsupported) {
		return "", err
	}

	v := view.ReflectCell(row, col)
	if sparsetable.IsNullLike(v) {
		return w.nilValue, nil
	}
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return toHTML(fmt.Sprint(v.Interface()), false), nil
}

func toHTML(str string, isRaw bool) template.HTML {
	if !isRaw {
		str = template.HTMLEscapeString(str)
	}
	return template.HTML(str) //#nosec G203
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithHeaderRow returns a new writer that writes
// the column titles as first row of <th> elements.
func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithTableClass returns a new writer with the CSS class of the table element.
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithRowTitle returns a new writer that starts every row
// with a <th> element holding the result of rowTitle.
// A nil rowTitle disables row titles.
func (w *Writer) WithRowTitle(rowTitle func(row int) string) *Writer {
	mod := w.clone()
	mod.rowTitle = rowTitle
	return mod
}

// WithColumnFormatter returns a new writer with the formatter registered for the specified column.
// Column formatters take precedence over type formatters.
// If nil is passed as formatter, any previously registered formatter for this column is removed.
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

// WithRawColumn returns a new writer that writes the values
// of the column as raw HTML without escaping.
//
// Warning: Only use this for trusted content to avoid XSS vulnerabilities.
func (w *Writer) WithRawColumn(columnIndex int) *Writer {
	return w.WithColumnFormatter(columnIndex, sparsetable.SprintCellFormatter(true))
}

// WithTypeFormatters returns a new writer with formatter
// replacing all type formatters.
func (w *Writer) WithTypeFormatters(formatter *sparsetable.ReflectTypeCellFormatter) *Writer {
	mod := w.clone()
	mod.typeFormatters = formatter
	return mod
}

func (w *Writer) WithTypeFormatter(typ reflect.Type, fmt sparsetable.CellFormatter) *Writer {
	mod := w.clone()
	mod.typeFormatters = w.typeFormatters.WithTypeFormatter(typ, fmt)
	return mod
}

func (w *Writer) WithInterfaceTypeFormatter(typ reflect.Type, fmt sparsetable.CellFormatter) *Writer {
	mod := w.clone()
	mod.typeFormatters = w.typeFormatters.WithInterfaceTypeFormatter(typ, fmt)
	return mod
}

func (w *Writer) WithKindFormatter(kind reflect.Kind, fmt sparsetable.CellFormatter) *Writer {
	mod := w.clone()
	mod.typeFormatters = w.typeFormatters.WithKindFormatter(kind, fmt)
	return mod
}

// WithNilValue returns a new writer with the HTML
// used for nil values and unpopulated cells.
func (w *Writer) WithNilValue(nilValue template.HTML) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

// WithTemplate returns a new writer with custom templates.
// See TemplateContext and RowTemplateContext for the template data.
func (w *Writer) WithTemplate(tableTemplate, rowTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	mod.headerTemplate = tableTemplate
	mod.rowTemplate = rowTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

func (w *Writer) TableClass() string      { return w.tableClass }
func (w *Writer) NilValue() template.HTML { return w.nilValue }
