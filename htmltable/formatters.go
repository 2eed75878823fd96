package htmltable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"reflect"

	"github.com/domonda/go-sparsetable"
)

var (
	HTMLPreCellFormatter sparsetable.CellFormatterFunc = func(ctx context.Context, view sparsetable.View, row, col int) (str string, raw bool, err error) {
		value := template.HTMLEscapeString(fmt.Sprint(view.Cell(row, col)))
		return "<pre>" + value + "</pre>", true, nil
	}

	HTMLCodeCellFormatter sparsetable.CellFormatterFunc = func(ctx context.Context, view sparsetable.View, row, col int) (str string, raw bool, err error) {
		value := template.HTMLEscapeString(fmt.Sprint(view.Cell(row, col)))
		return "<code>" + value + "</code>", true, nil
	}

	// ValueAsHTMLAnchorCellFormatter returns an HTML anchor element
	// with the escaped value as id and inner text.
	ValueAsHTMLAnchorCellFormatter sparsetable.CellFormatterFunc = func(ctx context.Context, view sparsetable.View, row, col int) (str string, raw bool, err error) {
		value := template.HTMLEscapeString(fmt.Sprint(view.Cell(row, col)))
		return fmt.Sprintf("<a id='%[1]s'>%[1]s</a>", value), true, nil
	}

	_ sparsetable.CellFormatter = JSONCellFormatter("")
	_ sparsetable.CellFormatter = HTMLSpanClassCellFormatter("")
)

// JSONCellFormatter formats string, []byte or json.RawMessage cells
// as JSON indented with the underlying string within a pre element.
// An empty string formats compact JSON.
// Nil pointers are formatted as null, nil cells and empty strings
// result in an empty string.
type JSONCellFormatter string

func (indent JSONCellFormatter) FormatCell(ctx context.Context, view sparsetable.View, row, col int) (str string, raw bool, err error) {
	value := view.Cell(row, col)
	if value == nil || value == "" {
		return "", false, nil
	}
	var src []byte
	switch v := value.(type) {
	case string:
		src = []byte(v)
	case []byte:
		src = v
	case json.RawMessage:
		src = v
	default:
		if sparsetable.IsNullLike(reflect.ValueOf(value)) {
			src = []byte("null")
		} else {
			src = fmt.Append(nil, value)
		}
	}
	buf := bytes.NewBufferString("<pre>")
	if indent == "" {
		err = json.Compact(buf, src)
	} else {
		err = json.Indent(buf, src, "", string(indent))
	}
	if err != nil {
		return "", false, err
	}
	buf.WriteString("</pre>")
	return buf.String(), true, nil
}

// HTMLSpanClassCellFormatter formats the cell value within an HTML span element
// with the class of the underlying string value.
type HTMLSpanClassCellFormatter string

func (class HTMLSpanClassCellFormatter) FormatCell(ctx context.Context, view sparsetable.View, row, col int) (str string, raw bool, err error) {
	text := template.HTMLEscapeString(fmt.Sprint(view.Cell(row, col)))
	return fmt.Sprintf("<span class='%s'>%s</span>", class, text), true, nil
}
