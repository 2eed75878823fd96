package htmltable

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"os"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-sparsetable"
)

func ExampleWriter() {
	table := sparsetable.New[any]()
	table.MustAdd(0, 0, "Company 1")
	table.MustAdd(0, 2, 1)
	table.MustAdd(1, 0, "Company 2")
	table.MustAdd(1, 1, json.RawMessage(`{"ok":true}`))
	table.MustAdd(1, 2, 2)

	view := sparsetable.NewTableView("Table Title", table)
	NewWriter().
		WithHeaderRow(true).
		WithTypeFormatter(reflect.TypeOf(json.RawMessage(nil)), JSONCellFormatter("")).
		WriteView(context.Background(), os.Stdout, view)

	// Output:
	// <table>
	//   <caption>Table Title</caption>
	//   <tr><th>0</th><th>1</th><th>2</th></tr>
	//   <tr><td>Company 1</td><td></td><td>1</td></tr>
	//   <tr><td>Company 2</td><td><pre>{"ok":true}</pre></td><td>2</td></tr>
	// </table>
}

func TestWriter_WriteView(t *testing.T) {
	table := sparsetable.New[string]()
	table.MustAdd(10, 3, "<a>")
	table.MustAdd(11, 4, "b")

	view := sparsetable.NewTableView("", table)
	view.ColumnTitle = func(column int) string { return "C" + strconv.Itoa(column) }

	var buf bytes.Buffer
	err := NewWriter().
		WithHeaderRow(true).
		WithTableClass("sparse").
		WithNilValue(template.HTML("&nbsp;")).
		WithRowTitle(func(row int) string { return strconv.Itoa(view.Range.MinRow + row) }).
		WriteView(context.Background(), &buf, view)
	require.NoError(t, err)
	require.Equal(t, ""+
		"<table class='sparse'>\n"+
		"  <tr><th></th><th>C3</th><th>C4</th></tr>\n"+
		"  <tr><th>10</th><td>&lt;a&gt;</td><td>&nbsp;</td></tr>\n"+
		"  <tr><th>11</th><td>&nbsp;</td><td>b</td></tr>\n"+
		"</table>",
		buf.String(),
	)

	buf.Reset()
	err = NewWriter().WithRawColumn(0).WriteView(context.Background(), &buf, view)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "<td><a></td>")
}

func TestWriter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := NewWriter().WriteView(ctx, &buf, &sparsetable.AnyValuesView{})
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, buf.Len())
}

func TestWriter_WithTemplate(t *testing.T) {
	header := template.Must(template.New("h").Parse("<t>"))
	row := template.Must(template.New("r").Parse("{{range .RawCells}}[{{.}}]{{end}}"))
	footer := template.Must(template.New("f").Parse("</t>"))
	base := NewWriter()
	w := base.WithTemplate(header, row, footer)
	require.Same(t, HeaderTemplate, base.headerTemplate)

	var buf bytes.Buffer
	view := &sparsetable.AnyValuesView{Cols: []string{"A", "B"}, Rows: [][]any{{1, nil}}}
	require.NoError(t, w.WriteView(context.Background(), &buf, view))
	require.Equal(t, "<t>[1][]</t>", buf.String())
}
