package export

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/jedib0t/go-pretty/v6/table"
)

// TableReporter prints reports to a terminal as a rounded table
type TableReporter struct {
	writer    io.Writer
	formatter *Formatter
}

// NewTableReporter creates a new console reporter
func NewTableReporter(writer io.Writer, formatter *Formatter) *TableReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &TableReporter{writer: writer, formatter: formatter}
}

func (c *TableReporter) Handle(report *domain.WeeklyReport) error {
	if report == nil {
		return fmt.Errorf("nothing to print: report is nil")
	}

	t := table.NewWriter()
	t.SetOutputMirror(c.writer)
	t.SetTitle(fmt.Sprintf("%s (%s)", report.BoxOfficeType, report.ShowRange))

	header := table.Row{}
	for _, title := range c.formatter.Columns() {
		header = append(header, title)
	}
	t.AppendHeader(header)

	for _, cells := range c.formatter.Cells(report) {
		row := make(table.Row, len(cells))
		for i, cell := range cells {
			row[i] = cell
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
