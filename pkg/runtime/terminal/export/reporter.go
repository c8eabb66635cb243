package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
)

// column is one table column: its header, the markdown rule under the
// header and the cell value for an entry.
type column struct {
	Title string
	Rule  string
	Value func(domain.BoxOfficeEntry) string
}

var (
	rankColumn = column{"순위", "------", func(e domain.BoxOfficeEntry) string {
		return fmt.Sprint(e.Rank)
	}}
	rankChangeColumn = column{"변동", "-------", func(e domain.BoxOfficeEntry) string {
		return string(e.RankChange)
	}}
	titleColumn = column{"영화명", "--------", func(e domain.BoxOfficeEntry) string {
		return e.Title
	}}
	releaseDateColumn = column{"개봉일", "--------", func(e domain.BoxOfficeEntry) string {
		return e.ReleaseDate
	}}
	audienceColumn = column{"누적 관객수", "-------------", func(e domain.BoxOfficeEntry) string {
		return e.AudienceAccumulated
	}}
	salesShareColumn = column{"매출 점유율", "--------------", func(e domain.BoxOfficeEntry) string {
		return e.SalesShare
	}}
)

const documentTemplate = `# 🎬 {{.Report.BoxOfficeType}} ({{.Report.ShowRange}})

KOBIS API 기반으로 자동 업데이트된 **주간 박스오피스 TOP 10**입니다.  
(기준: {{.Report.ShowRange}})

---

## 📊 박스오피스 순위

{{row .Titles}}
{{rule .Rules}}
{{range .Rows}}{{row .}}
{{end}}

---

✅ 데이터 출처: [KOBIS 영화관입장권통합전산망](https://www.kobis.or.kr)
`

type Options struct {
	IncludeRankChange bool
}

// Formatter renders a weekly report as a markdown document
type Formatter struct {
	columns []column
	tmpl    *template.Template
}

func NewFormatter(opts Options) *Formatter {
	columns := []column{rankColumn}
	if opts.IncludeRankChange {
		columns = append(columns, rankChangeColumn)
	}
	columns = append(columns, titleColumn, releaseDateColumn, audienceColumn, salesShareColumn)

	funcMap := template.FuncMap{
		"row": func(cells []string) string {
			return "| " + strings.Join(cells, " | ") + " |"
		},
		"rule": func(cells []string) string {
			return "|" + strings.Join(cells, "|") + "|"
		},
	}

	return &Formatter{
		columns: columns,
		tmpl:    template.Must(template.New("readme").Funcs(funcMap).Parse(documentTemplate)),
	}
}

// Columns returns the header titles in render order.
func (f *Formatter) Columns() []string {
	titles := make([]string, len(f.columns))
	for i, c := range f.columns {
		titles[i] = c.Title
	}
	return titles
}

// Cells returns one row of cell values per entry, in entry order.
func (f *Formatter) Cells(report *domain.WeeklyReport) [][]string {
	rows := make([][]string, len(report.Entries))
	for i, entry := range report.Entries {
		row := make([]string, len(f.columns))
		for j, c := range f.columns {
			row[j] = c.Value(entry)
		}
		rows[i] = row
	}
	return rows
}

func (f *Formatter) Handle(w io.Writer, report *domain.WeeklyReport) error {
	if report == nil {
		return fmt.Errorf("nothing to render: report is nil")
	}

	rules := make([]string, len(f.columns))
	for i, c := range f.columns {
		rules[i] = c.Rule
	}

	data := struct {
		Report *domain.WeeklyReport
		Titles []string
		Rules  []string
		Rows   [][]string
	}{
		Report: report,
		Titles: f.Columns(),
		Rules:  rules,
		Rows:   f.Cells(report),
	}

	if err := f.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// Render returns the full document as UTF-8 bytes.
func (f *Formatter) Render(report *domain.WeeklyReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Handle(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
