package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.WeeklyReport {
	return &domain.WeeklyReport{
		ShowRange:     "2024-01-01~2024-01-07",
		BoxOfficeType: "주간 박스오피스",
		Entries: []domain.BoxOfficeEntry{
			{
				Rank:                1,
				RankChange:          domain.RankChangeNew,
				Title:               "Sample Movie",
				ReleaseDate:         "20240101",
				AudienceAccumulated: "1,000,000",
				SalesShare:          "15.0%",
			},
		},
	}
}

func topTen() *domain.WeeklyReport {
	report := &domain.WeeklyReport{ShowRange: "20240311~20240317", BoxOfficeType: "주간 박스오피스"}
	for i := 1; i <= 10; i++ {
		report.Entries = append(report.Entries, domain.BoxOfficeEntry{
			Rank:                i,
			RankChange:          domain.RankUp(i),
			Title:               fmt.Sprintf("Movie %d", i),
			ReleaseDate:         "20240301",
			AudienceAccumulated: "1,000",
			SalesShare:          "1.0%",
		})
	}
	return report
}

func tableLines(doc string) []string {
	var lines []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "|") {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestFormatter_Render_WithRankChange(t *testing.T) {
	// Given
	formatter := NewFormatter(Options{IncludeRankChange: true})

	// When
	doc, err := formatter.Render(sampleReport())

	// Then
	require.NoError(t, err)
	expected := "# 🎬 주간 박스오피스 (2024-01-01~2024-01-07)\n" +
		"\n" +
		"KOBIS API 기반으로 자동 업데이트된 **주간 박스오피스 TOP 10**입니다.  \n" +
		"(기준: 2024-01-01~2024-01-07)\n" +
		"\n" +
		"---\n" +
		"\n" +
		"## 📊 박스오피스 순위\n" +
		"\n" +
		"| 순위 | 변동 | 영화명 | 개봉일 | 누적 관객수 | 매출 점유율 |\n" +
		"|------|-------|--------|--------|-------------|--------------|\n" +
		"| 1 | 🆕 NEW | Sample Movie | 20240101 | 1,000,000 | 15.0% |\n" +
		"\n" +
		"\n" +
		"---\n" +
		"\n" +
		"✅ 데이터 출처: [KOBIS 영화관입장권통합전산망](https://www.kobis.or.kr)\n"
	if diff := cmp.Diff(expected, string(doc)); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatter_Render_WithoutRankChange(t *testing.T) {
	formatter := NewFormatter(Options{IncludeRankChange: false})

	doc, err := formatter.Render(sampleReport())

	require.NoError(t, err)
	lines := tableLines(string(doc))
	require.Len(t, lines, 3)
	assert.Equal(t, "| 순위 | 영화명 | 개봉일 | 누적 관객수 | 매출 점유율 |", lines[0])
	assert.Equal(t, "|------|--------|--------|-------------|--------------|", lines[1])
	assert.Equal(t, "| 1 | Sample Movie | 20240101 | 1,000,000 | 15.0% |", lines[2])
	assert.NotContains(t, string(doc), "🆕")
}

func TestFormatter_HeadingLine(t *testing.T) {
	for _, include := range []bool{true, false} {
		doc, err := NewFormatter(Options{IncludeRankChange: include}).Render(sampleReport())
		require.NoError(t, err)

		firstLine := strings.SplitN(string(doc), "\n", 2)[0]
		assert.Equal(t, "# 🎬 주간 박스오피스 (2024-01-01~2024-01-07)", firstLine)
	}
}

func TestFormatter_TopTenRowsInRankOrder(t *testing.T) {
	tests := []struct {
		name            string
		include         bool
		expectedColumns int
	}{
		{name: "with rank change", include: true, expectedColumns: 6},
		{name: "without rank change", include: false, expectedColumns: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewFormatter(Options{IncludeRankChange: tt.include})

			doc, err := formatter.Render(topTen())
			require.NoError(t, err)

			lines := tableLines(string(doc))
			require.Len(t, lines, 12)
			assert.Len(t, formatter.Columns(), tt.expectedColumns)
			assert.Equal(t, tt.expectedColumns, strings.Count(lines[0], "|")-1)

			for i, line := range lines[2:] {
				assert.True(t, strings.HasPrefix(line, fmt.Sprintf("| %d | ", i+1)), line)
				assert.Contains(t, line, fmt.Sprintf("| Movie %d |", i+1))
			}
		})
	}
}

func TestFormatter_Idempotent(t *testing.T) {
	formatter := NewFormatter(Options{IncludeRankChange: true})

	first, err := formatter.Render(topTen())
	require.NoError(t, err)
	second, err := formatter.Render(topTen())
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestFormatter_EmptyRankChangeCell(t *testing.T) {
	report := sampleReport()
	report.Entries[0].RankChange = domain.RankChangeUnknown

	doc, err := NewFormatter(Options{IncludeRankChange: true}).Render(report)

	require.NoError(t, err)
	assert.Contains(t, string(doc), "| 1 |  | Sample Movie |")
}

func TestFormatter_NilReport(t *testing.T) {
	_, err := NewFormatter(Options{}).Render(nil)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFormatter_Handle_WriterError(t *testing.T) {
	err := NewFormatter(Options{}).Handle(failingWriter{}, sampleReport())
	assert.ErrorContains(t, err, "disk full")
}
