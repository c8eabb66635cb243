package workflow

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/de-tools/boxoffice-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/boxoffice-atlas/pkg/store/kobis"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) GetWeeklyBoxOffice(ctx context.Context, targetDate string) (*domain.WeeklyReport, error) {
	args := m.Called(ctx, targetDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyReport), args.Error(1)
}

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Write(ctx context.Context, doc []byte) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *mockSink) String() string { return "mock" }

type fixedDates string

func (d fixedDates) Resolve(override string) string {
	if override != "" {
		return override
	}
	return string(d)
}

func sampleReport() *domain.WeeklyReport {
	return &domain.WeeklyReport{
		ShowRange:     "20240311~20240317",
		BoxOfficeType: "주간 박스오피스",
		TargetDate:    "20240310",
		Entries: []domain.BoxOfficeEntry{
			{Rank: 1, RankChange: domain.RankChangeNew, Title: "Sample Movie", ReleaseDate: "20240101", AudienceAccumulated: "1,000,000", SalesShare: "15.0%"},
		},
	}
}

func testContext(buf *bytes.Buffer) context.Context {
	logger := zerolog.New(buf)
	return logger.WithContext(context.Background())
}

func TestRunner_Run_WritesRenderedDocument(t *testing.T) {
	// Given
	var logs bytes.Buffer
	ctx := testContext(&logs)
	fetcher := new(mockFetcher)
	fetcher.On("GetWeeklyBoxOffice", mock.Anything, "20240310").Return(sampleReport(), nil)
	formatter := export.NewFormatter(export.Options{IncludeRankChange: true})
	expected, err := formatter.Render(sampleReport())
	require.NoError(t, err)
	out := new(mockSink)
	out.On("Write", mock.Anything, expected).Return(nil)

	runner := NewRunner(NewSource(fetcher, fixedDates("20240310"), ""), formatter, out)

	// When
	err = runner.Run(ctx)

	// Then
	require.NoError(t, err)
	fetcher.AssertExpectations(t)
	out.AssertExpectations(t)
	assert.Contains(t, logs.String(), "report written")
}

func TestRunner_Run_ConfiguredTargetDate(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("GetWeeklyBoxOffice", mock.Anything, "20231001").Return(sampleReport(), nil)
	out := new(mockSink)
	out.On("Write", mock.Anything, mock.Anything).Return(nil)

	runner := NewRunner(NewSource(fetcher, fixedDates("20240310"), "20231001"), export.NewFormatter(export.Options{}), out)

	require.NoError(t, runner.Run(context.Background()))
	fetcher.AssertExpectations(t)
}

func TestRunner_Run_UpstreamFailureSkipsWrite(t *testing.T) {
	// Given
	var logs bytes.Buffer
	ctx := testContext(&logs)
	fetcher := new(mockFetcher)
	fetcher.On("GetWeeklyBoxOffice", mock.Anything, "20240310").
		Return(nil, &kobis.UpstreamError{StatusCode: 503})
	out := new(mockSink)

	runner := NewRunner(NewSource(fetcher, fixedDates("20240310"), ""), export.NewFormatter(export.Options{}), out)

	// When
	err := runner.Run(ctx)

	// Then
	assert.ErrorIs(t, err, kobis.ErrUpstream)
	out.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
	assert.Contains(t, logs.String(), "api request failed")
	assert.Contains(t, logs.String(), `"status_code":503`)
}

func TestRunner_Run_MalformedResponseSkipsWrite(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("GetWeeklyBoxOffice", mock.Anything, mock.Anything).Return(nil, kobis.ErrMalformedResponse)
	out := new(mockSink)

	runner := NewRunner(NewSource(fetcher, fixedDates("20240310"), ""), export.NewFormatter(export.Options{}), out)

	err := runner.Run(context.Background())

	assert.ErrorIs(t, err, kobis.ErrMalformedResponse)
	out.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestRunner_Run_WriteFailure(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("GetWeeklyBoxOffice", mock.Anything, mock.Anything).Return(sampleReport(), nil)
	out := new(mockSink)
	out.On("Write", mock.Anything, mock.Anything).Return(errors.New("read-only file system"))

	runner := NewRunner(NewSource(fetcher, fixedDates("20240310"), ""), export.NewFormatter(export.Options{}), out)

	err := runner.Run(context.Background())

	assert.ErrorContains(t, err, "failed to write report")
	assert.ErrorContains(t, err, "read-only file system")
}
