package kobis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "http://kobis.or.kr/kobisopenapi/webservice/rest"
	DefaultTimeout = 30 * time.Second

	weeklyEndpoint = "/boxoffice/searchWeeklyBoxOfficeList.json"
	// weekGbAll selects the weekly listing covering weekdays and the weekend.
	weekGbAll = "0"
)

var (
	// ErrMissingBaseURL indicates the upstream base URL was not provided.
	ErrMissingBaseURL = errors.New("kobis: base URL is required")
	// ErrUpstream matches every rejection reported by the KOBIS API.
	ErrUpstream = errors.New("kobis: upstream request failed")
	// ErrMalformedResponse indicates the payload did not have the expected shape.
	ErrMalformedResponse = errors.New("kobis: malformed response")
)

// UpstreamError captures non-2xx responses from the KOBIS API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("kobis: upstream status %d", e.StatusCode)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// FaultError is a request KOBIS answered with a faultInfo body.
type FaultError struct {
	Code    string
	Message string
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("kobis: fault %s: %s", e.Code, e.Message)
}

func (e *FaultError) Is(target error) bool {
	return target == ErrUpstream
}

// Client invokes the KOBIS box-office API.
type Client struct {
	apiKey   string
	client   *resty.Client
	validate *validator.Validate
}

// Option allows customizing the client.
type Option func(*Client)

// WithTimeout sets the request deadline. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.SetTimeout(d)
	}
}

// WithRestyClient replaces the underlying transport, keeping the base URL.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) {
		if rc != nil {
			rc.SetBaseURL(c.client.BaseURL)
			c.client = rc
		}
	}
}

// NewClient builds a Client. An empty API key is sent as is and left for
// the upstream to reject.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	trimmedURL := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmedURL == "" {
		return nil, ErrMissingBaseURL
	}

	client := &Client{
		apiKey: strings.TrimSpace(apiKey),
		client: resty.New().
			SetBaseURL(trimmedURL).
			SetTimeout(DefaultTimeout).
			SetHeader("Accept", "application/json"),
		validate: validator.New(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// GetWeeklyBoxOffice fetches the weekly top list for the week containing targetDate.
func (c *Client) GetWeeklyBoxOffice(ctx context.Context, targetDate string) (*domain.WeeklyReport, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":      c.apiKey,
			"targetDt": targetDate,
			"weekGb":   weekGbAll,
		}).
		Get(weeklyEndpoint)
	if err != nil {
		return nil, fmt.Errorf("kobis: execute request: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &UpstreamError{StatusCode: resp.StatusCode()}
	}

	var payload weeklyResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", ErrMalformedResponse, err)
	}

	if payload.FaultInfo != nil {
		return nil, &FaultError{Code: payload.FaultInfo.ErrorCode, Message: payload.FaultInfo.Message}
	}

	if err := c.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return toReport(targetDate, payload.BoxOfficeResult)
}

func toReport(targetDate string, result *boxOfficeResult) (*domain.WeeklyReport, error) {
	entries := make([]domain.BoxOfficeEntry, 0, len(result.WeeklyBoxOfficeList))
	for i, m := range result.WeeklyBoxOfficeList {
		rank, err := strconv.Atoi(strings.TrimSpace(*m.Rank))
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: rank %q: %v", ErrMalformedResponse, i, *m.Rank, err)
		}

		audience, err := strconv.ParseInt(strings.TrimSpace(*m.AudiAcc), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: audiAcc %q: %v", ErrMalformedResponse, i, *m.AudiAcc, err)
		}

		entries = append(entries, domain.BoxOfficeEntry{
			Rank:                rank,
			RankChange:          FormatRankChange(rawText(m.RankInten), *m.RankOldAndNew),
			Title:               *m.MovieNm,
			ReleaseDate:         *m.OpenDt,
			AudienceAccumulated: FormatAudience(audience),
			SalesShare:          FormatSalesShare(*m.SalesShare),
		})
	}

	return &domain.WeeklyReport{
		ShowRange:     *result.ShowRange,
		BoxOfficeType: *result.BoxofficeType,
		TargetDate:    targetDate,
		Entries:       entries,
	}, nil
}
