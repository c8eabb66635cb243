package boxoffice

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/de-tools/boxoffice-atlas/pkg/adapters"
	"github.com/de-tools/boxoffice-atlas/pkg/models/api"
	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/de-tools/boxoffice-atlas/pkg/runtime/terminal/export"
	"github.com/rs/zerolog"
)

const markdownContentType = "text/markdown; charset=utf-8"

var targetDatePattern = regexp.MustCompile(`^\d{8}$`)

type ReportFetcher interface {
	Fetch(ctx context.Context, targetDate string) (*domain.WeeklyReport, error)
}

type Handler struct {
	fetcher           ReportFetcher
	includeRankChange bool
}

func NewHandler(fetcher ReportFetcher, includeRankChange bool) *Handler {
	return &Handler{
		fetcher:           fetcher,
		includeRankChange: includeRankChange,
	}
}

func (h *Handler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	report, ok := h.fetch(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(adapters.MapDomainReportToAPIReport(*report))
	if err != nil {
		logger.Error().
			Err(err).
			Str("target_date", report.TargetDate).
			Msg("failed to encode weekly report")
	}
}

func (h *Handler) GetReadme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	include := h.includeRankChange
	if raw := r.URL.Query().Get("include_rank_change"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'include_rank_change' value. Expected true or false")
			return
		}
		include = parsed
	}

	report, ok := h.fetch(w, r)
	if !ok {
		return
	}

	doc, err := export.NewFormatter(export.Options{IncludeRankChange: include}).Render(report)
	if err != nil {
		logger.Error().Err(err).Msg("failed to render readme")
		writeError(w, http.StatusInternalServerError, "failed to render readme")
		return
	}

	w.Header().Set("Content-Type", markdownContentType)
	if _, err := w.Write(doc); err != nil {
		logger.Error().Err(err).Msg("failed to write readme")
	}
}

func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) (*domain.WeeklyReport, bool) {
	targetDate := r.URL.Query().Get("target_date")
	if targetDate != "" && !targetDatePattern.MatchString(targetDate) {
		writeError(w, http.StatusBadRequest, "invalid 'target_date' format. Expected format: YYYYMMDD")
		return nil, false
	}

	report, err := h.fetcher.Fetch(r.Context(), targetDate)
	if err != nil {
		writeError(w, http.StatusBadGateway, "box office upstream unavailable")
		return nil, false
	}
	return report, true
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Message: message})
}
