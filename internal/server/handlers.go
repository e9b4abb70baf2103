package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/orgflow/pkg/buildinfo"
	"github.com/matzehuels/orgflow/pkg/chart"
	apperrors "github.com/matzehuels/orgflow/pkg/errors"
	"github.com/matzehuels/orgflow/pkg/pipeline"
	"github.com/matzehuels/orgflow/pkg/store"
)

// maxBodyBytes bounds chart uploads.
const maxBodyBytes = 10 << 20 // 10 MiB

// contentTypes maps artifact formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatTXT:  "text/plain; charset=utf-8",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

// =============================================================================
// Pipeline Endpoints
// =============================================================================

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	c, raw, err := s.readChart(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.applyConfigSpacing(&opts, raw)
	if err := opts.ValidateForLayout(); err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "%s", err))
		return
	}

	laid, hit, err := s.runner.LayoutWithCacheInfo(r.Context(), c, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	data, err := chart.Marshal(laid)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", cacheHeader(hit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	c, raw, err := s.readChart(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.applyConfigSpacing(&opts, raw)
	s.renderChart(w, r, c, opts)
}

// renderChart runs the full pipeline for one format and writes the
// artifact. Shared by the stateless render endpoint and the stored
// chart render endpoint.
func (s *Server) renderChart(w http.ResponseWriter, r *http.Request, c *chart.Chart, opts pipeline.Options) {
	format := pipeline.FormatSVG
	if len(opts.Formats) > 0 {
		format = opts.Formats[0]
	}
	opts.Formats = []string{format}

	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidFormat, "%s", err))
		return
	}
	if opts.Style != "" {
		if err := pipeline.ValidateStyle(opts.Style); err != nil {
			s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidStyle, "%s", err))
			return
		}
	}
	if opts.View != "" {
		if err := pipeline.ValidateView(opts.View); err != nil {
			s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "%s", err))
			return
		}
	}
	if err := opts.ValidateForLayout(); err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "%s", err))
		return
	}

	result, err := s.runner.Execute(r.Context(), c, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Chart-Hash", result.ChartHash)
	w.Header().Set("X-Cache", cacheHeader(result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// =============================================================================
// Chart Store Endpoints
// =============================================================================

// chartSummary is the list-view shape of a stored chart; the full
// document is only returned by the single-chart endpoints.
type chartSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Boxes      int       `json:"boxes"`
	Connectors int       `json:"connectors"`
}

func summarize(rec *store.Record) chartSummary {
	sum := chartSummary{
		ID:        rec.ID,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.Chart != nil {
		sum.Boxes = rec.Chart.BoxCount()
		sum.Connectors = rec.Chart.ConnectorCount()
	}
	return sum
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeStore, err, "listing charts"))
		return
	}
	out := make([]chartSummary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, summarize(rec))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	c, _, err := s.readChart(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	now := time.Now().UTC()
	rec := &store.Record{
		ID:        chart.NewID(),
		Name:      c.Name,
		CreatedAt: now,
		UpdatedAt: now,
		Chart:     c,
	}
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeStore, err, "storing chart"))
		return
	}

	w.Header().Set("Location", "/api/v1/charts/"+rec.ID)
	s.writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	rec, err := s.getRecord(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handlePutChart(w http.ResponseWriter, r *http.Request) {
	existing, err := s.getRecord(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	c, _, err := s.readChart(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec := &store.Record{
		ID:        existing.ID,
		Name:      c.Name,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
		Chart:     c,
	}
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeStore, err, "storing chart %s", rec.ID))
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "chartID")
	if err := apperrors.ValidateChartID(id); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, apperrors.New(apperrors.ErrCodeChartNotFound, "chart %s not found", id))
		} else {
			s.writeError(w, apperrors.Wrap(apperrors.ErrCodeStore, err, "deleting chart %s", id))
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenderChart(w http.ResponseWriter, r *http.Request) {
	rec, err := s.getRecord(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.renderChart(w, r, rec.Chart, opts)
}

// getRecord loads the record named by the URL, translating store
// errors into coded ones.
func (s *Server) getRecord(r *http.Request) (*store.Record, error) {
	id := chi.URLParam(r, "chartID")
	if err := apperrors.ValidateChartID(id); err != nil {
		return nil, err
	}

	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeChartNotFound, "chart %s not found", id)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeStore, err, "loading chart %s", id)
	}
	return rec, nil
}

// =============================================================================
// Request Parsing
// =============================================================================

// readChart decodes and validates the chart in the request body. It
// also returns the spacing params as they appeared on the wire, before
// validation backfills them, so config defaults can tell an omitted
// param from an explicit one.
func (s *Server) readChart(w http.ResponseWriter, r *http.Request) (*chart.Chart, chart.Params, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, chart.Params{}, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "reading request body")
	}

	var c chart.Chart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, chart.Params{}, apperrors.Wrap(apperrors.ErrCodeInvalidChart, err, "decode chart")
	}
	raw := c.Params
	if err := c.ValidateAndSetDefaults(); err != nil {
		return nil, chart.Params{}, err
	}
	return &c, raw, nil
}

// applyConfigSpacing fills spacing options from the server config for
// fields the query left unset and the chart did not carry.
func (s *Server) applyConfigSpacing(opts *pipeline.Options, raw chart.Params) {
	def := s.cfg.LayoutParams()
	if opts.LevelHeight == 0 && raw.LevelHeight == 0 {
		opts.LevelHeight = def.LevelHeight
	}
	if opts.ShapeGap == 0 && raw.ShapeGap == 0 {
		opts.ShapeGap = def.ShapeGap
	}
	if opts.VerticalIndent == 0 && raw.VerticalIndent == 0 {
		opts.VerticalIndent = def.VerticalIndent
	}
}

// optionsFromQuery builds pipeline options from URL query parameters.
// Enum validation happens later; this only parses.
func optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		View:     q.Get("view"),
		Style:    q.Get("style"),
		Grid:     q.Get("grid") == "true",
		Detailed: q.Get("detailed") == "true",
		Refresh:  q.Get("refresh") == "true",
	}
	if f := q.Get("format"); f != "" {
		opts.Formats = []string{f}
	}

	floats := map[string]*float64{
		"width":           &opts.Width,
		"height":          &opts.Height,
		"level_height":    &opts.LevelHeight,
		"shape_gap":       &opts.ShapeGap,
		"vertical_indent": &opts.VerticalIndent,
		"scale":           &opts.Scale,
	}
	for name, dst := range floats {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return opts, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid %s: %q", name, raw)
		}
		*dst = v
	}
	return opts, nil
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
