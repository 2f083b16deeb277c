package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/suffixlens/pkg/buildinfo"
	"github.com/matzehuels/suffixlens/pkg/errors"
	"github.com/matzehuels/suffixlens/pkg/pipeline"
	"github.com/matzehuels/suffixlens/pkg/store"
)

// =============================================================================
// Request / Response Types
// =============================================================================

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Text    string         `json:"text"`
	Options RequestOptions `json:"options"`

	// Artifacts lists "kind.format" names to render, e.g. "graph.svg".
	Artifacts []string `json:"artifacts,omitempty"`

	// Save stores the analysis in the history. Defaults to true.
	Save *bool `json:"save,omitempty"`
}

// RequestOptions are the pipeline options a client may set.
type RequestOptions struct {
	HorizontalGap float64 `json:"horizontal_gap,omitempty"`
	DepthScale    float64 `json:"depth_scale,omitempty"`
	GuideStep     int     `json:"guide_step,omitempty"`
	Refresh       bool    `json:"refresh,omitempty"`
}

// AnalyzeResponse is returned by POST /api/v1/analyze.
type AnalyzeResponse struct {
	ID         string            `json:"id,omitempty"`
	StatusLine string            `json:"status_line"`
	Complexity string            `json:"complexity"`
	CacheHit   bool              `json:"cache_hit"`
	Result     *pipeline.Result  `json:"result"`
	Artifacts  map[string]string `json:"artifacts,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info := buildinfo.Get()
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": info.Version,
		"commit":  info.Short(),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	artifacts, err := parseArtifacts(req.Artifacts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := s.requestOptions(req.Options)
	res, err := s.runner.Execute(r.Context(), req.Text, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := AnalyzeResponse{
		StatusLine: res.StatusLine(),
		Complexity: res.Complexity(),
		CacheHit:   res.CacheHit,
		Result:     res,
	}

	if len(artifacts) > 0 {
		resp.Artifacts = make(map[string]string, len(artifacts))
		for _, a := range artifacts {
			data, _, err := s.runner.Render(r.Context(), res, a.kind, a.format)
			if err != nil {
				s.writeError(w, r, err)
				return
			}
			resp.Artifacts[a.name] = string(data)
		}
	}

	if req.Save == nil || *req.Save {
		rec := store.New(res)
		if err := s.store.Save(r.Context(), rec); err != nil {
			s.logger.Warn("save analysis failed", "error", err, "request_id", requestIDFrom(r.Context()))
		} else {
			resp.ID = rec.ID
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	items, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"analyses": items})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	a, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind, format := q.Get("kind"), q.Get("format")
	if kind == "" {
		kind = pipeline.KindGraph
	}
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateArtifact(kind, format); err != nil {
		s.writeError(w, r, err)
		return
	}

	a, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if a.Result == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInternal, "analysis %s has no stored result", a.ID))
		return
	}

	data, hit, err := s.runner.Render(r.Context(), a.Result, kind, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("X-Cache", strconv.FormatBool(hit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// =============================================================================
// Helpers
// =============================================================================

type artifact struct {
	name, kind, format string
}

// parseArtifacts splits "kind.format" names and validates each pair.
func parseArtifacts(names []string) ([]artifact, error) {
	out := make([]artifact, 0, len(names))
	for _, name := range names {
		kind, format, ok := strings.Cut(name, ".")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "artifact %q must look like kind.format", name)
		}
		if err := pipeline.ValidateArtifact(kind, format); err != nil {
			return nil, err
		}
		out = append(out, artifact{name: name, kind: kind, format: format})
	}
	return out, nil
}

// requestOptions layers client spacing onto the server's base options.
func (s *Server) requestOptions(ro RequestOptions) pipeline.Options {
	opts := s.opts
	if ro.HorizontalGap != 0 {
		opts.HorizontalGap = ro.HorizontalGap
	}
	if ro.DepthScale != 0 {
		opts.DepthScale = ro.DepthScale
	}
	if ro.GuideStep != 0 {
		opts.GuideStep = ro.GuideStep
	}
	opts.Refresh = ro.Refresh
	return opts
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.New(errors.ErrCodeInputTooLarge, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidOptions:
		return http.StatusBadRequest
	case errors.ErrCodeInputTooLarge:
		return http.StatusRequestEntityTooLarge
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeNetwork:
		return http.StatusServiceUnavailable
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", requestIDFrom(r.Context()))
		msg = "internal server error"
	}
	writeJSON(w, status, errorBody{Error: msg, Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatJSON:
		return "application/json"
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatDOT:
		return "text/vnd.graphviz"
	}
	return fmt.Sprintf("application/x-%s", format)
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
