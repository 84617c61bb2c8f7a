package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gaurav-prasanna/tohtml5/core/outline"
	"github.com/gaurav-prasanna/tohtml5/core/parse"
	"github.com/gaurav-prasanna/tohtml5/core/pipeline"
	"github.com/gaurav-prasanna/tohtml5/core/render"
)

// handleConvert runs the request body through the pipeline.
//
// Query parameters: hgroup, section, normalize (booleans; when none is given
// the configured default passes apply), format, scope, input.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	passes, err := passesFromQuery(q, s.cfg.Passes)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	renderer, err := render.New(valueOr(q, "format", s.cfg.Format))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	parser, err := parse.ForFile("", valueOr(q, "input", s.cfg.InputFormat))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	p := pipeline.New(passes, valueOr(q, "scope", s.cfg.Scope), renderer, s.log)
	result, err := p.Process(body, parser)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			s.log.Error("convert failed", "error", err)
		}
		jsonError(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("X-Outline-Hgroups", strconv.Itoa(result.Stats.Groups))
	w.Header().Set("X-Outline-Sections", strconv.Itoa(result.Stats.Sections))
	w.Header().Set("X-Outline-Headings", strconv.Itoa(result.Stats.Headings))
	w.Write(result.Data)
}

// passesFromQuery reads the pass switches. A bare key (?hgroup) is true.
func passesFromQuery(q url.Values, defaults outline.Passes) (outline.Passes, error) {
	if !q.Has("hgroup") && !q.Has("section") && !q.Has("normalize") {
		return defaults, nil
	}

	var p outline.Passes
	for key, dst := range map[string]*bool{
		"hgroup":    &p.Group,
		"section":   &p.Section,
		"normalize": &p.Normalize,
	} {
		if !q.Has(key) {
			continue
		}
		v := q.Get(key)
		if v == "" {
			*dst = true
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return outline.Passes{}, fmt.Errorf("invalid %s value %q", key, v)
		}
		*dst = b
	}
	return p, nil
}

func statusFor(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, pipeline.ErrNothingToDo),
		errors.Is(err, parse.ErrInvalidSelector),
		errors.Is(err, parse.ErrScopeNoMatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func valueOr(q url.Values, key, fallback string) string {
	if v := q.Get(key); v != "" {
		return v
	}
	return fallback
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
