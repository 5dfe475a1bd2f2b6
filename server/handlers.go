// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/aclements/go-descstat/chart"
	"github.com/aclements/go-descstat/input"
	"github.com/aclements/go-descstat/report"
	"github.com/aclements/go-descstat/stats"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

var (
	errBadRequest = errors.New("malformed request")
	errNotFound   = errors.New("not found")
)

type rawRequest struct {
	Data string `json:"data"`
}

type rawResponse struct {
	Status  string         `json:"status"`
	Summary *stats.Summary `json:"summary"`
	Table   string         `json:"table"`
}

type groupedRequest struct {
	Classes []stats.Class `json:"classes"`
}

type groupedResponse struct {
	Status       string                `json:"status"`
	Distribution *stats.Grouped        `json:"distribution"`
	Summary      *stats.GroupedSummary `json:"summary"`
	Table        string                `json:"table"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// formatter returns the formatter for r. The locale query parameter
// overrides the server's locale.
func (s *Server) formatter(r *http.Request) report.Formatter {
	f := s.format
	if l, err := report.ParseLocale(r.URL.Query().Get("locale")); err == nil {
		f.Locale = l
	}
	return f
}

func (s *Server) decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrapf(errBadRequest, "%v", err)
	}
	return nil
}

func (s *Server) reply(w http.ResponseWriter, code int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.WithError(err).Error("encoding response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(data)
}

// fail replies with the user notice for err.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadRequest):
		code = http.StatusBadRequest
	case errors.Is(err, errNotFound), errors.Is(err, chart.ErrUnknownKind), errors.Is(err, chart.ErrNotShown):
		code = http.StatusNotFound
	case errors.Is(err, report.ErrNoGrouped):
		code = http.StatusConflict
	case report.IsInputError(err):
		code = http.StatusUnprocessableEntity
	}
	entry := s.log.WithError(err).WithField("path", r.URL.Path)
	if code == http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	s.reply(w, code, errorResponse{report.Message(s.formatter(r).Locale, err)})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	var req rawRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	sum, err := stats.Summarize(stats.Sample{Xs: input.ParseSample(req.Data)})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	f := s.formatter(r)
	var table bytes.Buffer
	if err := report.WriteSummary(&table, f, sum); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := report.WriteSorted(&table, f, sum.Sorted); err != nil {
		s.fail(w, r, err)
		return
	}
	s.log.WithField("n", sum.N).Debug("summarized sample")
	s.reply(w, http.StatusOK, rawResponse{report.StatusOK(f.Locale, sum.N), sum, table.String()})
}

func (s *Server) handleGrouped(w http.ResponseWriter, r *http.Request) {
	var req groupedRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	g, err := stats.NewGrouped(req.Classes)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	sum := g.Summarize()
	f := s.formatter(r)
	var table bytes.Buffer
	if err := report.WriteGrouped(&table, f, g, sum); err != nil {
		s.fail(w, r, err)
		return
	}
	s.setGrouped(g)
	s.log.WithField("classes", len(g.Entries)).WithField("n", g.N).Debug("grouped classes")
	s.reply(w, http.StatusOK, groupedResponse{report.StatusOK(f.Locale, g.N), g, sum, table.String()})
}

func (s *Server) handleClearGrouped(w http.ResponseWriter, r *http.Request) {
	s.setGrouped(nil)
	s.board.Clear(chart.GroupedKinds...)
	w.WriteHeader(http.StatusNoContent)
}

// handleRender draws a chart, shows it on the board in place of any
// previous chart of its kind, and replies with the image. Raw-sample
// kinds take their data from the request; grouped kinds use the last
// grouped result.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	kind, err := chart.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var spec *chart.Spec
	if kind.Grouped() {
		var g *stats.Grouped
		if g, err = s.lastGrouped(); err == nil {
			spec, err = chart.FromGrouped(kind, g)
		}
	} else {
		var req rawRequest
		if err = s.decode(r, &req); err == nil {
			spec, err = chart.FromSample(kind, stats.Sample{Xs: input.ParseSample(req.Data)})
		}
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	report.LabelChart(s.formatter(r).Locale, spec)

	c, err := s.renderer.Render(spec)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var img bytes.Buffer
	if _, err := c.WriteTo(&img); err != nil {
		s.fail(w, r, err)
		return
	}
	s.board.Show(c)
	w.Header().Set("Content-Type", contentType(c.Ext()))
	w.Write(img.Bytes())
}

// handleExport replies with the chart on display as a file download
// named after its kind.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind, err := chart.ParseKind(vars["kind"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	c, ok := s.board.Get(kind)
	if !ok || c.Ext() != vars["ext"] {
		s.fail(w, r, errors.Wrapf(chart.ErrNotShown, "%s.%s", kind, vars["ext"]))
		return
	}
	var img bytes.Buffer
	if _, err := c.WriteTo(&img); err != nil {
		// Replaced since Get.
		s.fail(w, r, errors.Wrap(chart.ErrNotShown, err.Error()))
		return
	}
	w.Header().Set("Content-Type", contentType(c.Ext()))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(kind)+"."+c.Ext()))
	io.Copy(w, &img)
}

func (s *Server) handleClearCharts(w http.ResponseWriter, r *http.Request) {
	s.board.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func contentType(ext string) string {
	switch ext {
	case "png":
		return "image/png"
	case "svg":
		return "image/svg+xml"
	}
	return "text/plain; charset=utf-8"
}
