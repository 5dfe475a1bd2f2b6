// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server serves the descriptive statistics calculator over
// HTTP: a calculator page and a JSON API for summaries, grouped
// distributions and charts.
package server // import "github.com/aclements/go-descstat/server"

import (
	"context"
	_ "embed"
	"net/http"
	"sync"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/aclements/go-descstat/chart"
	"github.com/aclements/go-descstat/report"
	"github.com/aclements/go-descstat/stats"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed index.html
var indexHTML []byte

// Server holds the state of one calculator session: the most recent
// grouped result and the charts on display.
type Server struct {
	log      *logrus.Logger
	format   report.Formatter
	renderer chart.Renderer

	mu      sync.Mutex
	grouped *stats.Grouped

	board *chart.Board
}

// New returns a Server that formats numbers with f, draws charts with
// r and logs to log.
func New(f report.Formatter, r chart.Renderer, log *logrus.Logger) *Server {
	return &Server{
		log:      log,
		format:   f,
		renderer: r,
		board:    chart.NewBoard(),
	}
}

type route struct {
	method  string
	path    string
	handler http.HandlerFunc
}

func (s *Server) routes() []route {
	return []route{
		{"GET", "/", s.handleIndex},
		{"POST", "/api/raw", s.handleRaw},
		{"POST", "/api/grouped", s.handleGrouped},
		{"DELETE", "/api/grouped", s.handleClearGrouped},
		{"POST", "/api/charts/{kind:[a-z-]+}", s.handleRender},
		{"GET", "/api/charts/{kind:[a-z-]+}.{ext:[a-z]+}", s.handleExport},
		{"DELETE", "/api/charts", s.handleClearCharts},
	}
}

// Handler returns the HTTP handler for s, with gzip compression and
// an access log.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	for _, rt := range s.routes() {
		router.HandleFunc(rt.path, rt.handler).Methods(rt.method)
	}
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, errors.Wrap(errNotFound, r.URL.Path))
	})
	return handlers.CombinedLoggingHandler(s.log.Out, gziphandler.GzipHandler(router))
}

// ListenAndServe serves s on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.log.WithField("addr", addr).Info("serving")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return err
	}
	s.board.Clear()
	return nil
}

// setGrouped replaces the stored grouped result. A nil g clears it.
func (s *Server) setGrouped(g *stats.Grouped) {
	s.mu.Lock()
	s.grouped = g
	s.mu.Unlock()
}

// lastGrouped returns the stored grouped result or ErrNoGrouped.
func (s *Server) lastGrouped() (*stats.Grouped, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grouped == nil {
		return nil, report.ErrNoGrouped
	}
	return s.grouped, nil
}
