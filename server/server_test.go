// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aclements/go-descstat/chart"
	"github.com/aclements/go-descstat/report"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exampleData    = `{"data": "7, 8, 5, 9, 10, 10, 6, 6, 8, 9, 7, 7, 5, 6, 10"}`
	exampleClasses = `{"classes": [
		{"lower": 1, "upper": 2, "frequency": 10},
		{"lower": 3, "upper": 4, "frequency": 20},
		{"lower": 5, "upper": 6, "frequency": 30}]}`
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

type testServer struct {
	*Server
	h    http.Handler
	logs bytes.Buffer
}

func newTestServer(t *testing.T) *testServer {
	ts := &testServer{}
	l := logrus.New()
	l.Out = &ts.logs
	ts.Server = New(report.Formatter{Locale: report.English, Decimals: 2}, chart.Raster{Width: 320, Height: 240}, l)
	ts.h = ts.Handler()
	return ts
}

func (ts *testServer) do(method, path, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	ts.h.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp.Error
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do("GET", "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/api/raw")

	w = ts.do("GET", "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRaw(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do("POST", "/api/raw", exampleData)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp rawResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK! 15 values analysed.", resp.Status)
	assert.Equal(t, 15, resp.Summary.N)
	assert.True(t, resp.Summary.Mean.OK)
	assert.InDelta(t, 113.0/15, resp.Summary.Mean.X, 1e-9)
	assert.Equal(t, []float64{6, 7, 10}, resp.Summary.Modes)
	assert.True(t, resp.Summary.CV.OK)
	assert.Contains(t, resp.Table, "7.53")
	assert.Contains(t, resp.Table, "Sorted: 5, 5, 6")

	assert.Contains(t, ts.logs.String(), `"POST /api/raw HTTP/1.1" 200`)
}

func TestRawSingle(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do("POST", "/api/raw?locale=pt-BR", `{"data": "4.5"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp rawResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK! 1 valores analisados.", resp.Status)
	assert.False(t, resp.Summary.Variance.OK)
	assert.Contains(t, w.Body.String(), `"variance":null`)
}

func TestRawOverflow(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do("POST", "/api/raw", `{"data": "1e308 1e308"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp rawResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Summary.Mean.OK)
	assert.False(t, resp.Summary.PopVariance.OK)
	assert.Equal(t, 1e308, resp.Summary.Median.X)
	assert.Contains(t, w.Body.String(), `"mean":null`)
	assert.Contains(t, resp.Table, report.Undefined)
}

func TestRawErrors(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do("POST", "/api/raw", `{"data": "a b ;"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "No valid numbers. Check the separators.", errorOf(t, w))

	w = ts.do("POST", "/api/raw?locale=pt-BR", `{"data": ""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Nenhum número válido. Confira separadores.", errorOf(t, w))

	w = ts.do("POST", "/api/raw", `{"data": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGrouped(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do("POST", "/api/grouped", exampleClasses)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp groupedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 60, resp.Distribution.N)
	require.Len(t, resp.Distribution.Entries, 3)
	assert.Equal(t, 30, resp.Distribution.Entries[1].Cumulative)
	assert.InDelta(t, 250.0/60, resp.Summary.Mean.X, 1e-9)
	assert.Equal(t, 5.5, resp.Summary.Median.X)
	assert.Contains(t, resp.Table, "1.00 – 2.00")

	g, err := ts.lastGrouped()
	require.NoError(t, err)
	assert.Equal(t, 60, g.N)
}

func TestGroupedErrors(t *testing.T) {
	ts := newTestServer(t)
	for _, test := range []struct {
		body string
		code int
		msg  string
	}{
		{`{"classes": []}`, http.StatusUnprocessableEntity, "Add at least one class."},
		{`{"classes": [{"lower": 1, "upper": 3, "frequency": 5}, {"lower": 2, "upper": 4, "frequency": 5}]}`,
			http.StatusUnprocessableEntity, "Class 2: Classes cannot overlap (use contiguous or separate intervals)."},
		{`{"classes": [{"lower": 2, "upper": 1, "frequency": 5}]}`,
			http.StatusUnprocessableEntity, "Class 1: Each class must have Ls > Li."},
		{`{"classes": [{"lower": 0, "upper": 1, "frequency": 0}]}`,
			http.StatusUnprocessableEntity, "The sum of the frequencies (N) must be > 0."},
		{`{"classes": [{"lower": 0, "upper": 1, "frequency": 2.5}]}`, http.StatusBadRequest, ""},
	} {
		w := ts.do("POST", "/api/grouped", test.body)
		assert.Equal(t, test.code, w.Code, test.body)
		if test.msg != "" {
			assert.Equal(t, test.msg, errorOf(t, w))
		}
	}
	// Failed calculations do not store anything.
	_, err := ts.lastGrouped()
	assert.ErrorIs(t, err, report.ErrNoGrouped)
}

func TestCharts(t *testing.T) {
	ts := newTestServer(t)

	// Grouped charts need a grouped result.
	w := ts.do("POST", "/api/charts/ogive", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Calculate the grouped data first.", errorOf(t, w))

	require.Equal(t, http.StatusOK, ts.do("POST", "/api/grouped", exampleClasses).Code)
	for _, kind := range chart.GroupedKinds {
		w := ts.do("POST", "/api/charts/"+string(kind), "")
		require.Equal(t, http.StatusOK, w.Code, "%s: %s", kind, w.Body.String())
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), pngMagic))
	}
	for _, kind := range chart.RawKinds {
		w := ts.do("POST", "/api/charts/"+string(kind), exampleData)
		require.Equal(t, http.StatusOK, w.Code, "%s: %s", kind, w.Body.String())
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), pngMagic))
	}
	assert.Len(t, ts.board.Kinds(), len(chart.RawKinds)+len(chart.GroupedKinds))

	w = ts.do("GET", "/api/charts/ogive.png", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="ogive.png"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), pngMagic))

	assert.Equal(t, http.StatusNotFound, ts.do("GET", "/api/charts/ogive.svg", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do("POST", "/api/charts/radar", exampleData).Code)
	w = ts.do("POST", "/api/charts/bar", `{"data": "x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Clearing grouped data removes only the grouped charts.
	assert.Equal(t, http.StatusNoContent, ts.do("DELETE", "/api/grouped", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do("GET", "/api/charts/ogive.png", "").Code)
	assert.Equal(t, http.StatusOK, ts.do("GET", "/api/charts/bar.png", "").Code)
	assert.Equal(t, http.StatusConflict, ts.do("POST", "/api/charts/polygon", "").Code)

	assert.Equal(t, http.StatusNoContent, ts.do("DELETE", "/api/charts", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do("GET", "/api/charts/bar.png", "").Code)
	assert.Empty(t, ts.board.Kinds())
}

func TestChartReplaced(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusOK, ts.do("POST", "/api/charts/histogram", exampleData).Code)
	first, ok := ts.board.Get(chart.KindHistogram)
	require.True(t, ok)
	require.Equal(t, http.StatusOK, ts.do("POST", "/api/charts/histogram", `{"data": "1 2 3"}`).Code)

	_, err := first.WriteTo(io.Discard)
	assert.ErrorIs(t, err, chart.ErrDestroyed)
	second, _ := ts.board.Get(chart.KindHistogram)
	assert.NotSame(t, first, second)
}

func TestGzip(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do("POST", "/api/charts/density", exampleData, "Accept-Encoding", "gzip")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}
