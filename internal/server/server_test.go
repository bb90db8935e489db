package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paracheck/internal/checker"
	"paracheck/internal/dictionary"
)

type failingProcessor struct{}

func (failingProcessor) Process(string) (*checker.Result, error) {
	return nil, errors.New("boom")
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	c, err := checker.New(dictionary.New("hello world government election law"))
	require.NoError(t, err)
	srv := httptest.NewServer(NewHandler(c))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestProcess(t *testing.T) {
	srv := newServer(t)

	resp := post(t, srv.URL+"/api/v1/process", `{"text":"helo wrold"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got checker.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "hello world", got.Corrected)
	assert.Equal(t, "Uncategorized", got.Category)
	require.Len(t, got.Corrections, 2)
	assert.Equal(t, "helo", got.Corrections[0].Original)
	assert.Equal(t, []string{"hello"}, got.Corrections[0].Suggestions)
}

func TestProcessCategory(t *testing.T) {
	srv := newServer(t)

	resp := post(t, srv.URL+"/api/v1/process", `{"text":"goverment election law"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "politics", got["category"])
	assert.Equal(t, "government election law", got["corrected"])
}

func TestProcessRejectsBadInput(t *testing.T) {
	srv := newServer(t)

	for _, body := range []string{`{"text":"   "}`, `{"text":""}`, `not json`} {
		resp := post(t, srv.URL+"/api/v1/process", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestProcessWrongMethod(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/process")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProcessInternalError(t *testing.T) {
	srv := httptest.NewServer(NewHandler(failingProcessor{}))
	t.Cleanup(srv.Close)

	resp := post(t, srv.URL+"/api/v1/process", `{"text":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	srv := newServer(t)
	post(t, srv.URL+"/api/v1/process", `{"text":"helo"}`)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "paracheck_requests_total")
	assert.Contains(t, string(body), "paracheck_corrections_total")
}
