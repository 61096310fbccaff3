// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func testHTTPConfig() types.HTTPConfig {
	return types.HTTPConfig{Timeout: 2 * time.Second, UserAgent: "test/0.1"}
}

func TestGet_SetsHeaders(t *testing.T) {
	var captured *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	resp, err := Get(context.Background(), NewClient(testHTTPConfig()), ts.URL, AcceptJSON, testHTTPConfig())
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "test/0.1", captured.Header.Get("User-Agent"))
	assert.Equal(t, AcceptJSON, captured.Header.Get("Accept"))
}

func TestGet_SingleAttemptOnFailureStatus(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	resp, err := Get(context.Background(), NewClient(testHTTPConfig()), ts.URL, AcceptHTML, testHTTPConfig())
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/end", http.StatusFound)
	})
	mux.HandleFunc("/end", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	resp, err := Get(context.Background(), NewClient(testHTTPConfig()), ts.URL+"/start", AcceptHTML, testHTTPConfig())
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/end", resp.Request.URL.Path)
}

func TestGet_TransportFailureIsUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := Get(context.Background(), NewClient(testHTTPConfig()), url, AcceptHTML, testHTTPConfig())
	require.Error(t, err)

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, 0, upErr.StatusCode)
	assert.Equal(t, url, upErr.URL)
}

func TestGet_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	cfg := types.HTTPConfig{Timeout: 20 * time.Millisecond}
	_, err := Get(context.Background(), NewClient(cfg), ts.URL, AcceptHTML, cfg)

	var upErr *UpstreamError
	assert.ErrorAs(t, err, &upErr)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "HTTP 503 from http://x", (&UpstreamError{URL: "http://x", StatusCode: 503}).Error())
	assert.Contains(t, (&UpstreamError{URL: "http://x", Err: errors.New("boom")}).Error(), "boom")

	inner := errors.New("unexpected EOF")
	pe := &ParseError{What: "Semantic Scholar response", Err: inner}
	assert.Equal(t, "parsing Semantic Scholar response: unexpected EOF", pe.Error())
	assert.ErrorIs(t, pe, inner)
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(204))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(301))
	assert.False(t, IsSuccess(404))
	assert.False(t, IsSuccess(500))
}
