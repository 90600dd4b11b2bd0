// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()

	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()

	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	const question = `{"id":1,"text":"What is Go?","created_at":"2026-01-01T00:00:00Z"}`

	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		requestBody     []byte
		compressRequest bool
		handlerStatus   int
		wantStatus      int
		wantGzipped     bool
	}{
		{
			name:           "compress response when client accepts gzip",
			acceptEncoding: "gzip",
			handlerStatus:  http.StatusOK,
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
		},
		{
			name:           "accept-encoding list with quality values",
			acceptEncoding: "gzip;q=1.0, identity;q=0.5",
			handlerStatus:  http.StatusOK,
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
		},
		{
			name:          "plain response when gzip not accepted",
			handlerStatus: http.StatusOK,
			wantStatus:    http.StatusOK,
		},
		{
			name:            "decompress gzipped request body",
			contentEncoding: "gzip",
			requestBody:     []byte(`{"text":"What is Go?"}`),
			compressRequest: true,
			handlerStatus:   http.StatusCreated,
			wantStatus:      http.StatusCreated,
		},
		{
			name:            "decompress request and compress response",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip, deflate",
			requestBody:     []byte(`{"text":"What is Go?"}`),
			compressRequest: true,
			handlerStatus:   http.StatusCreated,
			wantStatus:      http.StatusCreated,
			wantGzipped:     true,
		},
		{
			name:            "invalid gzip request body",
			contentEncoding: "gzip",
			requestBody:     []byte("not gzipped data"),
			handlerStatus:   http.StatusOK,
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.requestBody != nil {
					body, err := io.ReadAll(r.Body)
					require.NoError(t, err)
					assert.Equal(t, string(tt.requestBody), string(body))
					assert.Empty(t, r.Header.Get("Content-Encoding"))
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(question))
			})

			var body io.Reader
			switch {
			case tt.requestBody != nil && tt.compressRequest:
				body = gzipBytes(t, tt.requestBody)
			case tt.requestBody != nil:
				body = bytes.NewReader(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/questions", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			switch {
			case tt.wantStatus == http.StatusBadRequest:
				assert.JSONEq(t, `{"error":"invalid gzip data"}`, rr.Body.String())
			case tt.wantGzipped:
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
				assert.JSONEq(t, question, gunzip(t, rr.Body))
			default:
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.JSONEq(t, question, rr.Body.String())
			}
		})
	}
}

func TestGZip_NoContentIsNotCompressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/questions/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_CompressionRatio(t *testing.T) {
	payload := "[" + strings.Repeat(`{"id":1,"text":"repetitive"},`, 500) + `{"id":2,"text":"last"}]`

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(payload)/10)
	assert.Equal(t, payload, gunzip(t, rr.Body))
}

func TestGZip_PoolReuse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	})
	middleware := withGZip(next)

	for i := 0; i < 5; i++ {
		data := []byte(`{"text":"question ` + string(rune('0'+i)) + `"}`)

		req := httptest.NewRequest(http.MethodPost, "/questions", gzipBytes(t, data))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")

		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "request %d", i)
		assert.Equal(t, string(data), gunzip(t, rr.Body), "request %d", i)
	}
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	wrapped := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { closed = true }}

	assert.NoError(t, wrapped.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}
