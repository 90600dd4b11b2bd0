// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/utils"
	"github.com/MKhiriev/go-qa-board/models"
)

const testAPIKey = "client-secret"

var createdAt = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(
		config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second},
		config.ClientApp{APIKey: testAPIKey},
		logger.Nop(),
	)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// newTestServer checks the method, path and API key of every request before
// handing it to respond.
func newTestServer(t *testing.T, method, path string, respond http.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, method, r.Method)
		assert.Equal(t, path, r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get(utils.APIKeyHeader))
		respond(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── questions ───────────────────────────────────────────────────────────────

func TestListQuestions_Success(t *testing.T) {
	want := []models.Question{{ID: 1, Text: "a", CreatedAt: createdAt}, {ID: 2, Text: "b", CreatedAt: createdAt}}

	srv := newTestServer(t, http.MethodGet, "/questions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, want)
	})

	got, err := newTestAdapter(t, srv.URL).ListQuestions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListQuestions_Empty(t *testing.T) {
	srv := newTestServer(t, http.MethodGet, "/questions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Question{})
	})

	got, err := newTestAdapter(t, srv.URL).ListQuestions(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListQuestions_Forbidden(t *testing.T) {
	srv := newTestServer(t, http.MethodGet, "/questions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "invalid API key"})
	})

	_, err := newTestAdapter(t, srv.URL).ListQuestions(context.Background())

	require.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "invalid API key")
}

func TestCreateQuestion_Success(t *testing.T) {
	srv := newTestServer(t, http.MethodPost, "/questions", func(w http.ResponseWriter, r *http.Request) {
		var req models.QuestionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "What is Go?", req.Text)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		writeJSON(w, http.StatusCreated, models.Question{ID: 7, Text: req.Text, CreatedAt: createdAt})
	})

	got, err := newTestAdapter(t, srv.URL).CreateQuestion(context.Background(), "What is Go?")

	require.NoError(t, err)
	assert.Equal(t, models.Question{ID: 7, Text: "What is Go?", CreatedAt: createdAt}, got)
}

func TestCreateQuestion_BadRequest(t *testing.T) {
	srv := newTestServer(t, http.MethodPost, "/questions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, models.ValidationErrors{"text": {"This field is required."}})
	})

	_, err := newTestAdapter(t, srv.URL).CreateQuestion(context.Background(), "")

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "This field is required.")
}

func TestGetQuestion_Success(t *testing.T) {
	want := models.QuestionDetails{
		Question: models.Question{ID: 3, Text: "q", CreatedAt: createdAt},
		Answers:  []models.Answer{{ID: 9, QuestionID: 3, UserID: 1, Text: "a", CreatedAt: createdAt}},
	}

	srv := newTestServer(t, http.MethodGet, "/questions/3", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, want)
	})

	got, err := newTestAdapter(t, srv.URL).GetQuestion(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetQuestion_NotFound(t *testing.T) {
	srv := newTestServer(t, http.MethodGet, "/questions/999", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "question with id=999 not found"})
	})

	_, err := newTestAdapter(t, srv.URL).GetQuestion(context.Background(), 999)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "id=999")
}

func TestDeleteQuestion(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.MethodDelete, "/questions/5", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			err := newTestAdapter(t, srv.URL).DeleteQuestion(context.Background(), 5)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── answers ─────────────────────────────────────────────────────────────────

func TestCreateAnswer_Success(t *testing.T) {
	srv := newTestServer(t, http.MethodPost, "/questions/3/answers", func(w http.ResponseWriter, r *http.Request) {
		var req models.AnswerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Use channels.", req.Text)

		writeJSON(w, http.StatusCreated, models.Answer{ID: 4, QuestionID: 3, UserID: 1, Text: req.Text, CreatedAt: createdAt})
	})

	got, err := newTestAdapter(t, srv.URL).CreateAnswer(context.Background(), 3, "Use channels.")

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, int64(3), got.QuestionID)
}

func TestCreateAnswer_QuestionNotFound(t *testing.T) {
	srv := newTestServer(t, http.MethodPost, "/questions/8/answers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "question with id=8 not found"})
	})

	_, err := newTestAdapter(t, srv.URL).CreateAnswer(context.Background(), 8, "orphan")

	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetAnswer_Success(t *testing.T) {
	want := models.Answer{ID: 4, QuestionID: 3, UserID: 1, Text: "a", CreatedAt: createdAt}

	srv := newTestServer(t, http.MethodGet, "/answers/4", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, want)
	})

	got, err := newTestAdapter(t, srv.URL).GetAnswer(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeleteAnswer_NotFound(t *testing.T) {
	srv := newTestServer(t, http.MethodDelete, "/answers/4", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "answer with id=4 not found"})
	})

	err := newTestAdapter(t, srv.URL).DeleteAnswer(context.Background(), 4)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "answer with id=4 not found")
}

func TestGetServerVersion(t *testing.T) {
	srv := newTestServer(t, http.MethodGet, "/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.AppInfo{Version: "1.0.0", BuildCommit: "abc"})
	})

	got, err := newTestAdapter(t, srv.URL).GetServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", got.Version)
	assert.Equal(t, "abc", got.BuildCommit)
}

func TestRequest_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ListQuestions(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list questions request")
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := newTestServer(t, http.MethodGet, "/version", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	_, err := newTestAdapter(t, srv.URL).GetServerVersion(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"api prefix kept", "http://localhost:8080/api/", "http://localhost:8080/api", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, config.ClientApp{APIKey: testAPIKey}, logger.Nop())
	require.Error(t, err)
}
