package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	engine := nlp.NewNull()
	return New(Config{Port: 0},
		extraction.New(engine, nil, nil),
		scoring.New(engine, nil),
		nil)
}

func doRequest(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleScore(t *testing.T) {
	s := testServer(t)

	body, err := json.Marshal(types.ScoreRequest{
		JobDescription: "We need a Python developer with Docker experience.",
		Resumes: []types.ResumeInput{
			{ID: "r1", Filename: "jane.txt", Text: "Jane Doe\nSkills: Python, Docker"},
			{Filename: "john.txt", Text: "John Roe\nSkills: Haskell"},
		},
	})
	require.NoError(t, err)

	rec := doRequest(t, s, http.MethodPost, "/score", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp types.ScoreResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Results, 2)

	// Results keep submission order and echo identities.
	assert.Equal(t, "r1", resp.Results[0].ID)
	assert.Equal(t, "jane.txt", resp.Results[0].Filename)
	assert.Equal(t, "john.txt", resp.Results[1].Filename)
	assert.NotEmpty(t, resp.Results[1].ID, "missing id should be generated")

	for _, result := range resp.Results {
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
		assert.Equal(t, types.CategoryForScore(result.Score), result.Category)
	}
	assert.Greater(t, resp.Results[0].Score, resp.Results[1].Score)
}

func TestHandleScoreBadRequests(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"Malformed JSON", `{not json`, "Invalid request body"},
		{"Missing job description", `{"resumes":[{"text":"x"}]}`, "Missing resumes or job_description"},
		{"No resumes", `{"job_description":"jd","resumes":[]}`, "Missing resumes or job_description"},
		{"Empty resume text", `{"job_description":"jd","resumes":[{"text":""}]}`, "Missing resumes or job_description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/score", []byte(tt.body))
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.True(t, strings.HasPrefix(resp.Error, tt.wantMsg),
				"error %q should start with %q", resp.Error, tt.wantMsg)
		})
	}
}

func TestHandleScoreMethodNotAllowed(t *testing.T) {
	s := testServer(t)
	rec := doRequest(t, s, http.MethodGet, "/score", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodOptions, "/score", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
