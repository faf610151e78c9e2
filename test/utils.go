package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
)

// chatRequest mirrors the OpenAI-compatible chat completion payload received
// by the stub upstream
type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// stubUpstream is an in-process OpenAI-compatible endpoint. It answers every
// chat completion with a reply derived from the last user message and records
// the requests it saw.
type stubUpstream struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []chatRequest
}

func newStubUpstream(t *testing.T) *stubUpstream {
	t.Helper()
	stub := &stubUpstream{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stub.mu.Lock()
		stub.requests = append(stub.requests, req)
		stub.mu.Unlock()

		reply := "echo:"
		if n := len(req.Messages); n > 0 {
			reply = "echo: " + req.Messages[n-1].Content
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
		})
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

// URL returns the stub's base URL
func (s *stubUpstream) URL() string {
	return s.server.URL
}

// Requests returns a snapshot of the recorded requests
func (s *stubUpstream) Requests() []chatRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]chatRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// skipWithoutKey skips live tests when the given API key is not configured
func skipWithoutKey(t *testing.T, envName string) string {
	t.Helper()
	key := os.Getenv(envName)
	if key == "" {
		t.Skipf("%s not set, skipping live test", envName)
	}
	return key
}
