package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestSynthesize checks the request body and default voice handling against a
// fake endpoint.
func TestSynthesize(t *testing.T) {
	var received speechRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/speech" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte("RIFF-fake-wav"))
	}))
	defer srv.Close()

	p, err := New("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	audio, err := p.Synthesize(context.Background(), "Welcome to Dubai.", "")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if string(audio) != "RIFF-fake-wav" {
		t.Errorf("unexpected audio: %q", audio)
	}
	if received.Model != defaultModel {
		t.Errorf("unexpected model: %q", received.Model)
	}
	if received.Voice != defaultVoice {
		t.Errorf("empty voice should fall back to default, got %q", received.Voice)
	}
	if received.ResponseFormat != "wav" {
		t.Errorf("unexpected response_format: %q", received.ResponseFormat)
	}
}

// TestSynthesize_ExplicitVoice checks a caller-selected voice is passed
// through.
func TestSynthesize_ExplicitVoice(t *testing.T) {
	var received speechRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	p, err := New("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := p.Synthesize(context.Background(), "Hello.", "leo"); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if received.Voice != "leo" {
		t.Errorf("unexpected voice: %q", received.Voice)
	}
}

// TestSynthesize_APIError checks error surfacing on non-200 responses.
func TestSynthesize_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p, err := New("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := p.Synthesize(context.Background(), "Hello.", ""); err == nil {
		t.Fatal("expected error, got nil")
	}
}
