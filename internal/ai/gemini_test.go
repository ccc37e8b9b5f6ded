package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeminiClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/v1beta/models/gemini-2.5-flash:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "secret" {
			t.Errorf("unexpected api key header %q", got)
		}
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "hello" {
			t.Errorf("unexpected request body %+v", req)
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Octopus "},{"text":"have blue blood."}]}}]}`))
	}))
	defer srv.Close()

	c := &GeminiClient{APIKey: "secret", Model: "", BaseURL: srv.URL, HTTP: srv.Client()}
	got, err := c.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "Octopus have blue blood." {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestGeminiClientReportsAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	c := &GeminiClient{APIKey: "bad", BaseURL: srv.URL, HTTP: srv.Client()}
	if _, err := c.Generate(context.Background(), "hi"); err == nil {
		t.Fatalf("expected error for 403")
	}
}

func TestGeminiClientWithoutKeyIsOffline(t *testing.T) {
	c := &GeminiClient{}
	if _, err := c.Generate(context.Background(), "hi"); !errors.Is(err, ErrOffline) {
		t.Fatalf("expected ErrOffline, got %v", err)
	}
}

func TestGeminiDefaultClientHasNoTimeout(t *testing.T) {
	c := &GeminiClient{APIKey: "k"}
	if got := c.client(); got.Timeout != 0 {
		t.Fatalf("default client should not time out on its own, got %v", got.Timeout)
	}
}
