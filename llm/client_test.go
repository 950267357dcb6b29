package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if !strings.HasPrefix(r.URL.Path, "/models/test-model:generateContent") {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "secret" {
			t.Errorf("key = %q", r.URL.Query().Get("key"))
		}

		var req GenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "hello" {
			t.Errorf("unexpected request: %+v", req)
		}

		json.NewEncoder(w).Encode(GenerateContentResponse{
			Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: "world"}}}}},
		})
	}))
	defer srv.Close()

	c := NewClient("secret", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	resp, err := c.GenerateContent(context.Background(), "test-model", GenerateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: "hello"}}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Candidates) != 1 || resp.Candidates[0].Content.Parts[0].Text != "world" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("secret", WithBaseURL(srv.URL))
	_, err := c.GenerateContent(context.Background(), "m", GenerateContentRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error %q does not carry the status code", err)
	}
}

func TestClientMissingAPIKey(t *testing.T) {
	c := NewClient("")
	if _, err := c.GenerateContent(context.Background(), "m", GenerateContentRequest{}); err == nil {
		t.Fatal("expected error for missing key")
	}
}
