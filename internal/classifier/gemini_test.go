package classifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"daybook/internal/classifier"
	"daybook/internal/domain"
)

func geminiResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": text}},
			}},
		},
	}
}

func TestGemini_Classify_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(geminiResponse("😊\n"))
	}))
	defer srv.Close()

	g := classifier.NewGemini("test-key", classifier.WithBaseURL(srv.URL))
	label, err := g.Classify(context.Background(), "Had a wonderful walk in the park")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if label != "😊" {
		t.Fatalf("expected trimmed emoji label, got %q", label)
	}
	if gotPath != "/v1beta/models/gemini-2.0-flash:generateContent" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}
	if _, ok := gotBody["system_instruction"]; !ok {
		t.Fatal("request missing system_instruction")
	}
}

func TestGemini_Classify_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "quota exceeded"},
		})
	}))
	defer srv.Close()

	g := classifier.NewGemini("test-key", classifier.WithBaseURL(srv.URL))
	_, err := g.Classify(context.Background(), "some text")
	if !errors.Is(err, domain.ErrClassifier) {
		t.Fatalf("expected ErrClassifier, got %v", err)
	}
}

func TestGemini_Classify_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse("   "))
	}))
	defer srv.Close()

	g := classifier.NewGemini("test-key", classifier.WithBaseURL(srv.URL))
	_, err := g.Classify(context.Background(), "some text")
	if !errors.Is(err, domain.ErrClassifier) {
		t.Fatalf("expected ErrClassifier for empty answer, got %v", err)
	}
}

func TestGemini_Classify_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	g := classifier.NewGemini("test-key", classifier.WithBaseURL(srv.URL))
	_, err := g.Classify(context.Background(), "some text")
	if !errors.Is(err, domain.ErrClassifier) {
		t.Fatalf("expected ErrClassifier, got %v", err)
	}
}

func TestGemini_Classify_ModelOverride(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(geminiResponse("🙂"))
	}))
	defer srv.Close()

	g := classifier.NewGemini("test-key",
		classifier.WithBaseURL(srv.URL),
		classifier.WithModel("gemini-2.5-pro"))
	if _, err := g.Classify(context.Background(), "text"); err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if gotPath != "/v1beta/models/gemini-2.5-pro:generateContent" {
		t.Fatalf("unexpected path %s", gotPath)
	}
}
