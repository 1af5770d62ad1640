package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var geminiParams = Params{
	Model:       "gemini-2.5-flash",
	MaxTokens:   1800,
	N:           1,
	Temperature: 0.5,
	TopP:        1,
}

func newGeminiServer(t *testing.T, status int, body string, onRequest func(r *http.Request, body string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read request: %v", err)
		}
		if onRequest != nil {
			onRequest(r, string(data))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiComplete(t *testing.T) {
	var path, apiKey, reqBody string
	srv := newGeminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"Alice agreed "},{"text":"to ship."}]}}]}`,
		func(r *http.Request, body string) {
			path = r.URL.Path
			apiKey = r.Header.Get("x-goog-api-key")
			reqBody = body
		})

	c, err := NewGemini(context.Background(), "g-test", srv.URL+"/", geminiParams, srv.Client())
	if err != nil {
		t.Fatalf("NewGemini() error = %v", err)
	}

	text, err := c.Complete(context.Background(), "Summarize: hello")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if text != "Alice agreed to ship." {
		t.Errorf("Complete() = %q", text)
	}
	if !strings.HasSuffix(path, "models/gemini-2.5-flash:generateContent") {
		t.Errorf("path = %q", path)
	}
	if apiKey != "g-test" {
		t.Errorf("x-goog-api-key = %q", apiKey)
	}
	if !strings.Contains(reqBody, "Summarize: hello") {
		t.Errorf("prompt missing from request body: %s", reqBody)
	}
	for _, field := range []string{"frequencyPenalty", "presencePenalty"} {
		if strings.Contains(reqBody, field) {
			t.Errorf("zero %s should be omitted: %s", field, reqBody)
		}
	}
}

func TestGeminiSendsPenaltiesWhenSet(t *testing.T) {
	var reqBody string
	srv := newGeminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]}}]}`,
		func(r *http.Request, body string) { reqBody = body })

	params := geminiParams
	params.FrequencyPenalty = 0.3
	c, err := NewGemini(context.Background(), "g-test", srv.URL+"/", params, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Complete(context.Background(), "x"); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if !strings.Contains(reqBody, "frequencyPenalty") {
		t.Errorf("frequencyPenalty missing from request body: %s", reqBody)
	}
	if strings.Contains(reqBody, "presencePenalty") {
		t.Errorf("zero presencePenalty should be omitted: %s", reqBody)
	}
}

func TestGeminiNoCandidates(t *testing.T) {
	srv := newGeminiServer(t, http.StatusOK, `{"candidates":[]}`, nil)

	c, err := NewGemini(context.Background(), "g-test", srv.URL+"/", geminiParams, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.Complete(context.Background(), "x")
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Complete() error = %v, want ErrNoCandidates", err)
	}
}

func TestGeminiErrorBody(t *testing.T) {
	srv := newGeminiServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"Penalty is not enabled","status":"INVALID_ARGUMENT"}}`, nil)

	c, err := NewGemini(context.Background(), "g-test", srv.URL+"/", geminiParams, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.Complete(context.Background(), "x")
	if err == nil {
		t.Fatal("Complete() should fail on HTTP 400")
	}

	diag := Diagnostic(err)
	for _, want := range []string{"400", "INVALID_ARGUMENT", "Penalty is not enabled"} {
		if !strings.Contains(diag, want) {
			t.Errorf("Diagnostic() = %q, missing %q", diag, want)
		}
	}
}

func TestGeminiMissingKey(t *testing.T) {
	if _, err := NewGemini(context.Background(), "", "", geminiParams, nil); err == nil {
		t.Error("NewGemini() should reject an empty key")
	}
}
