package together

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerate_SendsFixedSamplingParameters(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"output": map[string]any{
				"choices": []map[string]string{{"text": "  Feasibility looks good.  "}},
			},
		})
	}))
	defer ts.Close()

	client := NewClientWithBaseURL("secret", "", ts.URL)
	text, err := client.Generate(context.Background(), "prompt text")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody["model"] != "mistralai/Mixtral-8x7B-Instruct-v0.1" {
		t.Errorf("model = %v", gotBody["model"])
	}
	if gotBody["prompt"] != "prompt text" {
		t.Errorf("prompt = %v", gotBody["prompt"])
	}
	if gotBody["max_tokens"] != float64(4096) {
		t.Errorf("max_tokens = %v", gotBody["max_tokens"])
	}
	if gotBody["temperature"] != 0.2 {
		t.Errorf("temperature = %v", gotBody["temperature"])
	}
	if gotBody["top_p"] != 0.9 {
		t.Errorf("top_p = %v", gotBody["top_p"])
	}
	if gotBody["top_k"] != float64(50) {
		t.Errorf("top_k = %v", gotBody["top_k"])
	}
	if gotBody["repetition_penalty"] != 1.1 {
		t.Errorf("repetition_penalty = %v", gotBody["repetition_penalty"])
	}
	stops, ok := gotBody["stop"].([]any)
	if !ok || len(stops) != 1 || stops[0] != "City:" {
		t.Errorf("stop = %v", gotBody["stop"])
	}

	// The narrative is trimmed.
	if text != "Feasibility looks good." {
		t.Errorf("Generate() = %q", text)
	}
}

func TestGenerate_MissingOutputChoicesIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"unknown"}`))
	}))
	defer ts.Close()

	client := NewClientWithBaseURL("k", "", ts.URL)
	if _, err := client.Generate(context.Background(), "p"); err == nil {
		t.Fatal("Generate() error = nil, want missing output.choices error")
	}
}

func TestGenerate_NonOKStatusIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewClientWithBaseURL("k", "", ts.URL)
	if _, err := client.Generate(context.Background(), "p"); err == nil {
		t.Fatal("Generate() error = nil, want status error")
	}
}
