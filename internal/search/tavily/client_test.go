package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iWorld-y/venture_radar/internal/search"
)

func TestSearch_MapsResultsOntoGenericShape(t *testing.T) {
	var gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "t1", "url": "http://a", "content": "c1"},
			},
		})
	}))
	defer ts.Close()

	client := NewClientWithBaseURL("key", ts.URL)
	resp, err := client.Search(context.Background(), &search.Request{Query: "x"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotAuth != "Bearer key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(resp.Results))
	}
	got := resp.Results[0]
	if got.Link != "http://a" || got.Snippet != "c1" || got.Title != "t1" {
		t.Errorf("result = %+v", got)
	}
}

func TestSearch_NonOKStatusIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewClientWithBaseURL("k", ts.URL)
	if _, err := client.Search(context.Background(), &search.Request{Query: "x"}); err == nil {
		t.Fatal("Search() error = nil, want status error")
	}
}
