package search

import "context"

// Searcher is the provider-agnostic search interface.
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request is a generic search request.
type Request struct {
	Query      string
	MaxResults int
}

// Response is a generic search response.
type Response struct {
	Results []Result
}

// Result is a single ranked hit. Snippet may be empty when the provider
// returned a link without body text.
type Result struct {
	Title   string
	Link    string
	Snippet string
}
