package model

// Search statuses reported in SearchMetadata.Status.
const (
	NewsStatusSuccess  = "success"
	NewsStatusMockData = "mock_data"
	NewsStatusError    = "error"
)

// NewsArticle is a single article returned by the news search. RelevanceScore is only set on mock data.
type NewsArticle struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Content        string   `json:"content"`
	Source         string   `json:"source"`
	PublishedDate  string   `json:"published_date"`
	Sentiment      string   `json:"sentiment"`
	URL            string   `json:"url"`
	RelevanceScore *float64 `json:"relevance_score,omitempty"`
}

// NewsResult is the outcome of one news search.
type NewsResult struct {
	Articles       []NewsArticle  `json:"articles"`
	TotalResults   int            `json:"total_results"`
	Query          string         `json:"query"`
	CompanyName    string         `json:"company_name,omitempty"`
	SearchMetadata SearchMetadata `json:"search_metadata"`
}

// SearchMetadata describes where a NewsResult came from.
type SearchMetadata struct {
	APIVersion string `json:"api_version,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`
	Error      string `json:"error,omitempty"`
}
