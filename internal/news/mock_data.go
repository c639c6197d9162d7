package news

import (
	"fmt"

	"riskmai/internal/model"
)

const mockNote = "Using mock data because NEWS_API_KEY is not configured."

// MockResult returns the fixed placeholder set of three articles for q.
// The output depends only on q and note.
func MockResult(q Query, note string) *model.NewsResult {
	company := q.CompanyName
	if company == "" {
		company = "the company"
	}
	risk := q.RiskType
	if risk == "" {
		risk = "business"
	}

	articles := []model.NewsArticle{
		{
			Title:          fmt.Sprintf("Regulatory Update: New %s requirements affecting %s", risk, company),
			Description:    fmt.Sprintf("Recent developments in %s regulations may impact %s's operations and compliance requirements.", risk, company),
			Content:        fmt.Sprintf("Industry experts are monitoring the evolving %s landscape and its potential impact on companies like %s. The regulatory environment continues to change rapidly, requiring businesses to stay vigilant about compliance requirements and potential risks.", risk, company),
			URL:            "https://example.com/mock-article-1",
			Source:         "Business News Daily",
			PublishedDate:  "2024-01-15T10:00:00Z",
			RelevanceScore: score(0.85),
			Sentiment:      "neutral",
		},
		{
			Title:          fmt.Sprintf("%s faces %s challenges in current market", company, risk),
			Description:    fmt.Sprintf("Analysis of how %s is navigating %s related challenges in the current business environment.", company, risk),
			Content:        fmt.Sprintf("The %s landscape continues to evolve, presenting both challenges and opportunities for companies like %s. Market analysts suggest that proactive risk management strategies are becoming increasingly important in today's volatile business climate.", risk, company),
			URL:            "https://example.com/mock-article-2",
			Source:         "Financial Times",
			PublishedDate:  "2024-01-14T15:30:00Z",
			RelevanceScore: score(0.78),
			Sentiment:      "positive",
		},
		{
			Title:          fmt.Sprintf("Industry trends: %s considerations for modern businesses", risk),
			Description:    fmt.Sprintf("Comprehensive analysis of %s factors affecting businesses across various sectors.", risk),
			Content:        fmt.Sprintf("As businesses navigate an increasingly complex regulatory and operational environment, understanding %s factors has become crucial for long-term success. Companies must develop robust risk management frameworks to address these challenges effectively.", risk),
			URL:            "https://example.com/mock-article-3",
			Source:         "Industry Weekly",
			PublishedDate:  "2024-01-13T09:15:00Z",
			RelevanceScore: score(0.72),
			Sentiment:      "neutral",
		},
	}

	return &model.NewsResult{
		Articles:     articles,
		TotalResults: len(articles),
		Query:        q.Text,
		CompanyName:  q.CompanyName,
		SearchMetadata: model.SearchMetadata{
			APIVersion: "v1",
			Timestamp:  "2024-01-15T12:00:00Z",
			Status:     model.NewsStatusMockData,
			Note:       note,
		},
	}
}

func score(v float64) *float64 { return &v }
