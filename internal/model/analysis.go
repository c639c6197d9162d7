package model

import (
	"encoding/json"
	"time"
)

// AnalysisType distinguishes a general company sweep from a user described scenario.
type AnalysisType string

const (
	AnalysisGeneral     AnalysisType = "general"
	AnalysisDynamicRisk AnalysisType = "dynamic_risk"
)

// Valid reports whether t is a known analysis type.
func (t AnalysisType) Valid() bool {
	return t == AnalysisGeneral || t == AnalysisDynamicRisk
}

// Model outcome recorded in AnalysisMetadata.ModelStatus.
const (
	ModelStatusSuccess    = "success"
	ModelStatusAPIError   = "api_error"
	ModelStatusParseError = "parse_error"
)

// RiskLevelUnknown marks every level of a result produced without a usable model response.
const RiskLevelUnknown = "Unknown"

// AnalysisRecord is a persisted analysis. It is written once and never updated.
type AnalysisRecord struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	AnalysisType AnalysisType    `json:"analysis_type"`
	Payload      json.RawMessage `json:"payload"`
	Result       json.RawMessage `json:"result"`
	Timestamp    string          `json:"timestamp"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AnalysisPayload is the aggregated input handed to the language model.
type AnalysisPayload struct {
	CompanyInfo  CompanyInfo   `json:"company_info"`
	News         NewsSummary   `json:"news"`
	RiskScenario *RiskScenario `json:"risk_scenario,omitempty"`
}

type CompanyInfo struct {
	Name      string            `json:"name"`
	Context   []string          `json:"context"`
	Documents []DocumentExcerpt `json:"documents"`
}

type DocumentExcerpt struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
	FileType string `json:"file_type"`
}

type NewsSummary struct {
	Articles     []ArticleExcerpt `json:"articles"`
	TotalResults int              `json:"total_results"`
	Status       string           `json:"status"`
	Error        string           `json:"error,omitempty"`
}

type ArticleExcerpt struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Date        string `json:"date"`
	Sentiment   string `json:"sentiment"`
}

// RiskScenario is the caller supplied scenario of a dynamic risk analysis.
type RiskScenario struct {
	Description string `json:"description"`
	Context     string `json:"context"`
	Type        string `json:"type"`
	Timestamp   string `json:"timestamp"`
}

// AnalysisMetadata flags how the result was produced so degraded responses are visible to clients.
type AnalysisMetadata struct {
	NewsStatus  string `json:"news_status"`
	ModelStatus string `json:"model_status"`
	Degraded    bool   `json:"degraded"`
}

// RiskCategory is one of the five fixed categories of a general analysis.
type RiskCategory struct {
	RiskLevel       string   `json:"risk_level"`
	Assessment      string   `json:"assessment"`
	KeyConcerns     []string `json:"key_concerns"`
	Recommendations []string `json:"recommendations"`
}

type RiskCategories struct {
	RegulatoryCompliance RiskCategory `json:"regulatory_compliance"`
	OperationalRisk      RiskCategory `json:"operational_risk"`
	FinancialExposure    RiskCategory `json:"financial_exposure"`
	Reputation           RiskCategory `json:"reputation"`
	LegalLiability       RiskCategory `json:"legal_liability"`
}

// All returns the categories in their fixed order.
func (c *RiskCategories) All() []*RiskCategory {
	return []*RiskCategory{
		&c.RegulatoryCompliance,
		&c.OperationalRisk,
		&c.FinancialExposure,
		&c.Reputation,
		&c.LegalLiability,
	}
}

// GeneralResult is the structured outcome of a general analysis.
type GeneralResult struct {
	OverallRiskLevel  string            `json:"overall_risk_level"`
	ExecutiveSummary  string            `json:"executive_summary"`
	RiskCategories    RiskCategories    `json:"risk_categories"`
	NewsInsights      string            `json:"news_insights"`
	Recommendations   []string          `json:"recommendations"`
	AIConfidence      float64           `json:"ai_confidence"`
	AnalysisTimestamp string            `json:"analysis_timestamp"`
	Metadata          *AnalysisMetadata `json:"analysis_metadata,omitempty"`
}

type ScenarioAnalysis struct {
	Scenario         string   `json:"scenario"`
	RiskLevel        string   `json:"risk_level"`
	ImpactAssessment string   `json:"impact_assessment"`
	AffectedAreas    []string `json:"affected_areas"`
}

type CompanyInsights struct {
	RelevantContracts  int    `json:"relevant_contracts"`
	ContextAlignment   string `json:"context_alignment"`
	DataCoverage       string `json:"data_coverage"`
	CriticalContracts  string `json:"critical_contracts_identified"`
	ForceMajeureReview string `json:"force_majeure_analysis"`
}

// DynamicRiskResult is the structured outcome of a dynamic risk analysis.
type DynamicRiskResult struct {
	RiskAnalysis      ScenarioAnalysis  `json:"risk_analysis"`
	CompanyInsights   CompanyInsights   `json:"company_specific_insights"`
	Recommendations   []string          `json:"recommendations"`
	NextSteps         []string          `json:"next_steps"`
	AIConfidence      float64           `json:"ai_confidence"`
	AnalysisTimestamp string            `json:"analysis_timestamp"`
	Metadata          *AnalysisMetadata `json:"analysis_metadata,omitempty"`
}

// AnalysisOutcome is the response of a completed analysis: the stored result joined with its identifier.
type AnalysisOutcome struct {
	AnalysisID   string
	AnalysisType AnalysisType
	Result       json.RawMessage
}

// MarshalJSON flattens the result object and adds analysis_id and analysis_type to it.
func (o AnalysisOutcome) MarshalJSON() ([]byte, error) {
	body := map[string]any{}
	if len(o.Result) > 0 {
		if err := json.Unmarshal(o.Result, &body); err != nil {
			return nil, err
		}
	}
	body["analysis_id"] = o.AnalysisID
	body["analysis_type"] = o.AnalysisType
	return json.Marshal(body)
}

// Result is implemented by both analysis result shapes.
type Result interface {
	SetMetadata(m *AnalysisMetadata)
	SetTimestampIfEmpty(ts string)
}

func (r *GeneralResult) SetMetadata(m *AnalysisMetadata) { r.Metadata = m }

func (r *GeneralResult) SetTimestampIfEmpty(ts string) {
	if r.AnalysisTimestamp == "" {
		r.AnalysisTimestamp = ts
	}
}

func (r *DynamicRiskResult) SetMetadata(m *AnalysisMetadata) { r.Metadata = m }

func (r *DynamicRiskResult) SetTimestampIfEmpty(ts string) {
	if r.AnalysisTimestamp == "" {
		r.AnalysisTimestamp = ts
	}
}
