package prompt

import (
	"fmt"

	"riskmai/internal/model"
)

const reviewRawResponse = "Review raw AI response for detailed analysis"

// APIErrorResult is stored when the model call failed. Every risk level is Unknown and confidence is 0.
func APIErrorResult(kind model.AnalysisType, p *model.AnalysisPayload, cause error, ts string) model.Result {
	msg := fmt.Sprintf("Analysis failed due to an API error: %v", cause)
	if kind == model.AnalysisDynamicRisk {
		r := unknownDynamic(p, msg, ts)
		r.Recommendations = []string{"Retry the analysis once the language model service is available."}
		return r
	}
	r := unknownGeneral(msg, ts)
	r.Recommendations = []string{"Retry the analysis once the language model service is available."}
	return r
}

// ParseFallbackResult is stored when the model answered with text that could not be decoded.
// The raw text is kept as the narrative.
func ParseFallbackResult(kind model.AnalysisType, p *model.AnalysisPayload, raw string, ts string) model.Result {
	if kind == model.AnalysisDynamicRisk {
		r := unknownDynamic(p, raw, ts)
		r.AIConfidence = 0.5
		r.Recommendations = []string{reviewRawResponse}
		return r
	}
	r := unknownGeneral(raw, ts)
	r.AIConfidence = 0.5
	r.Recommendations = []string{reviewRawResponse}
	return r
}

func unknownGeneral(narrative, ts string) *model.GeneralResult {
	r := &model.GeneralResult{
		OverallRiskLevel:  model.RiskLevelUnknown,
		ExecutiveSummary:  narrative,
		NewsInsights:      "",
		AIConfidence:      0.0,
		AnalysisTimestamp: ts,
	}
	for _, c := range r.RiskCategories.All() {
		*c = model.RiskCategory{
			RiskLevel:       model.RiskLevelUnknown,
			Assessment:      narrative,
			KeyConcerns:     []string{},
			Recommendations: []string{},
		}
	}
	return r
}

func unknownDynamic(p *model.AnalysisPayload, narrative, ts string) *model.DynamicRiskResult {
	scenario := ""
	if p != nil && p.RiskScenario != nil {
		scenario = p.RiskScenario.Description
	}
	return &model.DynamicRiskResult{
		RiskAnalysis: model.ScenarioAnalysis{
			Scenario:         scenario,
			RiskLevel:        model.RiskLevelUnknown,
			ImpactAssessment: narrative,
			AffectedAreas:    []string{},
		},
		CompanyInsights: model.CompanyInsights{
			ContextAlignment:   model.RiskLevelUnknown,
			DataCoverage:       model.RiskLevelUnknown,
			CriticalContracts:  model.RiskLevelUnknown,
			ForceMajeureReview: model.RiskLevelUnknown,
		},
		NextSteps:         []string{},
		AIConfidence:      0.0,
		AnalysisTimestamp: ts,
	}
}
