// Package prompt renders analysis prompts and decodes model output into analysis results.
package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"

	"riskmai/internal/model"
)

// SystemPrompt constrains the model to a single JSON object.
const SystemPrompt = `You are a senior corporate risk analyst. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema given in the user message. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- Risk levels are one of: Critical, High, Medium, Low.
- ai_confidence is a number between 0 and 1.
- Base every statement on the company information, documents and news provided. Do not invent facts.`

const generalExample = `{
  "overall_risk_level": "<Critical|High|Medium|Low>",
  "executive_summary": "<string>",
  "risk_categories": {
    "regulatory_compliance": {"risk_level": "<level>", "assessment": "<string>", "key_concerns": ["<string>"], "recommendations": ["<string>"]},
    "operational_risk": {"risk_level": "<level>", "assessment": "<string>", "key_concerns": ["<string>"], "recommendations": ["<string>"]},
    "financial_exposure": {"risk_level": "<level>", "assessment": "<string>", "key_concerns": ["<string>"], "recommendations": ["<string>"]},
    "reputation": {"risk_level": "<level>", "assessment": "<string>", "key_concerns": ["<string>"], "recommendations": ["<string>"]},
    "legal_liability": {"risk_level": "<level>", "assessment": "<string>", "key_concerns": ["<string>"], "recommendations": ["<string>"]}
  },
  "news_insights": "<string>",
  "recommendations": ["<string>"],
  "ai_confidence": 0.0,
  "analysis_timestamp": "<RFC3339 timestamp>"
}`

const dynamicExample = `{
  "risk_analysis": {
    "scenario": "<string>",
    "risk_level": "<Critical|High|Medium|Low>",
    "impact_assessment": "<string>",
    "affected_areas": ["<string>"]
  },
  "company_specific_insights": {
    "relevant_contracts": 0,
    "context_alignment": "<High|Medium|Low>",
    "data_coverage": "<Comprehensive|Limited>",
    "critical_contracts_identified": "<string>",
    "force_majeure_analysis": "<string>"
  },
  "recommendations": ["<string>"],
  "next_steps": ["<string>"],
  "ai_confidence": 0.0,
  "analysis_timestamp": "<RFC3339 timestamp>"
}`

// Build renders the user prompt for kind. It is a pure function of its arguments.
func Build(kind model.AnalysisType, p *model.AnalysisPayload) (string, error) {
	if kind == model.AnalysisDynamicRisk {
		return BuildDynamicRiskPrompt(p)
	}
	return BuildGeneralPrompt(p)
}

// BuildGeneralPrompt asks for the five category sweep of a company.
func BuildGeneralPrompt(p *model.AnalysisPayload) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "prompt: encode payload")
	}
	return fmt.Sprintf(`Assess the overall risk profile of the company %q using the data below.

Cover exactly these five categories: regulatory compliance, operational risk, financial exposure, reputation, legal liability.
Use the company context and documents as the primary evidence and the news articles as supporting signals.

Data:
%s

Respond with a JSON object of exactly this shape:
%s`, p.CompanyInfo.Name, data, generalExample), nil
}

// BuildDynamicRiskPrompt asks for an analysis of the payload's risk scenario.
func BuildDynamicRiskPrompt(p *model.AnalysisPayload) (string, error) {
	if p.RiskScenario == nil {
		return "", eris.New("prompt: dynamic risk payload has no scenario")
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "prompt: encode payload")
	}
	return fmt.Sprintf(`Analyse the following %s risk scenario for the company %q.

Scenario: %s

Relate the scenario to the company's contracts, documents and context, and use the news articles as supporting signals.

Data:
%s

Respond with a JSON object of exactly this shape:
%s`, p.RiskScenario.Type, p.CompanyInfo.Name, p.RiskScenario.Description, data, dynamicExample), nil
}
