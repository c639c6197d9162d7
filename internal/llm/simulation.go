package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"riskmai/internal/model"
)

// Simulation is an offline provider producing a canned result from the request payload.
// A scenario is rated Critical when its description contains any trigger phrase, otherwise High.
type Simulation struct {
	triggers []string
	now      func() time.Time
}

// NewSimulation returns a Simulation matching triggers case-insensitively.
func NewSimulation(triggers []string) *Simulation {
	lowered := make([]string, 0, len(triggers))
	for _, t := range triggers {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			lowered = append(lowered, t)
		}
	}
	return &Simulation{triggers: lowered, now: time.Now}
}

var _ Client = (*Simulation)(nil)

func (s *Simulation) Name() string { return ProviderSimulation }

func (s *Simulation) Close() error { return nil }

// Complete renders the simulated result as JSON.
func (s *Simulation) Complete(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.Payload == nil {
		return "", eris.New("simulation: request has no payload")
	}

	var out any
	if req.Kind == model.AnalysisDynamicRisk {
		out = s.dynamic(req.Payload)
	} else {
		out = s.general(req.Payload)
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", eris.Wrap(err, "simulation: encode result")
	}
	return string(b), nil
}

// RiskLevel applies the trigger phrase rule to a scenario description.
func (s *Simulation) RiskLevel(description string) string {
	d := strings.ToLower(description)
	for _, t := range s.triggers {
		if strings.Contains(d, t) {
			return "Critical"
		}
	}
	return "High"
}

func (s *Simulation) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func (s *Simulation) general(p *model.AnalysisPayload) model.GeneralResult {
	info := p.CompanyInfo
	contentLen := 0
	for _, d := range info.Documents {
		contentLen += len(d.Content)
	}

	level := "High"
	if len(info.Documents) > 0 {
		level = "Medium"
	}
	volume := "Medium"
	if contentLen > 10000 {
		volume = "Low"
	}

	category := func(area string) model.RiskCategory {
		return model.RiskCategory{
			RiskLevel:  level,
			Assessment: fmt.Sprintf("Simulated %s review of %s based on %d documents and %d context items.", area, info.Name, len(info.Documents), len(info.Context)),
			KeyConcerns: []string{
				fmt.Sprintf("Data completeness: %d documents on file", len(info.Documents)),
				fmt.Sprintf("Content volume rated %s (%d characters)", volume, contentLen),
			},
			Recommendations: []string{fmt.Sprintf("Upload additional %s documents for a fuller assessment.", area)},
		}
	}

	return model.GeneralResult{
		OverallRiskLevel: level,
		ExecutiveSummary: fmt.Sprintf("Analysis completed for %s. Found %d context items and %d documents with %d characters of content.",
			info.Name, len(info.Context), len(info.Documents), contentLen),
		RiskCategories: model.RiskCategories{
			RegulatoryCompliance: category("regulatory compliance"),
			OperationalRisk:      category("operational"),
			FinancialExposure:    category("financial"),
			Reputation:           category("reputation"),
			LegalLiability:       category("legal"),
		},
		NewsInsights: fmt.Sprintf("%d related news articles were considered.", len(p.News.Articles)),
		Recommendations: []string{
			"Consider adding more context about the company's operations and risk profile.",
			"Upload additional legal documents for comprehensive analysis.",
			"Review recent news coverage for emerging risks.",
		},
		AIConfidence:      0.75,
		AnalysisTimestamp: s.timestamp(),
	}
}

func (s *Simulation) dynamic(p *model.AnalysisPayload) model.DynamicRiskResult {
	info := p.CompanyInfo
	scenario := model.RiskScenario{Type: "unknown"}
	if p.RiskScenario != nil {
		scenario = *p.RiskScenario
	}

	pdfs := 0
	for _, d := range info.Documents {
		if d.FileType == model.FileTypePDF {
			pdfs++
		}
	}
	alignment := "Low"
	if len(info.Context) > 0 {
		alignment = "High"
	}
	coverage := "Limited"
	if len(info.Documents) > 2 {
		coverage = "Comprehensive"
	}

	return model.DynamicRiskResult{
		RiskAnalysis: model.ScenarioAnalysis{
			Scenario:  scenario.Description,
			RiskLevel: s.RiskLevel(scenario.Description),
			ImpactAssessment: fmt.Sprintf("This %s risk threatens %s's business operations. Service interruptions, cost increases and contractual breach scenarios require immediate executive attention and a coordinated legal response.",
				scenario.Type, info.Name),
			AffectedAreas: []string{
				"Contractual obligations and SLA compliance",
				"Customer relationship management and retention",
				"Financial stability and cash flow",
				"Operational continuity and disaster recovery",
				"Regulatory compliance and reporting",
			},
		},
		CompanyInsights: model.CompanyInsights{
			RelevantContracts:  pdfs,
			ContextAlignment:   alignment,
			DataCoverage:       coverage,
			CriticalContracts:  "Customer contracts with uptime SLAs and liquidated damages clauses",
			ForceMajeureReview: "Review force majeure definitions and notice requirements in affected contracts",
		},
		Recommendations: []string{
			"Immediate Legal Response: engage counsel to review the contractual position and notice requirements.",
			"Customer Communication Strategy: prepare proactive communication for affected customers.",
			"Contingency Planning: evaluate alternative suppliers or providers to reduce dependency.",
		},
		NextSteps: []string{
			"Convene the crisis management team and assign owners within 24 hours.",
			"Review insurance coverage for business interruption and liability.",
			"Assess regulatory notification obligations triggered by the scenario.",
		},
		AIConfidence:      0.92,
		AnalysisTimestamp: s.timestamp(),
	}
}
