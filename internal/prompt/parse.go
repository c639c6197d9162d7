package prompt

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"riskmai/internal/model"
)

// ErrNoJSONObject is returned when the model output contains no {...} span.
var ErrNoJSONObject = eris.New("model output contains no JSON object")

// Parse decodes raw model output for kind.
func Parse(kind model.AnalysisType, raw string) (model.Result, error) {
	if kind == model.AnalysisDynamicRisk {
		return ParseDynamicRisk(raw)
	}
	return ParseGeneral(raw)
}

// ParseGeneral decodes a general result and checks that every risk level and the confidence are present.
func ParseGeneral(raw string) (*model.GeneralResult, error) {
	obj, err := isolateObject(raw)
	if err != nil {
		return nil, err
	}

	var wire struct {
		model.GeneralResult
		AIConfidence *float64 `json:"ai_confidence"`
	}
	if err := json.Unmarshal([]byte(obj), &wire); err != nil {
		return nil, eris.Wrap(err, "decode general result")
	}

	res := wire.GeneralResult
	if strings.TrimSpace(res.OverallRiskLevel) == "" {
		return nil, eris.New("general result: overall_risk_level is required")
	}
	for i, c := range res.RiskCategories.All() {
		if strings.TrimSpace(c.RiskLevel) == "" {
			return nil, eris.Errorf("general result: risk_level missing in category %d", i)
		}
	}
	if err := checkConfidence(wire.AIConfidence); err != nil {
		return nil, err
	}
	res.AIConfidence = *wire.AIConfidence
	return &res, nil
}

// ParseDynamicRisk decodes a dynamic risk result and checks its required fields.
func ParseDynamicRisk(raw string) (*model.DynamicRiskResult, error) {
	obj, err := isolateObject(raw)
	if err != nil {
		return nil, err
	}

	var wire struct {
		model.DynamicRiskResult
		AIConfidence *float64 `json:"ai_confidence"`
	}
	if err := json.Unmarshal([]byte(obj), &wire); err != nil {
		return nil, eris.Wrap(err, "decode dynamic risk result")
	}

	res := wire.DynamicRiskResult
	if strings.TrimSpace(res.RiskAnalysis.RiskLevel) == "" {
		return nil, eris.New("dynamic risk result: risk_analysis.risk_level is required")
	}
	if err := checkConfidence(wire.AIConfidence); err != nil {
		return nil, err
	}
	res.AIConfidence = *wire.AIConfidence
	return &res, nil
}

func checkConfidence(v *float64) error {
	if v == nil {
		return eris.New("ai_confidence is required")
	}
	if *v < 0 || *v > 1 {
		return eris.Errorf("ai_confidence %v out of range", *v)
	}
	return nil
}

// StripMarkdownFences removes a surrounding ```json fence.
func StripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// isolateObject returns the span from the first '{' to the last '}'.
func isolateObject(raw string) (string, error) {
	s := StripMarkdownFences(raw)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", ErrNoJSONObject
	}
	return s[start : end+1], nil
}
