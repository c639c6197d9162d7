package handler

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"riskmai/internal/model"
	"riskmai/internal/service"
)

// analyseBody is the analysis request. Any risk_* key switches the request to dynamic risk mode.
type analyseBody struct {
	AnalysisType    string  `json:"analysis_type"`
	RiskDescription *string `json:"risk_description"`
	RiskContext     *string `json:"risk_context"`
	RiskType        *string `json:"risk_type"`
	Timestamp       string  `json:"timestamp"`
}

func (b analyseBody) request(forceDynamic bool) service.AnalyseRequest {
	req := service.AnalyseRequest{
		Type:      model.AnalysisType(b.AnalysisType),
		Timestamp: b.Timestamp,
	}
	if forceDynamic || b.RiskDescription != nil || b.RiskContext != nil || b.RiskType != nil {
		req.Type = model.AnalysisDynamicRisk
	}
	if b.RiskDescription != nil {
		req.RiskDescription = *b.RiskDescription
	}
	if b.RiskContext != nil {
		req.RiskContext = *b.RiskContext
	}
	if b.RiskType != nil {
		req.RiskType = *b.RiskType
	}
	return req
}

// decodeJSON decodes a JSON object body. An empty body leaves v untouched.
func decodeJSON(c *fiber.Ctx, v any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

func analyse(svc service.AnalysisService, forceDynamic bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body analyseBody
		if err := decodeJSON(c, &body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "request body must be a JSON object")
		}
		out, err := svc.Analyse(c.UserContext(), c.Params("id"), body.request(forceDynamic))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(out)
	}
}

// Analyse runs a general or dynamic risk analysis for a company.
//
// @Summary Analyse company
// @Description An empty body runs a general analysis. risk_description selects dynamic risk mode.
// @Tags analyses
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param body body analyseBody false "Analysis request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /companies/{id}/analyse [post]
func Analyse(svc service.AnalysisService) fiber.Handler {
	return analyse(svc, false)
}

// DynamicRisk always runs a dynamic risk analysis.
//
// @Summary Dynamic risk analysis
// @Tags analyses
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param body body analyseBody true "Risk scenario"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /companies/{id}/dynamic-risk [post]
func DynamicRisk(svc service.AnalysisService) fiber.Handler {
	return analyse(svc, true)
}

// ListAnalyses returns stored analyses, newest first.
//
// @Summary List analyses
// @Tags analyses
// @Produce json
// @Param id path string true "Company ID"
// @Param analysis_id query string false "Analysis ID"
// @Param analysis_type query string false "general or dynamic_risk"
// @Param limit query int false "Max records (default 10, max 100)"
// @Success 200 {array} model.AnalysisRecord
// @Failure 400 {object} errorPayload
// @Router /companies/{id}/analyses [get]
func ListAnalyses(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := service.ListAnalysesQuery{
			AnalysisID:   c.Query("analysis_id"),
			AnalysisType: c.Query("analysis_type"),
		}
		if s := c.Query("limit"); s != "" {
			limit, err := strconv.Atoi(s)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
			}
			q.Limit = limit
		}

		items, err := svc.List(c.UserContext(), c.Params("id"), q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetAnalysis returns one stored analysis.
//
// @Summary Get analysis
// @Tags analyses
// @Produce json
// @Param id path string true "Company ID"
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} model.AnalysisRecord
// @Failure 404 {object} errorPayload
// @Router /companies/{id}/analyses/{analysis_id} [get]
func GetAnalysis(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := svc.Get(c.UserContext(), c.Params("id"), c.Params("analysis_id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}
