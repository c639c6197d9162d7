package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rotisserie/eris"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"riskmai/internal/gateway"
	"riskmai/internal/llm"
	"riskmai/internal/model"
	"riskmai/internal/news"
	"riskmai/internal/prompt"
	"riskmai/internal/repository"
)

const (
	defaultGeneralNews  = 5
	defaultRiskNews     = 3
	defaultListLimit    = 10
	maxListLimit        = 100
	defaultRiskType     = "unknown"
	analysisTracerScope = "riskmai/internal/service"
)

// AnalyseRequest is one analysis run. RiskDescription is required when Type is dynamic_risk.
type AnalyseRequest struct {
	Type            model.AnalysisType
	RiskDescription string
	RiskContext     string
	RiskType        string
	Timestamp       string
}

// ListAnalysesQuery narrows a company's analysis history. Limit defaults to 10 and is capped at 100.
type ListAnalysesQuery struct {
	AnalysisID   string
	AnalysisType string
	Limit        int
}

// AnalysisService runs and retrieves company risk analyses.
type AnalysisService interface {
	// Analyse gathers the company record and news, asks the model for a structured result and stores it.
	// News and model failures are absorbed into the result. Only validation, lookup and store errors fail the call.
	Analyse(ctx context.Context, companyID string, req AnalyseRequest) (*model.AnalysisOutcome, error)

	// List returns the company's analyses, newest first.
	List(ctx context.Context, companyID string, q ListAnalysesQuery) ([]model.AnalysisRecord, error)

	// Get returns one of the company's analyses.
	Get(ctx context.Context, companyID, analysisID string) (*model.AnalysisRecord, error)
}

// AnalysisOptions tunes the pipeline. Zero news limits fall back to the defaults; Temperature is passed as is.
type AnalysisOptions struct {
	GeneralNewsLimit int
	RiskNewsLimit    int
	Temperature      float64
	MaxTokens        int
}

// AnalysisDeps are the collaborators of the analysis pipeline. Metrics is optional.
type AnalysisDeps struct {
	Companies repository.CompanyRepository
	Documents repository.DocumentRepository
	Analyses  repository.AnalysisRepository
	News      news.Searcher
	Model     llm.Client
	Metrics   *AnalysisMetrics
}

// AnalysisMetrics counts completed analysis runs.
type AnalysisMetrics struct {
	runs *prometheus.CounterVec
}

// NewAnalysisMetrics registers analysis_runs_total on reg.
func NewAnalysisMetrics(reg prometheus.Registerer) (*AnalysisMetrics, error) {
	m := &AnalysisMetrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analysis_runs_total",
				Help: "Total number of stored analyses by type and model outcome.",
			},
			[]string{"type", "model_status"},
		),
	}
	if err := reg.Register(m.runs); err != nil {
		return nil, eris.Wrap(err, "register analysis metrics")
	}
	return m, nil
}

func (m *AnalysisMetrics) observe(kind model.AnalysisType, modelStatus string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(string(kind), modelStatus).Inc()
}

type analysisService struct {
	companies repository.CompanyRepository
	documents repository.DocumentRepository
	analyses  repository.AnalysisRepository
	news      news.Searcher
	model     llm.Client
	metrics   *AnalysisMetrics
	opts      AnalysisOptions
	tracer    trace.Tracer
	now       func() time.Time
}

// NewAnalysisService constructs a new AnalysisService.
func NewAnalysisService(deps AnalysisDeps, opts AnalysisOptions) AnalysisService {
	if opts.GeneralNewsLimit <= 0 {
		opts.GeneralNewsLimit = defaultGeneralNews
	}
	if opts.RiskNewsLimit <= 0 {
		opts.RiskNewsLimit = defaultRiskNews
	}
	return &analysisService{
		companies: deps.Companies,
		documents: deps.Documents,
		analyses:  deps.Analyses,
		news:      deps.News,
		model:     deps.Model,
		metrics:   deps.Metrics,
		opts:      opts,
		tracer:    otel.Tracer(analysisTracerScope),
		now:       time.Now,
	}
}

func (s *analysisService) Analyse(ctx context.Context, companyID string, req AnalyseRequest) (*model.AnalysisOutcome, error) {
	kind := req.Type
	if kind == "" {
		kind = model.AnalysisGeneral
	}
	if !kind.Valid() {
		return nil, validationError("analysis_type", "analysis_type must be general or dynamic_risk")
	}
	if kind == model.AnalysisDynamicRisk && strings.TrimSpace(req.RiskDescription) == "" {
		return nil, validationError("risk_description", "Risk description is required")
	}
	if !validID(companyID) {
		return nil, &NotFoundError{Resource: "company", ID: companyID}
	}

	ctx, span := s.tracer.Start(ctx, "analysis.run", trace.WithAttributes(
		attribute.String("company.id", companyID),
		attribute.String("analysis.type", string(kind)),
	))
	defer span.End()

	ts := strings.TrimSpace(req.Timestamp)
	if ts == "" {
		ts = s.now().UTC().Format(time.RFC3339)
	}

	company, err := s.fetchCompany(ctx, companyID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var scenario *model.RiskScenario
	if kind == model.AnalysisDynamicRisk {
		scenario = &model.RiskScenario{
			Description: strings.TrimSpace(req.RiskDescription),
			Context:     req.RiskContext,
			Type:        req.RiskType,
			Timestamp:   ts,
		}
		if scenario.Type == "" {
			scenario.Type = defaultRiskType
		}
	}

	newsRes := s.fetchNews(ctx, company.Name, scenario)

	limit := s.opts.GeneralNewsLimit
	if scenario != nil {
		limit = s.opts.RiskNewsLimit
	}
	payload := buildPayload(company, newsRes, scenario, limit)

	result, modelStatus, err := s.runModel(ctx, kind, payload, ts)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	result.SetTimestampIfEmpty(ts)
	result.SetMetadata(&model.AnalysisMetadata{
		NewsStatus:  payload.News.Status,
		ModelStatus: modelStatus,
		Degraded:    payload.News.Status != model.NewsStatusSuccess || modelStatus != model.ModelStatusSuccess,
	})

	stored, err := s.persist(ctx, companyID, kind, payload, result, ts)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	s.metrics.observe(kind, modelStatus)

	zap.L().Info("analysis stored",
		zap.String("analysis_id", stored.ID),
		zap.String("company_id", companyID),
		zap.String("analysis_type", string(kind)),
		zap.String("news_status", payload.News.Status),
		zap.String("model_status", modelStatus),
	)

	return &model.AnalysisOutcome{
		AnalysisID:   stored.ID,
		AnalysisType: kind,
		Result:       stored.Result,
	}, nil
}

func (s *analysisService) fetchCompany(ctx context.Context, companyID string) (*model.Company, error) {
	ctx, span := s.tracer.Start(ctx, "analysis.fetch_company")
	defer span.End()

	c, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		span.RecordError(err)
		return nil, lookupError("company", companyID, "get company", err)
	}
	docs, err := s.documents.ListByCompany(ctx, companyID)
	if err != nil {
		span.RecordError(err)
		return nil, &StoreError{Op: "list documents", Err: err}
	}
	c.Documents = docs
	return c, nil
}

// fetchNews never fails. Gateway errors are replaced by an empty result flagged with status "error".
func (s *analysisService) fetchNews(ctx context.Context, companyName string, scenario *model.RiskScenario) *model.NewsResult {
	ctx, span := s.tracer.Start(ctx, "analysis.fetch_news")
	defer span.End()

	var (
		res *model.NewsResult
		err error
		q   = news.Query{Text: companyName, CompanyName: companyName}
	)
	if scenario != nil {
		q.Text, q.RiskType = scenario.Description, scenario.Type
		res, err = s.news.RiskNews(ctx, scenario.Description, scenario.Type, companyName)
	} else {
		res, err = s.news.CompanyNews(ctx, companyName)
	}
	if err == nil && res == nil {
		err = eris.New("news search returned no result")
	}
	if err != nil {
		span.RecordError(err)
		var depErr *gateway.DependencyError
		if errors.As(err, &depErr) {
			zap.L().Warn("news dependency unavailable, continuing without articles",
				zap.String("dependency", depErr.Dependency),
				zap.Error(depErr.Err),
			)
		} else {
			zap.L().Warn("news search failed, continuing without articles", zap.Error(err))
		}
		return news.ErrorResult(q, err)
	}
	span.SetAttributes(
		attribute.String("news.status", res.SearchMetadata.Status),
		attribute.Int("news.articles", len(res.Articles)),
	)
	return res
}

func buildPayload(c *model.Company, res *model.NewsResult, scenario *model.RiskScenario, limit int) *model.AnalysisPayload {
	docs := make([]model.DocumentExcerpt, 0, len(c.Documents))
	for _, d := range c.Documents {
		docs = append(docs, model.DocumentExcerpt{
			FileName: d.FileName,
			Content:  d.Content,
			FileType: d.FileType,
		})
	}
	contexts := c.Context
	if contexts == nil {
		contexts = []string{}
	}

	articles := res.Articles
	if len(articles) > limit {
		articles = articles[:limit]
	}
	excerpts := make([]model.ArticleExcerpt, 0, len(articles))
	for _, a := range articles {
		excerpts = append(excerpts, model.ArticleExcerpt{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			Source:      a.Source,
			Date:        a.PublishedDate,
			Sentiment:   a.Sentiment,
		})
	}

	return &model.AnalysisPayload{
		CompanyInfo: model.CompanyInfo{
			Name:      c.Name,
			Context:   contexts,
			Documents: docs,
		},
		News: model.NewsSummary{
			Articles:     excerpts,
			TotalResults: res.TotalResults,
			Status:       res.SearchMetadata.Status,
			Error:        res.SearchMetadata.Error,
		},
		RiskScenario: scenario,
	}
}

// runModel returns a result in every case except a prompt that cannot be rendered.
// The second value is the model status recorded in the metadata.
func (s *analysisService) runModel(ctx context.Context, kind model.AnalysisType, p *model.AnalysisPayload, ts string) (model.Result, string, error) {
	text, err := prompt.Build(kind, p)
	if err != nil {
		return nil, "", eris.Wrap(err, "build prompt")
	}

	ctx, span := s.tracer.Start(ctx, "analysis.invoke_model", trace.WithAttributes(
		attribute.String("llm.provider", s.model.Name()),
	))
	defer span.End()

	temp := s.opts.Temperature
	raw, err := s.model.Complete(ctx, llm.Request{
		Kind:        kind,
		System:      prompt.SystemPrompt,
		Prompt:      text,
		Payload:     p,
		Temperature: &temp,
		MaxTokens:   s.opts.MaxTokens,
	})
	if err != nil {
		span.RecordError(err)
		zap.L().Error("model call failed, storing fallback result",
			zap.String("provider", s.model.Name()),
			zap.Error(err),
		)
		return prompt.APIErrorResult(kind, p, err, ts), model.ModelStatusAPIError, nil
	}

	result, err := prompt.Parse(kind, raw)
	if err != nil {
		span.RecordError(err)
		zap.L().Warn("model response could not be parsed, storing raw text",
			zap.String("provider", s.model.Name()),
			zap.Error(err),
		)
		return prompt.ParseFallbackResult(kind, p, raw, ts), model.ModelStatusParseError, nil
	}
	return result, model.ModelStatusSuccess, nil
}

func (s *analysisService) persist(ctx context.Context, companyID string, kind model.AnalysisType, p *model.AnalysisPayload, result model.Result, ts string) (*model.AnalysisRecord, error) {
	ctx, span := s.tracer.Start(ctx, "analysis.persist")
	defer span.End()

	payloadJSON, err := json.Marshal(p)
	if err != nil {
		return nil, eris.Wrap(err, "marshal payload")
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, eris.Wrap(err, "marshal result")
	}

	stored, err := s.analyses.Create(ctx, &model.AnalysisRecord{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		AnalysisType: kind,
		Payload:      payloadJSON,
		Result:       resultJSON,
		Timestamp:    ts,
	})
	if err != nil {
		span.RecordError(err)
		return nil, &StoreError{Op: "save analysis", Err: err}
	}
	return stored, nil
}

func (s *analysisService) List(ctx context.Context, companyID string, q ListAnalysesQuery) ([]model.AnalysisRecord, error) {
	kind := model.AnalysisType(strings.TrimSpace(q.AnalysisType))
	if kind != "" && !kind.Valid() {
		return nil, validationError("analysis_type", "analysis_type must be general or dynamic_risk")
	}
	if q.Limit < 0 {
		return nil, validationError("limit", "limit must be a positive integer")
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if !validID(companyID) {
		return nil, &NotFoundError{Resource: "company", ID: companyID}
	}
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, lookupError("company", companyID, "get company", err)
	}

	f := repository.AnalysisFilter{
		CompanyID:    companyID,
		AnalysisType: kind,
		Limit:        limit,
	}
	if id := strings.TrimSpace(q.AnalysisID); id != "" {
		if !validID(id) {
			return []model.AnalysisRecord{}, nil
		}
		f.AnalysisID = id
	}

	items, err := s.analyses.List(ctx, f)
	if err != nil {
		return nil, &StoreError{Op: "list analyses", Err: err}
	}
	return items, nil
}

func (s *analysisService) Get(ctx context.Context, companyID, analysisID string) (*model.AnalysisRecord, error) {
	if !validID(companyID) || !validID(analysisID) {
		return nil, &NotFoundError{Resource: "analysis", ID: analysisID}
	}
	rec, err := s.analyses.FindByID(ctx, companyID, analysisID)
	if err != nil {
		return nil, lookupError("analysis", analysisID, "get analysis", err)
	}
	return rec, nil
}
