package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplan-gateway/backend/config"
	"github.com/pageza/mealplan-gateway/backend/internal/metrics"
	"github.com/pageza/mealplan-gateway/backend/internal/types"
)

const (
	generatePath = "api/generate"

	// maxResponseBytes caps how much of a generation reply is buffered
	maxResponseBytes int64 = 16 << 20
)

// generateRequest is the body of a non-streaming Ollama style generate call
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// MealPlanService forwards meal plan requests to the generation service.
// It is safe for concurrent use; the http.Client is never modified after
// construction.
type MealPlanService struct {
	endpoint         string
	model            string
	client           *http.Client
	logger           logrus.FieldLogger
	metrics          *metrics.Metrics
	maxResponseBytes int64
}

// NewMealPlanService creates a new MealPlanService instance
func NewMealPlanService(cfg config.GeneratorConfig, logger logrus.FieldLogger, m *metrics.Metrics) (*MealPlanService, error) {
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("generator timeout must be positive, got %s", cfg.Timeout)
	}
	endpoint, err := url.JoinPath(cfg.BaseURL, generatePath)
	if err != nil {
		return nil, fmt.Errorf("invalid generator base url: %w", err)
	}

	return &MealPlanService{
		endpoint:         endpoint,
		model:            cfg.Model,
		client:           &http.Client{Timeout: cfg.Timeout},
		logger:           logger,
		metrics:          m,
		maxResponseBytes: maxResponseBytes,
	}, nil
}

// Endpoint is the full URL generation calls are posted to
func (s *MealPlanService) Endpoint() string {
	return s.endpoint
}

// Generate submits the rendered prompt and returns the upstream body as is.
func (s *MealPlanService) Generate(ctx context.Context, req *types.MealPlanRequest) (json.RawMessage, error) {
	s.metrics.IncGenerationRequest(s.model)
	start := time.Now()
	defer func() { s.metrics.ObserveGenerationDuration(time.Since(start)) }()

	prompt := BuildPrompt(req)
	s.logger.WithFields(logrus.Fields{
		"model":      s.model,
		"diet":       req.Diet,
		"goal":       req.Goal,
		"prompt_len": len(prompt),
	}).Debug("submitting meal plan prompt")

	payload, err := json.Marshal(generateRequest{
		Model:  s.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return nil, s.transportError(fmt.Errorf("failed to marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, s.transportError(fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, s.transportError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.WithError(err).Debug("close upstream body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		s.metrics.IncGenerationError(metrics.KindUpstreamStatus)
		return nil, &UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxResponseBytes+1))
	if err != nil {
		return nil, s.transportError(fmt.Errorf("failed to read response: %w", err))
	}
	if int64(len(body)) > s.maxResponseBytes {
		return nil, s.transportError(fmt.Errorf("response exceeds %d bytes", s.maxResponseBytes))
	}

	if err := json.Unmarshal(body, new(json.RawMessage)); err != nil {
		return nil, s.transportError(fmt.Errorf("failed to decode response: %w", err))
	}

	return json.RawMessage(body), nil
}

func (s *MealPlanService) transportError(err error) error {
	s.metrics.IncGenerationError(metrics.KindTransport)
	return &TransportError{Err: err}
}
