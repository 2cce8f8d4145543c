package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/registre/internal/logging"
	"github.com/dmitrijs2005/registre/internal/server/models"
)

var ErrMissingAPIKey = errors.New("gemini API key is not configured")

// GeminiOptions configures GeminiEnricher. Zero Timeout disables the
// per-call deadline; nil HTTPClient uses a fresh http.Client.
type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// GeminiEnricher calls the generateContent REST endpoint.
type GeminiEnricher struct {
	apiKey  string
	model   string
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  logging.Logger
}

func NewGeminiEnricher(o GeminiOptions, logger logging.Logger) *GeminiEnricher {
	client := o.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	model := o.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiEnricher{
		apiKey:  o.APIKey,
		model:   model,
		baseURL: strings.TrimRight(o.BaseURL, "/"),
		timeout: o.Timeout,
		client:  client,
		logger:  logger,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateProfile asks the model for a role and bio. It returns Fallback on
// any failure.
func (g *GeminiEnricher) GenerateProfile(ctx context.Context, firstName, lastName string) models.Profile {
	p, err := g.generate(ctx, firstName, lastName)
	if err != nil {
		g.logger.Error(ctx, "profile generation failed", "error", err, "model", g.model)
		return Fallback
	}
	g.logger.Debug(ctx, "profile generated", "model", g.model, "role", p.Role)
	return p
}

func (g *GeminiEnricher) generate(ctx context.Context, firstName, lastName string) (models.Profile, error) {
	if g.apiKey == "" {
		return models.Profile{}, ErrMissingAPIKey
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: Prompt(firstName, lastName)}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	})
	if err != nil {
		return models.Profile{}, err
	}

	apiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return models.Profile{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return models.Profile{}, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to read gemini response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.Profile{}, fmt.Errorf("gemini returned %d: %s", resp.StatusCode, parseAPIError(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return models.Profile{}, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return models.Profile{}, errors.New("gemini returned no candidates")
	}

	var text strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	if strings.TrimSpace(text.String()) == "" {
		return models.Profile{}, errors.New("gemini returned no text")
	}

	if err := validateProfile(text.String()); err != nil {
		return models.Profile{}, err
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(text.String()), &p); err != nil {
		return models.Profile{}, fmt.Errorf("invalid profile JSON: %w", err)
	}
	return p, nil
}

func parseAPIError(body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		if e.Error.Status != "" {
			return e.Error.Status + ": " + e.Error.Message
		}
		return e.Error.Message
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	if s == "" {
		s = "empty body"
	}
	return s
}
