package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/mhardmon1/NutriStrive-AI-Diet-App/apperr"
	"github.com/mhardmon1/NutriStrive-AI-Diet-App/logger"
)

// ChatMessage content is either a plain string or a multimodal part list
// (text + image_url) for photo analysis.
type ChatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type TextPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type ImagePart struct {
	Type     string   `json:"type"`
	ImageURL ImageURL `json:"image_url"`
}

type ImageURL struct {
	URL string `json:"url"`
}

// JSONSchema names a strict output schema the model must produce.
type JSONSchema struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
}

// LLMCaller is the structured-generation boundary. Gateways depend on this
// interface so tests can swap in a stub.
type LLMCaller interface {
	GenerateJSON(ctx context.Context, messages []ChatMessage, schema JSONSchema) (json.RawMessage, error)
}

type LLMService struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
	log    *logger.Logger
}

func NewLLMService(log *logger.Logger) *LLMService {
	timeoutSec := 45
	if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}
	apiURL := os.Getenv("LLM_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/chat/completions"
	}
	return &LLMService{
		apiURL: apiURL,
		apiKey: os.Getenv("LLM_API_KEY"),
		model:  os.Getenv("LLM_MODEL"),
		client: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		log:    log,
	}
}

type llmRequest struct {
	Model      string        `json:"model,omitempty"`
	Messages   []ChatMessage `json:"messages"`
	JSONSchema JSONSchema    `json:"json_schema"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateJSON posts {messages, json_schema} and returns the model's JSON
// payload undecoded. The schema is a request, not a guarantee: callers must
// validate the decoded shape themselves.
func (s *LLMService) GenerateJSON(ctx context.Context, messages []ChatMessage, schema JSONSchema) (json.RawMessage, error) {
	b, err := json.Marshal(llmRequest{Model: s.model, Messages: messages, JSONSchema: schema})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			s.log.Warn("model call timed out", "schema", schema.Name)
			return nil, apperr.UpstreamTimeout(fmt.Errorf("model call timed out: %w", err))
		}
		return nil, apperr.Upstream(fmt.Errorf("failed to call model API: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Upstream(fmt.Errorf("failed to read model response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		s.log.Warn("model API returned non-200", "status", resp.StatusCode, "schema", schema.Name)
		return nil, apperr.Upstream(fmt.Errorf("model API error %d: %s", resp.StatusCode, string(body)))
	}

	var lr llmResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, apperr.Upstream(fmt.Errorf("failed to parse model response: %w", err))
	}
	if len(lr.Choices) == 0 {
		return nil, apperr.Upstream(errors.New("model returned no choices"))
	}
	return json.RawMessage(lr.Choices[0].Message.Content), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
