package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Generator is the capability interface over the hosted inference model. The
// upstream is an unreliable external service; implementations own their own
// retry policy and surface ErrUpstreamUnavailable when it can't be reached.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	defaultInferenceEndpoint = "https://api-inference.huggingface.co/models"
	inferenceMaxRetries      = 2
	inferenceRetryDelay      = 500 * time.Millisecond
)

// HuggingFaceClient calls a hosted text-generation model over HTTP.
type HuggingFaceClient struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
	limiter  *rate.Limiter
}

func NewHuggingFaceClient(endpoint, model, apiKey string) *HuggingFaceClient {
	if endpoint == "" {
		endpoint = defaultInferenceEndpoint
	}
	return &HuggingFaceClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 30 * time.Second},
		// Keep outbound traffic friendly to the free inference tier.
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// Generate sends the prompt to the inference endpoint and returns the
// generated text. Transient failures (network errors, 5xx, 429) are retried a
// bounded number of times; a well-formed client error from the provider is
// returned immediately.
func (c *HuggingFaceClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Inputs: prompt})
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/%s", c.endpoint, c.model)

	var lastErr error
	for attempt := 0; attempt <= inferenceMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(inferenceRetryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		text, retryable, err := c.doRequest(ctx, url, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
		log.Printf("Inference call failed (attempt %d/%d): %v", attempt+1, inferenceMaxRetries+1, err)
	}
	return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, lastErr)
}

func (c *HuggingFaceClient) doRequest(ctx context.Context, url string, body []byte) (text string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", true, fmt.Errorf("inference endpoint returned %d", resp.StatusCode)
	default:
		// A well-formed provider error; retrying won't change the answer.
		return "", false, fmt.Errorf("%w: inference endpoint returned %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, err
	}
	var outputs []generateResponse
	if err := json.Unmarshal(data, &outputs); err != nil {
		return "", false, fmt.Errorf("%w: malformed inference response", ErrUpstreamUnavailable)
	}
	if len(outputs) == 0 || outputs[0].GeneratedText == "" {
		return "", false, fmt.Errorf("%w: empty inference response", ErrUpstreamUnavailable)
	}
	return outputs[0].GeneratedText, false, nil
}

const tutorPersona = "You are TutorBot, a helpful, creative, and fun AI tutor. " +
	"Keep answers friendly and ask engaging follow-up questions."

// AIService shapes tutoring prompts and reshapes model output. Retry and
// availability concerns live in the Generator, not here.
type AIService struct {
	generator Generator
}

func NewAIService(generator Generator) *AIService {
	return &AIService{generator: generator}
}

// Chat answers a chatbot message in the TutorBot persona.
func (s *AIService) Chat(ctx context.Context, message string) (string, error) {
	prompt := fmt.Sprintf("%s\n\nUser: %s\nTutorBot:", tutorPersona, message)
	output, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	// Some models echo the prompt back in front of the completion.
	reply := strings.TrimSpace(strings.TrimPrefix(output, prompt))
	if reply == "" {
		reply = "Hmm, I didn't catch that. Can you try rephrasing?"
	}
	return reply, nil
}

// Explain forwards a raw explanation prompt to the model.
func (s *AIService) Explain(ctx context.Context, prompt string) (string, error) {
	output, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}
