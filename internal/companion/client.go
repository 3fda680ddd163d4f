// Package companion talks to the text-generation backend that writes the
// listener and chat replies through the Gemini generateContent call.
package companion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"google.golang.org/genai"
)

const (
	DefaultEndpoint   = "https://generativelanguage.googleapis.com/"
	DefaultAPIVersion = "v1beta"
	DefaultModel      = "gemini-2.0-flash"
	DefaultAPIKeyEnv  = "GEMINI_API_KEY"
)

var (
	// ErrMissingAPIKey means the key variable is unset; the backend was not called.
	ErrMissingAPIKey = errors.New("companion: api key is not configured")
	// ErrUpstream wraps every failure of the backend call itself.
	ErrUpstream = errors.New("companion: upstream failure")
)

// Generator produces a reply for a rendered request.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request is the provider-neutral input: a system instruction, the
// conversation text and sampling settings.
type Request struct {
	System      string
	Text        string
	Temperature float64
	TopP        float64
}

// Config.Endpoint is the API base URL without the version segment.
type Config struct {
	Endpoint   string
	APIVersion string
	Model      string
	APIKeyEnv  string
	Timeout    time.Duration
}

// GeminiClient calls models/{model}:generateContent through the genai SDK.
// The API key is read from the environment on every call so it can be
// rotated without restart; the SDK client is rebuilt when the key changes.
type GeminiClient struct {
	cfg    Config
	http   *http.Client
	getenv func(string) string

	mu     sync.Mutex
	key    string
	client *genai.Client
}

func NewGeminiClient(cfg Config, hc *http.Client) *GeminiClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = DefaultAPIKeyEnv
	}
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &GeminiClient{cfg: cfg, http: hc, getenv: os.Getenv}
}

// HasAPIKey reports whether the key variable is currently set.
func (c *GeminiClient) HasAPIKey() bool {
	return c.getenv(c.cfg.APIKeyEnv) != ""
}

func (c *GeminiClient) sdk(ctx context.Context, key string) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil && c.key == key {
		return c.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.http,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    c.cfg.Endpoint,
			APIVersion: c.cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, err
	}
	c.key, c.client = key, client
	return client, nil
}

func generationConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{genai.NewPartFromText(req.System)}}
	}
	if req.Temperature != 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.TopP != 0 {
		cfg.TopP = genai.Ptr(float32(req.TopP))
	}
	return cfg
}

// Generate returns the first candidate's text, or "" when the backend
// answered with no candidates.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	key := c.getenv(c.cfg.APIKeyEnv)
	if key == "" {
		return "", ErrMissingAPIKey
	}

	client, err := c.sdk(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	contents := []*genai.Content{genai.NewContentFromText(req.Text, genai.RoleUser)}
	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, contents, generationConfig(req))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return resp.Text(), nil
}
