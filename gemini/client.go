// Package gemini wraps the Gemini generative API behind the small
// completion contract the handlers need: an ordered list of text and
// binary parts in, a text answer or an error out. The model identifier
// is resolved once at startup and immutable afterwards.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/NITHIN-BHAT/MedGPT/logging"
	"github.com/NITHIN-BHAT/MedGPT/metrics"
)

// DefaultModel is used when model probing fails entirely.
const DefaultModel = "models/gemini-2.0-flash"

// FailurePrefix marks the user-visible diagnostic string a failed
// completion call is converted into. Clients key off this prefix, so
// it must stay stable.
const FailurePrefix = "⚠️ AI failed: "

// PreferredModels is the fastest-to-slowest preference order probed at
// startup.
var PreferredModels = []string{
	"gemini-2.0-flash-lite",
	"gemini-2.0-flash",
	"gemini-2.5-flash",
	"gemini-1.5-flash",
}

// ModelInfo describes one probe result for the debug endpoint.
type ModelInfo struct {
	Name    string   `json:"name"`
	Methods []string `json:"methods"`
}

// Client is a Gemini completion client bound to a resolved model.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates the client and resolves the model to use. A
// missing API key is a hard error: the service must not start without
// completion credentials.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	c := &Client{client: gc}
	c.model = c.resolveModel(ctx)
	return c, nil
}

// ModelName returns the resolved model identifier.
func (c *Client) ModelName() string {
	return c.model
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.client.Close()
}

// resolveModel probes the available models and picks the first
// preferred one; probing failure falls back to the hardcoded default.
func (c *Client) resolveModel(ctx context.Context) string {
	available, order, err := c.generationModels(ctx)
	if err != nil {
		logging.Warn("Model probing failed, using default model", "error", err, "model", DefaultModel)
		return DefaultModel
	}
	model := pickModel(available, order, PreferredModels)
	logging.Info("Resolved completion model", "model", model)
	return model
}

// pickModel chooses the first preferred short name present in the
// probed set, falling back to the first probed model, then to the
// hardcoded default.
func pickModel(available map[string]string, order []string, preferred []string) string {
	for _, short := range preferred {
		if full, ok := available[short]; ok {
			return full
		}
	}
	if len(order) > 0 {
		return available[order[0]]
	}
	return DefaultModel
}

// generationModels lists models supporting generateContent, keyed by
// short name, with probe order preserved.
func (c *Client) generationModels(ctx context.Context) (map[string]string, []string, error) {
	available := make(map[string]string)
	var order []string

	iter := c.client.ListModels(ctx)
	for {
		m, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("list models: %w", err)
		}

		if !supportsGeneration(m.SupportedGenerationMethods) {
			continue
		}

		short := m.Name
		if idx := strings.LastIndex(m.Name, "/"); idx != -1 {
			short = m.Name[idx+1:]
		}
		if _, seen := available[short]; !seen {
			available[short] = m.Name
			order = append(order, short)
		}
	}

	if len(order) == 0 {
		return nil, nil, fmt.Errorf("no models support generateContent")
	}
	return available, order, nil
}

func supportsGeneration(methods []string) bool {
	for _, m := range methods {
		if m == "generateContent" {
			return true
		}
	}
	return false
}

// AvailableModels lists every probed model with its supported methods.
func (c *Client) AvailableModels(ctx context.Context) ([]ModelInfo, error) {
	var out []ModelInfo

	iter := c.client.ListModels(ctx)
	for {
		m, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		out = append(out, ModelInfo{Name: m.Name, Methods: m.SupportedGenerationMethods})
	}
	return out, nil
}

// Complete forwards the ordered parts to the completion service and
// returns its text output. Errors are returned as errors here; the
// response-shaping layer decides how to surface them.
func (c *Client) Complete(ctx context.Context, parts []Part) (string, error) {
	model := c.client.GenerativeModel(c.model)

	in := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if len(p.Data) > 0 {
			in = append(in, genai.Blob{MIMEType: p.MIME, Data: p.Data})
			continue
		}
		in = append(in, genai.Text(p.Text))
	}

	start := time.Now()
	resp, err := model.GenerateContent(ctx, in...)
	metrics.CompletionRequestDuration.WithLabelValues(c.model).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.CompletionRequestTotal.WithLabelValues(c.model, "error").Inc()
		return "", fmt.Errorf("generate content: %w", err)
	}

	metrics.CompletionRequestTotal.WithLabelValues(c.model, "ok").Inc()
	return responseText(resp), nil
}

// responseText flattens the candidate text parts of a response.
func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

// Diagnostic converts a completion error into the user-visible
// fail-soft string embedded in an otherwise successful response.
func Diagnostic(err error) string {
	return FailurePrefix + err.Error()
}
