// Package advisor wraps the Gemini generateContent endpoint to turn a free
// text project description into component recommendations. The service is
// treated as opaque and possibly failing; there are no retries.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const systemInstruction = "You are a world-class Electronic Systems Engineer and CTO for AXIS Silicon. " +
	"Recommend high-performance electronic components (MCUs, sensors, logic ICs) and technical " +
	"implementation steps for the described electronic project. Focus on reliability, frequency " +
	"stability, and efficiency. Keep it professional, highly technical, and concise."

const defaultBaseURL = "https://generativelanguage.googleapis.com"
const defaultModel = "gemini-2.0-flash"

// Advice is the structured response contract of the advisory service.
type Advice struct {
	Summary          string   `json:"summary"`
	RecommendedTools []string `json:"recommendedTools"`
	ProTips          []string `json:"proTips"`
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		httpClient: http.DefaultClient,
	}
}

// NewClientWithBaseURL exists for tests pointed at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type generateRequest struct {
	SystemInstruction content          `json:"system_instruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"response_mime_type"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// ProjectAdvice asks the model for a structured recommendation. The response
// is expected to be a single JSON object matching Advice.
func (c *Client) ProjectAdvice(ctx context.Context, description string) (*Advice, error) {
	if description == "" {
		return nil, errors.New("project description is empty")
	}

	reqBody := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: description}}}},
		GenerationConfig:  generationConfig{ResponseMimeType: "application/json"},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("advisory service returned %d: %s", resp.StatusCode, body)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, err
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("advisory service returned no candidates")
	}

	var advice Advice
	if err := json.Unmarshal([]byte(genResp.Candidates[0].Content.Parts[0].Text), &advice); err != nil {
		return nil, fmt.Errorf("advisory response is not valid JSON: %w", err)
	}
	return &advice, nil
}
