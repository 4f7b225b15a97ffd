package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/ovaska/fishframe/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a concise fishing conditions assistant writing one-line text for a phone lock-screen wallpaper.

You receive current weather, the solunar picture (moon phase, major/minor activity periods, sun times) and a precomputed pike activity score for a single location and instant. Base your text only on the provided data.

Rules:
- Never contradict the provided activity score; your headline should match its mood.
- Mention at most one concrete condition (pressure, wind, cloud cover, or an activity period).
- No guarantees of catching fish, no safety or legal advice.
- Keep the headline under 60 characters and the tip under 120 characters.

You must respond as strict JSON with exactly this shape:

{
  "headline": "short mood-setting line matching the activity score",
  "tip": "one concrete, actionable suggestion tied to the conditions"
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing the current conditions.

- "weather" holds current wind, cloud cover, pressure and its 3-hour trend.
- "solunar" holds the moon phase and the major/minor activity periods for the day.
- "activity" is the precomputed 0-5 pike activity score with its main factor.

JSON:

%s

Based on this data, respond in the required JSON format.`

// OutlookLLM is the interface for generating the wallpaper outlook text.
type OutlookLLM interface {
	// GenerateOutlook takes a context object and returns the outlook text.
	GenerateOutlook(ctx context.Context, outlookCtx *domain.OutlookContext) (*domain.OutlookText, error)
}

// OpenAIClient implements OutlookLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating outlooks.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateOutlook calls OpenAI to generate the wallpaper outlook text.
func (c *OpenAIClient) GenerateOutlook(ctx context.Context, outlookCtx *domain.OutlookContext) (*domain.OutlookText, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(outlookCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.OutlookText
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
