package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-lifelink/types"
)

const maxHistoryMessages = 20

// Responder is the AI collaborator behind the dashboard: a conversational
// reply for the chat panel and a region-keyed shortage summary for the alert
// banner. Both are opaque network calls; callers own timeouts and fallbacks.
type Responder interface {
	ChatReply(ctx context.Context, userText string, history []types.ChatMessage) (string, error)
	ShortageSummary(ctx context.Context, region string) (types.ShortageAlert, error)
}

// OpenAIResponder implements Responder with OpenAI chat completions.
type OpenAIResponder struct {
	client *openai.Client
}

func NewOpenAIResponder() *OpenAIResponder {
	return &OpenAIResponder{client: openai.NewClient(os.Getenv("OPENAI_API_KEY"))}
}

// ChatReply sends the user's message plus recent conversation context and
// returns the assistant's text.
func (r *OpenAIResponder) ChatReply(ctx context.Context, userText string, history []types.ChatMessage) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleSystem,
			Content: "You are LifeLink's assistant. You help users find blood-supply centers, " +
				"understand donor eligibility, and interpret shortage alerts. Keep answers short and practical.",
		},
	}

	// Replay the tail of the conversation so the model keeps context.
	start := 0
	if len(history) > maxHistoryMessages {
		start = len(history) - maxHistoryMessages
	}
	for _, msg := range history[start:] {
		role := openai.ChatMessageRoleUser
		if msg.Speaker == types.SpeakerAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userText})

	resp, err := r.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:     openai.GPT4oMini,
			Messages:  messages,
			MaxTokens: 300,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// shortagePayload is the JSON shape the model is asked to produce.
type shortagePayload struct {
	Summary string `json:"summary"`
	Sources []struct {
		Title string `json:"title"`
		URI   string `json:"uri"`
	} `json:"sources"`
}

// ShortageSummary asks for a blood-shortage overview of a region. The reply
// is requested as JSON with citations; if the model answers in prose anyway,
// the whole text becomes the summary and sources stay empty.
func (r *OpenAIResponder) ShortageSummary(ctx context.Context, region string) (types.ShortageAlert, error) {
	prompt := fmt.Sprintf(
		"Summarize any current or recent blood-supply shortages in the region %q in 2-3 sentences. "+
			"Respond with JSON only: {\"summary\": string, \"sources\": [{\"title\": string, \"uri\": string}]}. "+
			"If you have no citations, return an empty sources array.", region)

	resp, err := r.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that reports regional blood-supply shortages concisely.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   250,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return types.ShortageAlert{}, fmt.Errorf("openai shortage summary error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return types.ShortageAlert{}, fmt.Errorf("openai returned empty response or choices")
	}

	return ParseShortagePayload(resp.Choices[0].Message.Content), nil
}

// ParseShortagePayload converts raw model output into a ShortageAlert with
// the closed {title, uri} source shape. Non-JSON output degrades to a plain
// summary with no sources.
func ParseShortagePayload(raw string) types.ShortageAlert {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var payload shortagePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil || payload.Summary == "" {
		return types.ShortageAlert{Summary: text}
	}

	alert := types.ShortageAlert{Summary: strings.TrimSpace(payload.Summary)}
	for _, s := range payload.Sources {
		if s.Title == "" && s.URI == "" {
			continue
		}
		alert.Sources = append(alert.Sources, types.AlertSource{Title: s.Title, URI: s.URI})
	}
	return alert
}
