// Package brain wraps the Gemini text-generation service behind a
// small prompt-in/text-out interface. The rest of the application
// treats it as an opaque, fallible collaborator.
package brain

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Message is one turn of a prior conversation.
type Message struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// Generator produces advisory text. It may fail or return an empty
// string; callers supply fallback copy in both cases and never retry.
type Generator interface {
	Generate(ctx context.Context, system string, history []Message, userText string) (string, error)
}

// Gemini is the production Generator. It walks a fixed model list so a
// rate-limited or retired model falls through to the next one.
type Gemini struct {
	client *genai.Client
	models []string
}

// NewGemini creates the client. The API key is required.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &Gemini{
		client: client,
		models: []string{"gemini-2.5-flash", "gemini-2.5-flash-lite"},
	}, nil
}

var _ Generator = (*Gemini)(nil)

// Generate sends the prior conversation plus the new user turn and
// returns the model's reply.
func (g *Gemini) Generate(ctx context.Context, system string, history []Message, userText string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(userText, genai.RoleUser))

	var config *genai.GenerateContentConfig
	if system != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		}
	}

	var lastErr error
	for _, model := range g.models {
		result, err := g.client.Models.GenerateContent(ctx, model, contents, config)
		if err != nil {
			errStr := strings.ToLower(err.Error())
			if strings.Contains(errStr, "429") || strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "exhausted") || strings.Contains(errStr, "not found") {
				lastErr = err
				continue
			}
			return "", err
		}
		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil && len(result.Candidates[0].Content.Parts) > 0 {
			return result.Candidates[0].Content.Parts[0].Text, nil
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("empty response from all models")
	}
	return "", lastErr
}
