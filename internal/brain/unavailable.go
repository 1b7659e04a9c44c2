package brain

import (
	"context"
	"fmt"
)

// Unavailable is the Generator used when no API key is configured.
// Every call fails, so callers surface their fallback copy.
type Unavailable struct{}

var _ Generator = Unavailable{}

func (Unavailable) Generate(ctx context.Context, system string, history []Message, userText string) (string, error) {
	return "", fmt.Errorf("text-generation service is not configured")
}
