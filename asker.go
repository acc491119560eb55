package wikictx

import "context"

// Asker answers natural language questions against a collected context
// document. This is the downstream LLM workflow the document is built for.
type Asker interface {
	Ask(ctx context.Context, document string, question string) (string, error)
}

// TokenCounter estimates the LLM token size of text.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
