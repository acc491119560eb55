package mock

import (
	"context"

	"github.com/fwojciec/wikictx"
)

var _ wikictx.Asker = (*Asker)(nil)

// Asker is a mock implementation of wikictx.Asker.
type Asker struct {
	AskFn func(ctx context.Context, document string, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, document string, question string) (string, error) {
	return a.AskFn(ctx, document, question)
}

var _ wikictx.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of wikictx.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (t *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return t.CountTokensFn(ctx, text)
}
