// Package gemini hands collected wiki context to Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/wikictx"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements wikictx.Asker at compile time.
var _ wikictx.Asker = (*Asker)(nil)

// Asker implements wikictx.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client) *Asker {
	return &Asker{client: client}
}

// Ask answers a natural language question against a collected context
// document.
func (a *Asker) Ask(ctx context.Context, document string, question string) (string, error) {
	if document == "" {
		return "", wikictx.Errorf(wikictx.EINVALID, "context document required")
	}
	if question == "" {
		return "", wikictx.Errorf(wikictx.EINVALID, "question required")
	}

	prompt := BuildUserPrompt(document, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", wikictx.Errorf(wikictx.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about a team's wiki. Answer based only on the wiki context provided. If the answer is not in the context, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt wrapping the context document
// and the question.
func BuildUserPrompt(document string, question string) string {
	var sb strings.Builder
	sb.WriteString("<wiki_context>\n")
	sb.WriteString(document)
	if !strings.HasSuffix(document, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("</wiki_context>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
