package studio

import (
	"context"
	"strings"

	"github.com/unicorncodings/Ai-Photo-Studio/internal/consts"
)

// Envelope is everything one remote call returned. Every field is optional.
type Envelope struct {
	BlockReason        string
	BlockReasonMessage string
	FinishReason       string
	Parts              []Part
	// Text is the top level text of the response, if the provider exposes one.
	Text string
}

type Part struct {
	Text       string
	InlineData *InlineData
}

type InlineData struct {
	MIMEType string
	Data     []byte
}

// TextFeedback prefers the top level text and falls back to the text parts.
func (e *Envelope) TextFeedback() string {
	if e == nil {
		return ""
	}
	if text := strings.TrimSpace(e.Text); text != "" {
		return text
	}
	var sb strings.Builder
	for _, p := range e.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}

// ListSchema asks the model for a JSON object holding a single list of strings.
type ListSchema struct {
	Field string
}

type Request struct {
	Operation consts.Operation
	Prompt    string
	Images    []EncodedPart
	Schema    *ListSchema
}

type Generator interface {
	Generate(ctx context.Context, req *Request) (*Envelope, error)
}

type GeneratorFunc func(ctx context.Context, req *Request) (*Envelope, error)

func (f GeneratorFunc) Generate(ctx context.Context, req *Request) (*Envelope, error) {
	return f(ctx, req)
}
