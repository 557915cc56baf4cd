package gemini

import (
	"context"
	"fmt"

	"github.com/unicorncodings/Ai-Photo-Studio/config"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/logs"
	"google.golang.org/genai"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Provider is the only place the Gemini SDK is called from. It is built once at startup.
type Provider struct {
	models     contentGenerator
	imageModel string
	textModel  string
}

func NewProvider(ctx context.Context, cfg config.Gemini) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Provider{
		models:     client.Models,
		imageModel: cfg.ImageModel,
		textModel:  cfg.TextModel,
	}, nil
}

func (p *Provider) Generate(ctx context.Context, req *studio.Request) (*studio.Envelope, error) {
	contents, err := buildContents(req)
	if err != nil {
		return nil, err
	}
	model := p.modelFor(req)
	logs.Logger.Debug().Str("operation", req.Operation.String()).Str("model", model).
		Int("image_count", len(req.Images)).Msg("Attempting Gemini GenerateContent request")
	resp, err := p.models.GenerateContent(ctx, model, contents, buildConfig(req))
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	return EnvelopeFromResponse(resp), nil
}

func (p *Provider) modelFor(req *studio.Request) string {
	if req.Operation.ProducesImage() {
		return p.imageModel
	}
	return p.textModel
}
