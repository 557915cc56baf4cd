package gemini

import (
	"fmt"

	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
	"google.golang.org/genai"
)

// buildContents puts the images first, in request order, followed by the instruction.
func buildContents(req *studio.Request) ([]*genai.Content, error) {
	parts := make([]*genai.Part, 0, len(req.Images)+1)
	for i, img := range req.Images {
		data, err := img.Bytes()
		if err != nil {
			return nil, &studio.EncodingError{Name: fmt.Sprintf("image #%d", i+1), Err: err}
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: img.MIMEType,
				Data:     data,
			},
		})
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil
}

func buildConfig(req *studio.Request) *genai.GenerateContentConfig {
	if req.Schema != nil {
		return &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					req.Schema.Field: {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeString},
					},
				},
				Required: []string{req.Schema.Field},
			},
		}
	}
	if req.Operation.ProducesImage() {
		return &genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		}
	}
	return &genai.GenerateContentConfig{}
}
