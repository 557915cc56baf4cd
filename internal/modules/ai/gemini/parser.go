package gemini

import (
	"strings"

	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
	"google.golang.org/genai"
)

// EnvelopeFromResponse copies the fields the studio reads. Only the first candidate is looked at.
func EnvelopeFromResponse(resp *genai.GenerateContentResponse) *studio.Envelope {
	envelope := &studio.Envelope{}
	if resp == nil {
		return envelope
	}
	if fb := resp.PromptFeedback; fb != nil {
		envelope.BlockReason = string(fb.BlockReason)
		envelope.BlockReasonMessage = fb.BlockReasonMessage
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return envelope
	}
	candidate := resp.Candidates[0]
	envelope.FinishReason = string(candidate.FinishReason)
	if candidate.Content == nil {
		return envelope
	}
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		p := studio.Part{Text: part.Text}
		if part.InlineData != nil {
			p.InlineData = &studio.InlineData{
				MIMEType: part.InlineData.MIMEType,
				Data:     part.InlineData.Data,
			}
		}
		text.WriteString(part.Text)
		envelope.Parts = append(envelope.Parts, p)
	}
	envelope.Text = text.String()
	return envelope
}
