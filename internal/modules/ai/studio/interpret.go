package studio

import (
	"encoding/base64"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/consts"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/logs"
)

// InterpretResponse turns an envelope into an image. The checks run in a fixed order:
// block reason, inline image, abnormal finish reason, then the generic no image failure.
func InterpretResponse(envelope *Envelope, context string) (ImagePayload, error) {
	if envelope == nil {
		return ImagePayload{}, &NoImageReturnedError{Context: context}
	}
	if envelope.BlockReason != "" {
		logs.Logger.Warn().Str("context", context).Str("block_reason", envelope.BlockReason).
			Str("block_reason_message", envelope.BlockReasonMessage).Msg("request blocked")
		return ImagePayload{}, &BlockedError{Reason: envelope.BlockReason, Message: envelope.BlockReasonMessage}
	}
	for _, part := range envelope.Parts {
		if part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mimeType := normalizeMIME(part.InlineData.MIMEType)
		if mimeType == "" {
			mimeType = "image/png"
		}
		logs.Logger.Info().Str("context", context).Str("mime_type", mimeType).
			Int("size", len(part.InlineData.Data)).Msg("received image")
		return ImagePayload{
			MIMEType: mimeType,
			Base64:   base64.StdEncoding.EncodeToString(part.InlineData.Data),
		}, nil
	}
	if envelope.FinishReason != "" && envelope.FinishReason != consts.FinishReasonStop {
		logs.Logger.Warn().Str("context", context).Str("finish_reason", envelope.FinishReason).
			Msg("image generation stopped unexpectedly")
		return ImagePayload{}, &AbnormalStopError{Context: context, Status: envelope.FinishReason}
	}
	feedback := envelope.TextFeedback()
	logs.Logger.Warn().Str("context", context).Str("text_feedback", feedback).Msg("model did not return an image")
	return ImagePayload{}, &NoImageReturnedError{Context: context, Feedback: feedback}
}

var codeFence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n?(.*?)\\s*```$")

// InterpretIdentification never fails. Anything unparsable yields an empty list.
func InterpretIdentification(envelope *Envelope) []string {
	items := make([]string, 0)
	raw := stripCodeFence(envelope.TextFeedback())
	if raw == "" {
		return items
	}
	var payload map[string]jsoniter.RawMessage
	if err := jsoniter.Unmarshal([]byte(raw), &payload); err != nil {
		logs.Logger.Warn().Err(err).Str("body", raw).Msg("identification response is not JSON")
		return items
	}
	field, ok := payload[consts.ClothingItemsField]
	if !ok {
		logs.Logger.Warn().Str("body", raw).Msg("identification response has no clothing_items")
		return items
	}
	var labels []string
	if err := jsoniter.Unmarshal(field, &labels); err != nil {
		logs.Logger.Warn().Err(err).Str("body", raw).Msg("clothing_items is not a list of strings")
		return items
	}
	for _, label := range labels {
		if label = strings.TrimSpace(label); label != "" {
			items = append(items, label)
		}
	}
	return items
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if m := codeFence.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}
