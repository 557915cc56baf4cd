package studio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func imagePart() Part {
	return Part{InlineData: &InlineData{MIMEType: "image/png", Data: pngBytes}}
}

func TestInterpretResponse(t *testing.T) {
	t.Run("image", func(t *testing.T) {
		payload, err := InterpretResponse(&Envelope{
			FinishReason: "STOP",
			Parts:        []Part{{Text: "here you go"}, imagePart()},
		}, "edit")
		require.NoError(t, err)
		require.Equal(t, "image/png", payload.MIMEType)
		b, err := payload.Bytes()
		require.NoError(t, err)
		require.Equal(t, pngBytes, b)
	})

	t.Run("block wins over image", func(t *testing.T) {
		_, err := InterpretResponse(&Envelope{
			BlockReason:        "SAFETY",
			BlockReasonMessage: "unsafe prompt",
			Parts:              []Part{imagePart()},
		}, "edit")
		var blocked *BlockedError
		require.True(t, errors.As(err, &blocked))
		require.Equal(t, "SAFETY", blocked.Reason)
		require.Equal(t, "Request was blocked. Reason: SAFETY. unsafe prompt", err.Error())
	})

	t.Run("block wins over abnormal stop", func(t *testing.T) {
		_, err := InterpretResponse(&Envelope{BlockReason: "OTHER", FinishReason: "SAFETY"}, "filter")
		var blocked *BlockedError
		require.True(t, errors.As(err, &blocked))
		require.Equal(t, "Request was blocked. Reason: OTHER.", err.Error())
	})

	t.Run("image wins over abnormal stop", func(t *testing.T) {
		_, err := InterpretResponse(&Envelope{FinishReason: "MAX_TOKENS", Parts: []Part{imagePart()}}, "adjust")
		require.NoError(t, err)
	})

	t.Run("abnormal stop", func(t *testing.T) {
		_, err := InterpretResponse(&Envelope{FinishReason: "IMAGE_SAFETY", Text: "no"}, "filter")
		var stopped *AbnormalStopError
		require.True(t, errors.As(err, &stopped))
		require.Equal(t, "IMAGE_SAFETY", stopped.Status)
		require.Contains(t, err.Error(), "Image generation for filter stopped unexpectedly")
	})

	t.Run("normal stop without image", func(t *testing.T) {
		_, err := InterpretResponse(&Envelope{FinishReason: "STOP", Parts: []Part{{Text: " I can't help with that. "}}}, "edit")
		var noImage *NoImageReturnedError
		require.True(t, errors.As(err, &noImage))
		require.Equal(t, "I can't help with that.", noImage.Feedback)
		require.Contains(t, err.Error(), `The model responded with text: "I can't help with that."`)
	})

	t.Run("empty envelope", func(t *testing.T) {
		_, err := InterpretResponse(&Envelope{}, "swap")
		var noImage *NoImageReturnedError
		require.True(t, errors.As(err, &noImage))
		require.Contains(t, err.Error(), "safety filters")

		_, err = InterpretResponse(nil, "swap")
		require.True(t, errors.As(err, &noImage))
	})

	t.Run("empty inline data is skipped", func(t *testing.T) {
		_, err := InterpretResponse(&Envelope{Parts: []Part{{InlineData: &InlineData{MIMEType: "image/png"}}}}, "edit")
		var noImage *NoImageReturnedError
		require.True(t, errors.As(err, &noImage))
	})

	t.Run("model refusal", func(t *testing.T) {
		_, err := InterpretResponse(&Envelope{}, "edit")
		require.True(t, IsModelRefusal(err))
		require.False(t, IsModelRefusal(ErrEmptySelection))
	})
}

func TestInterpretIdentification(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"fenced json", "```json\n{\"clothing_items\": [\"t-shirt\",\"jeans\"]}\n```", []string{"t-shirt", "jeans"}},
		{"bare fence", "```{\"clothing_items\": [\"hat\"]}```", []string{"hat"}},
		{"plain json", `{"clothing_items": ["shirt", " ", "shorts"]}`, []string{"shirt", "shorts"}},
		{"duplicates kept", `{"clothing_items": ["sock", "sock"]}`, []string{"sock", "sock"}},
		{"malformed", `{"clothing_items": ["shirt"`, []string{}},
		{"missing field", `{"items": ["shirt"]}`, []string{}},
		{"wrong type", `{"clothing_items": "shirt"}`, []string{}},
		{"null list", `{"clothing_items": null}`, []string{}},
		{"empty", "", []string{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := InterpretIdentification(&Envelope{Text: c.text})
			require.NotNil(t, got)
			require.Equal(t, c.want, got)
		})
	}

	t.Run("text parts", func(t *testing.T) {
		got := InterpretIdentification(&Envelope{Parts: []Part{{Text: `{"clothing_items":`}, {Text: ` ["coat"]}`}}})
		require.Equal(t, []string{"coat"}, got)
	})

	t.Run("nil envelope", func(t *testing.T) {
		require.Equal(t, []string{}, InterpretIdentification(nil))
	})
}
