package studio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/consts"
)

func TestBuildPrompt(t *testing.T) {
	params := PromptParams{
		Instruction: "remove the coffee stain",
		Hotspot:     Hotspot{X: 120, Y: 48},
		Items:       []string{"t-shirt", "jeans"},
	}

	t.Run("safety policy in every image operation", func(t *testing.T) {
		for _, op := range []consts.Operation{consts.OperationEdit, consts.OperationFilter, consts.OperationAdjust, consts.OperationSwap} {
			prompt, err := BuildPrompt(op, params)
			require.NoError(t, err)
			require.Contains(t, prompt, SafetyPolicy, op)
			require.Contains(t, prompt, "Do not return text.", op)
		}
	})

	t.Run("edit", func(t *testing.T) {
		prompt, err := BuildPrompt(consts.OperationEdit, params)
		require.NoError(t, err)
		require.Contains(t, prompt, `User Request: "remove the coffee stain"`)
		require.Contains(t, prompt, "(x: 120, y: 48)")
		require.Contains(t, prompt, "must remain identical to the original")
	})

	t.Run("filter and adjust keep the instruction", func(t *testing.T) {
		filter, _ := BuildPrompt(consts.OperationFilter, PromptParams{Instruction: "synthwave"})
		require.Contains(t, filter, `Filter Request: "synthwave"`)
		adjust, _ := BuildPrompt(consts.OperationAdjust, PromptParams{Instruction: "warmer light"})
		require.Contains(t, adjust, `User Request: "warmer light"`)
		require.Contains(t, adjust, "entire image")
	})

	t.Run("swap", func(t *testing.T) {
		prompt, err := BuildPrompt(consts.OperationSwap, params)
		require.NoError(t, err)
		require.Contains(t, prompt, `"t-shirt", "jeans"`)
		require.Contains(t, prompt, "Replicate the pattern")
		require.Contains(t, prompt, "lighting and skin tone")
	})

	t.Run("identify asks for json", func(t *testing.T) {
		prompt, err := BuildPrompt(consts.OperationIdentify, PromptParams{})
		require.NoError(t, err)
		require.Contains(t, prompt, `{"clothing_items": ["item", ...]}`)
		require.False(t, strings.Contains(prompt, SafetyPolicy))
	})

	t.Run("deterministic", func(t *testing.T) {
		a, _ := BuildPrompt(consts.OperationSwap, params)
		b, _ := BuildPrompt(consts.OperationSwap, params)
		require.Equal(t, a, b)
	})

	t.Run("unknown operation", func(t *testing.T) {
		_, err := BuildPrompt(consts.Operation("upscale"), params)
		require.Error(t, err)
	})
}
