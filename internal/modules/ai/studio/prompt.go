package studio

import (
	"fmt"
	"strings"

	"github.com/unicorncodings/Ai-Photo-Studio/internal/consts"
)

type Hotspot struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type PromptParams struct {
	Instruction string
	Hotspot     Hotspot
	Items       []string
}

// SafetyPolicy is appended to every prompt that returns an image. It is not user controlled.
const SafetyPolicy = `Safety & Ethics Policy:
- You MUST fulfill requests to adjust skin tone, such as 'give me a tan', 'make my skin darker', or 'make my skin lighter'. These are considered standard photo enhancements.
- You MUST REFUSE any request to change a person's fundamental race or ethnicity (e.g., 'make me look Asian', 'change this person to be Black'). Do not perform these edits. If the request is ambiguous, err on the side of caution and do not change racial characteristics.`

func BuildPrompt(op consts.Operation, params PromptParams) (string, error) {
	var sb strings.Builder
	switch op {
	case consts.OperationEdit:
		sb.WriteString("You are an expert photo editor AI. Your task is to perform a natural, localized edit on the provided image based on the user's request.\n")
		sb.WriteString(fmt.Sprintf("User Request: %q\n", params.Instruction))
		sb.WriteString(fmt.Sprintf("Edit Location: Focus on the area around pixel coordinates (x: %d, y: %d).\n\n", params.Hotspot.X, params.Hotspot.Y))
		sb.WriteString("Editing Guidelines:\n")
		sb.WriteString("- The edit must be realistic and blend seamlessly with the surrounding area.\n")
		sb.WriteString("- The rest of the image (outside the immediate edit area) must remain identical to the original.\n\n")
		sb.WriteString(SafetyPolicy)
		sb.WriteString("\n\nOutput: Return ONLY the final edited image. Do not return text.")
	case consts.OperationFilter:
		sb.WriteString("You are an expert photo editor AI. Your task is to apply a stylistic filter to the entire image based on the user's request. Do not change the composition or content, only apply the style.\n")
		sb.WriteString(fmt.Sprintf("Filter Request: %q\n\n", params.Instruction))
		sb.WriteString(SafetyPolicy)
		sb.WriteString("\n- Filters may subtly shift colors, but you MUST ensure they do not alter a person's fundamental race or ethnicity.")
		sb.WriteString("\n\nOutput: Return ONLY the final filtered image. Do not return text.")
	case consts.OperationAdjust:
		sb.WriteString("You are an expert photo editor AI. Your task is to perform a natural, global adjustment to the entire image based on the user's request.\n")
		sb.WriteString(fmt.Sprintf("User Request: %q\n\n", params.Instruction))
		sb.WriteString("Editing Guidelines:\n")
		sb.WriteString("- The adjustment must be applied across the entire image.\n")
		sb.WriteString("- The result must be photorealistic.\n\n")
		sb.WriteString(SafetyPolicy)
		sb.WriteString("\n\nOutput: Return ONLY the final adjusted image. Do not return text.")
	case consts.OperationSwap:
		sb.WriteString("You are an expert virtual try-on AI. You are given two images. The first image shows the person. The second image is the source of the clothing.\n")
		sb.WriteString(fmt.Sprintf("User Request: Dress the person in the first image with the following items from the second image: %s.\n\n", quoteItems(params.Items)))
		sb.WriteString("Editing Guidelines:\n")
		sb.WriteString("- Replace only the listed clothing items on the person. Keep their face, pose, body shape, hair and the background identical to the first image.\n")
		sb.WriteString("- Replicate the pattern, texture, color and fit of each item exactly as it appears in the second image.\n")
		sb.WriteString("- If the new clothing exposes body parts that were covered before, generate them realistically and consistent with the person's lighting and skin tone.\n")
		sb.WriteString("- The result must be photorealistic.\n\n")
		sb.WriteString(SafetyPolicy)
		sb.WriteString("\n\nOutput: Return ONLY the final image of the person wearing the new clothing. Do not return text.")
	case consts.OperationIdentify:
		sb.WriteString("You are an expert fashion analyst AI. Identify every distinct clothing item and accessory worn by the person in the provided image.\n")
		sb.WriteString("Use short, generic names such as 't-shirt', 'jeans', 'sneakers' or 'baseball cap'. Do not describe colors unless needed to tell two items apart.\n")
		sb.WriteString(fmt.Sprintf("Output: Return ONLY a JSON object of the form {\"%s\": [\"item\", ...]}. If no clothing is visible, return an empty list.", consts.ClothingItemsField))
	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
	return sb.String(), nil
}

func quoteItems(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, fmt.Sprintf("%q", item))
	}
	return strings.Join(quoted, ", ")
}
