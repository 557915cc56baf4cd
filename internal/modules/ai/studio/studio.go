package studio

import (
	"context"
	"fmt"
	"time"

	"github.com/unicorncodings/Ai-Photo-Studio/internal/consts"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/logs"
)

type Studio struct {
	generator Generator
}

func New(generator Generator) *Studio {
	return &Studio{generator: generator}
}

func (s *Studio) Edit(ctx context.Context, image ImageAsset, instruction string, hotspot Hotspot) (ImagePayload, error) {
	return s.generateImage(ctx, consts.OperationEdit, PromptParams{Instruction: instruction, Hotspot: hotspot}, image)
}

func (s *Studio) ApplyFilter(ctx context.Context, image ImageAsset, instruction string) (ImagePayload, error) {
	return s.generateImage(ctx, consts.OperationFilter, PromptParams{Instruction: instruction}, image)
}

func (s *Studio) Adjust(ctx context.Context, image ImageAsset, instruction string) (ImagePayload, error) {
	return s.generateImage(ctx, consts.OperationAdjust, PromptParams{Instruction: instruction}, image)
}

// SwapClothing dresses the person with items taken from source. The person image is sent first.
func (s *Studio) SwapClothing(ctx context.Context, person, source ImageAsset, items []string) (ImagePayload, error) {
	if len(items) == 0 {
		return ImagePayload{}, ErrEmptySelection
	}
	return s.generateImage(ctx, consts.OperationSwap, PromptParams{Items: items}, person, source)
}

// IdentifyItems lists the clothing worn in image. Failures of any kind collapse to an empty list.
func (s *Studio) IdentifyItems(ctx context.Context, image ImageAsset) []string {
	part, err := EncodeImage(image)
	if err != nil {
		logs.Logger.Warn().Err(err).Str("operation", consts.OperationIdentify.String()).Msg("identify encode failed")
		return []string{}
	}
	prompt, _ := BuildPrompt(consts.OperationIdentify, PromptParams{})
	envelope, err := s.call(ctx, &Request{
		Operation: consts.OperationIdentify,
		Prompt:    prompt,
		Images:    []EncodedPart{part},
		Schema:    &ListSchema{Field: consts.ClothingItemsField},
	})
	if err != nil {
		return []string{}
	}
	return InterpretIdentification(envelope)
}

func (s *Studio) generateImage(ctx context.Context, op consts.Operation, params PromptParams, images ...ImageAsset) (ImagePayload, error) {
	parts := make([]EncodedPart, 0, len(images))
	for _, image := range images {
		part, err := EncodeImage(image)
		if err != nil {
			return ImagePayload{}, err
		}
		parts = append(parts, part)
	}
	prompt, err := BuildPrompt(op, params)
	if err != nil {
		return ImagePayload{}, err
	}
	envelope, err := s.call(ctx, &Request{Operation: op, Prompt: prompt, Images: parts})
	if err != nil {
		return ImagePayload{}, err
	}
	return InterpretResponse(envelope, op.String())
}

func (s *Studio) call(ctx context.Context, req *Request) (*Envelope, error) {
	start := time.Now()
	envelope, err := s.generator.Generate(ctx, req)
	event := logs.Logger.Info()
	if err != nil {
		event = logs.Logger.Error().Err(err)
	}
	event.Str("operation", req.Operation.String()).
		Int("image_count", len(req.Images)).
		Int("prompt_len", len(req.Prompt)).
		Dur("duration", time.Since(start)).
		Msg("model request")
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", req.Operation, err)
	}
	return envelope, nil
}
