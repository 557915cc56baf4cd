package studio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/consts"
)

type fakeGenerator struct {
	calls    []*Request
	envelope *Envelope
	err      error
}

func (f *fakeGenerator) Generate(_ context.Context, req *Request) (*Envelope, error) {
	f.calls = append(f.calls, req)
	return f.envelope, f.err
}

func asset(name string) ImageAsset {
	return ImageAsset{Name: name, MIMEType: "image/png", Data: pngBytes}
}

func TestStudioImageOperations(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{envelope: &Envelope{FinishReason: "STOP", Parts: []Part{imagePart()}}}
	s := New(gen)

	payload, err := s.Edit(ctx, asset("photo"), "add a hat", Hotspot{X: 3, Y: 4})
	require.NoError(t, err)
	require.Equal(t, "image/png", payload.MIMEType)

	_, err = s.ApplyFilter(ctx, asset("photo"), "noir")
	require.NoError(t, err)
	_, err = s.Adjust(ctx, asset("photo"), "brighter")
	require.NoError(t, err)

	require.Len(t, gen.calls, 3)
	require.Equal(t, consts.OperationEdit, gen.calls[0].Operation)
	require.Contains(t, gen.calls[0].Prompt, "(x: 3, y: 4)")
	require.Len(t, gen.calls[0].Images, 1)
	require.Nil(t, gen.calls[0].Schema)
	require.Equal(t, consts.OperationFilter, gen.calls[1].Operation)
	require.Equal(t, consts.OperationAdjust, gen.calls[2].Operation)
}

func TestStudioSwapClothing(t *testing.T) {
	ctx := context.Background()

	t.Run("empty selection fails before any work", func(t *testing.T) {
		gen := &fakeGenerator{}
		_, err := New(gen).SwapClothing(ctx, ImageAsset{}, ImageAsset{}, nil)
		require.ErrorIs(t, err, ErrEmptySelection)
		require.Empty(t, gen.calls)
	})

	t.Run("person first then source", func(t *testing.T) {
		gen := &fakeGenerator{envelope: &Envelope{Parts: []Part{imagePart()}}}
		person := ImageAsset{Name: "person", MIMEType: "image/png", Data: pngBytes}
		source := ImageAsset{Name: "source", MIMEType: "image/webp", Data: pngBytes}
		_, err := New(gen).SwapClothing(ctx, person, source, []string{"jacket"})
		require.NoError(t, err)
		require.Len(t, gen.calls, 1)
		require.Equal(t, "image/png", gen.calls[0].Images[0].MIMEType)
		require.Equal(t, "image/webp", gen.calls[0].Images[1].MIMEType)
		require.Contains(t, gen.calls[0].Prompt, `"jacket"`)
	})

	t.Run("encoding failure skips the remote call", func(t *testing.T) {
		gen := &fakeGenerator{}
		_, err := New(gen).SwapClothing(ctx, asset("person"), ImageAsset{Name: "source"}, []string{"jacket"})
		var encErr *EncodingError
		require.True(t, errors.As(err, &encErr))
		require.Empty(t, gen.calls)
	})

	t.Run("remote failure propagates", func(t *testing.T) {
		boom := errors.New("connection reset")
		_, err := New(&fakeGenerator{err: boom}).SwapClothing(ctx, asset("p"), asset("s"), []string{"hat"})
		require.ErrorIs(t, err, boom)
	})

	t.Run("refusal propagates", func(t *testing.T) {
		gen := &fakeGenerator{envelope: &Envelope{BlockReason: "SAFETY", Parts: []Part{imagePart()}}}
		_, err := New(gen).SwapClothing(ctx, asset("p"), asset("s"), []string{"hat"})
		var blocked *BlockedError
		require.True(t, errors.As(err, &blocked))
	})
}

func TestStudioIdentifyItems(t *testing.T) {
	ctx := context.Background()

	t.Run("items", func(t *testing.T) {
		gen := &fakeGenerator{envelope: &Envelope{Text: "```json\n{\"clothing_items\": [\"shirt\",\"shorts\"]}\n```"}}
		items := New(gen).IdentifyItems(ctx, asset("ref"))
		require.Equal(t, []string{"shirt", "shorts"}, items)
		require.Equal(t, consts.OperationIdentify, gen.calls[0].Operation)
		require.Equal(t, &ListSchema{Field: "clothing_items"}, gen.calls[0].Schema)
	})

	t.Run("remote failure", func(t *testing.T) {
		items := New(&fakeGenerator{err: errors.New("timeout")}).IdentifyItems(ctx, asset("ref"))
		require.NotNil(t, items)
		require.Empty(t, items)
	})

	t.Run("unreadable image", func(t *testing.T) {
		gen := &fakeGenerator{}
		items := New(gen).IdentifyItems(ctx, ImageAsset{})
		require.Empty(t, items)
		require.Empty(t, gen.calls)
	})

	t.Run("blocked", func(t *testing.T) {
		items := New(&fakeGenerator{envelope: &Envelope{BlockReason: "SAFETY"}}).IdentifyItems(ctx, asset("ref"))
		require.Empty(t, items)
	})
}
