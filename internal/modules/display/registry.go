package display

import (
	"bytes"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/cache"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/logs"
	"github.com/unicorncodings/Ai-Photo-Studio/tools"
)

var ErrHandleNotFound = errors.New("display handle not found")

// Handle lets an uploaded file be rendered without persisting it.
type Handle struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (h Handle) IsZero() bool {
	return h.ID == ""
}

type Registry struct {
	entries   *cache.Manager[*studio.ImageAsset]
	urlPrefix string
}

// NewRegistry keeps a handle until it is released. Abandoned sessions are
// reclaimed by the session sweeper, which releases their handles.
func NewRegistry(urlPrefix string) *Registry {
	return &Registry{
		entries:   cache.NewManager[*studio.ImageAsset](cache.NoExpiration),
		urlPrefix: urlPrefix,
	}
}

func (r *Registry) Allocate(asset studio.ImageAsset) (Handle, error) {
	id := uuid.New().String()
	if err := r.entries.Set(id, &asset); err != nil {
		return Handle{}, err
	}
	logs.Logger.Debug().Str("handle", id).Str("name", asset.Name).Int("size", len(asset.Data)).Msg("display handle allocated")
	return Handle{ID: id, URL: tools.FullURL(r.urlPrefix, id)}, nil
}

func (r *Registry) Release(h Handle) error {
	asset, err := r.entries.GetValue(h.ID)
	if err != nil {
		return err
	}
	if asset == nil {
		return ErrHandleNotFound
	}
	logs.Logger.Debug().Str("handle", h.ID).Msg("display handle released")
	return r.entries.Delete(h.ID)
}

func (r *Registry) Get(id string) (studio.ImageAsset, bool) {
	asset, err := r.entries.GetValue(id)
	if err != nil || asset == nil {
		return studio.ImageAsset{}, false
	}
	return *asset, true
}

// Thumbnail renders a scaled preview of the handle's image and returns it with its media type.
func (r *Registry) Thumbnail(id string, ratio float64) ([]byte, string, error) {
	asset, ok := r.Get(id)
	if !ok {
		return nil, "", ErrHandleNotFound
	}
	imageType := tools.DetectImageType(asset.Data)
	format := imageType.Format()
	out, err := tools.Thumbnail(bytes.NewReader(asset.Data), ratio, format)
	if err != nil {
		return nil, "", err
	}
	data, err := io.ReadAll(out)
	if err != nil {
		return nil, "", err
	}
	mimeType := "image/png"
	if imageType == tools.ImageTypeJPEG || imageType == tools.ImageTypeGIF {
		mimeType = imageType.MIMEType()
	}
	return data, mimeType, nil
}
