package request

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
)

var (
	ErrMissingImage = errors.New("image is required")
	ErrTooLarge     = errors.New("image is too large")
)

// DataURLSuffix names the text field that may carry an image instead of a file, e.g. image_data_url.
const DataURLSuffix = "_data_url"

// FormImage reads the image in field, either as an uploaded file or as a data URL.
func FormImage(c *gin.Context, field string, maxBytes int64) (studio.ImageAsset, error) {
	if _, err := c.MultipartForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return studio.ImageAsset{}, fmt.Errorf("%s: %w", field, ErrTooLarge)
		}
	}
	if header, err := c.FormFile(field); err == nil {
		if header.Size > maxBytes {
			return studio.ImageAsset{}, fmt.Errorf("%s is %d bytes: %w", field, header.Size, ErrTooLarge)
		}
		f, err := header.Open()
		if err != nil {
			return studio.ImageAsset{}, &studio.EncodingError{Name: header.Filename, Err: err}
		}
		defer f.Close()
		return studio.ReadAsset(header.Filename, header.Header.Get("Content-Type"), f)
	}
	if s := c.PostForm(field + DataURLSuffix); s != "" {
		asset, err := studio.AssetFromDataURL(field, s)
		if err != nil {
			return studio.ImageAsset{}, err
		}
		if int64(len(asset.Data)) > maxBytes {
			return studio.ImageAsset{}, fmt.Errorf("%s is %d bytes: %w", field, len(asset.Data), ErrTooLarge)
		}
		return asset, nil
	}
	return studio.ImageAsset{}, fmt.Errorf("%s: %w", field, ErrMissingImage)
}
