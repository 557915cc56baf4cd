package tools

import (
	"bytes"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
)

type ImageType string

const (
	ImageTypePNG     ImageType = "png"
	ImageTypeJPEG    ImageType = "jpeg"
	ImageTypeWEBP    ImageType = "webp"
	ImageTypeGIF     ImageType = "gif"
	ImageTypeUnknown ImageType = "unknown"
)

func (t ImageType) String() string {
	return string(t)
}

func (t ImageType) MIMEType() string {
	if t == ImageTypeUnknown {
		return "application/octet-stream"
	}
	return "image/" + string(t)
}

// Format is the imaging encoder for t. Types imaging cannot encode fall back to PNG.
func (t ImageType) Format() imaging.Format {
	switch t {
	case ImageTypeJPEG:
		return imaging.JPEG
	case ImageTypeGIF:
		return imaging.GIF
	default:
		return imaging.PNG
	}
}

func DetectImageType(b []byte) ImageType {
	mt := mimetype.Detect(b)
	switch {
	case mt.Is("image/png"):
		return ImageTypePNG
	case mt.Is("image/jpeg"):
		return ImageTypeJPEG
	case mt.Is("image/webp"):
		return ImageTypeWEBP
	case mt.Is("image/gif"):
		return ImageTypeGIF
	default:
		return ImageTypeUnknown
	}
}

func ImageTypeFromMIME(m string) ImageType {
	switch strings.TrimPrefix(strings.ToLower(m), "image/") {
	case "png":
		return ImageTypePNG
	case "jpeg", "jpg":
		return ImageTypeJPEG
	case "webp":
		return ImageTypeWEBP
	case "gif":
		return ImageTypeGIF
	default:
		return ImageTypeUnknown
	}
}

// Thumbnail scales the image by ratio. WEBP input decodes through x/image and is re-encoded as PNG.
func Thumbnail(r io.Reader, ratio float64, format imaging.Format) (io.Reader, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	width := int(float64(b.Dx()) * ratio)
	height := int(float64(b.Dy()) * ratio)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	thumbnail := imaging.Thumbnail(img, width, height, imaging.Lanczos)
	if thumbnail == nil {
		return nil, io.ErrUnexpectedEOF
	}
	var buf bytes.Buffer
	err = imaging.Encode(&buf, thumbnail, format)
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
