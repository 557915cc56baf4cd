package tools

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func samplePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDetectImageType(t *testing.T) {
	require.Equal(t, ImageTypePNG, DetectImageType(samplePNG(t, 2, 2)))
	require.Equal(t, ImageTypeJPEG, DetectImageType([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F', 0}))
	require.Equal(t, ImageTypeUnknown, DetectImageType([]byte("plain text")))
	require.Equal(t, "image/png", ImageTypePNG.MIMEType())
	require.Equal(t, "application/octet-stream", ImageTypeUnknown.MIMEType())
}

func TestImageTypeFromMIME(t *testing.T) {
	require.Equal(t, ImageTypeJPEG, ImageTypeFromMIME("image/jpg"))
	require.Equal(t, ImageTypeWEBP, ImageTypeFromMIME("IMAGE/WEBP"))
	require.Equal(t, ImageTypeUnknown, ImageTypeFromMIME("text/plain"))
	require.Equal(t, imaging.PNG, ImageTypeWEBP.Format())
}

func TestThumbnail(t *testing.T) {
	r, err := Thumbnail(bytes.NewReader(samplePNG(t, 40, 20)), 0.5, imaging.PNG)
	require.NoError(t, err)
	img, err := png.Decode(r)
	require.NoError(t, err)
	require.Equal(t, 20, img.Bounds().Dx())
	require.Equal(t, 10, img.Bounds().Dy())

	_, err = Thumbnail(bytes.NewReader([]byte("nope")), 0.5, imaging.PNG)
	require.Error(t, err)
}
