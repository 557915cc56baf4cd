package studio

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/unicorncodings/Ai-Photo-Studio/tools"
)

type ImageAsset struct {
	Name     string
	MIMEType string
	Data     []byte
}

// ReadAsset drains r into an asset. An empty mimeType is sniffed later by EncodeImage.
func ReadAsset(name, mimeType string, r io.Reader) (ImageAsset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ImageAsset{}, &EncodingError{Name: name, Err: err}
	}
	return ImageAsset{Name: name, MIMEType: mimeType, Data: data}, nil
}

type EncodedPart struct {
	MIMEType string
	Base64   string
}

func (p EncodedPart) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(p.Base64)
}

func (p EncodedPart) DataURL() string {
	return "data:" + p.MIMEType + ";base64," + p.Base64
}

// ImagePayload is the single image an edit, filter, adjust or swap yields.
type ImagePayload EncodedPart

func (p ImagePayload) Bytes() ([]byte, error) { return EncodedPart(p).Bytes() }
func (p ImagePayload) DataURL() string        { return EncodedPart(p).DataURL() }

var dataURLPattern = regexp.MustCompile(`^data:([^;,]+);base64,(.*)$`)

func EncodeImage(asset ImageAsset) (EncodedPart, error) {
	if len(asset.Data) == 0 {
		return EncodedPart{}, &EncodingError{Name: asset.Name, Err: errors.New("image is empty")}
	}
	mimeType := normalizeMIME(asset.MIMEType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = tools.DetectImageType(asset.Data).MIMEType()
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return EncodedPart{}, &EncodingError{Name: asset.Name, Err: fmt.Errorf("unsupported media type %q", mimeType)}
	}
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(asset.Data)
	part, err := ParseDataURL(dataURL)
	if err != nil {
		return EncodedPart{}, &EncodingError{Name: asset.Name, Err: err}
	}
	return part, nil
}

func ParseDataURL(s string) (EncodedPart, error) {
	match := dataURLPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return EncodedPart{}, &EncodingError{Err: errors.New("invalid data URL")}
	}
	part := EncodedPart{MIMEType: normalizeMIME(match[1]), Base64: match[2]}
	if part.Base64 == "" {
		return EncodedPart{}, &EncodingError{Err: errors.New("data URL has no payload")}
	}
	if _, err := part.Bytes(); err != nil {
		return EncodedPart{}, &EncodingError{Err: fmt.Errorf("invalid base64 payload: %w", err)}
	}
	return part, nil
}

// AssetFromDataURL decodes a data URL back into raw bytes.
func AssetFromDataURL(name, s string) (ImageAsset, error) {
	part, err := ParseDataURL(s)
	if err != nil {
		var encErr *EncodingError
		if errors.As(err, &encErr) {
			encErr.Name = name
		}
		return ImageAsset{}, err
	}
	data, _ := part.Bytes()
	return ImageAsset{Name: name, MIMEType: part.MIMEType, Data: data}, nil
}

func normalizeMIME(m string) string {
	m = strings.TrimSpace(strings.ToLower(m))
	if i := strings.IndexByte(m, ';'); i >= 0 {
		m = strings.TrimSpace(m[:i])
	}
	return m
}
