package response

import (
	"time"

	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/flow"
)

type Image struct {
	MIMEType string `json:"mime_type"`
	DataURL  string `json:"data_url"`
}

func NewImage(p studio.ImagePayload) Image {
	return Image{MIMEType: p.MIMEType, DataURL: p.DataURL()}
}

type Items struct {
	Items []string `json:"items"`
}

type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	flow.Snapshot
}

func NewSession(s *flow.Session, snap flow.Snapshot) Session {
	return Session{ID: s.ID, CreatedAt: s.CreatedAt, Snapshot: snap}
}

type Swap struct {
	Session Session `json:"session"`
	Image   Image   `json:"image"`
}
