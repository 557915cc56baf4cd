package request

import (
	"errors"
	"fmt"
	"strings"
)

type Edit struct {
	Prompt string `form:"prompt"`
	X      *int   `form:"x"`
	Y      *int   `form:"y"`
}

func (e *Edit) Valid() error {
	if strings.TrimSpace(e.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	if e.X == nil || e.Y == nil {
		return fmt.Errorf("x and y are required")
	}
	if *e.X < 0 || *e.Y < 0 {
		return fmt.Errorf("invalid hotspot (%d, %d)", *e.X, *e.Y)
	}
	return nil
}

// Instruction is the form of filter and adjust requests.
type Instruction struct {
	Prompt string `form:"prompt"`
}

func (i *Instruction) Valid() error {
	if strings.TrimSpace(i.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	return nil
}

type Swap struct {
	Items []string `form:"items"`
}

// Labels drops blank items. An empty result is rejected by the swap itself.
func (s *Swap) Labels() []string {
	labels := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		if item = strings.TrimSpace(item); item != "" {
			labels = append(labels, item)
		}
	}
	return labels
}

type Toggle struct {
	Label string `form:"label"`
}

func (t *Toggle) Valid() error {
	if strings.TrimSpace(t.Label) == "" {
		return errors.New("label is required")
	}
	return nil
}

type Loading struct {
	Loading *bool `form:"loading"`
}

func (l *Loading) Valid() error {
	if l.Loading == nil {
		return errors.New("loading is required")
	}
	return nil
}

type GetHandle struct {
	Thumbnail bool    `form:"thumbnail"`
	Ratio     float64 `form:"ratio"`
}

const ThumbnailRatioDefault = 0.25

func (g *GetHandle) FullWithDefault() {
	if g.Ratio == 0 {
		g.Ratio = ThumbnailRatioDefault
	}
}

func (g *GetHandle) Valid() error {
	if g.Ratio <= 0 || g.Ratio > 1 {
		return fmt.Errorf("invalid ratio: %v, must be in (0, 1]", g.Ratio)
	}
	return nil
}
