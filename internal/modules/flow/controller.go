package flow

import (
	"context"
	"fmt"
	"sync"

	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/display"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/logs"
)

type Identifier interface {
	IdentifyItems(ctx context.Context, image studio.ImageAsset) []string
}

type HandleStore interface {
	Allocate(asset studio.ImageAsset) (display.Handle, error)
	Release(h display.Handle) error
}

// ApplyFunc receives the reference file and the selected labels. The controller never swaps by itself.
type ApplyFunc func(ctx context.Context, source studio.ImageAsset, labels []string) error

type Snapshot struct {
	State      State           `json:"state"`
	Items      []string        `json:"items"`
	Selected   []string        `json:"selected"`
	Handle     *display.Handle `json:"handle,omitempty"`
	Error      string          `json:"error,omitempty"`
	Loading    bool            `json:"loading"`
	CanConfirm bool            `json:"can_confirm"`
}

// Controller drives the try-on panel: upload, identify, select, apply.
// Every display handle it allocates is released exactly once.
type Controller struct {
	mu         sync.Mutex
	identifier Identifier
	handles    HandleStore
	apply      ApplyFunc

	state      State
	generation uint64
	source     studio.ImageAsset
	handle     display.Handle
	items      []string
	selected   map[string]struct{}
	errMsg     string
	loading    bool
	closed     bool
}

func NewController(identifier Identifier, handles HandleStore, apply ApplyFunc) *Controller {
	return &Controller{
		identifier: identifier,
		handles:    handles,
		apply:      apply,
		state:      StateEmpty,
		selected:   make(map[string]struct{}),
	}
}

// Upload starts identification of asset. A later Upload supersedes this one, and the
// superseded call returns ErrSuperseded once its identification finishes.
func (c *Controller) Upload(ctx context.Context, asset studio.ImageAsset) (Snapshot, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Snapshot{}, ErrClosed
	}
	if c.state == StateApplying {
		snap := c.snapshotLocked()
		err := fmt.Errorf("upload in %s: %w", c.state, ErrBusy)
		c.mu.Unlock()
		return snap, err
	}
	// the held handle stays valid when allocation fails
	handle, err := c.handles.Allocate(asset)
	if err != nil {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, fmt.Errorf("allocate display handle: %w", err)
	}
	c.releaseLocked()
	c.generation++
	generation := c.generation
	c.state = StateIdentifying
	c.source = asset
	c.handle = handle
	c.items = nil
	c.selected = make(map[string]struct{})
	c.errMsg = ""
	c.mu.Unlock()

	items := c.identifier.IdentifyItems(ctx, asset)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.generation != generation {
		logs.Logger.Info().Uint64("generation", generation).Msg("identification result ignored")
		return c.snapshotLocked(), ErrSuperseded
	}
	if len(items) == 0 {
		c.releaseLocked()
		c.state = StateFailed
		c.source = studio.ImageAsset{}
		c.errMsg = NoItemsMessage
		return c.snapshotLocked(), ErrNoItems
	}
	c.state = StateItemsReady
	c.items = items
	return c.snapshotLocked(), nil
}

// Toggle selects label, or deselects it when it is already selected.
func (c *Controller) Toggle(label string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return Snapshot{}, ErrClosed
	}
	if c.state != StateItemsReady {
		return c.snapshotLocked(), fmt.Errorf("toggle in %s: %w", c.state, ErrInvalidState)
	}
	if !c.detected(label) {
		return c.snapshotLocked(), ErrUnknownLabel
	}
	if _, ok := c.selected[label]; ok {
		delete(c.selected, label)
	} else {
		c.selected[label] = struct{}{}
	}
	return c.snapshotLocked(), nil
}

func (c *Controller) SetLoading(loading bool) {
	c.mu.Lock()
	c.loading = loading
	c.mu.Unlock()
}

func (c *Controller) CanConfirm() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canConfirmLocked()
}

// Confirm hands the source file and the selection to the apply callback.
func (c *Controller) Confirm(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Snapshot{}, ErrClosed
	}
	if !c.canConfirmLocked() {
		snap := c.snapshotLocked()
		err := fmt.Errorf("confirm in %s: %w", c.state, ErrInvalidState)
		switch {
		case c.state == StateApplying || (c.state == StateItemsReady && c.loading):
			err = ErrBusy
		case c.state == StateItemsReady:
			err = ErrNothingSelect
		}
		c.mu.Unlock()
		return snap, err
	}
	source := c.source
	labels := c.selectedLocked()
	generation := c.generation
	c.state = StateApplying
	c.mu.Unlock()

	err := c.apply(ctx, source, labels)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed && c.generation == generation && c.state == StateApplying {
		c.state = StateItemsReady
	}
	return c.snapshotLocked(), err
}

// Reset returns to Empty and releases the held display handle.
func (c *Controller) Reset() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return Snapshot{}, ErrClosed
	}
	if c.state == StateApplying {
		return c.snapshotLocked(), fmt.Errorf("reset in %s: %w", c.state, ErrInvalidState)
	}
	c.generation++
	c.releaseLocked()
	c.state = StateEmpty
	c.source = studio.ImageAsset{}
	c.items = nil
	c.selected = make(map[string]struct{})
	c.errMsg = ""
	return c.snapshotLocked(), nil
}

// Close is the teardown path. It is safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	c.releaseLocked()
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) releaseLocked() {
	if c.handle.IsZero() {
		return
	}
	if err := c.handles.Release(c.handle); err != nil {
		logs.Logger.Warn().Err(err).Str("handle", c.handle.ID).Msg("release display handle")
	}
	c.handle = display.Handle{}
}

func (c *Controller) canConfirmLocked() bool {
	return c.state == StateItemsReady && len(c.selected) > 0 && !c.loading
}

func (c *Controller) detected(label string) bool {
	for _, item := range c.items {
		if item == label {
			return true
		}
	}
	return false
}

// selectedLocked lists the selection in detection order, each label once.
func (c *Controller) selectedLocked() []string {
	labels := make([]string, 0, len(c.selected))
	seen := make(map[string]struct{}, len(c.selected))
	for _, item := range c.items {
		if _, ok := c.selected[item]; !ok {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		labels = append(labels, item)
	}
	return labels
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:      c.state,
		Items:      append([]string{}, c.items...),
		Selected:   c.selectedLocked(),
		Error:      c.errMsg,
		Loading:    c.loading,
		CanConfirm: c.canConfirmLocked(),
	}
	if !c.handle.IsZero() {
		h := c.handle
		snap.Handle = &h
	}
	return snap
}
