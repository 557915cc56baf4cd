package flow

import "errors"

type State string

const (
	StateEmpty       State = "empty"
	StateIdentifying State = "identifying"
	StateItemsReady  State = "items_ready"
	StateApplying    State = "applying"
	StateFailed      State = "failed"
)

func (s State) String() string {
	return string(s)
}

const NoItemsMessage = "Could not identify any clothing items in the image. Please try another one."

var (
	ErrSuperseded    = errors.New("upload superseded by a newer one")
	ErrNoItems       = errors.New(NoItemsMessage)
	ErrInvalidState  = errors.New("operation not allowed in current state")
	ErrUnknownLabel  = errors.New("label was not detected in the image")
	ErrNothingSelect = errors.New("select at least one item before applying")
	ErrBusy          = errors.New("a swap is already in progress")
	ErrClosed        = errors.New("controller is closed")

	ErrSessionNotFound = errors.New("session not found")
)
