package studio

import (
	"errors"
	"fmt"
)

var ErrEmptySelection = errors.New("please select at least one clothing item to swap")

type EncodingError struct {
	Name string
	Err  error
}

func (e *EncodingError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("could not encode image %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("could not encode image: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

type BlockedError struct {
	Reason  string
	Message string
}

func (e *BlockedError) Error() string {
	msg := fmt.Sprintf("Request was blocked. Reason: %s.", e.Reason)
	if e.Message != "" {
		msg += " " + e.Message
	}
	return msg
}

type AbnormalStopError struct {
	Context string
	Status  string
}

func (e *AbnormalStopError) Error() string {
	return fmt.Sprintf("Image generation for %s stopped unexpectedly. Reason: %s. This often relates to safety settings.", e.Context, e.Status)
}

// NoImageReturnedError is a well formed response without an image, usually a soft refusal.
type NoImageReturnedError struct {
	Context  string
	Feedback string
}

func (e *NoImageReturnedError) Error() string {
	msg := fmt.Sprintf("The AI model did not return an image for the %s. ", e.Context)
	if e.Feedback != "" {
		return msg + fmt.Sprintf("The model responded with text: %q", e.Feedback)
	}
	return msg + "This can happen due to safety filters or if the request is too complex. Please try rephrasing your prompt to be more direct."
}

// IsModelRefusal reports whether err was produced by interpreting a model response.
func IsModelRefusal(err error) bool {
	var blocked *BlockedError
	var stopped *AbnormalStopError
	var noImage *NoImageReturnedError
	return errors.As(err, &blocked) || errors.As(err, &stopped) || errors.As(err, &noImage)
}
