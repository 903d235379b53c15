package models

import "errors"

// Tool outcomes the model is expected to react to
var (
	ErrVenueNotFound    = errors.New("restaurant id not found")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrUnknownTool      = errors.New("unknown tool")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Model endpoint failures
var (
	ErrMissingCredential = errors.New("model credential not configured")
	ErrEmptyModelReply   = errors.New("model returned no output")
)
