package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrServiceUnavailable is returned when the language model could not be
	// reached or failed to produce a reply.
	ErrServiceUnavailable = errors.New("text generation service unavailable")

	// ErrMalformedResponse is returned when the reply cannot be parsed or does
	// not have the expected shape.
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters.
	// It is always reported together with ErrMalformedResponse.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrEmptyPrompt is returned when a generator is called without a prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
