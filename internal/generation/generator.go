package generation

import "context"

// TextGenerator produces text from a prompt.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type TextGenerator interface {
	// Generate sends prompt to the model and returns its reply verbatim.
	//
	// Failures to obtain a reply wrap ErrServiceUnavailable; replies that are
	// empty or blocked wrap ErrMalformedResponse.
	Generate(ctx context.Context, prompt string) (string, error)
}
