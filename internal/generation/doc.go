// Package generation defines the boundary between the application and the
// external LLM service (Gemini) used for content generation.
//
// The TextGenerator interface takes a fully rendered prompt and returns the
// model's raw text. Callers own prompt construction and response parsing, so
// implementations stay free of domain knowledge and can be swapped for test
// doubles.
package generation
