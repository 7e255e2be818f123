// Package gemini provides an implementation of the generation.TextGenerator
// interface backed by Google's Gemini API.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's services to the external Gemini service
// without exposing genai types beyond its boundary.
//
// Replies are requested as JSON. A response schema can be attached with
// WithResponseSchema so the model is constrained to the shape the caller
// parses; ConfusionResponseSchema describes the confusion-dump reply.
//
// Errors are translated to the generation package sentinels: transport and
// API failures become generation.ErrServiceUnavailable, empty or blocked
// replies become generation.ErrMalformedResponse. The generator never retries.
package gemini
