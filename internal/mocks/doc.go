// Package mocks provides hand-written test doubles shared across packages:
// a scripted TextGenerator, a JWTService that accepts any token, and
// in-memory implementations of the store interfaces.
//
// Doubles expose function fields or error fields so each test can override
// one behavior:
//
//	gen := &mocks.MockTextGenerator{
//	    GenerateFn: func(ctx context.Context, prompt string) (string, error) {
//	        return `{"calm_response": "..."}`, nil
//	    },
//	}
package mocks
