// Package config loads server settings from PLANWISE_* environment variables
// and an optional config.yaml, fills in defaults and validates the result.
package config
