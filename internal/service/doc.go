// Package service contains the application-specific use cases. It
// orchestrates the pure planner, the confusion handler and the repositories
// defined in internal/store to fulfill the API's features.
//
// Services receive their dependencies through constructor injection and
// never depend on specific infrastructure implementations. Expected failure
// conditions are reported with the sentinel errors in errors.go; anything
// else is wrapped in a ServiceError.
package service
