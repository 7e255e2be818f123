// Package api exposes the planner, confusion dumps, profiles and study data
// over HTTP. Handlers decode and validate requests, call the services and map
// their errors to status codes.
package api
