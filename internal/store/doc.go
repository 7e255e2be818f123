// Package store declares the persistence contracts the planner services
// depend on: profiles, subjects, assignments, daily check-ins and brain
// dumps. The PostgreSQL implementations live in internal/platform/postgres.
//
// Every method is scoped to one user. A record that belongs to someone else
// is reported as not found.
package store
