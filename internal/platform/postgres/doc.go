// Package postgres implements the internal/store interfaces on PostgreSQL
// through the pgx database/sql driver. Schema migrations are embedded SQL
// files applied with goose.
//
// Driver errors are translated with MapError so callers only see store
// sentinels.
package postgres
