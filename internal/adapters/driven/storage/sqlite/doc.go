// Package sqlite provides the SQLite-backed catalog store and the one-time
// CSV ingestion that builds it. It uses the pure-Go modernc.org/sqlite
// driver through database/sql, so no CGO is required.
package sqlite
