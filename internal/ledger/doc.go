// Package ledger persists prompt generation jobs in SQLite.
//
// Each reference clip gets one row keyed by its source path, so re-running
// prompt generation skips clips that already produced a prompt file and
// retries clips that previously failed. Schema changes bump the version in
// store.go; users delete the database to adopt the new schema.
package ledger
