// Package history keeps a summary row per reconciliation run in the
// sync_runs table. It is optional: a nil Recorder silently records nothing.
package history
