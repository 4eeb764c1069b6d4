// Package integrity provides health checks for the correlation service's
// persistent state.
//
// # Checks Provided
//
//   - Maps: Loads every correlation map and reports entries with no
//     identifier and identifiers stored under more than one name.
//   - Storage: Checks that the map bucket exists (s3 backend).
//   - History: Validates that the run history table has every expected column.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/maps : Runs the map check.
//   - GET /integrity/storage : Runs the bucket check (supports ?fix=true).
//   - GET /integrity/history : Runs the history schema check.
package integrity
