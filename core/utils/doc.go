// Package utils provides small conversion helpers shared across packages.
//
// The correlation map stores identifiers as plain JSON values. ToJSONValue and
// CanonicalString make a value read from a live record comparable to the same
// value loaded back from a persisted map.
package utils
