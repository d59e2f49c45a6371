// Package testutil provides deterministic, seeded test data for the
// search packages.
package testutil
