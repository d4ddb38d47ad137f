// Package testutil provides mock pipeline stages and HTTP and logging
// helpers for tests.
package testutil
