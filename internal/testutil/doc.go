// Package testutil contains small fluent builders shared by tests across
// packages. It must never be imported by production code.
package testutil
