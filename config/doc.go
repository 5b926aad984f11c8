// Package config loads the assistant's file and environment configuration.
// Files are YAML, located either at an explicit path or searched under the
// config/ directory (local.yaml taking precedence over config.yaml).
// Environment variables prefixed with STEWARD_ override file values.
//
// The loader only produces a Config; interpreting plugin fragments and
// wiring plugin instances is the caller's concern.
package config
