// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// The merge order is env → flags → JSON, with the first non-zero value
// winning (dario.cat/mergo semantics). See [GetStructuredConfig].
package config
