// Package config loads the gateway configuration from YAML with
// environment variable expansion and duration parsing.
package config
