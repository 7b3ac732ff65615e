// Package config loads linter settings from a flat key-value file.
//
// JSON, TOML and YAML are accepted, chosen by file extension. Loading never
// fails: problems with the file or with individual keys become warnings and
// the affected settings keep their defaults.
package config
