// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overridden by environment variables (an optional
// .env file is loaded first) and validated before use. Each concern owns a settings
// struct; RestConfig aggregates them for the REST API, the worker and the CLI.
package config
